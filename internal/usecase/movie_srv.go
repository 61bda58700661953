package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	// DeleteMovie removes the movie with its showtimes. A movie that has
	// bookings is kept and a conflict is returned.
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
		now:  time.Now,
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	movies, err := s.repo.Movie.FindAll(ctx, offset, limit)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	out := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		showtimes, err := s.repo.Showtime.FindByMovieID(ctx, movie.ID)
		if err != nil {
			return nil, fmt.Errorf("get showtimes for movie %s: %w", movie.ID, err)
		}
		out = append(out, response.MovieToResponse(movie, showtimes))
	}

	return response.NewPaginatedResponse(out, req.Page, limit, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := parseID(movieID, "movie ID")
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie %s: %w", movieID, err)
	}
	if movie == nil {
		return nil, apperror.NotFound("Movie not found")
	}

	showtimes, err := s.repo.Showtime.FindByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("get showtimes for movie %s: %w", movie.ID, err)
	}

	res := response.MovieToResponse(movie, showtimes)
	return &res, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	rating := strings.TrimSpace(req.Rating)
	if rating == "" {
		rating = entity.RatingUnrated
	}

	now := s.now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		PosterURL:   req.PosterURL,
		TrailerURL:  req.TrailerURL,
		Rating:      rating,
		Genre:       req.Genre,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	res := response.MovieToResponse(movie, nil)
	return &res, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		req.Title = &title
	}
	if err := validateRequest(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err))
		return nil, err
	}

	id, err := parseID(movieID, "movie ID")
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie %s: %w", movieID, err)
	}
	if movie == nil {
		return nil, apperror.NotFound("Movie not found")
	}

	updated := false

	if req.Title != nil && *req.Title != movie.Title {
		movie.Title = *req.Title
		updated = true
	}
	if req.Description != nil {
		movie.Description = req.Description
		updated = true
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
		updated = true
	}
	if req.TrailerURL != nil {
		movie.TrailerURL = req.TrailerURL
		updated = true
	}
	if req.Rating != nil && *req.Rating != movie.Rating {
		movie.Rating = *req.Rating
		updated = true
	}
	if req.Genre != nil {
		movie.Genre = req.Genre
		updated = true
	}

	if updated {
		movie.UpdatedAt = s.now()
		if err := s.repo.Movie.Update(ctx, movie); err != nil {
			return nil, fmt.Errorf("update movie %s: %w", movieID, err)
		}
	}

	showtimes, err := s.repo.Showtime.FindByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("get showtimes for movie %s: %w", movie.ID, err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.Bool("was_updated", updated),
	)

	res := response.MovieToResponse(movie, showtimes)
	return &res, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := parseID(movieID, "movie ID")
	if err != nil {
		return err
	}

	deleted, err := s.repo.Movie.Delete(ctx, id)
	if errors.Is(err, repository.ErrReferenced) {
		return apperror.Conflict("Movie has bookings and cannot be deleted")
	}
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Movie not found")
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}
