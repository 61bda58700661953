package usecase

import (
	"context"
	"errors"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScheduleService owns showtimes. A showroom hosts at most one showtime per
// instant, across all movies.
type ScheduleService interface {
	AddShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	// RemoveShowtime returns the movie's showtimes that are left.
	RemoveShowtime(ctx context.Context, req *request.ShowtimeRequest) ([]response.ShowtimeResponse, error)
	ListShowtimes(ctx context.Context, movieID string) ([]response.ShowtimeResponse, error)
}

type scheduleService struct {
	repo *repository.Repository
	now  func() time.Time
	log  *zap.Logger
}

func NewScheduleService(repo *repository.Repository, log *zap.Logger) ScheduleService {
	return &scheduleService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) AddShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Add showtime validation failed", zap.Error(err))
		return nil, err
	}

	slot, err := parseSlot(req.MovieID, req.Showroom, req.DateTime)
	if err != nil {
		return nil, err
	}

	if err := s.requireMovie(ctx, slot.MovieID); err != nil {
		return nil, err
	}

	showtime := &entity.Showtime{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		MovieID:  slot.MovieID,
		Showroom: slot.Showroom,
		StartsAt: slot.StartsAt,
	}

	created, err := s.repo.Showtime.Create(ctx, showtime)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, apperror.NotFound("Movie not found")
		}
		return nil, err
	}
	if !created {
		s.log.Info("Showroom already booked",
			zap.String("showroom", string(slot.Showroom)),
			zap.Time("starts_at", slot.StartsAt),
		)
		return nil, apperror.ErrShowroomBooked
	}

	s.log.Info("Showtime scheduled",
		zap.String("movie_id", slot.MovieID.String()),
		zap.String("showroom", string(slot.Showroom)),
		zap.Time("starts_at", slot.StartsAt),
	)

	res := response.ShowtimeToResponse(showtime)
	return &res, nil
}

func (s *scheduleService) RemoveShowtime(ctx context.Context, req *request.ShowtimeRequest) ([]response.ShowtimeResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Remove showtime validation failed", zap.Error(err))
		return nil, err
	}

	slot, err := parseSlot(req.MovieID, req.Showroom, req.DateTime)
	if err != nil {
		return nil, err
	}

	if err := s.requireMovie(ctx, slot.MovieID); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Showtime.Delete(ctx, slot.MovieID, slot.Showroom, slot.StartsAt)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperror.NotFound("Showtime not found")
	}

	s.log.Info("Showtime removed",
		zap.String("movie_id", slot.MovieID.String()),
		zap.String("showroom", string(slot.Showroom)),
		zap.Time("starts_at", slot.StartsAt),
	)

	remaining, err := s.repo.Showtime.FindByMovieID(ctx, slot.MovieID)
	if err != nil {
		return nil, err
	}
	return response.ShowtimesToResponse(remaining), nil
}

func (s *scheduleService) ListShowtimes(ctx context.Context, movieID string) ([]response.ShowtimeResponse, error) {
	id, err := parseID(movieID, "movie ID")
	if err != nil {
		return nil, err
	}

	if err := s.requireMovie(ctx, id); err != nil {
		return nil, err
	}

	showtimes, err := s.repo.Showtime.FindByMovieID(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.ShowtimesToResponse(showtimes), nil
}

func (s *scheduleService) requireMovie(ctx context.Context, id uuid.UUID) error {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if movie == nil {
		return apperror.NotFound("Movie not found")
	}
	return nil
}
