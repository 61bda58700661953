package response

import (
	"cinema-ebooking/internal/data/entity"
)

type MovieResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	PosterURL   *string            `json:"poster_url,omitempty"`
	TrailerURL  *string            `json:"trailer_url,omitempty"`
	Rating      string             `json:"rating"`
	Genre       *string            `json:"genre,omitempty"`
	Showtimes   []ShowtimeResponse `json:"showtimes"`
}

func MovieToResponse(movie *entity.Movie, showtimes []*entity.Showtime) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		PosterURL:   movie.PosterURL,
		TrailerURL:  movie.TrailerURL,
		Rating:      movie.Rating,
		Genre:       movie.Genre,
		Showtimes:   ShowtimesToResponse(showtimes),
	}
}
