package response

import (
	"time"

	"cinema-ebooking/internal/data/entity"
)

type ShowtimeResponse struct {
	ID       string `json:"id"`
	MovieID  string `json:"movie_id"`
	Showroom string `json:"showroom"`
	DateTime string `json:"date_time"`
}

type AvailabilityResponse struct {
	BookedSeats []string `json:"booked_seats"`
}

func FormatDateTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func ShowtimeToResponse(st *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:       st.ID.String(),
		MovieID:  st.MovieID.String(),
		Showroom: string(st.Showroom),
		DateTime: FormatDateTime(st.StartsAt),
	}
}

func ShowtimesToResponse(showtimes []*entity.Showtime) []ShowtimeResponse {
	out := make([]ShowtimeResponse, 0, len(showtimes))
	for _, st := range showtimes {
		out = append(out, ShowtimeToResponse(st))
	}
	return out
}
