package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, showtimeHandler *adaptor.ShowtimeHandler, admin func(http.Handler) http.Handler) {
	r.Route("/api/movies", func(r chi.Router) {
		// GET /api/movies - catalog with showtimes, paginated
		r.Get("/", movieHandler.GetMovies)

		// GET /api/movies/{id}
		r.Get("/{id}", movieHandler.GetMovieByID)

		// GET /api/movies/{id}/showtimes
		r.Get("/{id}/showtimes", showtimeHandler.ListShowtimes)
	})

	r.Route("/api/admin/movies", func(r chi.Router) {
		r.Use(admin)

		r.Post("/", movieHandler.CreateMovie)
		r.Put("/{id}", movieHandler.UpdateMovie)

		// DELETE /api/admin/movies/{id} - drops showtimes too, 409 once booked
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
