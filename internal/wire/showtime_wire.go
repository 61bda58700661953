package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler, admin func(http.Handler) http.Handler) {
	r.Route("/api/admin/showtimes", func(r chi.Router) {
		r.Use(admin)

		r.Post("/", showtimeHandler.AddShowtime)
		r.Delete("/", showtimeHandler.RemoveShowtime)
	})
}
