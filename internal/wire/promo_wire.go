package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePromo(r chi.Router, promoHandler *adaptor.PromoHandler, admin func(http.Handler) http.Handler) {
	// GET /api/promos/validate?code= - public
	r.Get("/api/promos/validate", promoHandler.ValidatePromo)

	r.Route("/api/admin/promos", func(r chi.Router) {
		r.Use(admin)

		r.Post("/", promoHandler.CreatePromo)
		r.Get("/", promoHandler.GetPromos)
		r.Get("/{id}", promoHandler.GetPromo)
		r.Put("/{id}", promoHandler.UpdatePromo)
		r.Delete("/{id}", promoHandler.DeletePromo)

		// POST /api/admin/promos/{id}/send - email the promo to subscribers
		r.Post("/{id}/send", promoHandler.SendPromo)
	})
}
