package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePrice(r chi.Router, priceHandler *adaptor.PriceHandler, admin func(http.Handler) http.Handler) {
	r.Get("/api/prices", priceHandler.GetPrices)

	r.With(admin).Put("/api/admin/prices", priceHandler.UpsertPrices)
}
