package adaptor

import (
	"cinema-ebooking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Showtime *ShowtimeHandler
	Booking  *BookingHandler
	Promo    *PromoHandler
	Price    *PriceHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Showtime: NewShowtimeHandler(service.Schedule, log),
		Booking:  NewBookingHandler(service.Booking, service.Availability, log),
		Promo:    NewPromoHandler(service.Promo, log),
		Price:    NewPriceHandler(service.Price, log),
	}
}
