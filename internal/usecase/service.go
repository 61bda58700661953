package usecase

import (
	"cinema-ebooking/internal/data/cache"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/pkg/notify"
	"cinema-ebooking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie        MovieService
	Price        PriceService
	Promo        PromoService
	Schedule     ScheduleService
	Availability AvailabilityService
	Booking      BookingService
}

func NewService(repo *repository.Repository, priceCache cache.PriceCache, notifier notify.Notifier, config *utils.Config, log *zap.Logger) *Service {
	price := NewPriceService(repo, priceCache, log)
	promo := NewPromoService(repo, notifier, config.Notify, log)
	availability := NewAvailabilityService(repo, log)

	return &Service{
		Movie:        NewMovieService(repo, log),
		Price:        price,
		Promo:        promo,
		Schedule:     NewScheduleService(repo, log),
		Availability: availability,
		Booking:      NewBookingService(repo, price, promo, availability, notifier, config.Notify, log),
	}
}
