package repository

import (
	"cinema-ebooking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Tx         Transactor
	Movie      MovieRepository
	Showtime   ShowtimeRepository
	Ticket     TicketRepository
	Booking    BookingRepository
	Promo      PromoRepository
	Subscriber SubscriberRepository
	Price      PriceRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:         NewTransactor(db, log),
		Movie:      NewMovieRepository(db, log),
		Showtime:   NewShowtimeRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Promo:      NewPromoRepository(db, log),
		Subscriber: NewSubscriberRepository(db, log),
		Price:      NewPriceRepository(db, log),
	}
}
