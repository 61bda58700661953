package entity

import (
	"github.com/google/uuid"
)

// Booking is immutable once stored. Prices and promo data are copies taken
// at checkout time.
type Booking struct {
	BaseSimple
	OrderID         string    `db:"order_id"`
	MovieID         uuid.UUID `db:"movie_id"`
	Showtime        Slot      `db:"-"`
	CustomerName    string    `db:"customer_name"`
	CustomerEmail   string    `db:"customer_email"`
	PromoCode       *string   `db:"promo_code"`
	DiscountPercent int       `db:"discount_percent"`
	TicketSum       float64   `db:"ticket_sum"`
	Discount        float64   `db:"discount"`
	Net             float64   `db:"net"`
	BookingFee      float64   `db:"booking_fee"`
	Tax             float64   `db:"tax"`
	TotalPrice      float64   `db:"total_price"`
	Tickets         []*BookingTicket
}

func (b *Booking) Seats() []string {
	seats := make([]string, len(b.Tickets))
	for i, t := range b.Tickets {
		seats[i] = t.Seat
	}
	return seats
}
