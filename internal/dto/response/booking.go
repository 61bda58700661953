package response

import (
	"time"

	"cinema-ebooking/internal/data/entity"
)

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TicketResponse struct {
	Seat      string  `json:"seat"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
}

type PriceBreakdownResponse struct {
	TicketSum  float64 `json:"ticket_sum"`
	Discount   float64 `json:"discount"`
	Net        float64 `json:"net"`
	BookingFee float64 `json:"booking_fee"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

type BookingResponse struct {
	ID              string                 `json:"id"`
	OrderID         string                 `json:"order_id"`
	MovieID         string                 `json:"movie_id"`
	MovieTitle      string                 `json:"movie_title,omitempty"`
	Showroom        string                 `json:"showroom"`
	DateTime        string                 `json:"date_time"`
	Customer        CustomerResponse       `json:"customer"`
	Tickets         []TicketResponse       `json:"tickets"`
	PromoCode       *string                `json:"promo_code,omitempty"`
	DiscountPercent int                    `json:"discount_percent"`
	Price           PriceBreakdownResponse `json:"price"`
	TotalPrice      float64                `json:"total_price"`
	CreatedAt       time.Time              `json:"created_at"`
}

type PlaceBookingResponse struct {
	Booking   BookingResponse `json:"booking"`
	TotalPaid float64         `json:"total_paid"`
}

func BookingToResponse(b *entity.Booking, movieTitle string) BookingResponse {
	tickets := make([]TicketResponse, 0, len(b.Tickets))
	for _, t := range b.Tickets {
		tickets = append(tickets, TicketResponse{
			Seat:      t.Seat,
			Category:  string(t.Category),
			UnitPrice: t.UnitPrice,
		})
	}

	return BookingResponse{
		ID:         b.ID.String(),
		OrderID:    b.OrderID,
		MovieID:    b.MovieID.String(),
		MovieTitle: movieTitle,
		Showroom:   string(b.Showtime.Showroom),
		DateTime:   FormatDateTime(b.Showtime.StartsAt),
		Customer: CustomerResponse{
			Name:  b.CustomerName,
			Email: b.CustomerEmail,
		},
		Tickets:         tickets,
		PromoCode:       b.PromoCode,
		DiscountPercent: b.DiscountPercent,
		Price: PriceBreakdownResponse{
			TicketSum:  b.TicketSum,
			Discount:   b.Discount,
			Net:        b.Net,
			BookingFee: b.BookingFee,
			Tax:        b.Tax,
			Total:      b.TotalPrice,
		},
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}
