package wire

import (
	"net/http"

	"cinema-ebooking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, identity func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		// a bearer token is optional; when present it names the customer
		r.Use(identity)

		// GET /api/bookings?movie_id=&showroom=&date_time= - booked seats of a showtime
		r.Get("/api/bookings", bookingHandler.GetBookedSeats)

		// POST /api/bookings - place a booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings/{id}
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

		// POST /api/bookings/{id}/send-email - resend the confirmation
		r.Post("/api/bookings/{id}/send-email", bookingHandler.ResendConfirmation)

		// GET /api/user/bookings - booking history of the token's customer, 401 without one
		r.Get("/api/user/bookings", bookingHandler.GetCustomerBookings)
	})
}
