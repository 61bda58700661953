package adaptor

import (
	"net/http"

	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service      usecase.BookingService
	availability usecase.AvailabilityService
	log          *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, availability usecase.AvailabilityService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:      service,
		availability: availability,
		log:          log.With(zap.String("handler", "booking")),
	}
}

// GetBookedSeats handles GET /api/bookings?movie_id=&showroom=&date_time=
func (h *BookingHandler) GetBookedSeats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ShowtimeRequest{
		MovieID:  query.Get("movie_id"),
		Showroom: query.Get("showroom"),
		DateTime: query.Get("date_time"),
	}

	seats, err := h.availability.BookedSeats(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get booked seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// CreateBooking handles POST /api/bookings. A verified bearer identity
// replaces whatever customer the body names.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if identity, ok := utils.GetCustomerFromContext(r.Context()); ok {
		req.Customer.Email = identity.Email
		if identity.Name != "" {
			req.Customer.Name = identity.Name
		}
	}

	result, err := h.service.PlaceBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", result)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved successfully", booking)
}

// GetCustomerBookings handles GET /api/user/bookings. The history belongs to
// the customer named by the bearer token; there is no way to ask for another.
func (h *BookingHandler) GetCustomerBookings(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetCustomerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.CustomerBookingsRequest{
		Email: identity.Email,
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
	}

	bookings, err := h.service.GetCustomerBookings(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get customer bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ResendConfirmation handles POST /api/bookings/{id}/send-email
func (h *BookingHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResendConfirmation(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "resend confirmation")
		return
	}

	utils.ResponseSuccess(w, "Confirmation email sent", nil)
}
