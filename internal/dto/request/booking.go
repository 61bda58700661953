package request

type CustomerRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// CreateBookingRequest pairs Seats[i] with TicketCategories[i].
type CreateBookingRequest struct {
	MovieID          string          `json:"movie_id" validate:"required,uuid"`
	Showroom         string          `json:"showroom" validate:"required,showroom"`
	DateTime         string          `json:"date_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Seats            []string        `json:"seats" validate:"required,min=1,unique,dive,seat"`
	TicketCategories []string        `json:"ticket_categories" validate:"required,min=1,dive,category"`
	PromoCode        *string         `json:"promo_code,omitempty" validate:"omitempty,max=50"`
	Customer         CustomerRequest `json:"customer"`
}

type CustomerBookingsRequest struct {
	Email string `json:"email" validate:"required,email"`
	PaginatedRequest
}
