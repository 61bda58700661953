package request

// PriceConfigRequest uses pointers so that an explicit 0 is told apart from a
// missing field. Ticket prices must be positive; fee and tax may be zero.
type PriceConfigRequest struct {
	Adult      *float64 `json:"adult" validate:"required,gt=0"`
	Child      *float64 `json:"child" validate:"required,gt=0"`
	Senior     *float64 `json:"senior" validate:"required,gt=0"`
	BookingFee *float64 `json:"booking_fee" validate:"required,gte=0"`
	TaxRate    *float64 `json:"tax_rate" validate:"required,gte=0,lte=1"`
}
