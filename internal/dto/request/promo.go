package request

type PromoRequest struct {
	PromoCode       string `json:"promo_code" validate:"required,min=1,max=50"`
	DiscountPercent int    `json:"discount_percent" validate:"required,min=1,max=100"`
	StartDate       string `json:"start_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate         string `json:"end_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	IsActive        *bool  `json:"is_active,omitempty"`
}

type PromoUpdateRequest struct {
	PromoCode       *string `json:"promo_code,omitempty" validate:"omitnil,min=1,max=50"`
	DiscountPercent *int    `json:"discount_percent,omitempty" validate:"omitnil,min=1,max=100"`
	StartDate       *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate         *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IsActive        *bool   `json:"is_active,omitempty"`
}
