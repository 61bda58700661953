package response

import (
	"time"

	"cinema-ebooking/internal/data/entity"
)

type PriceConfigResponse struct {
	Adult      float64   `json:"adult"`
	Child      float64   `json:"child"`
	Senior     float64   `json:"senior"`
	BookingFee float64   `json:"booking_fee"`
	TaxRate    float64   `json:"tax_rate"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func PriceConfigToResponse(cfg *entity.PriceConfig) PriceConfigResponse {
	return PriceConfigResponse{
		Adult:      cfg.TicketPrices[entity.CategoryAdult],
		Child:      cfg.TicketPrices[entity.CategoryChild],
		Senior:     cfg.TicketPrices[entity.CategorySenior],
		BookingFee: cfg.BookingFee,
		TaxRate:    cfg.TaxRate,
		UpdatedAt:  cfg.UpdatedAt,
	}
}
