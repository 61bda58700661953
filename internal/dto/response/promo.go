package response

import (
	"time"

	"cinema-ebooking/internal/data/entity"
)

type PromoResponse struct {
	ID              string     `json:"id"`
	PromoCode       string     `json:"promo_code"`
	DiscountPercent int        `json:"discount_percent"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	IsActive        bool       `json:"is_active"`
	SentCount       int        `json:"sent_count"`
	LastSentAt      *time.Time `json:"last_sent_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type PromoValidationResponse struct {
	PromoCode       string `json:"promo_code"`
	DiscountPercent int    `json:"discount_percent"`
}

type PromoBroadcastResponse struct {
	PromoCode       string `json:"promo_code"`
	TotalSubscribed int    `json:"total_subscribed"`
	Sent            int    `json:"sent"`
	Failed          int    `json:"failed"`
}

func PromoToResponse(p *entity.PromoCode) PromoResponse {
	return PromoResponse{
		ID:              p.ID.String(),
		PromoCode:       p.Code,
		DiscountPercent: p.DiscountPercent,
		StartDate:       FormatDateTime(p.StartDate),
		EndDate:         FormatDateTime(p.EndDate),
		IsActive:        p.IsActive,
		SentCount:       p.SentCount,
		LastSentAt:      p.LastSentAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
