package entity

import "time"

type PromoCode struct {
	Base
	Code            string     `db:"promo_code"`
	DiscountPercent int        `db:"discount_percent"`
	StartDate       time.Time  `db:"start_date"`
	EndDate         time.Time  `db:"end_date"`
	IsActive        bool       `db:"is_active"`
	SentCount       int        `db:"sent_count"`
	LastSentAt      *time.Time `db:"last_sent_at"`
}

// PromoSubscriber is an opted-in, active account owned by the account service.
type PromoSubscriber struct {
	Name  string `db:"name"`
	Email string `db:"email"`
}
