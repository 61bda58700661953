package entity

import "time"

// PriceConfig is a singleton; only one row ever exists.
type PriceConfig struct {
	TicketPrices map[TicketCategory]float64 `db:"ticket_prices" json:"ticket_prices"`
	BookingFee   float64                    `db:"booking_fee" json:"booking_fee"`
	TaxRate      float64                    `db:"tax_rate" json:"tax_rate"`
	CreatedAt    time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time                  `db:"updated_at" json:"updated_at"`
}
