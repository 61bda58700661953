package usecase

import (
	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Quote is an itemized order price. Every field is rounded to cents on its
// own from the full-precision intermediate values.
type Quote struct {
	UnitPrices []decimal.Decimal
	TicketSum  decimal.Decimal
	Discount   decimal.Decimal
	Net        decimal.Decimal
	BookingFee decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// roundCents rounds half away from zero, which is half-up for the
// non-negative amounts priced here.
func roundCents(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// PriceTickets computes
//
//	ticketSum = sum of price(category)
//	discount  = ticketSum * pct / 100
//	net       = ticketSum - discount
//	tax       = (net + fee) * taxRate
//	total     = net + tax + fee
//
// It has no side effects.
func PriceTickets(cfg *entity.PriceConfig, categories []entity.TicketCategory, discountPercent int) (*Quote, error) {
	unit := make([]decimal.Decimal, len(categories))
	sum := decimal.Zero
	for i, c := range categories {
		price, ok := cfg.TicketPrices[c]
		if !ok {
			return nil, apperror.UnknownCategory(string(c))
		}
		unit[i] = decimal.NewFromFloat(price)
		sum = sum.Add(unit[i])
	}

	fee := decimal.NewFromFloat(cfg.BookingFee)
	rate := decimal.NewFromFloat(cfg.TaxRate)

	discount := sum.Mul(decimal.NewFromInt(int64(discountPercent))).Div(hundred)
	net := sum.Sub(discount)
	tax := net.Add(fee).Mul(rate)
	total := net.Add(tax).Add(fee)

	for i := range unit {
		unit[i] = roundCents(unit[i])
	}

	return &Quote{
		UnitPrices: unit,
		TicketSum:  roundCents(sum),
		Discount:   roundCents(discount),
		Net:        roundCents(net),
		BookingFee: roundCents(fee),
		Tax:        roundCents(tax),
		Total:      roundCents(total),
	}, nil
}
