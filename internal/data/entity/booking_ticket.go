package entity

import "github.com/google/uuid"

type TicketCategory string

const (
	CategoryAdult  TicketCategory = "Adult"
	CategoryChild  TicketCategory = "Child"
	CategorySenior TicketCategory = "Senior"
)

var ticketCategories = []TicketCategory{CategoryAdult, CategoryChild, CategorySenior}

func IsTicketCategory(name string) bool {
	for _, c := range ticketCategories {
		if string(c) == name {
			return true
		}
	}
	return false
}

func TicketCategoryNames() []string {
	names := make([]string, len(ticketCategories))
	for i, c := range ticketCategories {
		names[i] = string(c)
	}
	return names
}

// BookingTicket is one reserved seat. (MovieID, Showroom, StartsAt, Seat) is unique.
type BookingTicket struct {
	BaseSimple
	BookingID uuid.UUID      `db:"booking_id"`
	Seat      string         `db:"seat"`
	Category  TicketCategory `db:"category"`
	UnitPrice float64        `db:"unit_price"`
}
