package entity

import (
	"time"

	"github.com/google/uuid"
)

// Showtime is a screening slot. StartsAt is always UTC; (Showroom, StartsAt)
// is unique across all movies.
type Showtime struct {
	BaseSimple
	MovieID  uuid.UUID `db:"movie_id"`
	Showroom Showroom  `db:"showroom"`
	StartsAt time.Time `db:"starts_at"`
}

// Slot identifies the seats of one screening of one movie.
type Slot struct {
	MovieID  uuid.UUID
	Showroom Showroom
	StartsAt time.Time
}
