// Package notify hands outbound email to whatever delivers it. The booking
// engine never waits on delivery; a failed Send is logged by the caller.
package notify

import (
	"context"
)

type Kind string

const (
	KindBookingConfirmation Kind = "booking_confirmation"
	KindPromo               Kind = "promo"
)

type Email struct {
	Kind    Kind   `json:"kind"`
	From    string `json:"from"`
	To      string `json:"to"`
	ToName  string `json:"to_name,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type Notifier interface {
	Send(ctx context.Context, email Email) error
}
