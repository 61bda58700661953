// Package apperror holds the error taxonomy shared by usecases and adaptors.
// Handlers map a Kind to an HTTP status; the message is safe to show to clients.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPrecondition:
		return "precondition"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Seats   []string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Code when the target has one, otherwise on Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != "" {
		return e.Code == t.Code
	}
	return e.Kind == t.Kind
}

var (
	ErrValidation   = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict     = &Error{Kind: KindConflict, Message: "conflict"}
	ErrPrecondition = &Error{Kind: KindPrecondition, Message: "precondition failed"}

	ErrPromoNotFound    = &Error{Kind: KindNotFound, Code: "promo_not_found", Message: "Invalid promo code"}
	ErrPromoInactive    = &Error{Kind: KindValidation, Code: "promo_inactive", Message: "This promo code is no longer active"}
	ErrPromoNotYetValid = &Error{Kind: KindValidation, Code: "promo_not_yet_valid", Message: "This promo code is not yet valid"}
	ErrPromoExpired     = &Error{Kind: KindValidation, Code: "promo_expired", Message: "This promo code has expired"}
	ErrPromoExists      = &Error{Kind: KindConflict, Code: "promo_exists", Message: "Promo code already exists"}

	ErrShowroomBooked       = &Error{Kind: KindConflict, Code: "showroom_booked", Message: "showroom already booked at this time"}
	ErrSeatConflict         = &Error{Kind: KindConflict, Code: "seat_conflict", Message: "seat already booked"}
	ErrUnknownCategory      = &Error{Kind: KindValidation, Code: "unknown_category", Message: "unknown ticket category"}
	ErrPricingNotConfigured = &Error{Kind: KindPrecondition, Code: "pricing_not_configured", Message: "pricing not configured"}
)

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidFields reports request fields that failed schema validation.
func InvalidFields(fields map[string]string, summary string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed: " + summary, Fields: fields}
}

// SeatConflict names every seat that was already taken.
func SeatConflict(seats []string) *Error {
	return &Error{
		Kind:    KindConflict,
		Code:    ErrSeatConflict.Code,
		Message: fmt.Sprintf("seat(s) already booked: %s", strings.Join(seats, ", ")),
		Seats:   seats,
	}
}

// UnknownCategory reports a ticket category without a configured price.
func UnknownCategory(category string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    ErrUnknownCategory.Code,
		Message: fmt.Sprintf("unknown ticket category %q", category),
	}
}

// Wrap keeps the caller-facing kind and message of base while recording cause.
func Wrap(base *Error, cause error) *Error {
	return &Error{Kind: base.Kind, Code: base.Code, Message: base.Message, Err: cause}
}

// KindOf returns KindInternal for errors outside the taxonomy.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Message returns the client-safe message, never the wrapped cause.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
