package usecase

import (
	"strings"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/apperror"
	"cinema-ebooking/pkg/utils"

	"github.com/google/uuid"
)

func validateRequest(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.InvalidFields(errs, utils.FormatValidationErrors(errs))
	}
	return nil
}

// parseDateTime accepts RFC 3339 with a mandatory offset and returns UTC.
func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(utils.DateTimeLayout, value)
	if err != nil {
		return time.Time{}, apperror.Validation("invalid date_time %q: expected RFC3339 with offset", value)
	}
	return t.UTC(), nil
}

func parseID(value, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid %s format", name)
	}
	return id, nil
}

func parseSlot(movieID, showroom, dateTime string) (entity.Slot, error) {
	id, err := parseID(movieID, "movie_id")
	if err != nil {
		return entity.Slot{}, err
	}
	if !entity.IsShowroom(showroom) {
		return entity.Slot{}, apperror.Validation("unknown showroom %q", showroom)
	}
	startsAt, err := parseDateTime(dateTime)
	if err != nil {
		return entity.Slot{}, err
	}
	return entity.Slot{MovieID: id, Showroom: entity.Showroom(showroom), StartsAt: startsAt}, nil
}

// normalizePromoCode is the canonical form used for storage and lookup.
func normalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
