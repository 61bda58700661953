package utils

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"cinema-ebooking/internal/data/entity"

	"github.com/go-playground/validator/v10"
)

// DateTimeLayout is the only accepted timestamp format; the offset is mandatory.
const DateTimeLayout = "2006-01-02T15:04:05Z07:00"

var (
	validate    = newValidator()
	seatPattern = regexp.MustCompile(`^[A-Z][1-9][0-9]?$`)
)

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("showroom", func(fl validator.FieldLevel) bool {
		return entity.IsShowroom(fl.Field().String())
	})
	v.RegisterValidation("seat", func(fl validator.FieldLevel) bool {
		return seatPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.IsTicketCategory(fl.Field().String())
	})

	return v
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", err.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", err.Param())
	case "gtfield":
		return fmt.Sprintf("Must be after %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "url":
		return "Must be a valid URL"
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "datetime":
		return "Must be an RFC3339 timestamp with offset, e.g. 2024-06-01T19:30:00Z"
	case "unique":
		return "Values must be unique"
	case "showroom":
		return fmt.Sprintf("Must be one of: %s", strings.Join(entity.ShowroomNames(), ", "))
	case "seat":
		return "Must be a seat identifier such as A3"
	case "category":
		return fmt.Sprintf("Must be one of: %s", strings.Join(entity.TicketCategoryNames(), ", "))
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}
