package usecase

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrUnauthenticated means no caller identity was found in the request
	// context.
	ErrUnauthenticated = errors.New("user not found in context")

	ErrInvalidDate = errors.New("date must be a valid YYYY-MM-DD date")
	ErrInvalidTime = errors.New("time must be HH:MM or HH:MM:SS")
)

const dateLayout = "2006-01-02"

// namePlaceholder substitutes a display name when the remote lookup fails.
// Enrichment is best-effort; a lookup failure never aborts a listing.
const namePlaceholder = "Unavailable"

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// normalizeTime accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func normalizeTime(value string) (string, error) {
	if t, err := time.Parse("15:04:05", value); err == nil {
		return t.Format("15:04:05"), nil
	}
	if t, err := time.Parse("15:04", value); err == nil {
		return t.Format("15:04:05"), nil
	}
	return "", ErrInvalidTime
}

// normalizeOptionalDate maps blank, unparseable or sentinel "Invalid date"
// inputs to nil. Only a well-formed YYYY-MM-DD date is stored.
func normalizeOptionalDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "invalid date") {
		return nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &date
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
