package service

import (
	"time"

	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

const dateLayout = "2006-01-02"

// parseDateOrToday parses a YYYY-MM-DD form value, defaulting to the current
// date when the field was left empty.
func parseDateOrToday(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "invalid date, expected YYYY-MM-DD")
	}
	return parsed, nil
}
