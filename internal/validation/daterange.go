// Package validation checks date-range input before it reaches the store.
package validation

import (
	"fmt"
	"strings"
	"time"

	"metrics-consolidation-backend/internal/apperr"
	"metrics-consolidation-backend/internal/util"
)

// DateRange is a validated (startDate, endDate) pair. Values are immutable
// once constructed; both bounds are midnight-anchored in the reference timezone.
type DateRange struct {
	startDate time.Time
	endDate   time.Time
}

func (r DateRange) StartDate() time.Time { return r.startDate }
func (r DateRange) EndDate() time.Time   { return r.endDate }

// Error enumerates the per-field validation messages, first violation per field.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid date range: %s", strings.Join(e.Messages, "; "))
}

// Unwrap lets callers classify validation failures with errors.Is.
func (e *Error) Unwrap() error { return apperr.ErrInvalidInput }

// DateRangeValidator validates calendar-date pairs against "today" in the
// reference timezone. Same-day queries are rejected: an ingestion cycle for
// the current day may still be running, so only past days are queryable.
type DateRangeValidator struct {
	now func() time.Time
}

func NewDateRangeValidator() *DateRangeValidator {
	return &DateRangeValidator{now: util.NowJakarta}
}

// Validate parses and checks both bounds. Each field reports at most one
// violation; a non-nil error carries every violated field's message.
func (v *DateRangeValidator) Validate(startDate, endDate string) (DateRange, error) {
	loc := util.JakartaLocation()
	today, _ := time.ParseInLocation(util.DateLayout, v.now().In(loc).Format(util.DateLayout), loc)

	var messages []string

	start, err := parseDate(startDate, loc)
	switch {
	case err != nil:
		messages = append(messages, `"startDate" must be a valid ISO date`)
	case start.After(today):
		messages = append(messages, `"startDate" must not be greater than today`)
	case start.Equal(today):
		messages = append(messages, `"startDate" cannot be today`)
	}

	end, endErr := parseDate(endDate, loc)
	switch {
	case endErr != nil:
		messages = append(messages, `"endDate" must be a valid ISO date`)
	case err == nil && end.Before(start):
		messages = append(messages, `"endDate" must be greater than or equal to "startDate"`)
	case end.After(today):
		messages = append(messages, `"endDate" must not be greater than today`)
	case end.Equal(today):
		messages = append(messages, `"endDate" cannot be today`)
	}

	if len(messages) > 0 {
		return DateRange{}, &Error{Messages: messages}
	}
	return DateRange{startDate: start, endDate: end}, nil
}

// parseDate accepts a calendar date or a full ISO datetime. A datetime is
// truncated to its written calendar date; the time component and offset are
// discarded, not converted.
func parseDate(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(util.DateLayout, value, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
}
