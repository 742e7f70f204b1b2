package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrics-consolidation-backend/internal/util"
)

func TestDateRangeValidator_Validate(t *testing.T) {
	// Fixed clock: "today" is 2024-05-10 in Asia/Jakarta.
	validator := NewDateRangeValidator()
	validator.now = func() time.Time {
		return time.Date(2024, 5, 10, 13, 30, 0, 0, util.JakartaLocation())
	}

	tests := []struct {
		name             string
		startDate        string
		endDate          string
		expectedMessages []string
	}{
		{
			name:      "Valid Past Range",
			startDate: "2024-05-01",
			endDate:   "2024-05-09",
		},
		{
			name:      "Valid Single Day Range",
			startDate: "2024-05-09",
			endDate:   "2024-05-09",
		},
		{
			name:      "Start Date Is Today",
			startDate: "2024-05-10",
			endDate:   "2024-05-09",
			expectedMessages: []string{
				`"startDate" cannot be today`,
				`"endDate" must be greater than or equal to "startDate"`,
			},
		},
		{
			name:      "End Date Is Today",
			startDate: "2024-05-01",
			endDate:   "2024-05-10",
			expectedMessages: []string{
				`"endDate" cannot be today`,
			},
		},
		{
			name:      "Start Date In Future",
			startDate: "2024-05-11",
			endDate:   "2024-05-09",
			expectedMessages: []string{
				`"startDate" must not be greater than today`,
				`"endDate" must be greater than or equal to "startDate"`,
			},
		},
		{
			name:      "End Date In Future",
			startDate: "2024-05-01",
			endDate:   "2024-05-11",
			expectedMessages: []string{
				`"endDate" must not be greater than today`,
			},
		},
		{
			name:      "End Date Before Start Date",
			startDate: "2024-05-08",
			endDate:   "2024-05-07",
			expectedMessages: []string{
				`"endDate" must be greater than or equal to "startDate"`,
			},
		},
		{
			name:      "Malformed Start Date",
			startDate: "01-05-2024",
			endDate:   "2024-05-09",
			expectedMessages: []string{
				`"startDate" must be a valid ISO date`,
			},
		},
		{
			name:      "Both Dates Malformed",
			startDate: "yesterday",
			endDate:   "tomorrow",
			expectedMessages: []string{
				`"startDate" must be a valid ISO date`,
				`"endDate" must be a valid ISO date`,
			},
		},
		{
			name:      "Not A Calendar Date",
			startDate: "2024-02-30",
			endDate:   "2024-05-09",
			expectedMessages: []string{
				`"startDate" must be a valid ISO date`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dateRange, err := validator.Validate(tt.startDate, tt.endDate)

			if len(tt.expectedMessages) == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.startDate, dateRange.StartDate().Format(util.DateLayout))
				assert.Equal(t, tt.endDate, dateRange.EndDate().Format(util.DateLayout))
				return
			}

			require.Error(t, err)
			var validationErr *Error
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedMessages, validationErr.Messages)
		})
	}
}

func TestDateRangeValidator_DatetimeTruncatedToCalendarDate(t *testing.T) {
	validator := NewDateRangeValidator()
	validator.now = func() time.Time {
		return time.Date(2024, 5, 10, 13, 30, 0, 0, util.JakartaLocation())
	}

	dateRange, err := validator.Validate("2024-05-08T22:30:00Z", "2024-05-09T23:59:59.000+07:00")
	require.NoError(t, err)

	assert.Equal(t, "2024-05-08", dateRange.StartDate().Format(util.DateLayout))
	assert.Equal(t, "2024-05-09", dateRange.EndDate().Format(util.DateLayout))
	assert.Equal(t, 0, dateRange.StartDate().Hour(), "time component is discarded, not converted")
	assert.Equal(t, util.JakartaLocation(), dateRange.StartDate().Location())
}

func TestDateRangeValidator_DatetimeStillCheckedAgainstToday(t *testing.T) {
	validator := NewDateRangeValidator()
	validator.now = func() time.Time {
		return time.Date(2024, 5, 10, 13, 30, 0, 0, util.JakartaLocation())
	}

	_, err := validator.Validate("2024-05-10T01:00:00+07:00", "2024-05-10T02:00:00+07:00")
	require.Error(t, err)
	var validationErr *Error
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		`"startDate" cannot be today`,
		`"endDate" cannot be today`,
	}, validationErr.Messages)
}

func TestDateRangeValidator_BoundsAreMidnightInReferenceTimezone(t *testing.T) {
	validator := NewDateRangeValidator()
	validator.now = func() time.Time {
		return time.Date(2024, 5, 10, 0, 0, 1, 0, util.JakartaLocation())
	}

	dateRange, err := validator.Validate("2024-05-01", "2024-05-02")
	require.NoError(t, err)

	assert.Equal(t, 0, dateRange.StartDate().Hour())
	assert.Equal(t, util.JakartaLocation(), dateRange.StartDate().Location())
}
