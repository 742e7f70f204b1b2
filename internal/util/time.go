package util

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the calendar-date layout used by date-range inputs.
const DateLayout = "2006-01-02"

var jakarta = loadJakarta()

func loadJakarta() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// Jakarta has no DST; a fixed UTC+7 zone is equivalent when the
		// host has no tzdata.
		log.Warn().Err(err).Msg("Falling back to fixed WIB offset for Asia/Jakarta")
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// JakartaLocation returns the fixed reference timezone for ingestion
// timestamps and "today" computations.
func JakartaLocation() *time.Location {
	return jakarta
}

// NowJakarta returns the current time in the reference timezone.
func NowJakarta() time.Time {
	return time.Now().In(jakarta)
}
