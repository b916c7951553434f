package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ISODateFormat is the storage format for full dates. Monthly samples
// use the "2006-01" prefix of it; lexicographic order is chronological
// order for both.
const ISODateFormat = "2006-01-02"

// TodayISO returns the current date in storage format.
func TodayISO() string {
	return time.Now().Format(ISODateFormat)
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
