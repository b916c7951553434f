package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayISOFormat(t *testing.T) {
	today := TodayISO()

	parsed, err := time.Parse(ISODateFormat, today)
	assert.NoError(t, err)
	assert.Equal(t, today, parsed.Format(ISODateFormat))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 12*time.Hour, ParseDuration("12h", time.Hour))
	assert.Equal(t, 90*time.Second, ParseDuration("1m30s", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}
