package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMessageID(t *testing.T) {
	minsk := time.FixedZone("MSK", 3*60*60)
	tests := []struct {
		received time.Time
		seq      int
		want     string
	}{
		{time.Date(2024, 3, 12, 14, 5, 0, 0, time.UTC), 1, "20240312-140500-001"},
		{time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), 42, "20241231-235959-042"},
		{time.Date(2024, 3, 12, 14, 5, 0, 0, minsk), 1000, "20240312-110500-1000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMessageID(tt.received, tt.seq))
	}
}

func TestParseMessageID(t *testing.T) {
	received, seq, err := ParseMessageID("20240312-140500-007")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 12, 14, 5, 0, 0, time.UTC), received)
	assert.Equal(t, 7, seq)
}

func TestParseMessageID_Invalid(t *testing.T) {
	tests := []string{
		"",
		"nodash",
		"2024-03-12-001",
		"20240312-140500-x",
		"20240312-140500-0",
		"20241312-140500-001",
	}
	for _, input := range tests {
		_, _, err := ParseMessageID(input)
		assert.Error(t, err, "ParseMessageID(%q) should fail", input)
	}
}

func TestMessageIDRoundTrip(t *testing.T) {
	at := time.Date(2025, 1, 3, 8, 0, 1, 0, time.UTC)
	received, seq, err := ParseMessageID(FormatMessageID(at, 15))
	require.NoError(t, err)
	assert.Equal(t, at, received)
	assert.Equal(t, 15, seq)
}
