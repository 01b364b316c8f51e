// Package id derives stable message ids for sources that do not carry their own.
package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const stampLayout = "20060102-150405"

// FormatMessageID returns an id like "20240312-140500-007" from the message's
// receive time (in UTC) and its 1-based position in the source.
func FormatMessageID(received time.Time, seq int) string {
	return fmt.Sprintf("%s-%03d", received.UTC().Format(stampLayout), seq)
}

// ParseMessageID parses "20240312-140500-007" into its time and sequence.
func ParseMessageID(id string) (received time.Time, seq int, err error) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return time.Time{}, 0, fmt.Errorf("invalid message ID format: %q", id)
	}

	received, err = time.Parse(stampLayout, id[:i])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid timestamp in message ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(id[i+1:])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid sequence in message ID %q: %w", id, err)
	}
	if seq < 1 {
		return time.Time{}, 0, fmt.Errorf("invalid sequence in message ID %q: must be positive", id)
	}

	return received, seq, nil
}
