// Package normalize converts raw strings captured from a message template into
// typed transaction fields.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrMalformedAmount is returned when amount text is not a decimal number.
	ErrMalformedAmount = errors.New("malformed amount")
	// ErrMalformedDateTime is returned when date-time text does not follow the template layout.
	ErrMalformedDateTime = errors.New("malformed date-time")
)

// Amount parses a decimal amount using '.' as the fractional separator.
// Negative values are accepted as-is.
func Amount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" || strings.ContainsAny(s, ",eE") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedAmount, text)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrMalformedAmount, text, err)
	}
	return d, nil
}

// DateTime parses text with the exact Go layout and returns the instant in UTC.
//
// When century is non-zero the parsed year is rebased to century + (year % 100),
// so a two-digit "99" under century 2000 yields 2099 instead of Go's 1999.
// A nil loc means UTC.
func DateTime(text, layout string, century int, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(layout, strings.TrimSpace(text), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedDateTime, text, err)
	}
	if century != 0 {
		rebased := time.Date(century+t.Year()%100, t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
		// 29 February does not exist in every century.
		if rebased.Month() != t.Month() || rebased.Day() != t.Day() {
			return time.Time{}, fmt.Errorf("%w: %q: day does not exist in year %d",
				ErrMalformedDateTime, text, century+t.Year()%100)
		}
		t = rebased
	}
	return t.UTC(), nil
}

// Consumer trims whitespace around the merchant text. An empty result is valid.
func Consumer(text string) string {
	return strings.TrimSpace(text)
}
