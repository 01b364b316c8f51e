// Package template holds the bank SMS templates and the registry that matches
// incoming messages against them.
package template

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// NumCaptures is the number of capture groups every template pattern declares:
// card digits, date-time text, amount text and consumer text, in that order.
const NumCaptures = 4

const (
	capCard = iota
	capDateTime
	capAmount
	capConsumer
)

// Template describes one bank's notification format.
type Template struct {
	Name       string
	Sender     string // compared exactly, case-sensitive
	Pattern    *regexp.Regexp
	DateLayout string         // Go time layout of the date-time capture
	Century    int            // base for two-digit years, 0 when the layout has a full year
	Location   *time.Location // zone the bank writes times in, nil means UTC
}

// Definition is the serializable form of a Template, as it appears in config.
type Definition struct {
	Name       string `yaml:"name"`
	Sender     string `yaml:"sender"`
	Pattern    string `yaml:"pattern"`
	DateLayout string `yaml:"date_layout"`
	Century    int    `yaml:"century,omitempty"`
	Timezone   string `yaml:"timezone,omitempty"`
}

// New compiles pattern and checks it declares exactly NumCaptures groups.
func New(name, sender, pattern, dateLayout string, century int, loc *time.Location) (*Template, error) {
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if dateLayout == "" {
		return nil, fmt.Errorf("template %s: date layout is required", name)
	}
	if century != 0 {
		if century < 0 || century%100 != 0 {
			return nil, fmt.Errorf("template %s: century %d is not a multiple of 100", name, century)
		}
		if strings.Contains(dateLayout, "2006") || !strings.Contains(dateLayout, "06") {
			return nil, fmt.Errorf("template %s: century applies only to a two-digit year layout, got %q", name, dateLayout)
		}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("template %s: compiling pattern: %w", name, err)
	}
	if n := re.NumSubexp(); n != NumCaptures {
		return nil, fmt.Errorf("template %s: pattern has %d capture groups, want %d", name, n, NumCaptures)
	}
	return &Template{
		Name:       name,
		Sender:     sender,
		Pattern:    re,
		DateLayout: dateLayout,
		Century:    century,
		Location:   loc,
	}, nil
}

// FromDefinition builds a Template from its config form.
func FromDefinition(def Definition) (*Template, error) {
	loc := time.UTC
	if def.Timezone != "" {
		l, err := time.LoadLocation(def.Timezone)
		if err != nil {
			return nil, fmt.Errorf("template %s: loading timezone %q: %w", def.Name, def.Timezone, err)
		}
		loc = l
	}
	return New(def.Name, def.Sender, def.Pattern, def.DateLayout, def.Century, loc)
}

// Captures holds the raw strings a template extracted from a message body.
type Captures struct {
	CardDigits string
	DateTime   string
	Amount     string
	Consumer   string
}

// find runs the pattern anywhere in body.
func (t *Template) find(body string) (Captures, bool) {
	m := t.Pattern.FindStringSubmatch(body)
	if m == nil {
		return Captures{}, false
	}
	m = m[1:]
	return Captures{
		CardDigits: m[capCard],
		DateTime:   m[capDateTime],
		Amount:     m[capAmount],
		Consumer:   m[capConsumer],
	}, true
}
