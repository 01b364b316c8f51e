package parser

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/smstx/internal/logging"
	"github.com/cleared-dev/smstx/internal/template"
)

func TestParse_Priorbank(t *testing.T) {
	p := New(template.DefaultRegistry())
	txn, ok := p.Parse("1234", "Karta 1234***3456 12-03-24 14:05:00. Oplata 123.45 BYN. BLR ATM PBT.", "Priorbank")
	require.True(t, ok)

	assert.Equal(t, "1234", txn.ID)
	assert.Equal(t, "3456", txn.CardLastDigits)
	assert.Equal(t, time.Date(2024, time.March, 12, 14, 5, 0, 0, time.UTC), txn.Date)
	assert.Equal(t, "123.45", txn.Amount.StringFixed(2))
	assert.Equal(t, "ATM PBT", txn.Consumer)
}

func TestParse_Unrecognized(t *testing.T) {
	p := New(template.DefaultRegistry())
	tests := []struct {
		name, body, sender string
	}{
		{"personal text", "See you at 7?", "+375291112233"},
		{"wrong sender", "Karta 1234***3456 12-03-24 14:05:00. Oplata 123.45 BYN. BLR ATM PBT.", "Belarusbank"},
		{"otp from bank", "Kod 123456 dlya vhoda v Internet-bank", "Priorbank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, outcome := p.Classify("x", tt.body, tt.sender)
			assert.Equal(t, Unmatched, outcome)
			_, ok := p.Parse("x", tt.body, tt.sender)
			assert.False(t, ok)
		})
	}
}

func TestParse_BadDateRejectsMessage(t *testing.T) {
	p := New(template.DefaultRegistry())
	// Day 32 matches the pattern's digit shape but is not a date.
	_, outcome := p.Classify("7", "Karta 1234***3456 32-03-24 14:05:00. Oplata 10.00 BYN. BLR SHOP.", "Priorbank")
	assert.Equal(t, Rejected, outcome)
}

func TestParse_BadAmount(t *testing.T) {
	body := "Karta 1234***3456 12-03-24 14:05:00. Oplata 1.2.3 BYN. BLR SHOP."

	p := New(template.DefaultRegistry())
	_, outcome := p.Classify("8", body, "Priorbank")
	assert.Equal(t, Rejected, outcome, "reject is the default policy")

	var buf bytes.Buffer
	legacy := New(template.DefaultRegistry(),
		WithAmountPolicy(AmountZero),
		WithLogger(logging.New(&buf, log.WarnLevel)))
	txn, ok := legacy.Parse("8", body, "Priorbank")
	require.True(t, ok)
	assert.True(t, txn.Amount.IsZero())
	assert.Equal(t, "SHOP", txn.Consumer)
	assert.Contains(t, buf.String(), "amount defaulted to zero")
}

func TestParse_EmptyConsumer(t *testing.T) {
	tpl, err := template.New("terse", "Bank", `\*(\d{4}) (\S+ \S+) -([\d.]+)([^.]*)`, "02.01.2006 15:04", 0, nil)
	require.NoError(t, err)
	reg := template.NewRegistry()
	reg.Register(tpl)

	txn, ok := New(reg).Parse("9", "*9876 01.02.2024 10:00 -5.50", "Bank")
	require.True(t, ok)
	assert.Equal(t, "", txn.Consumer)
	assert.False(t, txn.HasConsumer())
	assert.Equal(t, "5.50", txn.Amount.StringFixed(2))
}

func TestParse_LogsSkipsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	p := New(template.DefaultRegistry(), WithLogger(logging.New(&buf, log.DebugLevel)))
	_, ok := p.Parse("42", "hello", "Mom")
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "no template matched")
	assert.Contains(t, buf.String(), "42")
}

func TestParseAmountPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want AmountPolicy
	}{
		{"", AmountReject},
		{"reject", AmountReject},
		{"zero", AmountZero},
	}
	for _, tt := range tests {
		got, err := ParseAmountPolicy(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "ParseAmountPolicy(%q)", tt.in)
	}

	_, err := ParseAmountPolicy("round")
	assert.Error(t, err)
}
