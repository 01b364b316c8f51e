// Package parser turns one SMS into a transaction using the template registry
// and the field normalizers.
package parser

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/smstx/internal/logging"
	"github.com/cleared-dev/smstx/internal/model"
	"github.com/cleared-dev/smstx/internal/normalize"
	"github.com/cleared-dev/smstx/internal/template"
)

// AmountPolicy decides what happens to a matched message whose amount text
// cannot be parsed.
type AmountPolicy string

const (
	// AmountReject drops the message.
	AmountReject AmountPolicy = "reject"
	// AmountZero keeps the message with a zero amount.
	AmountZero AmountPolicy = "zero"
)

// ParseAmountPolicy validates a policy name. Empty means AmountReject.
func ParseAmountPolicy(s string) (AmountPolicy, error) {
	switch AmountPolicy(s) {
	case "", AmountReject:
		return AmountReject, nil
	case AmountZero:
		return AmountZero, nil
	default:
		return "", fmt.Errorf("unknown amount policy %q", s)
	}
}

// Outcome classifies what Parse did with a message.
type Outcome int

const (
	Parsed Outcome = iota
	Unmatched
	Rejected
)

// Parser converts messages into transactions.
type Parser struct {
	registry *template.Registry
	policy   AmountPolicy
	log      *log.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithAmountPolicy sets the malformed-amount policy.
func WithAmountPolicy(p AmountPolicy) Option {
	return func(ps *Parser) { ps.policy = p }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(ps *Parser) { ps.log = l.WithPrefix("parser") }
}

// New creates a Parser over reg.
func New(reg *template.Registry, opts ...Option) *Parser {
	p := &Parser{
		registry: reg,
		policy:   AmountReject,
		log:      logging.Discard(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse returns the transaction carried by a message, or false when the
// message is not a recognized transaction alert or one of its fields is
// malformed.
func (p *Parser) Parse(messageID, body, sender string) (model.Transaction, bool) {
	txn, outcome := p.Classify(messageID, body, sender)
	return txn, outcome == Parsed
}

// Classify is Parse with the reason a message was skipped.
func (p *Parser) Classify(messageID, body, sender string) (model.Transaction, Outcome) {
	m, ok := p.registry.Match(sender, body)
	if !ok {
		p.log.Debug("no template matched", "id", messageID, "sender", sender)
		return model.Transaction{}, Unmatched
	}
	tpl := m.Template

	date, err := normalize.DateTime(m.Captures.DateTime, tpl.DateLayout, tpl.Century, tpl.Location)
	if err != nil {
		p.log.Debug("rejecting message", "id", messageID, "template", tpl.Name, "err", err)
		return model.Transaction{}, Rejected
	}

	amount, err := normalize.Amount(m.Captures.Amount)
	if err != nil {
		if p.policy != AmountZero {
			p.log.Debug("rejecting message", "id", messageID, "template", tpl.Name, "err", err)
			return model.Transaction{}, Rejected
		}
		p.log.Warn("amount defaulted to zero", "id", messageID, "template", tpl.Name, "err", err)
		amount = decimal.Zero
	}

	return model.Transaction{
		ID:             messageID,
		CardLastDigits: m.Captures.CardDigits,
		Date:           date,
		Amount:         amount,
		Consumer:       normalize.Consumer(m.Captures.Consumer),
	}, Parsed
}
