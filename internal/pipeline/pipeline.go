// Package pipeline runs the SMS extraction pass: read messages from a source,
// parse each one, keep the transactions.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cleared-dev/smstx/internal/logging"
	"github.com/cleared-dev/smstx/internal/model"
	"github.com/cleared-dev/smstx/internal/parser"
)

// Source supplies raw messages received at or after from. Implementations
// own the filter; the pipeline does not re-check dates.
type Source interface {
	Query(ctx context.Context, from time.Time) ([]model.Message, error)
}

// Stats counts what happened to each message of a run.
type Stats struct {
	Seen      int
	Parsed    int
	Unmatched int
	Rejected  int
}

// Pipeline extracts transactions from a message source.
type Pipeline struct {
	source Source
	parser *parser.Parser
	log    *log.Logger
}

// New creates a Pipeline. A nil logger discards output.
func New(src Source, p *parser.Parser, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Pipeline{source: src, parser: p, log: logger.WithPrefix("pipeline")}
}

// Extract returns the transactions found in messages received at or after
// from, in source order. A source failure is returned as an error so callers
// can tell it apart from an inbox with no transactions.
func (p *Pipeline) Extract(ctx context.Context, from time.Time) ([]model.Transaction, error) {
	txns, _, err := p.ExtractWithStats(ctx, from)
	return txns, err
}

// ExtractWithStats is Extract plus per-outcome counts.
func (p *Pipeline) ExtractWithStats(ctx context.Context, from time.Time) ([]model.Transaction, Stats, error) {
	var stats Stats

	msgs, err := p.source.Query(ctx, from)
	if err != nil {
		return nil, stats, fmt.Errorf("querying messages: %w", err)
	}

	txns := make([]model.Transaction, 0, len(msgs))
	for _, m := range msgs {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		stats.Seen++

		txn, outcome := p.parser.Classify(m.ID, m.Body, m.Sender)
		switch outcome {
		case parser.Parsed:
			stats.Parsed++
			txns = append(txns, txn)
		case parser.Unmatched:
			stats.Unmatched++
		case parser.Rejected:
			stats.Rejected++
		}
	}

	p.log.Info("extraction finished",
		"from", from.Format(time.RFC3339),
		"seen", stats.Seen,
		"parsed", stats.Parsed,
		"unmatched", stats.Unmatched,
		"rejected", stats.Rejected,
	)
	return txns, stats, nil
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
