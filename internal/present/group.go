// Package present arranges transactions for display: grouped under day
// separators in the order days first appear.
package present

import (
	"time"

	"github.com/goodsign/monday"

	"github.com/cleared-dev/smstx/internal/model"
)

const labelLayout = "2 January"

// Grouper builds display lists using one locale and time zone.
type Grouper struct {
	locale monday.Locale
	loc    *time.Location
}

// NewGrouper creates a Grouper. A nil loc means UTC.
func NewGrouper(locale monday.Locale, loc *time.Location) *Grouper {
	if loc == nil {
		loc = time.UTC
	}
	return &Grouper{locale: locale, loc: loc}
}

// Label returns the day label for t, e.g. "12 March".
func (g *Grouper) Label(t time.Time) string {
	return monday.Format(t.In(g.loc), labelLayout, g.locale)
}

// Group returns one DateSeparator per distinct day label followed by that
// day's entries. Days appear in the order they are first seen in txns and
// entries keep their input order; nothing is sorted by date.
func (g *Grouper) Group(txns []model.Transaction) []model.DisplayItem {
	var order []string
	byLabel := make(map[string][]model.Transaction)
	for _, txn := range txns {
		label := g.Label(txn.Date)
		if _, seen := byLabel[label]; !seen {
			order = append(order, label)
		}
		byLabel[label] = append(byLabel[label], txn)
	}

	items := make([]model.DisplayItem, 0, len(order)+len(txns))
	for _, label := range order {
		items = append(items, model.DateSeparator{Label: label})
		for _, txn := range byLabel[label] {
			items = append(items, model.TransactionEntry{Transaction: txn})
		}
	}
	return items
}
