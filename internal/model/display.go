package model

// DisplayItem is one row of the grouped transaction list: either a day
// separator or a transaction entry.
type DisplayItem interface {
	// Key is a stable identity for list diffing.
	Key() string
	isDisplayItem()
}

// DateSeparator heads a run of transactions sharing a day label.
type DateSeparator struct {
	Label string
}

// Key returns the day label.
func (d DateSeparator) Key() string { return d.Label }

func (DateSeparator) isDisplayItem() {}

// TransactionEntry wraps a transaction for display.
type TransactionEntry struct {
	Transaction
}

// Key returns the transaction id.
func (e TransactionEntry) Key() string { return e.ID }

func (TransactionEntry) isDisplayItem() {}
