package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Message is one raw notification delivered by a message source.
type Message struct {
	ID     string
	Body   string
	Sender string
	Date   time.Time
}

// Transaction is a financial event parsed out of a bank SMS.
// Values are only built by the parser once every field has been normalized.
type Transaction struct {
	ID             string // source message id
	CardLastDigits string
	Date           time.Time // UTC
	Amount         decimal.Decimal
	Consumer       string // merchant or payee, may be empty
}

// HasConsumer reports whether the message named a merchant or payee.
func (t Transaction) HasConsumer() bool {
	return t.Consumer != ""
}
