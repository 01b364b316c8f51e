package source

import (
	"context"
	"time"

	"github.com/cleared-dev/smstx/internal/model"
)

// Memory is a source over a fixed slice of messages.
type Memory struct {
	msgs []model.Message
}

// NewMemory returns a source serving msgs in the given order.
func NewMemory(msgs ...model.Message) *Memory {
	return &Memory{msgs: msgs}
}

// Query returns the messages received at or after from.
func (m *Memory) Query(ctx context.Context, from time.Time) ([]model.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Since(m.msgs, from), nil
}
