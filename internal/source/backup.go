// Package source provides message sources for the extraction pipeline.
package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/cleared-dev/smstx/internal/id"
	"github.com/cleared-dev/smstx/internal/model"
)

// inboxType is the SMS Backup & Restore type of a received message.
const inboxType = "1"

type backupSMS struct {
	ID      string `xml:"_id,attr"`
	Address string `xml:"address,attr"`
	Body    string `xml:"body,attr"`
	Date    string `xml:"date,attr"` // epoch milliseconds
	Type    string `xml:"type,attr"`
}

type backupFile struct {
	XMLName xml.Name    `xml:"smses"`
	SMS     []backupSMS `xml:"sms"`
}

// Backup reads messages from an SMS Backup & Restore XML file.
// The file is re-read on every query.
type Backup struct {
	path string
}

// NewBackup returns a source over the backup file at path.
func NewBackup(path string) *Backup {
	return &Backup{path: path}
}

// Query returns inbox messages received at or after from, in file order.
func (b *Backup) Query(ctx context.Context, from time.Time) ([]model.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(b.path)
	if err != nil {
		return nil, fmt.Errorf("opening sms backup: %w", err)
	}
	defer f.Close()

	msgs, err := ReadBackup(f)
	if err != nil {
		return nil, fmt.Errorf("reading sms backup %s: %w", b.path, err)
	}
	return Since(msgs, from), nil
}

// ReadBackup decodes all inbox messages from a backup document.
// Messages without an _id get one derived from their receive time and position.
func ReadBackup(r io.Reader) ([]model.Message, error) {
	var doc backupFile
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding XML: %w", err)
	}

	var msgs []model.Message
	for i, s := range doc.SMS {
		if s.Type != "" && s.Type != inboxType {
			continue
		}
		ms, err := strconv.ParseInt(s.Date, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("sms %d: parsing date %q: %w", i+1, s.Date, err)
		}
		received := time.UnixMilli(ms).UTC()

		msgID := s.ID
		if msgID == "" {
			msgID = id.FormatMessageID(received, i+1)
		}
		msgs = append(msgs, model.Message{
			ID:     msgID,
			Body:   s.Body,
			Sender: s.Address,
			Date:   received,
		})
	}
	return msgs, nil
}

// Since keeps messages received at or after from, preserving order.
func Since(msgs []model.Message, from time.Time) []model.Message {
	var out []model.Message
	for _, m := range msgs {
		if !m.Date.Before(from) {
			out = append(out, m)
		}
	}
	return out
}
