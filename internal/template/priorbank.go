package template

import (
	"regexp"
	"time"
)

const (
	priorbankName   = "priorbank"
	priorbankSender = "Priorbank"
	// Karta 1234***3456 12-03-24 14:05:00. Oplata 123.45 BYN. BLR ATM PBT.
	priorbankPattern    = `Karta\s+\d+\*{3}(\d+)\s+(\d{2}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2})\. Oplata\s+([\d.]+)\s+BYN\. BLR\s+([^.]+)\.`
	priorbankDateLayout = "02-01-06 15:04:05"
)

// Priorbank returns the template for Priorbank card payment alerts.
func Priorbank() *Template {
	return &Template{
		Name:       priorbankName,
		Sender:     priorbankSender,
		Pattern:    regexp.MustCompile(priorbankPattern),
		DateLayout: priorbankDateLayout,
		Century:    2000,
		Location:   time.UTC,
	}
}
