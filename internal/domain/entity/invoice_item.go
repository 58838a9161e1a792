package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is one consignment line on an invoice. Items are created and
// destroyed only through invoice create/edit; they are never addressed on
// their own.
type InvoiceItem struct {
	ID          int64
	InvoiceID   int64
	Date        *time.Time // service date; nil when the source row had none
	AWBNo       string     // air waybill / tracking reference
	Destination string
	Weight      string // kept as entered ("2.5 kg", "500 g", ...)
	Amount      decimal.Decimal
}
