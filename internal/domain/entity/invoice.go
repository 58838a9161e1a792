package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GST regimes. IGST applies to inter-state supplies (one consolidated tax at
// the full rate); CGST to intra-state supplies (the rate is split in half
// between the central and state buckets); NONE means GST is not applicable.
const (
	GSTTypeIGST = "IGST"
	GSTTypeCGST = "CGST"
	GSTTypeNone = "NONE"
)

// Payment states for an invoice.
const (
	PaymentStatusUnpaid = "Unpaid"
	PaymentStatusPaid   = "Paid"
)

// Invoice is the header of a courier bill: one customer, a billing period,
// the tax configuration and a set of AWB line items persisted separately.
type Invoice struct {
	ID                int64
	InvoiceNo         string // unique, normally INV-#### (see invoicing.NextInvoiceNo)
	InvoiceDate       time.Time
	CustomerID        int64
	CustomerName      string // filled by joined list/detail queries, not a column
	FromDate          *time.Time
	ToDate            *time.Time
	FuelPercentage    decimal.Decimal
	GSTType           string // GSTTypeIGST, GSTTypeCGST or GSTTypeNone
	GSTRate           decimal.Decimal
	AdditionalCharges decimal.Decimal
	Remarks           string
	PaymentStatus     string // PaymentStatusUnpaid on creation
	CreatedAt         time.Time
}
