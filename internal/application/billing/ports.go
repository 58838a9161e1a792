package billing

import (
	"context"
	"io"

	"github.com/swiftcourier/billing-api/internal/application/dto"
	"github.com/swiftcourier/billing-api/internal/domain/entity"
	"github.com/swiftcourier/billing-api/internal/domain/invoicing"
	"github.com/swiftcourier/billing-api/internal/domain/repository"
)

// BillingTxRunner runs fn with repositories bound to a single database
// transaction; fn returning an error rolls everything back.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator renders the printable bill for an invoice.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		customer *entity.Customer,
		items []*entity.InvoiceItem,
		totals invoicing.Totals,
	) ([]byte, error)
}

// ItemSheetCodec reads uploaded item workbooks and produces the blank
// import template (Date | AWB No | Destination | Weight | Amount).
type ItemSheetCodec interface {
	ParseItems(r io.Reader) ([]dto.InvoiceItemRequest, error)
	Template() ([]byte, error)
}
