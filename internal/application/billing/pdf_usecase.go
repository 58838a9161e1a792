package billing

import (
	"context"
	"fmt"

	"github.com/swiftcourier/billing-api/internal/domain"
	"github.com/swiftcourier/billing-api/internal/domain/invoicing"
	"github.com/swiftcourier/billing-api/internal/domain/repository"
)

// PDFUseCase renders the printable bill for a stored invoice.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF loads the invoice with its customer and items,
// recomputes the totals and renders the PDF.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound when the invoice does not exist.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID int64) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load customer: %w", err)
	}
	if customer == nil {
		// FK guarantees this cannot happen for stored data; surface it
		// as not-found rather than a nil dereference if it ever does.
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.invoiceRepo.ItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load items: %w", err)
	}

	totals := invoicing.Calculate(items, inv)
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, customer, items, totals)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render: %w", err)
	}
	return pdfBytes, fmt.Sprintf("invoice_%s.pdf", inv.InvoiceNo), nil
}
