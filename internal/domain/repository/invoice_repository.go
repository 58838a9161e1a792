package repository

import "github.com/swiftcourier/billing-api/internal/domain/entity"

// InvoiceRepository is the persistence port for Invoice and its items.
// Items are only ever written through their invoice.
type InvoiceRepository interface {
	// Create persists the header and fills in its generated ID. Returns
	// domain.ErrDuplicate when the invoice number is already taken.
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	// Update rewrites the header fields. Returns domain.ErrDuplicate on an
	// invoice number collision.
	Update(invoice *entity.Invoice) error
	UpdatePaymentStatus(id int64, status string) error
	// Delete removes the invoice; items go with it (FK cascade).
	Delete(id int64) error
	// DeleteItems clears all items of an invoice (used by edit, which
	// replaces the item set wholesale).
	DeleteItems(invoiceID int64) error
	GetByID(id int64) (*entity.Invoice, error)
	// GetLast returns the most recently created invoice (highest ID), or
	// nil when none exist. Feeds invoice number generation.
	GetLast() (*entity.Invoice, error)
	// List returns invoices matching the search term against invoice
	// number or customer name (empty term matches all), newest first,
	// with CustomerName filled from the join.
	List(q string, limit, offset int) ([]*entity.Invoice, error)
	Count(q string) (int, error)
	// ItemsByInvoiceID returns the invoice's items in insertion order.
	ItemsByInvoiceID(invoiceID int64) ([]*entity.InvoiceItem, error)
	// CountByCustomer reports how many invoices reference the customer
	// (customer deletion is refused while any exist).
	CountByCustomer(customerID int64) (int, error)
}
