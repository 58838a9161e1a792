package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/swiftcourier/billing-api/internal/domain"
	"github.com/swiftcourier/billing-api/internal/domain/entity"
	"github.com/swiftcourier/billing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// invoiceColumns joined with the customer name; keep in sync with
// scanInvoice.
const invoiceColumns = `
	i.id, i.invoice_no, i.invoice_date, i.customer_id, c.name,
	i.from_date, i.to_date, i.fuel_percentage, i.gst_type, i.gst_rate,
	i.additional_charges, i.remarks, i.payment_status, i.created_at`

const invoiceSearchClause = `($1 = '' OR i.invoice_no ILIKE '%' || $1 || '%' OR c.name ILIKE '%' || $1 || '%')`

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header and fills in the generated ID. A taken
// invoice number surfaces as domain.ErrDuplicate so the use case can retry
// a generated number or report the caller's conflict.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_no, invoice_date, customer_id, from_date, to_date,
			fuel_percentage, gst_type, gst_rate, additional_charges, remarks, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		invoice.InvoiceNo, invoice.InvoiceDate, invoice.CustomerID,
		invoice.FromDate, invoice.ToDate,
		invoice.FuelPercentage, invoice.GSTType, invoice.GSTRate,
		invoice.AdditionalCharges, invoice.Remarks, invoice.PaymentStatus,
		invoice.CreatedAt,
	).Scan(&invoice.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persists one AWB line and fills in its generated ID.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (invoice_id, date, awb_no, destination, weight, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.InvoiceID, item.Date, item.AWBNo, item.Destination, item.Weight, item.Amount,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// Update rewrites the invoice header.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET invoice_no = $2, invoice_date = $3, customer_id = $4,
		    from_date = $5, to_date = $6, fuel_percentage = $7,
		    gst_type = $8, gst_rate = $9, additional_charges = $10,
		    remarks = $11, payment_status = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNo, invoice.InvoiceDate, invoice.CustomerID,
		invoice.FromDate, invoice.ToDate, invoice.FuelPercentage,
		invoice.GSTType, invoice.GSTRate, invoice.AdditionalCharges,
		invoice.Remarks, invoice.PaymentStatus,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// UpdatePaymentStatus flips the payment flag only.
func (r *InvoiceRepo) UpdatePaymentStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET payment_status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return nil
}

// Delete removes the invoice; invoice_items cascade via FK.
func (r *InvoiceRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// DeleteItems clears all items of an invoice (edit replaces the item set).
func (r *InvoiceRepo) DeleteItems(invoiceID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return nil
}

// GetByID fetches one invoice with the customer name joined in.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices i JOIN customers c ON c.id = i.customer_id
		WHERE i.id = $1`
	var inv entity.Invoice
	if err := scanInvoice(r.q.QueryRow(context.Background(), query, id), &inv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetLast returns the newest invoice (highest ID) or nil when the table is
// empty. Used for invoice number generation.
func (r *InvoiceRepo) GetLast() (*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices i JOIN customers c ON c.id = i.customer_id
		ORDER BY i.id DESC LIMIT 1`
	var inv entity.Invoice
	if err := scanInvoice(r.q.QueryRow(context.Background(), query), &inv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last invoice: %w", err)
	}
	return &inv, nil
}

// List pages invoices newest first, searching invoice number and customer
// name.
func (r *InvoiceRepo) List(q string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices i JOIN customers c ON c.id = i.customer_id
		WHERE ` + invoiceSearchClause + `
		ORDER BY i.id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Count counts invoices matching the search term.
func (r *InvoiceRepo) Count(q string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM invoices i JOIN customers c ON c.id = i.customer_id
		WHERE ` + invoiceSearchClause
	var n int
	if err := r.q.QueryRow(context.Background(), query, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// ItemsByInvoiceID returns the invoice's items in insertion order.
func (r *InvoiceRepo) ItemsByInvoiceID(invoiceID int64) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, date, awb_no, destination, weight, amount
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var item entity.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Date,
			&item.AWBNo, &item.Destination, &item.Weight, &item.Amount); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// CountByCustomer counts invoices referencing a customer.
func (r *InvoiceRepo) CountByCustomer(customerID int64) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM invoices WHERE customer_id = $1`, customerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count invoices by customer: %w", err)
	}
	return n, nil
}

func scanInvoice(row pgx.Row, inv *entity.Invoice) error {
	return row.Scan(
		&inv.ID, &inv.InvoiceNo, &inv.InvoiceDate, &inv.CustomerID, &inv.CustomerName,
		&inv.FromDate, &inv.ToDate, &inv.FuelPercentage, &inv.GSTType, &inv.GSTRate,
		&inv.AdditionalCharges, &inv.Remarks, &inv.PaymentStatus, &inv.CreatedAt,
	)
}
