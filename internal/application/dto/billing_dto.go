package dto

import "github.com/shopspring/decimal"

// SaveCustomerRequest body for POST /api/customers and PUT /api/customers/:id.
type SaveCustomerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	Address   string `json:"address,omitempty"`
	GSTNo     string `json:"gst_no,omitempty"`
	PANNo     string `json:"pan_no,omitempty"`
	State     string `json:"state,omitempty"`
	StateCode string `json:"state_code,omitempty"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	Address   string `json:"address,omitempty"`
	GSTNo     string `json:"gst_no,omitempty"`
	PANNo     string `json:"pan_no,omitempty"`
	State     string `json:"state,omitempty"`
	StateCode string `json:"state_code,omitempty"`
}

// CustomerListResponse page of customers.
type CustomerListResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Page      PageResponse        `json:"page"`
}

// SaveInvoiceRequest body for POST /api/invoices and PUT /api/invoices/:id.
// The customer may be referenced by ID or by exact name; invoice_no is
// optional on create and generated when blank. Dates use YYYY-MM-DD;
// unparseable dates degrade to absent rather than failing the request.
type SaveInvoiceRequest struct {
	InvoiceNo         string               `json:"invoice_no,omitempty"`
	InvoiceDate       string               `json:"invoice_date,omitempty"`
	CustomerID        int64                `json:"customer_id,omitempty"`
	CustomerName      string               `json:"customer_name,omitempty"`
	FromDate          string               `json:"from_date,omitempty"`
	ToDate            string               `json:"to_date,omitempty"`
	FuelPercentage    decimal.Decimal      `json:"fuel_percentage"`
	GSTType           string               `json:"gst_type"`
	GSTRate           decimal.Decimal      `json:"gst_rate"`
	AdditionalCharges decimal.Decimal      `json:"additional_charges"`
	Remarks           string               `json:"remarks,omitempty"`
	Items             []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest one AWB line in a save request (and the row shape
// produced by the spreadsheet import).
type InvoiceItemRequest struct {
	Date        string          `json:"date,omitempty"` // YYYY-MM-DD, blank = no service date
	AWBNo       string          `json:"awb_no"`
	Destination string          `json:"destination"`
	Weight      string          `json:"weight"`
	Amount      decimal.Decimal `json:"amount"`
}

// UpdatePaymentStatusRequest body for PATCH /api/invoices/:id/status.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"` // Paid | Unpaid
}

// InvoiceTotals computed breakdown attached to invoice responses.
type InvoiceTotals struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	FuelCharge        decimal.Decimal `json:"fuel_charge"`
	AdditionalCharges decimal.Decimal `json:"additional_charges"`
	TaxBase           decimal.Decimal `json:"tax_base"`
	IGST              decimal.Decimal `json:"igst"`
	CGST              decimal.Decimal `json:"cgst"`
	SGST              decimal.Decimal `json:"sgst"`
	IGSTRate          decimal.Decimal `json:"igst_rate"`
	CGSTRate          decimal.Decimal `json:"cgst_rate"`
	SGSTRate          decimal.Decimal `json:"sgst_rate"`
	BillAmount        int64           `json:"bill_amount"`
}

// InvoiceItemResponse one AWB line in responses.
type InvoiceItemResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date,omitempty"`
	AWBNo       string          `json:"awb_no"`
	Destination string          `json:"destination"`
	Weight      string          `json:"weight"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse invoice with items and computed totals.
type InvoiceResponse struct {
	ID                int64                 `json:"id"`
	InvoiceNo         string                `json:"invoice_no"`
	InvoiceDate       string                `json:"invoice_date"`
	CustomerID        int64                 `json:"customer_id"`
	CustomerName      string                `json:"customer_name"`
	FromDate          string                `json:"from_date,omitempty"`
	ToDate            string                `json:"to_date,omitempty"`
	FuelPercentage    decimal.Decimal       `json:"fuel_percentage"`
	GSTType           string                `json:"gst_type"`
	GSTRate           decimal.Decimal       `json:"gst_rate"`
	AdditionalCharges decimal.Decimal       `json:"additional_charges"`
	Remarks           string                `json:"remarks,omitempty"`
	PaymentStatus     string                `json:"payment_status"`
	Items             []InvoiceItemResponse `json:"items"`
	Totals            InvoiceTotals         `json:"totals"`
}

// InvoiceListResponse page of invoices (each with totals, as shown on the
// invoice register screen).
type InvoiceListResponse struct {
	Invoices []*InvoiceResponse `json:"invoices"`
	Page     PageResponse       `json:"page"`
}

// ImportItemsResponse parsed rows from an uploaded item sheet. Rows the
// parser had to degrade (bad date, non-numeric amount) are still returned,
// with the affected fields zeroed/blanked.
type ImportItemsResponse struct {
	Items []InvoiceItemRequest `json:"items"`
}
