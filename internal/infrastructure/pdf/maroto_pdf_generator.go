// Package pdf renders the printable courier bill.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Business name + GSTIN  │  TAX INVOICE no + date     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BUSINESS: address / phone / email / PAN / state             │
//	│  BILL TO: customer + GSTIN/PAN + state                       │
//	│  Billing period + payment status                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Date | AWB No | Destination | Weight | Amount        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: subtotal / fuel / additional / GST split / payable  │
//	│  Amount in words + remarks                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appbilling "github.com/swiftcourier/billing-api/internal/application/billing"
	"github.com/swiftcourier/billing-api/internal/domain/entity"
	"github.com/swiftcourier/billing-api/internal/domain/invoicing"
	"github.com/swiftcourier/billing-api/pkg/config"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// inr groups digits the Indian way (1,23,456.00).
var inr = message.NewPrinter(language.MustParse("en-IN"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implements billing.InvoicePDFGenerator using Maroto v2.
// The business letterhead is injected at construction, not read from any
// process-wide state.
type MarotoPDFGenerator struct {
	business config.BusinessConfig
}

// NewMarotoPDFGenerator builds the generator for one business profile.
func NewMarotoPDFGenerator(business config.BusinessConfig) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{business: business}
}

// GenerateInvoicePDF renders the bill and returns its bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
	items []*entity.InvoiceItem,
	totals invoicing.Totals,
) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice "+invoice.InvoiceNo, true).
		WithAuthor(g.business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.businessRow())
	m.AddRows(billToRow(customer))
	m.AddRows(periodRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(invoice, totals) {
		m.AddRows(r)
	}
	m.AddRows(wordsRow(totals.BillAmount))
	if invoice.Remarks != "" {
		m.AddRows(remarksRow(invoice.Remarks))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: business name + GSTIN (left), invoice number + date (right).
func (g *MarotoPDFGenerator) headerRow(invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GSTIN: "+nonEmpty(g.business.GSTIN, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+invoice.InvoiceDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// businessRow: letterhead contact block.
func (g *MarotoPDFGenerator) businessRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s   |   Tel: %s   |   Email: %s",
				nonEmpty(g.business.Address, "—"),
				nonEmpty(g.business.Phone, "—"),
				nonEmpty(g.business.Email, "—"),
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
			text.New(fmt.Sprintf("PAN: %s   |   State: %s (%s)",
				nonEmpty(g.business.PAN, "—"),
				nonEmpty(g.business.State, "—"),
				nonEmpty(g.business.StateCode, "—"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// billToRow: customer block with tax identifiers.
func billToRow(customer *entity.Customer) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(nonEmpty(customer.Address, "—"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
			text.New(fmt.Sprintf("GSTIN: %s   |   PAN: %s   |   State: %s (%s)",
				nonEmpty(customer.GSTNo, "—"),
				nonEmpty(customer.PANNo, "—"),
				nonEmpty(customer.State, "—"),
				nonEmpty(customer.StateCode, "—"),
			), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

// periodRow: billing period (when present) and payment status.
func periodRow(invoice *entity.Invoice) core.Row {
	period := "—"
	if invoice.FromDate != nil && invoice.ToDate != nil {
		period = invoice.FromDate.Format("02/01/2006") + " to " + invoice.ToDate.Format("02/01/2006")
	}
	return row.New(7).Add(
		col.New(8).Add(
			text.New("Billing period: "+period, props.Text{Size: 8, Top: 1, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(invoice.PaymentStatus, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
				Color: colorPrimary,
			}),
		),
	)
}

// tableHeaderRow: item table heading.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("AWB No", 3, align.Left),
		h("Destination", 3, align.Left),
		h("Weight", 2, align.Center),
		h("Amount", 2, align.Right),
	)
}

// tableItemRows: one row per AWB line.
func tableItemRows(items []*entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		date := "—"
		if item.Date != nil {
			date = item.Date.Format("02/01/2006")
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(item.AWBNo, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(item.Destination, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(item.Weight, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(item.Amount), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalsRows: right-aligned breakdown; only the buckets of the active
// regime are printed.
func totalsRows(invoice *entity.Invoice, totals invoicing.Totals) []core.Row {
	type entryRow struct {
		label string
		value string
	}
	entries := []entryRow{
		{"Subtotal:", formatMoney(totals.Subtotal)},
		{fmt.Sprintf("Fuel Surcharge (%s%%):", invoice.FuelPercentage.String()), formatMoney(totals.FuelCharge)},
		{"Additional Charges:", formatMoney(totals.AdditionalCharges)},
	}
	switch invoice.GSTType {
	case entity.GSTTypeIGST:
		entries = append(entries,
			entryRow{fmt.Sprintf("IGST @ %s%%:", totals.IGSTRate.String()), formatMoney(totals.IGST)})
	case entity.GSTTypeCGST:
		entries = append(entries,
			entryRow{fmt.Sprintf("CGST @ %s%%:", totals.CGSTRate.String()), formatMoney(totals.CGST)},
			entryRow{fmt.Sprintf("SGST @ %s%%:", totals.SGSTRate.String()), formatMoney(totals.SGST)})
	}

	rows := make([]core.Row, 0, len(entries)+1)
	for _, e := range entries {
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(e.label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			})),
			col.New(3).Add(text.New("Rs. "+e.value, props.Text{
				Size: 9, Align: align.Right, Right: 1,
			})),
		))
	}
	rows = append(rows, row.New(9).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL PAYABLE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("Rs. "+inr.Sprintf("%d", totals.BillAmount), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	))
	return rows
}

// wordsRow: payable amount spelled out.
func wordsRow(billAmount int64) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Amount in words: Rupees "+invoicing.AmountInWords(billAmount)+" Only",
			props.Text{Style: fontstyle.Italic, Size: 8, Top: 2, Color: colorGray}),
	))
}

func remarksRow(remarks string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Remarks: "+remarks, props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney renders a two-decimal amount with en-IN digit grouping
// (1,23,456.00).
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return inr.Sprintf("%.2f", f)
}

// Keep the interface honest at compile time.
var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)
