// Package invoicing holds the pure billing arithmetic of the system: the
// invoice totals calculator, the sequential invoice numbering and the
// amount-in-words rendering used on the printed bill. Everything here is
// deterministic and free of I/O so it can be recomputed from stored data at
// any time with identical results.
package invoicing

import (
	"github.com/shopspring/decimal"

	"github.com/swiftcourier/billing-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals is the full breakdown of an invoice. The display amounts are
// rounded to two places; BillAmount is the payable total rounded up to the
// next whole rupee, computed from the unrounded chain so the ceiling is
// applied exactly once.
type Totals struct {
	Subtotal          decimal.Decimal
	FuelCharge        decimal.Decimal
	AdditionalCharges decimal.Decimal
	TaxBase           decimal.Decimal
	IGST              decimal.Decimal
	CGST              decimal.Decimal
	SGST              decimal.Decimal
	IGSTRate          decimal.Decimal
	CGSTRate          decimal.Decimal
	SGSTRate          decimal.Decimal
	BillAmount        int64
}

// Calculate computes the totals for an invoice and its line items.
//
//	subtotal = sum of item amounts
//	fuel     = subtotal * fuel% / 100
//	tax base = subtotal + fuel + additional charges
//	IGST     : one bucket at the full rate
//	CGST     : two equal buckets, each at half the rate
//	NONE     : no tax; an unrecognized regime is treated the same way
//	bill     = ceil(tax base + all tax buckets)
//
// Zero-valued decimals behave as zero amounts, so absent fields need no
// special casing. The half rate for the split regime is kept exact, not
// rounded to an integer.
func Calculate(items []*entity.InvoiceItem, inv *entity.Invoice) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}
	fuelCharge := subtotal.Mul(inv.FuelPercentage).Div(hundred)
	taxBase := subtotal.Add(fuelCharge).Add(inv.AdditionalCharges)

	var igst, cgst, sgst decimal.Decimal
	var igstRate, cgstRate, sgstRate decimal.Decimal
	switch inv.GSTType {
	case entity.GSTTypeIGST:
		igst = taxBase.Mul(inv.GSTRate).Div(hundred)
		igstRate = inv.GSTRate
	case entity.GSTTypeCGST:
		half := inv.GSTRate.Div(decimal.NewFromInt(2))
		cgst = taxBase.Mul(half).Div(hundred)
		sgst = cgst
		cgstRate, sgstRate = half, half
	}

	payable := taxBase.Add(igst).Add(cgst).Add(sgst)

	return Totals{
		Subtotal:          subtotal.Round(2),
		FuelCharge:        fuelCharge.Round(2),
		AdditionalCharges: inv.AdditionalCharges.Round(2),
		TaxBase:           taxBase.Round(2),
		IGST:              igst.Round(2),
		CGST:              cgst.Round(2),
		SGST:              sgst.Round(2),
		IGSTRate:          igstRate,
		CGSTRate:          cgstRate,
		SGSTRate:          sgstRate,
		BillAmount:        payable.Ceil().IntPart(),
	}
}
