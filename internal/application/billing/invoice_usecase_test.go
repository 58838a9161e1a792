package billing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftcourier/billing-api/internal/application/dto"
	"github.com/swiftcourier/billing-api/internal/domain"
	"github.com/swiftcourier/billing-api/internal/domain/entity"
)

func newInvoiceFixture(t *testing.T) (*InvoiceUseCase, *fakeCustomerRepo, *fakeInvoiceRepo, *entity.Customer) {
	t.Helper()
	customerRepo := newFakeCustomerRepo()
	invoiceRepo := newFakeInvoiceRepo()
	tx := &fakeTxRunner{customerRepo: customerRepo, invoiceRepo: invoiceRepo}

	customer := &entity.Customer{Name: "Acme Traders", State: "Maharashtra", StateCode: "27"}
	require.NoError(t, customerRepo.Create(customer))

	uc := NewInvoiceUseCase(tx, customerRepo, invoiceRepo)
	return uc, customerRepo, invoiceRepo, customer
}

func saveRequest(customerID int64) dto.SaveInvoiceRequest {
	return dto.SaveInvoiceRequest{
		CustomerID:     customerID,
		InvoiceDate:    "2025-04-30",
		FromDate:       "2025-04-01",
		ToDate:         "2025-04-30",
		FuelPercentage: decimal.NewFromInt(5),
		GSTType:        entity.GSTTypeIGST,
		GSTRate:        decimal.NewFromInt(18),
		Items: []dto.InvoiceItemRequest{
			{Date: "2025-04-02", AWBNo: "AWB1001", Destination: "Mumbai", Weight: "0.5", Amount: decimal.RequireFromString("100.00")},
			{Date: "2025-04-10", AWBNo: "AWB1002", Destination: "Delhi", Weight: "2", Amount: decimal.RequireFromString("250.50")},
		},
	}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreateInvoice_GeneratesFirstNumber(t *testing.T) {
	uc, _, invoiceRepo, customer := newInvoiceFixture(t)

	resp, err := uc.Create(context.Background(), saveRequest(customer.ID))
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", resp.InvoiceNo)
	assert.Equal(t, entity.PaymentStatusUnpaid, resp.PaymentStatus)
	assert.Equal(t, "Acme Traders", resp.CustomerName)
	require.Len(t, resp.Items, 2)

	// Totals come back with the invoice.
	assert.Equal(t, "350.5", resp.Totals.Subtotal.String())
	assert.Equal(t, "17.53", resp.Totals.FuelCharge.String())
	assert.Equal(t, "66.24", resp.Totals.IGST.String())
	assert.EqualValues(t, 435, resp.Totals.BillAmount)

	// Header and items are persisted.
	stored, err := invoiceRepo.GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	items, err := invoiceRepo.ItemsByInvoiceID(resp.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCreateInvoice_ContinuesSequence(t *testing.T) {
	uc, _, invoiceRepo, customer := newInvoiceFixture(t)
	invoiceRepo.seed(&entity.Invoice{InvoiceNo: "INV-0007", CustomerID: customer.ID, InvoiceDate: time.Now()})

	resp, err := uc.Create(context.Background(), saveRequest(customer.ID))
	require.NoError(t, err)
	assert.Equal(t, "INV-0008", resp.InvoiceNo)
}

func TestCreateInvoice_KeepsExplicitNumber(t *testing.T) {
	uc, _, _, customer := newInvoiceFixture(t)

	in := saveRequest(customer.ID)
	in.InvoiceNo = "INV-2025-SPECIAL"
	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-SPECIAL", resp.InvoiceNo)
}

func TestCreateInvoice_RetriesGeneratedNumberOnce(t *testing.T) {
	uc, _, invoiceRepo, customer := newInvoiceFixture(t)
	invoiceRepo.failCreates = 1

	resp, err := uc.Create(context.Background(), saveRequest(customer.ID))
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", resp.InvoiceNo)
	assert.Equal(t, 2, invoiceRepo.createCalls)
}

func TestCreateInvoice_ExplicitDuplicateIsNotRetried(t *testing.T) {
	uc, _, invoiceRepo, customer := newInvoiceFixture(t)
	invoiceRepo.seed(&entity.Invoice{InvoiceNo: "INV-0100", CustomerID: customer.ID, InvoiceDate: time.Now()})

	in := saveRequest(customer.ID)
	in.InvoiceNo = "INV-0100"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, invoiceRepo.createCalls)
}

func TestCreateInvoice_RequiresItems(t *testing.T) {
	uc, _, _, customer := newInvoiceFixture(t)

	in := saveRequest(customer.ID)
	in.Items = nil
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoice_CustomerResolution(t *testing.T) {
	uc, _, _, _ := newInvoiceFixture(t)

	// Unknown ID: the referenced resource does not exist.
	in := saveRequest(999)
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// By name: a stale name on the form is the caller's mistake.
	in = saveRequest(0)
	in.CustomerName = "No Such Trading Co"
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Exact name match works.
	in = saveRequest(0)
	in.CustomerName = "Acme Traders"
	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", resp.CustomerName)
}

func TestCreateInvoice_RejectsUnknownGSTType(t *testing.T) {
	uc, _, _, customer := newInvoiceFixture(t)

	in := saveRequest(customer.ID)
	in.GSTType = "VAT"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoice_BlankGSTTypeMeansNone(t *testing.T) {
	uc, _, _, customer := newInvoiceFixture(t)

	in := saveRequest(customer.ID)
	in.GSTType = ""
	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.GSTTypeNone, resp.GSTType)
	assert.True(t, resp.Totals.IGST.IsZero())
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestUpdateInvoice_ReplacesItemSet(t *testing.T) {
	uc, _, invoiceRepo, customer := newInvoiceFixture(t)

	created, err := uc.Create(context.Background(), saveRequest(customer.ID))
	require.NoError(t, err)

	in := saveRequest(customer.ID)
	in.Items = []dto.InvoiceItemRequest{
		{AWBNo: "AWB9001", Destination: "Chennai", Weight: "1", Amount: decimal.NewFromInt(500)},
	}
	updated, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	// Number survives the edit, items are replaced wholesale.
	assert.Equal(t, created.InvoiceNo, updated.InvoiceNo)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "AWB9001", updated.Items[0].AWBNo)

	stored, err := invoiceRepo.ItemsByInvoiceID(created.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestUpdateInvoice_NotFound(t *testing.T) {
	uc, _, _, customer := newInvoiceFixture(t)
	_, err := uc.Update(context.Background(), 42, saveRequest(customer.ID))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Payment status ────────────────────────────────────────────────────────────

func TestSetPaymentStatus(t *testing.T) {
	uc, _, invoiceRepo, customer := newInvoiceFixture(t)

	created, err := uc.Create(context.Background(), saveRequest(customer.ID))
	require.NoError(t, err)

	require.NoError(t, uc.SetPaymentStatus(context.Background(), created.ID, entity.PaymentStatusPaid))
	stored, err := invoiceRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, stored.PaymentStatus)

	assert.ErrorIs(t, uc.SetPaymentStatus(context.Background(), created.ID, "Pending"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.SetPaymentStatus(context.Background(), 999, entity.PaymentStatusPaid), domain.ErrNotFound)
}

// ── Read paths ────────────────────────────────────────────────────────────────

func TestGetInvoice_NotFound(t *testing.T) {
	uc, _, _, _ := newInvoiceFixture(t)
	_, err := uc.Get(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListInvoices_NewestFirstWithTotals(t *testing.T) {
	uc, _, _, customer := newInvoiceFixture(t)

	first, err := uc.Create(context.Background(), saveRequest(customer.ID))
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), saveRequest(customer.ID))
	require.NoError(t, err)

	out, err := uc.List(context.Background(), "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Invoices, 2)
	assert.Equal(t, 2, out.Page.Total)
	assert.Equal(t, 20, out.Page.Limit)

	assert.Equal(t, second.ID, out.Invoices[0].ID)
	assert.Equal(t, first.ID, out.Invoices[1].ID)
	assert.EqualValues(t, 435, out.Invoices[0].Totals.BillAmount)
}

func TestListInvoices_SearchByNumber(t *testing.T) {
	uc, _, _, customer := newInvoiceFixture(t)

	_, err := uc.Create(context.Background(), saveRequest(customer.ID))
	require.NoError(t, err)
	in := saveRequest(customer.ID)
	in.InvoiceNo = "SPL-7777"
	_, err = uc.Create(context.Background(), in)
	require.NoError(t, err)

	out, err := uc.List(context.Background(), "SPL", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Invoices, 1)
	assert.Equal(t, "SPL-7777", out.Invoices[0].InvoiceNo)
}

func TestDeleteInvoice(t *testing.T) {
	uc, _, invoiceRepo, customer := newInvoiceFixture(t)

	created, err := uc.Create(context.Background(), saveRequest(customer.ID))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	stored, err := invoiceRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID), domain.ErrNotFound)
}
