package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftcourier/billing-api/internal/application/dto"
	"github.com/swiftcourier/billing-api/internal/domain"
	"github.com/swiftcourier/billing-api/internal/domain/entity"
)

func newCustomerFixture() (*CustomerUseCase, *fakeCustomerRepo, *fakeInvoiceRepo) {
	customerRepo := newFakeCustomerRepo()
	invoiceRepo := newFakeInvoiceRepo()
	return NewCustomerUseCase(customerRepo, invoiceRepo), customerRepo, invoiceRepo
}

func TestCreateCustomer(t *testing.T) {
	uc, _, _ := newCustomerFixture()

	resp, err := uc.Create(dto.SaveCustomerRequest{
		Name:      "  Acme Traders  ",
		GSTNo:     "27AAAAA0000A1Z5",
		State:     "Maharashtra",
		StateCode: "27",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", resp.Name)
	assert.NotZero(t, resp.ID)
}

func TestCreateCustomer_RequiresName(t *testing.T) {
	uc, _, _ := newCustomerFixture()
	_, err := uc.Create(dto.SaveCustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateCustomer(t *testing.T) {
	uc, _, _ := newCustomerFixture()

	created, err := uc.Create(dto.SaveCustomerRequest{Name: "Acme Traders"})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.SaveCustomerRequest{Name: "Acme Trading Co", Mobile: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Trading Co", updated.Name)
	assert.Equal(t, "9876543210", updated.Mobile)

	_, err = uc.Update(999, dto.SaveCustomerRequest{Name: "Nobody"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCustomers_Search(t *testing.T) {
	uc, _, _ := newCustomerFixture()

	for _, name := range []string{"Acme Traders", "Blue Dart Agency", "Acme Logistics"} {
		_, err := uc.Create(dto.SaveCustomerRequest{Name: name})
		require.NoError(t, err)
	}

	out, err := uc.List("acme", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Customers, 2)
	assert.Equal(t, 2, out.Page.Total)
}

func TestDeleteCustomer_RefusedWhileInvoiced(t *testing.T) {
	uc, _, invoiceRepo := newCustomerFixture()

	created, err := uc.Create(dto.SaveCustomerRequest{Name: "Acme Traders"})
	require.NoError(t, err)
	invoiceRepo.seed(&entity.Invoice{InvoiceNo: "INV-0001", CustomerID: created.ID, InvoiceDate: time.Now()})

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrConflict)

	// Once the invoice is gone the customer can be removed.
	require.NoError(t, invoiceRepo.Delete(1))
	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.Get(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
