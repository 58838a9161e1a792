package billing

import (
	"context"
	"sort"
	"strings"

	"github.com/swiftcourier/billing-api/internal/domain"
	"github.com/swiftcourier/billing-api/internal/domain/entity"
	"github.com/swiftcourier/billing-api/internal/domain/repository"
)

// In-memory fakes backing the use case tests.

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int64]*entity.Customer{}, nextID: 1}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByName(name string) (*entity.Customer, error) {
	var found *entity.Customer
	for _, c := range r.customers {
		if c.Name == name && (found == nil || c.ID < found.ID) {
			found = c
		}
	}
	if found == nil {
		return nil, nil
	}
	cp := *found
	return &cp, nil
}

func (r *fakeCustomerRepo) List(q string, limit, offset int) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for _, c := range r.customers {
		if q == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(q)) {
			cp := *c
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeCustomerRepo) Count(q string) (int, error) {
	list, _ := r.List(q, len(r.customers)+1, 0)
	return len(list), nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(id int64) error {
	delete(r.customers, id)
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[int64]*entity.Invoice
	items    map[int64][]*entity.InvoiceItem
	nextID   int64

	// failCreates makes the next N header inserts fail with ErrDuplicate,
	// simulating a lost race on a generated number.
	failCreates int
	createCalls int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: map[int64]*entity.Invoice{},
		items:    map[int64][]*entity.InvoiceItem{},
		nextID:   1,
	}
}

func (r *fakeInvoiceRepo) seed(inv *entity.Invoice) *entity.Invoice {
	inv.ID = r.nextID
	r.nextID++
	r.invoices[inv.ID] = inv
	return inv
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.createCalls++
	if r.failCreates > 0 {
		r.failCreates--
		return domain.ErrDuplicate
	}
	for _, existing := range r.invoices {
		if existing.InvoiceNo == inv.InvoiceNo {
			return domain.ErrDuplicate
		}
	}
	inv.ID = r.nextID
	r.nextID++
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	item.ID = r.nextID
	r.nextID++
	cp := *item
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], &cp)
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	for id, existing := range r.invoices {
		if id != inv.ID && existing.InvoiceNo == inv.InvoiceNo {
			return domain.ErrDuplicate
		}
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) UpdatePaymentStatus(id int64, status string) error {
	if inv, ok := r.invoices[id]; ok {
		inv.PaymentStatus = status
	}
	return nil
}

func (r *fakeInvoiceRepo) Delete(id int64) error {
	delete(r.invoices, id)
	delete(r.items, id)
	return nil
}

func (r *fakeInvoiceRepo) DeleteItems(invoiceID int64) error {
	delete(r.items, invoiceID)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetLast() (*entity.Invoice, error) {
	var last *entity.Invoice
	for _, inv := range r.invoices {
		if last == nil || inv.ID > last.ID {
			last = inv
		}
	}
	if last == nil {
		return nil, nil
	}
	cp := *last
	return &cp, nil
}

func (r *fakeInvoiceRepo) List(q string, limit, offset int) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.invoices {
		if q == "" || strings.Contains(inv.InvoiceNo, q) || strings.Contains(inv.CustomerName, q) {
			cp := *inv
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeInvoiceRepo) Count(q string) (int, error) {
	list, _ := r.List(q, len(r.invoices)+1, 0)
	return len(list), nil
}

func (r *fakeInvoiceRepo) ItemsByInvoiceID(invoiceID int64) ([]*entity.InvoiceItem, error) {
	var list []*entity.InvoiceItem
	for _, item := range r.items[invoiceID] {
		cp := *item
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeInvoiceRepo) CountByCustomer(customerID int64) (int, error) {
	n := 0
	for _, inv := range r.invoices {
		if inv.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner hands the same fakes to the callback. Commit/rollback
// semantics are irrelevant here: the fakes fail before mutating state.
type fakeTxRunner struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

func (r *fakeTxRunner) RunBilling(_ context.Context, fn func(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(r.customerRepo, r.invoiceRepo)
}

var (
	_ repository.CustomerRepository = (*fakeCustomerRepo)(nil)
	_ repository.InvoiceRepository  = (*fakeInvoiceRepo)(nil)
	_ BillingTxRunner               = (*fakeTxRunner)(nil)
)
