package billing

import (
	"strings"
	"time"

	"github.com/swiftcourier/billing-api/internal/application/dto"
	"github.com/swiftcourier/billing-api/internal/domain"
	"github.com/swiftcourier/billing-api/internal/domain/entity"
	"github.com/swiftcourier/billing-api/internal/domain/repository"
)

// CustomerUseCase use cases for customers.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCustomerUseCase builds the use case. The invoice repository is needed
// to refuse deleting a customer that still has invoices.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, invoiceRepo: invoiceRepo}
}

// Create registers a new customer. Name is the only required field.
func (uc *CustomerUseCase) Create(in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		Name:      strings.TrimSpace(in.Name),
		Email:     in.Email,
		Mobile:    in.Mobile,
		Address:   in.Address,
		GSTNo:     in.GSTNo,
		PANNo:     in.PANNo,
		State:     in.State,
		StateCode: in.StateCode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get returns one customer by ID.
func (uc *CustomerUseCase) Get(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List returns a page of customers matching the search term.
func (uc *CustomerUseCase) List(q string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	list, err := uc.customerRepo.List(q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.customerRepo.Count(q)
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerListResponse{
		Customers: make([]*dto.CustomerResponse, 0, len(list)),
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, c := range list {
		out.Customers = append(out.Customers, toCustomerResponse(c))
	}
	return out, nil
}

// Update rewrites a customer's fields.
func (uc *CustomerUseCase) Update(id int64, in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = strings.TrimSpace(in.Name)
	customer.Email = in.Email
	customer.Mobile = in.Mobile
	customer.Address = in.Address
	customer.GSTNo = in.GSTNo
	customer.PANNo = in.PANNo
	customer.State = in.State
	customer.StateCode = in.StateCode
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete removes a customer. Refused with domain.ErrConflict while any
// invoice still references it.
func (uc *CustomerUseCase) Delete(id int64) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	n, err := uc.invoiceRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.customerRepo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Mobile:    c.Mobile,
		Address:   c.Address,
		GSTNo:     c.GSTNo,
		PANNo:     c.PANNo,
		State:     c.State,
		StateCode: c.StateCode,
	}
}
