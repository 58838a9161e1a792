package repository

import "github.com/swiftcourier/billing-api/internal/domain/entity"

// CustomerRepository is the persistence port for Customer.
type CustomerRepository interface {
	// Create persists the customer and fills in its generated ID.
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	// GetByName resolves a customer by exact display name (invoice forms
	// may reference customers by name instead of ID).
	GetByName(name string) (*entity.Customer, error)
	// List returns customers matching the search term (name, GSTIN or
	// mobile, empty term matches all), ordered by name.
	List(q string, limit, offset int) ([]*entity.Customer, error)
	Count(q string) (int, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
}
