package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/swiftcourier/billing-api/internal/domain/entity"
	"github.com/swiftcourier/billing-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, mobile, address, gst_no, pan_no, state, state_code, created_at, updated_at`

// CustomerRepo implements CustomerRepository (usable with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or a tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer and fills in the generated ID.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, email, mobile, address, gst_no, pan_no, state, state_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		customer.Name, customer.Email, customer.Mobile, customer.Address,
		customer.GSTNo, customer.PANNo, customer.State, customer.StateCode,
		customer.CreatedAt, customer.UpdatedAt,
	).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches one customer by ID.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName fetches one customer by exact display name. With duplicate
// names the oldest record wins, which keeps lookups deterministic.
func (r *CustomerRepo) GetByName(name string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE name = $1 ORDER BY id LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// List pages customers matching the search term, ordered by name.
func (r *CustomerRepo) List(q string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR gst_no ILIKE '%' || $1 || '%' OR mobile ILIKE '%' || $1 || '%'
		ORDER BY name, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count counts customers matching the search term.
func (r *CustomerRepo) Count(q string) (int, error) {
	query := `
		SELECT COUNT(*) FROM customers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR gst_no ILIKE '%' || $1 || '%' OR mobile ILIKE '%' || $1 || '%'`
	var n int
	if err := r.q.QueryRow(context.Background(), query, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// Update rewrites a customer's fields.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, mobile = $4, address = $5,
		    gst_no = $6, pan_no = $7, state = $8, state_code = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Mobile, customer.Address,
		customer.GSTNo, customer.PANNo, customer.State, customer.StateCode, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes a customer by ID.
func (r *CustomerRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) scanOne(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := scanCustomer(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func scanCustomer(row pgx.Row, c *entity.Customer) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Mobile, &c.Address,
		&c.GSTNo, &c.PANNo, &c.State, &c.StateCode,
		&c.CreatedAt, &c.UpdatedAt,
	)
}
