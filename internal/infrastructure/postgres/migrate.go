package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements, applied in order at startup. Idempotent: every
// statement is IF NOT EXISTS. invoice_items cascades with its invoice;
// deleting a customer with invoices is refused in the use case (the FK has
// the default RESTRICT behavior as a second line of defense).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		email       VARCHAR(100) NOT NULL DEFAULT '',
		mobile      VARCHAR(20)  NOT NULL DEFAULT '',
		address     VARCHAR(200) NOT NULL DEFAULT '',
		gst_no      VARCHAR(50)  NOT NULL DEFAULT '',
		pan_no      VARCHAR(50)  NOT NULL DEFAULT '',
		state       VARCHAR(50)  NOT NULL DEFAULT '',
		state_code  VARCHAR(10)  NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ  NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id                 BIGSERIAL PRIMARY KEY,
		invoice_no         VARCHAR(50) NOT NULL UNIQUE,
		invoice_date       DATE        NOT NULL,
		customer_id        BIGINT      NOT NULL REFERENCES customers(id),
		from_date          DATE,
		to_date            DATE,
		fuel_percentage    NUMERIC(10,2) NOT NULL DEFAULT 0,
		gst_type           VARCHAR(10)   NOT NULL DEFAULT 'NONE',
		gst_rate           NUMERIC(10,2) NOT NULL DEFAULT 0,
		additional_charges NUMERIC(14,2) NOT NULL DEFAULT 0,
		remarks            TEXT          NOT NULL DEFAULT '',
		payment_status     VARCHAR(20)   NOT NULL DEFAULT 'Unpaid',
		created_at         TIMESTAMPTZ   NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoice_items (
		id          BIGSERIAL PRIMARY KEY,
		invoice_id  BIGINT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		date        DATE,
		awb_no      VARCHAR(200) NOT NULL DEFAULT '',
		destination VARCHAR(200) NOT NULL DEFAULT '',
		weight      VARCHAR(200) NOT NULL DEFAULT '',
		amount      NUMERIC(14,2) NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_customer_id ON invoices(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice_id ON invoice_items(invoice_id)`,
}

// EnsureSchema creates the tables on startup so a fresh database is usable
// without a separate migration step.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
