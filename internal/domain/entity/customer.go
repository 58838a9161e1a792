package entity

import "time"

// Customer represents a billed party, with the GST identifiers that go on
// every invoice issued against it.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Mobile    string
	Address   string
	GSTNo     string // GSTIN of the customer (blank for unregistered parties)
	PANNo     string
	State     string
	StateCode string // two-digit GST state code, e.g. "07" for Delhi
	CreatedAt time.Time
	UpdatedAt time.Time
}
