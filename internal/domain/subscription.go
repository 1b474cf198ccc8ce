package domain

import "time"

// Supplier is a remote subscription server the syncer polls. A supplier is
// authorized iff it holds an API key.
type Supplier struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	URL          string     `db:"url"`
	APIKey       *string    `db:"api_key"`
	UserID       *int64     `db:"user_id"`
	AuthorizedAt *time.Time `db:"authorized_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (s *Supplier) Authorized() bool {
	return s.APIKey != nil && *s.APIKey != ""
}

// Resource is a named entity owned by a supplier; its name is what the
// supplier is queried for.
type Resource struct {
	ID         int64  `db:"id"`
	SupplierID int64  `db:"supplier_id"`
	Name       string `db:"name"`
}

// Subscription asserts that the local installation holds access to a resource
// via its supplier. The tuple (resource_id, subscription_id,
// subscription_type) identifies the logical subscription across sync runs.
type Subscription struct {
	ID               int64     `db:"id"`
	ResourceID       int64     `db:"resource_id"`
	SubscriptionID   string    `db:"subscription_id"`
	SubscriptionType string    `db:"subscription_type"`
	Subscribed       bool      `db:"subscribed"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}
