package domain

import (
	"encoding/json"
	"time"
)

// EntityKind distinguishes the two entities a connection error can be
// recorded against.
type EntityKind string

const (
	KindSupplier EntityKind = "supplier"
	KindResource EntityKind = "resource"
)

func (k EntityKind) Valid() bool {
	return k == KindSupplier || k == KindResource
}

// ResponseSnapshot captures the HTTP response that accompanied a failure.
// Body holds the response body when it was valid JSON, nil otherwise.
type ResponseSnapshot struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// ErrorRecord is one entry in the per-entity connection error ledger. At most
// one live (non-expired) record exists per (type, id) key; expired records
// are kept as history.
type ErrorRecord struct {
	ID        int64             `json:"id"`
	Type      EntityKind        `json:"type"`
	Message   string            `json:"message"`
	Count     int               `json:"count"`
	Response  *ResponseSnapshot `json:"response,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	ExpiredAt *time.Time        `json:"expired_at,omitempty"`
}

func (e *ErrorRecord) Expired() bool {
	return e.ExpiredAt != nil
}
