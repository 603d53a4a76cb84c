// Package events emits one structured notification per committed state
// transition. Delivery and ordering beyond "emitted after successful commit"
// are the sink's responsibility.
package events

import (
	"encoding/json"
	"time"

	"lifebank/pkg/domain"
)

// Kind labels an event type on the wire.
type Kind string

const (
	KindUnitRegistered Kind = "unit_registered"
	KindRequestCreated Kind = "request_created"
	KindStatusChanged  Kind = "status_changed"
)

// Event is the envelope every sink receives. Payload carries the kind-specific
// struct below, already marshalled.
type Event struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// UnitRegistered is emitted once per successful blood unit registration.
type UnitRegistered struct {
	UnitID              uint64           `json:"unit_id"`
	BankID              string           `json:"bank_id"`
	BloodType           domain.BloodType `json:"blood_type"`
	QuantityML          uint32           `json:"quantity_ml"`
	ExpirationTimestamp time.Time        `json:"expiration_timestamp"`
}

// RequestCreated is emitted once per successful blood request creation.
type RequestCreated struct {
	RequestID  uint64           `json:"request_id"`
	HospitalID string           `json:"hospital_id"`
	BloodType  domain.BloodType `json:"blood_type"`
	QuantityML uint32           `json:"quantity_ml"`
	Urgency    domain.Urgency   `json:"urgency"`
	RequiredBy time.Time        `json:"required_by"`
}

// StatusChanged is emitted once per request status transition.
type StatusChanged struct {
	RequestID uint64               `json:"request_id"`
	OldStatus domain.RequestStatus `json:"old_status"`
	NewStatus domain.RequestStatus `json:"new_status"`
}
