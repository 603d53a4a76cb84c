// Package requests tracks hospital blood requests from creation through
// approval, delivery and the terminal completed, cancelled or expired
// states.
package requests

import (
	"time"

	"lifebank/pkg/domain"
)

// BloodRequest is a hospital's ask for a blood type and quantity by a
// deadline. Only Status changes after creation; FulfilledAt and
// AssignedUnits stay empty until a future allocation step populates them.
type BloodRequest struct {
	ID              uint64               `json:"id"`
	HospitalID      string               `json:"hospital_id"`
	BloodType       domain.BloodType     `json:"blood_type"`
	QuantityML      uint32               `json:"quantity_ml"`
	Urgency         domain.Urgency       `json:"urgency"`
	Status          domain.RequestStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	RequiredBy      time.Time            `json:"required_by"`
	FulfilledAt     *time.Time           `json:"fulfilled_at,omitempty"`
	AssignedUnits   []uint64             `json:"assigned_units,omitempty"`
	DeliveryAddress string               `json:"delivery_address"`
	Metadata        map[string]string    `json:"metadata,omitempty"`
}

// CreateRequestParams carries the caller-supplied fields of a new request.
type CreateRequestParams struct {
	BloodType       domain.BloodType
	QuantityML      uint32
	Urgency         domain.Urgency
	RequiredBy      time.Time
	DeliveryAddress string
	Metadata        map[string]string
}
