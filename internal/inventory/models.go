// Package inventory tracks blood units through their lifecycle, from
// registration by an authorized bank to a terminal issued, expired or
// discarded state.
package inventory

import (
	"time"

	"lifebank/pkg/domain"
)

// BloodUnit is a single donated unit held by a bank.
type BloodUnit struct {
	ID                  uint64            `json:"id"`
	BloodType           domain.BloodType  `json:"blood_type"`
	QuantityML          uint32            `json:"quantity_ml"`
	BankID              string            `json:"bank_id"`
	DonorID             *string           `json:"donor_id,omitempty"`
	DonationTimestamp   time.Time         `json:"donation_timestamp"`
	ExpirationTimestamp time.Time         `json:"expiration_timestamp"`
	Status              domain.UnitStatus `json:"status"`
	Metadata            map[string]string `json:"metadata,omitempty"`
}

// RegisterUnitParams carries the caller-supplied fields of a registration.
type RegisterUnitParams struct {
	BloodType           domain.BloodType
	QuantityML          uint32
	DonorID             *string
	DonationTimestamp   time.Time
	ExpirationTimestamp time.Time
	Metadata            map[string]string
}
