package requests

import (
	"time"

	"lifebank/pkg/domain"
	dErrors "lifebank/pkg/domain-errors"
)

const (
	// MinQuantityML and MaxQuantityML bound a single request.
	MinQuantityML uint32 = 100
	MaxQuantityML uint32 = 10000
)

// ValidateQuantity checks a requested volume in millilitres.
func ValidateQuantity(quantityML uint32) error {
	if quantityML < MinQuantityML || quantityML > MaxQuantityML {
		return dErrors.New(dErrors.CodeInvalidQuantity, "request quantity must be between 100 and 10000 ml")
	}
	return nil
}

// ValidateRequiredBy checks the deadline against the creation time: the
// lead time must clear the urgency's minimum and stay under the global
// 30 day ceiling.
func ValidateRequiredBy(now, requiredBy time.Time, urgency domain.Urgency) error {
	lead := requiredBy.Sub(now)
	if lead <= 0 {
		return dErrors.New(dErrors.CodeInvalidRequiredBy, "deadline must be in the future")
	}
	if lead < urgency.MinLeadTime() {
		return dErrors.New(dErrors.CodeInvalidRequiredBy, "deadline is too soon for the declared urgency")
	}
	if lead > domain.MaxLeadTime {
		return dErrors.New(dErrors.CodeInvalidRequiredBy, "deadline is more than 30 days out")
	}
	return nil
}

// ValidateDeliveryAddress requires a non-empty destination.
func ValidateDeliveryAddress(address string) error {
	if address == "" {
		return dErrors.New(dErrors.CodeInvalidDeliveryAddress, "delivery address is required")
	}
	return nil
}

// ValidateRequest checks a fully constructed request before it is
// persisted.
func ValidateRequest(req BloodRequest) error {
	if !req.BloodType.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown blood type")
	}
	if req.HospitalID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "hospital id is required")
	}
	if _, err := domain.ParseUrgency(string(req.Urgency)); err != nil {
		return err
	}
	if err := ValidateQuantity(req.QuantityML); err != nil {
		return err
	}
	if err := ValidateDeliveryAddress(req.DeliveryAddress); err != nil {
		return err
	}
	return ValidateRequiredBy(req.CreatedAt, req.RequiredBy, req.Urgency)
}
