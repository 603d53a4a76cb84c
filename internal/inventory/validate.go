package inventory

import (
	"time"

	dErrors "lifebank/pkg/domain-errors"
)

const (
	// MinQuantityML and MaxQuantityML bound a single donated unit.
	MinQuantityML uint32 = 100
	MaxQuantityML uint32 = 600

	// MinRemainingShelfLife is the least usable life a unit may have left
	// when it enters the inventory.
	MinRemainingShelfLife = 24 * time.Hour
	// MaxShelfLife caps how far in the future an expiration may sit,
	// matching the longest shelf life of any red-cell product.
	MaxShelfLife = 42 * 24 * time.Hour
)

// ValidateQuantity checks a unit volume in millilitres.
func ValidateQuantity(quantityML uint32) error {
	if quantityML < MinQuantityML || quantityML > MaxQuantityML {
		return dErrors.New(dErrors.CodeInvalidQuantity, "unit quantity must be between 100 and 600 ml")
	}
	return nil
}

// ValidateExpiration checks a unit's timestamps against the registration
// time: the donation may not postdate registration, and the remaining
// shelf life must be at least a day and at most 42 days.
func ValidateExpiration(now, donation, expiration time.Time) error {
	if donation.After(now) {
		return dErrors.New(dErrors.CodeInvalidExpiration, "donation timestamp is in the future")
	}
	remaining := expiration.Sub(now)
	if remaining < MinRemainingShelfLife {
		return dErrors.New(dErrors.CodeInvalidExpiration, "unit expires less than 24 hours from now")
	}
	if remaining > MaxShelfLife {
		return dErrors.New(dErrors.CodeInvalidExpiration, "expiration exceeds the 42 day shelf life")
	}
	return nil
}

// ValidateUnit checks a fully constructed unit before it is persisted.
func ValidateUnit(now time.Time, unit BloodUnit) error {
	if !unit.BloodType.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown blood type")
	}
	if unit.BankID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "bank id is required")
	}
	if unit.DonorID != nil && *unit.DonorID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "donor id may not be empty when present")
	}
	if err := ValidateQuantity(unit.QuantityML); err != nil {
		return err
	}
	return ValidateExpiration(now, unit.DonationTimestamp, unit.ExpirationTimestamp)
}
