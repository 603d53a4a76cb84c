// Package domain holds the validated value types shared by the unit registry
// and the request ledger. Construct values via the Parse* functions at trust
// boundaries; direct casting bypasses validation.
package domain

import dErrors "lifebank/pkg/domain-errors"

// BloodType is one of the eight ABO/Rh combinations.
type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

// validBloodTypes is the single source of truth for supported blood types.
var validBloodTypes = map[BloodType]bool{
	BloodTypeAPositive:  true,
	BloodTypeANegative:  true,
	BloodTypeBPositive:  true,
	BloodTypeBNegative:  true,
	BloodTypeABPositive: true,
	BloodTypeABNegative: true,
	BloodTypeOPositive:  true,
	BloodTypeONegative:  true,
}

// BloodTypes lists every supported blood type in a stable order.
func BloodTypes() []BloodType {
	return []BloodType{
		BloodTypeAPositive, BloodTypeANegative,
		BloodTypeBPositive, BloodTypeBNegative,
		BloodTypeABPositive, BloodTypeABNegative,
		BloodTypeOPositive, BloodTypeONegative,
	}
}

// ParseBloodType constructs a BloodType from external input.
func ParseBloodType(s string) (BloodType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "blood type cannot be empty")
	}
	bt := BloodType(s)
	if !bt.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid blood type")
	}
	return bt, nil
}

// IsValid checks if the blood type is one of the supported enum values.
func (bt BloodType) IsValid() bool {
	return validBloodTypes[bt]
}

// String returns the string representation of the blood type.
func (bt BloodType) String() string {
	return string(bt)
}
