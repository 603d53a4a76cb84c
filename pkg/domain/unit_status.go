package domain

import dErrors "lifebank/pkg/domain-errors"

// UnitStatus tracks a blood unit through its physical lifecycle. Registration
// only ever produces Available; the remaining states exist so the transition
// table stays authoritative when reservation and issuance land.
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "available"
	UnitStatusReserved  UnitStatus = "reserved"
	UnitStatusIssued    UnitStatus = "issued"
	UnitStatusExpired   UnitStatus = "expired"
	UnitStatusDiscarded UnitStatus = "discarded"
)

// unitTransitions encodes the legal status moves for blood units.
var unitTransitions = map[UnitStatus][]UnitStatus{
	UnitStatusAvailable: {UnitStatusReserved, UnitStatusExpired, UnitStatusDiscarded},
	UnitStatusReserved:  {UnitStatusIssued, UnitStatusAvailable, UnitStatusExpired, UnitStatusDiscarded},
	UnitStatusIssued:    {},
	UnitStatusExpired:   {},
	UnitStatusDiscarded: {},
}

// ParseUnitStatus constructs a UnitStatus from external input.
func ParseUnitStatus(s string) (UnitStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unit status cannot be empty")
	}
	st := UnitStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid unit status")
	}
	return st, nil
}

// IsValid checks if the status is one of the supported enum values.
func (s UnitStatus) IsValid() bool {
	_, ok := unitTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s UnitStatus) CanTransitionTo(next UnitStatus) bool {
	for _, t := range unitTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// String returns the string representation of the status.
func (s UnitStatus) String() string {
	return string(s)
}
