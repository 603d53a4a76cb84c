package domain

import (
	"time"

	dErrors "lifebank/pkg/domain-errors"
)

// Urgency ranks how soon a blood request must be fulfilled. Each level carries
// its own minimum lead time between creation and the required-by deadline;
// all levels share the same 30-day maximum.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyNormal   Urgency = "normal"
)

// MaxLeadTime is the global upper bound on request lead time.
const MaxLeadTime = 30 * 24 * time.Hour

var urgencyMinLeadTimes = map[Urgency]time.Duration{
	UrgencyCritical: time.Hour,
	UrgencyUrgent:   4 * time.Hour,
	UrgencyNormal:   24 * time.Hour,
}

// ParseUrgency constructs an Urgency from external input.
func ParseUrgency(s string) (Urgency, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "urgency cannot be empty")
	}
	u := Urgency(s)
	if !u.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid urgency")
	}
	return u, nil
}

// IsValid checks if the urgency is one of the supported enum values.
func (u Urgency) IsValid() bool {
	_, ok := urgencyMinLeadTimes[u]
	return ok
}

// MinLeadTime returns the minimum allowed gap between request creation and
// its required-by deadline for this urgency level.
func (u Urgency) MinLeadTime() time.Duration {
	return urgencyMinLeadTimes[u]
}

// String returns the string representation of the urgency.
func (u Urgency) String() string {
	return string(u)
}
