package domain

import dErrors "lifebank/pkg/domain-errors"

// RequestStatus tracks a blood request from submission to completion.
//
// Legal transitions:
//
//	Pending    → Approved | Cancelled | Expired
//	Approved   → InDelivery | Cancelled | Expired
//	InDelivery → Completed
//
// Completed, Cancelled, and Expired are terminal.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusApproved   RequestStatus = "approved"
	RequestStatusInDelivery RequestStatus = "in_delivery"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
	RequestStatusExpired    RequestStatus = "expired"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:    {RequestStatusApproved, RequestStatusCancelled, RequestStatusExpired},
	RequestStatusApproved:   {RequestStatusInDelivery, RequestStatusCancelled, RequestStatusExpired},
	RequestStatusInDelivery: {RequestStatusCompleted},
	RequestStatusCompleted:  {},
	RequestStatusCancelled:  {},
	RequestStatusExpired:    {},
}

// ParseRequestStatus constructs a RequestStatus from external input.
func ParseRequestStatus(s string) (RequestStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "request status cannot be empty")
	}
	st := RequestStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid request status")
	}
	return st, nil
}

// IsValid checks if the status is one of the supported enum values.
func (s RequestStatus) IsValid() bool {
	_, ok := requestTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, t := range requestTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// CanCancel reports whether a request in this status may still be cancelled.
// Narrower than CanTransitionTo(RequestStatusCancelled) by contract: only
// Pending and Approved requests are cancellable.
func (s RequestStatus) CanCancel() bool {
	return s == RequestStatusPending || s == RequestStatusApproved
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s RequestStatus) IsTerminal() bool {
	return len(requestTransitions[s]) == 0 && s.IsValid()
}

// String returns the string representation of the status.
func (s RequestStatus) String() string {
	return string(s)
}
