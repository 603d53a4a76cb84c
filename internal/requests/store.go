package requests

import (
	"context"

	"lifebank/pkg/domain"
)

// Store persists blood requests and the lookup indexes over them, with
// the same bucket discipline as the unit registry: creation-order ID
// lists per blood type, hospital and urgency, plus a status index whose
// buckets are rewritten on every transition.
type Store interface {
	// NextID advances and returns the request ID counter. The first ID is 1.
	NextID(ctx context.Context) (uint64, error)

	// Put stores a request record. Get returns storage.ErrNotFound for
	// unknown IDs.
	Put(ctx context.Context, req BloodRequest) error
	Get(ctx context.Context, id uint64) (BloodRequest, error)

	// Index adds the request's ID to its blood-type, hospital, urgency
	// and status buckets.
	Index(ctx context.Context, req BloodRequest) error
	// MoveStatus removes one occurrence of id from the old status bucket
	// and appends it to the new one.
	MoveStatus(ctx context.Context, id uint64, from, to domain.RequestStatus) error

	IDsByBloodType(ctx context.Context, bt domain.BloodType) ([]uint64, error)
	IDsByHospital(ctx context.Context, hospitalID string) ([]uint64, error)
	IDsByStatus(ctx context.Context, status domain.RequestStatus) ([]uint64, error)
	IDsByUrgency(ctx context.Context, urgency domain.Urgency) ([]uint64, error)
}
