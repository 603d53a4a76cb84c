package inventory

import (
	"context"

	"lifebank/pkg/domain"
)

// Store persists blood units and the lookup indexes over them. The
// substrate offers point lookups only, so every listing dimension is a
// maintained bucket of unit IDs in insertion order.
type Store interface {
	// NextID advances and returns the unit ID counter. The first ID is 1.
	NextID(ctx context.Context) (uint64, error)

	// Put stores a unit record. Get returns storage.ErrNotFound for
	// unknown IDs.
	Put(ctx context.Context, unit BloodUnit) error
	Get(ctx context.Context, id uint64) (BloodUnit, error)

	// Index adds the unit's ID to its blood-type, bank and status
	// buckets, and to its donor bucket when a donor is recorded.
	Index(ctx context.Context, unit BloodUnit) error

	IDsByBloodType(ctx context.Context, bt domain.BloodType) ([]uint64, error)
	IDsByBank(ctx context.Context, bankID string) ([]uint64, error)
	IDsByStatus(ctx context.Context, status domain.UnitStatus) ([]uint64, error)
	IDsByDonor(ctx context.Context, donorID string) ([]uint64, error)
}
