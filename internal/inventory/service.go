package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"lifebank/internal/directory"
	"lifebank/internal/events"
	"lifebank/internal/platform/metrics"
	"lifebank/pkg/domain"
	dErrors "lifebank/pkg/domain-errors"
	"lifebank/pkg/requestcontext"
)

// Authorizer answers allow-list membership questions for the directory.
type Authorizer interface {
	IsAuthorized(ctx context.Context, role directory.Role, id string) (bool, error)
}

// Service implements the unit registry operations. Mutations are
// serialized by a single mutex so each one commits as a whole: all
// validation happens before the first write, and the ID counter only
// advances for registrations that will succeed.
type Service struct {
	mu        sync.Mutex
	store     Store
	directory Authorizer
	publisher *events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewService(store Store, dir Authorizer, publisher *events.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		directory: dir,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Register stores a new blood unit owned by the calling bank and returns
// it with its allocated ID. The unit enters in the available state.
func (s *Service) Register(ctx context.Context, params RegisterUnitParams) (BloodUnit, error) {
	caller := requestcontext.CallerID(ctx)
	if caller == "" {
		return BloodUnit{}, dErrors.New(dErrors.CodeUnauthorized, "caller identity is required")
	}

	allowed, err := s.directory.IsAuthorized(ctx, directory.RoleBank, caller)
	if err != nil {
		return BloodUnit{}, err
	}
	if !allowed {
		return BloodUnit{}, dErrors.New(dErrors.CodeNotAuthorizedBank, "bank is not on the allow-list")
	}

	now := requestcontext.Now(ctx)
	unit := BloodUnit{
		BloodType:           params.BloodType,
		QuantityML:          params.QuantityML,
		BankID:              caller,
		DonorID:             params.DonorID,
		DonationTimestamp:   params.DonationTimestamp.UTC(),
		ExpirationTimestamp: params.ExpirationTimestamp.UTC(),
		Status:              domain.UnitStatusAvailable,
		Metadata:            copyMetadata(params.Metadata),
	}
	if err := ValidateUnit(now, unit); err != nil {
		return BloodUnit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unit.ID, err = s.store.NextID(ctx)
	if err != nil {
		return BloodUnit{}, fmt.Errorf("allocating unit id: %w", err)
	}
	if err := s.store.Put(ctx, unit); err != nil {
		return BloodUnit{}, fmt.Errorf("storing unit %d: %w", unit.ID, err)
	}
	if err := s.store.Index(ctx, unit); err != nil {
		return BloodUnit{}, fmt.Errorf("indexing unit %d: %w", unit.ID, err)
	}

	s.publisher.Emit(ctx, events.KindUnitRegistered, events.UnitRegistered{
		UnitID:              unit.ID,
		BankID:              unit.BankID,
		BloodType:           unit.BloodType,
		QuantityML:          unit.QuantityML,
		ExpirationTimestamp: unit.ExpirationTimestamp,
	})
	s.metrics.IncUnitsRegistered()
	s.logger.InfoContext(ctx, "unit registered",
		"unit_id", unit.ID, "bank_id", unit.BankID, "blood_type", string(unit.BloodType))
	return unit, nil
}

// Get returns the unit with the given ID.
func (s *Service) Get(ctx context.Context, id uint64) (BloodUnit, error) {
	return s.store.Get(ctx, id)
}

// IDsByBloodType returns unit IDs of a blood type in registration order.
func (s *Service) IDsByBloodType(ctx context.Context, bt domain.BloodType) ([]uint64, error) {
	if !bt.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unknown blood type")
	}
	return s.store.IDsByBloodType(ctx, bt)
}

// IDsByBank returns the IDs of units owned by a bank in registration order.
func (s *Service) IDsByBank(ctx context.Context, bankID string) ([]uint64, error) {
	return s.store.IDsByBank(ctx, bankID)
}

// IDsByStatus returns unit IDs currently in the given status.
func (s *Service) IDsByStatus(ctx context.Context, status domain.UnitStatus) ([]uint64, error) {
	return s.store.IDsByStatus(ctx, status)
}

// IDsByDonor returns the IDs of units traced to a donor. Anonymous units
// never appear here.
func (s *Service) IDsByDonor(ctx context.Context, donorID string) ([]uint64, error) {
	return s.store.IDsByDonor(ctx, donorID)
}

func copyMetadata(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
