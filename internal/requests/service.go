package requests

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

// Directory is the slice of the participant directory this service
// needs: allow-list checks for hospitals and the admin identity for
// approval rights.
type Directory interface {
	IsAuthorized(ctx context.Context, role directory.Role, id string) (bool, error)
	Admin(ctx context.Context) (string, error)
}

// Service implements the request ledger operations. As in the unit
// registry, a single mutex serializes mutations so each commits as a
// whole and failed validations never consume an ID.
type Service struct {
	mu        sync.Mutex
	store     Store
	directory Directory
	publisher *events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewService(store Store, dir Directory, publisher *events.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		directory: dir,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Create stores a new pending request owned by the calling hospital and
// returns it with its allocated ID.
func (s *Service) Create(ctx context.Context, params CreateRequestParams) (BloodRequest, error) {
	caller := requestcontext.CallerID(ctx)
	if caller == "" {
		return BloodRequest{}, dErrors.New(dErrors.CodeUnauthorized, "caller identity is required")
	}

	allowed, err := s.directory.IsAuthorized(ctx, directory.RoleHospital, caller)
	if err != nil {
		return BloodRequest{}, err
	}
	if !allowed {
		return BloodRequest{}, dErrors.New(dErrors.CodeNotAuthorizedHospital, "hospital is not on the allow-list")
	}

	now := requestcontext.Now(ctx)
	req := BloodRequest{
		HospitalID:      caller,
		BloodType:       params.BloodType,
		QuantityML:      params.QuantityML,
		Urgency:         params.Urgency,
		Status:          domain.RequestStatusPending,
		CreatedAt:       now.UTC(),
		RequiredBy:      params.RequiredBy.UTC(),
		DeliveryAddress: params.DeliveryAddress,
		Metadata:        copyMetadata(params.Metadata),
	}
	if err := ValidateRequest(req); err != nil {
		return BloodRequest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req.ID, err = s.store.NextID(ctx)
	if err != nil {
		return BloodRequest{}, fmt.Errorf("allocating request id: %w", err)
	}
	if err := s.store.Put(ctx, req); err != nil {
		return BloodRequest{}, fmt.Errorf("storing request %d: %w", req.ID, err)
	}
	if err := s.store.Index(ctx, req); err != nil {
		return BloodRequest{}, fmt.Errorf("indexing request %d: %w", req.ID, err)
	}

	s.publisher.Emit(ctx, events.KindRequestCreated, events.RequestCreated{
		RequestID:  req.ID,
		HospitalID: req.HospitalID,
		BloodType:  req.BloodType,
		QuantityML: req.QuantityML,
		Urgency:    req.Urgency,
		RequiredBy: req.RequiredBy,
	})
	s.metrics.IncRequestsCreated()
	s.logger.InfoContext(ctx, "request created",
		"request_id", req.ID, "hospital_id", req.HospitalID, "urgency", string(req.Urgency))
	return req, nil
}

// Get returns the request with the given ID.
func (s *Service) Get(ctx context.Context, id uint64) (BloodRequest, error) {
	return s.store.Get(ctx, id)
}

// Approve moves a pending request to approved. Admin only. A request
// whose deadline has already passed cannot be approved even though the
// transition itself is legal; that fails with the expiry error.
func (s *Service) Approve(ctx context.Context, id uint64) (BloodRequest, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return BloodRequest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.store.Get(ctx, id)
	if err != nil {
		return BloodRequest{}, err
	}
	if !req.Status.CanTransitionTo(domain.RequestStatusApproved) {
		return BloodRequest{}, dErrors.New(dErrors.CodeInvalidStatusTransition,
			fmt.Sprintf("cannot approve a request in status %s", req.Status))
	}
	if requestcontext.Now(ctx).After(req.RequiredBy) {
		return BloodRequest{}, dErrors.New(dErrors.CodeExpired, "request deadline has passed")
	}

	return s.transition(ctx, req, domain.RequestStatusApproved)
}

// Cancel moves a request to cancelled. Only the owning hospital or the
// admin may cancel, and only while the request is pending or approved.
// The deadline is deliberately not checked: a stale request can still be
// withdrawn.
func (s *Service) Cancel(ctx context.Context, id uint64) (BloodRequest, error) {
	caller := requestcontext.CallerID(ctx)
	if caller == "" {
		return BloodRequest{}, dErrors.New(dErrors.CodeUnauthorized, "caller identity is required")
	}
	admin, err := s.directory.Admin(ctx)
	if err != nil {
		return BloodRequest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.store.Get(ctx, id)
	if err != nil {
		return BloodRequest{}, err
	}
	if caller != req.HospitalID && caller != admin {
		return BloodRequest{}, dErrors.New(dErrors.CodeUnauthorized, "only the requesting hospital or the admin may cancel")
	}
	if !req.Status.CanCancel() {
		return BloodRequest{}, dErrors.New(dErrors.CodeCannotCancel,
			fmt.Sprintf("cannot cancel a request in status %s", req.Status))
	}

	return s.transition(ctx, req, domain.RequestStatusCancelled)
}

// transition persists the status change, moves the status index entry
// and emits the notification. Callers hold the mutex and have already
// established legality.
func (s *Service) transition(ctx context.Context, req BloodRequest, to domain.RequestStatus) (BloodRequest, error) {
	from := req.Status
	req.Status = to
	if err := s.store.Put(ctx, req); err != nil {
		return BloodRequest{}, fmt.Errorf("storing request %d: %w", req.ID, err)
	}
	if err := s.store.MoveStatus(ctx, req.ID, from, to); err != nil {
		return BloodRequest{}, fmt.Errorf("reindexing request %d: %w", req.ID, err)
	}

	s.publisher.Emit(ctx, events.KindStatusChanged, events.StatusChanged{
		RequestID: req.ID,
		OldStatus: from,
		NewStatus: to,
	})
	s.metrics.ObserveStatusTransition(string(from), string(to))
	s.logger.InfoContext(ctx, "request status changed",
		"request_id", req.ID, "from", string(from), "to", string(to))
	return req, nil
}

// IDsByBloodType returns request IDs of a blood type in creation order.
func (s *Service) IDsByBloodType(ctx context.Context, bt domain.BloodType) ([]uint64, error) {
	if !bt.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unknown blood type")
	}
	return s.store.IDsByBloodType(ctx, bt)
}

// IDsByHospital returns the IDs of a hospital's requests in creation order.
func (s *Service) IDsByHospital(ctx context.Context, hospitalID string) ([]uint64, error) {
	return s.store.IDsByHospital(ctx, hospitalID)
}

// IDsByStatus returns request IDs currently in the given status.
func (s *Service) IDsByStatus(ctx context.Context, status domain.RequestStatus) ([]uint64, error) {
	return s.store.IDsByStatus(ctx, status)
}

// IDsByUrgency returns request IDs of an urgency in creation order.
func (s *Service) IDsByUrgency(ctx context.Context, urgency domain.Urgency) ([]uint64, error) {
	return s.store.IDsByUrgency(ctx, urgency)
}

func (s *Service) requireAdmin(ctx context.Context) error {
	admin, err := s.directory.Admin(ctx)
	if err != nil {
		return err
	}
	if requestcontext.CallerID(ctx) != admin {
		return dErrors.New(dErrors.CodeUnauthorized, "only the network admin may approve requests")
	}
	return nil
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
