package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lifebank/internal/storage"
	dErrors "lifebank/pkg/domain-errors"
	"lifebank/pkg/requestcontext"
)

// Service enforces the directory lifecycle: a single admin bootstrap,
// then admin-only mutation of the bank and hospital allow-lists. The
// admin is implicitly a member of both lists.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Initialize records the network admin. The caller must be the admin
// being installed, and the operation is one-shot.
func (s *Service) Initialize(ctx context.Context, admin string) error {
	if admin == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "admin id is required")
	}
	caller := requestcontext.CallerID(ctx)
	if caller != admin {
		return dErrors.New(dErrors.CodeUnauthorized, "only the admin may initialize the network")
	}

	initialized, err := s.store.HasAdmin(ctx)
	if err != nil {
		return fmt.Errorf("checking admin: %w", err)
	}
	if initialized {
		return dErrors.New(dErrors.CodeAlreadyInitialized, "network already initialized")
	}

	if err := s.store.SetAdmin(ctx, admin); err != nil {
		return fmt.Errorf("storing admin: %w", err)
	}
	s.logger.InfoContext(ctx, "network initialized", "admin", admin)
	return nil
}

// Initialized reports whether the admin bootstrap has happened.
func (s *Service) Initialized(ctx context.Context) (bool, error) {
	return s.store.HasAdmin(ctx)
}

// Admin returns the network admin, or the lifecycle error before bootstrap.
func (s *Service) Admin(ctx context.Context) (string, error) {
	admin, err := s.store.Admin(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return "", dErrors.New(dErrors.CodeNotInitialized, "network not initialized")
	}
	if err != nil {
		return "", fmt.Errorf("loading admin: %w", err)
	}
	return admin, nil
}

// Authorize adds id to the allow-list for role. Admin only.
func (s *Service) Authorize(ctx context.Context, role Role, id string) error {
	if id == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "participant id is required")
	}
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if err := s.store.Allow(ctx, role, id); err != nil {
		return fmt.Errorf("allowing %s: %w", role, err)
	}
	s.logger.InfoContext(ctx, "participant authorized", "role", string(role), "id", id)
	return nil
}

// Revoke removes id from the allow-list for role. Admin only. Revoking an
// id that was never authorized is a no-op.
func (s *Service) Revoke(ctx context.Context, role Role, id string) error {
	if id == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "participant id is required")
	}
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if err := s.store.Disallow(ctx, role, id); err != nil {
		return fmt.Errorf("disallowing %s: %w", role, err)
	}
	s.logger.InfoContext(ctx, "participant revoked", "role", string(role), "id", id)
	return nil
}

// IsAuthorized reports allow-list membership. The admin is always
// authorized for either role.
func (s *Service) IsAuthorized(ctx context.Context, role Role, id string) (bool, error) {
	admin, err := s.Admin(ctx)
	if err != nil {
		return false, err
	}
	if id == admin {
		return true, nil
	}
	return s.store.IsAllowed(ctx, role, id)
}

func (s *Service) requireAdmin(ctx context.Context) error {
	admin, err := s.Admin(ctx)
	if err != nil {
		return err
	}
	if requestcontext.CallerID(ctx) != admin {
		return dErrors.New(dErrors.CodeUnauthorized, "caller is not the network admin")
	}
	return nil
}
