// Package directory manages the network participants: the one-time admin
// bootstrap and the admin-curated allow-lists of blood banks and hospitals.
// It is a thin wrapper over the key-value substrate; the interesting rules
// (who may mutate, lifecycle guards) live in the Service.
package directory

import "context"

// Role distinguishes the two allow-lists.
type Role string

const (
	RoleBank     Role = "bank"
	RoleHospital Role = "hospital"
)

type Store interface {
	SetAdmin(ctx context.Context, admin string) error
	// Admin returns storage.ErrNotFound before initialization.
	Admin(ctx context.Context) (string, error)
	HasAdmin(ctx context.Context) (bool, error)
	Allow(ctx context.Context, role Role, id string) error
	Disallow(ctx context.Context, role Role, id string) error
	IsAllowed(ctx context.Context, role Role, id string) (bool, error)
}
