package directory

import (
	"context"

	"lifebank/internal/storage"
)

const (
	adminKey       = "directory:admin"
	allowKeyPrefix = "directory:allow:"
)

// KVStore persists the directory in the key-value substrate. Allow-list
// membership is key existence; the stored value carries no meaning.
type KVStore struct {
	kv storage.KV
}

func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

var _ Store = (*KVStore)(nil)

func (s *KVStore) SetAdmin(ctx context.Context, admin string) error {
	return s.kv.Put(ctx, adminKey, []byte(admin))
}

func (s *KVStore) Admin(ctx context.Context) (string, error) {
	value, err := s.kv.Get(ctx, adminKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *KVStore) HasAdmin(ctx context.Context) (bool, error) {
	return s.kv.Has(ctx, adminKey)
}

func (s *KVStore) Allow(ctx context.Context, role Role, id string) error {
	return s.kv.Put(ctx, allowKey(role, id), []byte("1"))
}

func (s *KVStore) Disallow(ctx context.Context, role Role, id string) error {
	return s.kv.Delete(ctx, allowKey(role, id))
}

func (s *KVStore) IsAllowed(ctx context.Context, role Role, id string) (bool, error) {
	return s.kv.Has(ctx, allowKey(role, id))
}

func allowKey(role Role, id string) string {
	return allowKeyPrefix + string(role) + ":" + id
}
