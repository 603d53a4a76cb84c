package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"lifebank/internal/storage"
	"lifebank/pkg/domain"
)

const (
	unitCounterKey = "unit:counter"

	unitKeyPrefix   = "unit:"
	typeIdxPrefix   = "unit:idx:type:"
	bankIdxPrefix   = "unit:idx:bank:"
	statusIdxPrefix = "unit:idx:status:"
	donorIdxPrefix  = "unit:idx:donor:"
)

// KVStore keeps unit records and their index buckets in the key-value
// substrate, one record per key and one bucket per lookup value.
type KVStore struct {
	kv storage.KV
}

func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

var _ Store = (*KVStore)(nil)

func (s *KVStore) NextID(ctx context.Context) (uint64, error) {
	return storage.NextCounter(ctx, s.kv, unitCounterKey)
}

func (s *KVStore) Put(ctx context.Context, unit BloodUnit) error {
	raw, err := json.Marshal(unit)
	if err != nil {
		return fmt.Errorf("encoding unit %d: %w", unit.ID, err)
	}
	return s.kv.Put(ctx, unitKey(unit.ID), raw)
}

func (s *KVStore) Get(ctx context.Context, id uint64) (BloodUnit, error) {
	raw, err := s.kv.Get(ctx, unitKey(id))
	if err != nil {
		return BloodUnit{}, err
	}
	var unit BloodUnit
	if err := json.Unmarshal(raw, &unit); err != nil {
		return BloodUnit{}, fmt.Errorf("decoding unit %d: %w", id, err)
	}
	return unit, nil
}

func (s *KVStore) Index(ctx context.Context, unit BloodUnit) error {
	keys := []string{
		typeIdxPrefix + string(unit.BloodType),
		bankIdxPrefix + unit.BankID,
		statusIdxPrefix + string(unit.Status),
	}
	if unit.DonorID != nil {
		keys = append(keys, donorIdxPrefix+*unit.DonorID)
	}
	for _, key := range keys {
		if err := storage.AppendToBucket(ctx, s.kv, key, unit.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *KVStore) IDsByBloodType(ctx context.Context, bt domain.BloodType) ([]uint64, error) {
	return storage.GetBucket(ctx, s.kv, typeIdxPrefix+string(bt))
}

func (s *KVStore) IDsByBank(ctx context.Context, bankID string) ([]uint64, error) {
	return storage.GetBucket(ctx, s.kv, bankIdxPrefix+bankID)
}

func (s *KVStore) IDsByStatus(ctx context.Context, status domain.UnitStatus) ([]uint64, error) {
	return storage.GetBucket(ctx, s.kv, statusIdxPrefix+string(status))
}

func (s *KVStore) IDsByDonor(ctx context.Context, donorID string) ([]uint64, error) {
	return storage.GetBucket(ctx, s.kv, donorIdxPrefix+donorID)
}

func unitKey(id uint64) string {
	return unitKeyPrefix + strconv.FormatUint(id, 10)
}
