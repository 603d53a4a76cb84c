package requests

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"lifebank/internal/storage"
	"lifebank/pkg/domain"
)

const (
	requestCounterKey = "request:counter"

	requestKeyPrefix = "request:"
	typeIdxPrefix    = "request:idx:type:"
	hospIdxPrefix    = "request:idx:hospital:"
	statusIdxPrefix  = "request:idx:status:"
	urgencyIdxPrefix = "request:idx:urgency:"
)

// KVStore keeps request records and their index buckets in the
// key-value substrate.
type KVStore struct {
	kv storage.KV
}

func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

var _ Store = (*KVStore)(nil)

func (s *KVStore) NextID(ctx context.Context) (uint64, error) {
	return storage.NextCounter(ctx, s.kv, requestCounterKey)
}

func (s *KVStore) Put(ctx context.Context, req BloodRequest) error {
	raw, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding request %d: %w", req.ID, err)
	}
	return s.kv.Put(ctx, requestKey(req.ID), raw)
}

func (s *KVStore) Get(ctx context.Context, id uint64) (BloodRequest, error) {
	raw, err := s.kv.Get(ctx, requestKey(id))
	if err != nil {
		return BloodRequest{}, err
	}
	var req BloodRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return BloodRequest{}, fmt.Errorf("decoding request %d: %w", id, err)
	}
	return req, nil
}

func (s *KVStore) Index(ctx context.Context, req BloodRequest) error {
	keys := []string{
		typeIdxPrefix + string(req.BloodType),
		hospIdxPrefix + req.HospitalID,
		urgencyIdxPrefix + string(req.Urgency),
		statusIdxPrefix + string(req.Status),
	}
	for _, key := range keys {
		if err := storage.AppendToBucket(ctx, s.kv, key, req.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *KVStore) MoveStatus(ctx context.Context, id uint64, from, to domain.RequestStatus) error {
	if err := storage.RemoveFromBucket(ctx, s.kv, statusIdxPrefix+string(from), id); err != nil {
		return err
	}
	return storage.AppendToBucket(ctx, s.kv, statusIdxPrefix+string(to), id)
}

func (s *KVStore) IDsByBloodType(ctx context.Context, bt domain.BloodType) ([]uint64, error) {
	return storage.GetBucket(ctx, s.kv, typeIdxPrefix+string(bt))
}

func (s *KVStore) IDsByHospital(ctx context.Context, hospitalID string) ([]uint64, error) {
	return storage.GetBucket(ctx, s.kv, hospIdxPrefix+hospitalID)
}

func (s *KVStore) IDsByStatus(ctx context.Context, status domain.RequestStatus) ([]uint64, error) {
	return storage.GetBucket(ctx, s.kv, statusIdxPrefix+string(status))
}

func (s *KVStore) IDsByUrgency(ctx context.Context, urgency domain.Urgency) ([]uint64, error) {
	return storage.GetBucket(ctx, s.kv, urgencyIdxPrefix+string(urgency))
}

func requestKey(id uint64) string {
	return requestKeyPrefix + strconv.FormatUint(id, 10)
}
