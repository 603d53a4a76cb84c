package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// The substrate only answers point lookups, so listings are maintained
// as buckets: JSON-encoded ID slices in insertion order, rewritten on
// every change. Counters are decimal strings under a single key.

// GetBucket loads the ID bucket under key. A missing bucket is empty.
func GetBucket(ctx context.Context, kv KV, key string) ([]uint64, error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []uint64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decoding bucket %q: %w", key, err)
	}
	return ids, nil
}

func putBucket(ctx context.Context, kv KV, key string, ids []uint64) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding bucket %q: %w", key, err)
	}
	return kv.Put(ctx, key, raw)
}

// AppendToBucket adds id at the end of the bucket under key.
func AppendToBucket(ctx context.Context, kv KV, key string, id uint64) error {
	ids, err := GetBucket(ctx, kv, key)
	if err != nil {
		return err
	}
	return putBucket(ctx, kv, key, append(ids, id))
}

// RemoveFromBucket removes the first occurrence of id from the bucket
// under key, preserving the order of the remaining entries. Removing an
// absent id is a no-op.
func RemoveFromBucket(ctx context.Context, kv KV, key string, id uint64) error {
	ids, err := GetBucket(ctx, kv, key)
	if err != nil {
		return err
	}
	for i, existing := range ids {
		if existing == id {
			return putBucket(ctx, kv, key, append(ids[:i], ids[i+1:]...))
		}
	}
	return nil
}

// NextCounter advances the counter under key and returns the new value.
// The first allocation returns 1.
func NextCounter(ctx context.Context, kv KV, key string) (uint64, error) {
	var current uint64
	raw, err := kv.Get(ctx, key)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return 0, err
	default:
		current, err = strconv.ParseUint(string(raw), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("decoding counter %q: %w", key, err)
		}
	}
	next := current + 1
	if err := kv.Put(ctx, key, []byte(strconv.FormatUint(next, 10))); err != nil {
		return 0, err
	}
	return next, nil
}
