package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketMissingIsEmpty(t *testing.T) {
	kv := NewInMemoryKV()

	ids, err := GetBucket(context.Background(), kv, "bucket:empty")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestBucketAppendPreservesOrder(t *testing.T) {
	kv := NewInMemoryKV()
	ctx := context.Background()

	for _, id := range []uint64{3, 1, 2} {
		require.NoError(t, AppendToBucket(ctx, kv, "bucket:a", id))
	}

	ids, err := GetBucket(ctx, kv, "bucket:a")
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 1, 2}, ids)
}

func TestBucketRemoveFirstOccurrenceOnly(t *testing.T) {
	kv := NewInMemoryKV()
	ctx := context.Background()

	for _, id := range []uint64{1, 2, 1, 3} {
		require.NoError(t, AppendToBucket(ctx, kv, "bucket:a", id))
	}
	require.NoError(t, RemoveFromBucket(ctx, kv, "bucket:a", 1))

	ids, err := GetBucket(ctx, kv, "bucket:a")
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 1, 3}, ids)

	// Removing an absent ID is a no-op.
	require.NoError(t, RemoveFromBucket(ctx, kv, "bucket:a", 99))
	ids, err = GetBucket(ctx, kv, "bucket:a")
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 1, 3}, ids)
}

func TestNextCounterStartsAtOne(t *testing.T) {
	kv := NewInMemoryKV()
	ctx := context.Background()

	for want := uint64(1); want <= 3; want++ {
		got, err := NextCounter(ctx, kv, "counter:test")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
