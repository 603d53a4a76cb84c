package events

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifebank/pkg/domain"
	"lifebank/pkg/requestcontext"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEmitDeliversToAllSinks(t *testing.T) {
	first := NewInMemorySink()
	second := NewInMemorySink()
	pub := NewPublisher(discardLogger(), first, second)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), at)

	pub.Emit(ctx, KindUnitRegistered, UnitRegistered{
		UnitID:     1,
		BankID:     "BANK_CENTRAL",
		BloodType:  domain.BloodTypeONegative,
		QuantityML: 450,
	})

	for _, sink := range []*InMemorySink{first, second} {
		events := sink.Events()
		require.Len(t, events, 1)
		assert.Equal(t, KindUnitRegistered, events[0].Kind)
		assert.Equal(t, at, events[0].Timestamp)
		assert.NotEmpty(t, events[0].ID)

		payload, err := Decode[UnitRegistered](events[0], KindUnitRegistered)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), payload.UnitID)
		assert.Equal(t, "BANK_CENTRAL", payload.BankID)
		assert.Equal(t, domain.BloodTypeONegative, payload.BloodType)
	}
}

func TestEmitSinkFailureDoesNotPanic(t *testing.T) {
	pub := NewPublisher(discardLogger(), failingSink{})

	// The mutation has already committed; a sink failure must be swallowed.
	pub.Emit(context.Background(), KindStatusChanged, StatusChanged{
		RequestID: 4,
		OldStatus: domain.RequestStatusPending,
		NewStatus: domain.RequestStatusApproved,
	})
}

func TestDecodeRejectsKindMismatch(t *testing.T) {
	sink := NewInMemorySink()
	pub := NewPublisher(discardLogger(), sink)

	pub.Emit(context.Background(), KindRequestCreated, RequestCreated{RequestID: 9})

	events := sink.Events()
	require.Len(t, events, 1)
	_, err := Decode[UnitRegistered](events[0], KindUnitRegistered)
	assert.Error(t, err)
}

func TestByKindFilters(t *testing.T) {
	sink := NewInMemorySink()
	pub := NewPublisher(discardLogger(), sink)

	pub.Emit(context.Background(), KindRequestCreated, RequestCreated{RequestID: 1})
	pub.Emit(context.Background(), KindStatusChanged, StatusChanged{RequestID: 1})
	pub.Emit(context.Background(), KindRequestCreated, RequestCreated{RequestID: 2})

	assert.Len(t, sink.ByKind(KindRequestCreated), 2)
	assert.Len(t, sink.ByKind(KindStatusChanged), 1)
}

func TestWorkerDrainsInbox(t *testing.T) {
	async := NewAsyncSink(8)
	target := NewInMemorySink()
	worker := NewWorker(target, async.Inbox())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.NoError(t, async.Publish(ctx, Event{ID: "a", Kind: KindUnitRegistered}))
	require.NoError(t, async.Publish(ctx, Event{ID: "b", Kind: KindRequestCreated}))

	require.Eventually(t, func() bool {
		return len(target.Events()) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

type failingSink struct{}

func (failingSink) Publish(context.Context, Event) error {
	return assert.AnError
}
