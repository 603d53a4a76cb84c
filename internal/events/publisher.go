package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"lifebank/pkg/requestcontext"
)

// Sink receives events after a successful commit. Implementations must treat
// Publish as fire-and-forget from the domain's point of view.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Publisher fans committed events out to the configured sinks. Sink failures
// are logged, never surfaced: the state mutation has already committed and
// must not be reported as failed.
type Publisher struct {
	logger *slog.Logger
	sinks  []Sink
}

func NewPublisher(logger *slog.Logger, sinks ...Sink) *Publisher {
	return &Publisher{logger: logger, sinks: sinks}
}

// Emit stamps the envelope and hands it to every sink. The timestamp comes
// from the request-scoped clock so it matches the committed record.
func (p *Publisher) Emit(ctx context.Context, kind Kind, payload any) {
	if p == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "event payload marshal failed",
			"kind", kind,
			"error", err,
		)
		return
	}
	event := Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Timestamp: requestcontext.Now(ctx),
		Payload:   raw,
	}
	for _, sink := range p.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			p.logger.ErrorContext(ctx, "event publish failed",
				"kind", kind,
				"event_id", event.ID,
				"error", err,
			)
		}
	}
}

// Decode unmarshals the payload of an event into out, checking the kind.
func Decode[T any](event Event, kind Kind) (T, error) {
	var out T
	if event.Kind != kind {
		return out, fmt.Errorf("event kind %q, want %q", event.Kind, kind)
	}
	if err := json.Unmarshal(event.Payload, &out); err != nil {
		return out, fmt.Errorf("decode %s payload: %w", kind, err)
	}
	return out, nil
}
