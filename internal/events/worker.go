package events

import (
	"context"
	"fmt"
)

// AsyncSink decouples emission from slow downstream sinks. Publish enqueues;
// a Worker drains the inbox into the real sink.
type AsyncSink struct {
	inbox chan Event
}

func NewAsyncSink(buffer int) *AsyncSink {
	if buffer <= 0 {
		buffer = 256
	}
	return &AsyncSink{inbox: make(chan Event, buffer)}
}

func (s *AsyncSink) Publish(_ context.Context, event Event) error {
	select {
	case s.inbox <- event:
		return nil
	default:
		return fmt.Errorf("event buffer full, dropping %s", event.ID)
	}
}

// Inbox exposes the queue for a Worker.
func (s *AsyncSink) Inbox() <-chan Event {
	return s.inbox
}

// Worker consumes events from a channel and forwards them to a sink. It keeps
// background delivery testable without wiring queue implementations.
type Worker struct {
	sink  Sink
	inbox <-chan Event
}

func NewWorker(sink Sink, inbox <-chan Event) *Worker {
	return &Worker{sink: sink, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Publish(ctx, event); err != nil {
				return err
			}
		}
	}
}
