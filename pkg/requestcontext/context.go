// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Values are set by middleware and consumed by services. Keeping this package
// free of net/http dependencies lets services import only what they need.
//
// Usage in services (read values):
//
//	caller := requestcontext.CallerID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithCallerID(ctx, "BANK_CENTRAL")
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	callerIDKey    struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyCallerID    = callerIDKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// CallerID retrieves the authenticated caller identity from the context.
// Returns "" if no caller has been verified.
func CallerID(ctx context.Context) string {
	if caller, ok := ctx.Value(ContextKeyCallerID).(string); ok {
		return caller
	}
	return ""
}

// WithCallerID injects a verified caller identity into the context.
func WithCallerID(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, ContextKeyCallerID, callerID)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped timestamp from the context. Every
// relative-time validation inside one operation sees this single value.
// Falls back to time.Now() for non-HTTP contexts (workers, CLI, tests that
// don't inject a clock).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for service unit
// tests that don't run the full HTTP middleware chain.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
