// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, payload signing,
// HTTP request decoding and response writing, HTTP client initialization and
// identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDHeader is the HTTP header carrying the request trace identifier.
const TraceIDHeader = "X-Trace-ID"

// TraceIDCtxKey is the key used to store the request trace identifier in the
// context. The HTTP middleware stores it and the client adapter forwards it
// in the X-Trace-ID header.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace identifier from the context.
//
// Returns ok == false when the value is missing, empty or not a string.
//
// Example usage:
//
//	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
//	    req.SetHeader("X-Trace-ID", traceID)
//	}
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
