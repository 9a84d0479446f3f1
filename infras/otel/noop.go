package otel

import "context"

type noopOtel struct{}

type noopScope struct{}

// NewNoop returns an Otel that records nothing. Used by the one-shot export
// CLI, which has no collector to talk to.
func NewNoop() Otel {
	return &noopOtel{}
}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, Scope) {
	return ctx, noopScope{}
}

func (noopScope) End()                         {}
func (noopScope) TraceError(error)             {}
func (noopScope) TraceIfError(error)           {}
func (noopScope) AddEvent(string)              {}
func (noopScope) SetAttribute(string, any)     {}
func (noopScope) SetAttributes(map[string]any) {}
