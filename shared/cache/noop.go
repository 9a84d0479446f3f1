package cache

import "context"

type noopCache struct{}

// NewNoop returns a RedisCache that never hits. The one-shot export CLI runs
// a single pipeline pass, so wiring a real redis there buys nothing.
func NewNoop() RedisCache {
	return &noopCache{}
}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }

func (noopCache) Get(_ context.Context, _ string, _ any) error { return Nil }

func (noopCache) Delete(_ context.Context, _ string) error { return nil }

func (noopCache) Clear(_ context.Context, _ string) error { return nil }
