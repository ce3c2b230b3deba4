package application

import "context"

// UpdateDedup handles short-lived deduplication of inbound chat updates.
type UpdateDedup interface {
	// TryReserve returns true if key was absent and is now reserved.
	// Returns false if the key already exists (duplicate).
	TryReserve(ctx context.Context, key string) (bool, error)
}

// NoopDedup always reserves; useful for tests/dev when Redis is disabled.
type NoopDedup struct{}

func (NoopDedup) TryReserve(context.Context, string) (bool, error) { return true, nil }
