package storage

import (
	"context"

	"relay/pkg/domain"
)

// EventStorage defines the append-only audit trail operations.
type EventStorage interface {
	// LogEvent appends one audit record.
	LogEvent(ctx context.Context, action string, metadata map[string]string) error
	// Events returns the most recent events, newest first, up to limit.
	Events(ctx context.Context, limit uint) ([]domain.Event, error)
}
