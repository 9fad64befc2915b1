package storage

import (
	"context"
	"time"

	"relay/pkg/domain"
)

// QueryPage groups a page of queries with the cursor for the next page.
type QueryPage struct {
	Queries    []domain.Query
	NextCursor *time.Time
}

// QueryStorage defines the persistence operations for customer-name queries.
type QueryStorage interface {
	// StoreQuery inserts a query and returns the stored row.
	StoreQuery(ctx context.Context, query domain.Query) (*domain.Query, error)
	// Queries returns a page of queries created before the optional cursor,
	// newest first.
	Queries(ctx context.Context, cursor time.Time, limit uint) (QueryPage, error)
}
