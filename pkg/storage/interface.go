// Package storage defines the persistence interfaces the relay relies on.
// It abstracts row storage and transaction management so backends
// (PostgreSQL in production) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is the composite of every domain-specific storage capability the
// relay needs.
type AllStorage interface {
	ReceiptStorage
	QueryStorage
	EventStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open database transaction. It
// becomes unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction.
	Commit() error
	// Rollback aborts the transaction.
	Rollback() error
}

// Storage is a non-transactional storage handle that can open transactions
// and manages the underlying connection lifecycle.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin opens a transaction and returns a handle bound to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx opens a transaction, runs cb with it, and commits on success or
	// rolls back when cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
