package storage

import (
	"context"
	"time"

	"relay/pkg/domain"
)

// ReceiptPage groups a page of receipts with the cursor for the next page.
type ReceiptPage struct {
	// Receipts is the current page, newest first.
	Receipts []domain.Receipt
	// NextCursor is the timestamp cursor for the next page, nil when there is
	// no further page.
	NextCursor *time.Time
}

// ReceiptStorage defines the persistence operations for receipts.
type ReceiptStorage interface {
	// StoreReceipts inserts the given receipts and returns the stored rows as
	// they exist in the database, including generated fields.
	StoreReceipts(ctx context.Context, receipts ...domain.Receipt) ([]domain.Receipt, error)
	// ReceiptByID fetches a receipt by ID, excluding soft-deleted rows.
	// Returns nil when not found.
	ReceiptByID(ctx context.Context, id domain.ReceiptID) (*domain.Receipt, error)
	// UndeliveredReceipts returns every receipt not yet forwarded to
	// Telegram, excluding soft-deleted rows, oldest first.
	UndeliveredReceipts(ctx context.Context) ([]domain.Receipt, error)
	// MarkReceiptForwarded flips the forwarded flag of the given receipt and
	// returns the updated row, or nil when the receipt does not exist.
	MarkReceiptForwarded(ctx context.Context, id domain.ReceiptID) (*domain.Receipt, error)
	// Receipts returns a page of receipts created before the optional cursor,
	// newest first.
	Receipts(ctx context.Context, cursor time.Time, limit uint) (ReceiptPage, error)
	// DeleteReceipt soft-deletes a receipt and returns the deleted row, or
	// nil when it was not found.
	DeleteReceipt(ctx context.Context, id domain.ReceiptID) (*domain.Receipt, error)
}
