package relay

import (
	"context"

	"relay/pkg/domain"
)

// MediaMessage is a webhook-delivered message carrying downloadable media.
type MediaMessage struct {
	// SourceGroup is the WhatsApp group JID the message arrived from.
	SourceGroup string
	// CustomerName is the name to file the receipt under (caption or sender).
	CustomerName string
	// FileName is the client-supplied media filename; may be empty.
	FileName string
	// MediaURL is the gateway URL the media can be downloaded from.
	MediaURL string
}

// QueryMessage is a webhook-delivered text message treated as a
// customer-name lookup.
type QueryMessage struct {
	// QueryGroup is the WhatsApp group JID the message arrived from.
	QueryGroup string
	// CustomerName is the text being matched against stored receipts.
	CustomerName string
}

// Service is the relay's core: it ingests webhook messages and exposes the
// read operations the operator API serves.
//
//go:generate mockgen -package mockrelay -source=interface.go -destination=mock/mockrelay.go *
type Service interface {
	// IngestMedia downloads, encrypts and stores a receipt, then enqueues its
	// Telegram delivery. The receipt row and delivery job commit atomically.
	IngestMedia(ctx context.Context, msg MediaMessage) (*domain.Receipt, error)
	// IngestQuery records a customer-name query, matches it against
	// undelivered receipts, and enqueues delivery of the match if any.
	IngestQuery(ctx context.Context, msg QueryMessage) (*domain.Query, error)

	// Receipt returns one receipt by ID.
	Receipt(ctx context.Context, id domain.ReceiptID) (*domain.Receipt, error)
	// OpenMedia returns a receipt together with its decrypted media bytes.
	OpenMedia(ctx context.Context, id domain.ReceiptID) (*domain.Receipt, []byte, error)
	// DeleteReceipt soft-deletes a receipt.
	DeleteReceipt(ctx context.Context, id domain.ReceiptID) error
	// Receipts lists receipts with RFC3339 cursor pagination.
	Receipts(ctx context.Context, cursor string, limit uint) ([]domain.Receipt, string, error)
	// Queries lists recorded queries with RFC3339 cursor pagination.
	Queries(ctx context.Context, cursor string, limit uint) ([]domain.Query, string, error)
	// Events lists the most recent audit events.
	Events(ctx context.Context, limit uint) ([]domain.Event, error)

	// NotifyAdmin enqueues a plain-text notification to the admin chat.
	NotifyAdmin(ctx context.Context, text string) error
}
