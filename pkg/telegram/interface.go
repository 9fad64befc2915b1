// Package telegram defines the client abstraction for delivering receipts
// and notifications to Telegram chats.
package telegram

import "context"

// Client is the abstraction over the Telegram destination. Chat references
// are either numeric chat IDs ("-1001234567890") or usernames ("@receipts").
//
//go:generate mockgen -package mocktelegram -source=interface.go -destination=mock/mocktelegram.go *
type Client interface {
	// SendDocument uploads data as a document with the given filename and
	// caption to chat.
	SendDocument(ctx context.Context, chat, filename string, data []byte, caption string) error
	// SendMessage sends a plain text message to chat.
	SendMessage(ctx context.Context, chat, text string) error
}
