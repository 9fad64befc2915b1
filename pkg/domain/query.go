package domain

import (
	"time"

	"github.com/google/uuid"
)

// QueryID uniquely identifies a customer-name query.
type QueryID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id QueryID) String() string { return uuid.UUID(id).String() }

// QueryStatus represents the outcome of matching a query against stored receipts.
type QueryStatus string

const (
	// QueryStatusReceived indicates the query was recorded but not matched yet.
	QueryStatusReceived QueryStatus = "RECEIVED"
	// QueryStatusMatched indicates a receipt scored above the match threshold.
	QueryStatusMatched QueryStatus = "MATCHED"
	// QueryStatusUnmatched indicates no receipt reached the match threshold.
	QueryStatusUnmatched QueryStatus = "UNMATCHED"
)

// Query represents a text message treated as a customer-name lookup against
// undelivered receipts.
type Query struct {
	// ID is the unique identifier of the query.
	ID QueryID `json:"id"`

	// CustomerName is the text the sender asked about.
	CustomerName string `json:"customerName"`
	// QueryGroup is the WhatsApp group JID the query arrived from.
	QueryGroup string `json:"queryGroup"`

	// MatchedReceiptID is set when a receipt matched; nil otherwise.
	MatchedReceiptID *ReceiptID `json:"matchedReceiptId,omitempty"`
	// Score is the token-sort ratio of the best candidate (0-100).
	Score int `json:"score"`
	// Status is the matching outcome.
	Status QueryStatus `json:"status"`

	// CreatedAt is the time the query was recorded.
	CreatedAt time.Time `json:"createdAt"`
}
