package domain

import "time"

// Event actions recorded by the relay. The set mirrors the audit trail the
// service writes alongside state changes.
const (
	EventReceiptStored    = "receipt_stored"
	EventReceiptEnqueued  = "receipt_enqueued"
	EventReceiptDelivered = "receipt_delivered"
	EventQueryMatched     = "query_matched"
	EventQueryUnmatched   = "query_unmatched"
	EventWebhookError     = "webhook_error"
	EventDeliveryError    = "delivery_error"
)

// Event is one append-only audit record.
type Event struct {
	// ID is the database-assigned sequence number.
	ID int64 `json:"id"`
	// Action names what happened; see the Event* constants.
	Action string `json:"action"`
	// Metadata carries free-form key/value context for the action.
	Metadata map[string]string `json:"metadata,omitempty"`
	// CreatedAt is the time the event was recorded.
	CreatedAt time.Time `json:"createdAt"`
}
