package relay

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// Delivery job kinds.
const (
	// DeliverDocument sends a receipt's decrypted media as a document.
	DeliverDocument = "document"
	// DeliverMessage sends a plain text notification.
	DeliverMessage = "message"
)

// DeliveryArgs is the payload of a Telegram delivery job submitted to River.
// ReceiptID is part of the unique key so a receipt has at most one live
// delivery job at a time.
type DeliveryArgs struct {
	// Mode is DeliverDocument or DeliverMessage.
	Mode string `json:"mode" river:"unique"`
	// ReceiptID identifies the receipt to deliver; empty for plain messages.
	ReceiptID string `json:"receiptId" river:"unique"`
	// Chat is the Telegram destination ("@username" or numeric chat ID).
	Chat string `json:"chat"`
	// Caption accompanies document deliveries.
	Caption string `json:"caption,omitempty"`
	// Text is the body of message deliveries.
	Text string `json:"text,omitempty"`

	// maxAttempts bounds River retries for this job.
	maxAttempts int
	// uniquePeriod is the lookback window for deduplicating document jobs.
	uniquePeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the
// delivery worker.
func (args DeliveryArgs) Kind() string { return "TelegramDeliveryJob" }

// InsertOpts controls enqueueing: retry budget for every job, plus
// per-receipt uniqueness across live states for document deliveries so the
// same receipt is never queued twice.
func (args DeliveryArgs) InsertOpts() river.InsertOpts {
	opts := river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
	if args.Mode == DeliverDocument {
		opts.UniqueOpts = river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		}
	}

	return opts
}
