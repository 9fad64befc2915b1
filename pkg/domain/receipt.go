package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptID uniquely identifies a stored receipt.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ReceiptID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id ReceiptID) String() string { return uuid.UUID(id).String() }

// Receipt represents one payment receipt captured from a WhatsApp group.
// The media itself lives in the encrypted vault; MediaPath points at the
// fernet token on disk.
type Receipt struct {
	// ID is the unique identifier of the receipt.
	ID ReceiptID `json:"id"`

	// CustomerName is the name the receipt was captured under. It is taken
	// from the message caption or sender name and is the key used for fuzzy
	// query matching.
	CustomerName string `json:"customerName"`
	// MediaPath is the vault path of the encrypted receipt media.
	MediaPath string `json:"-"`
	// MediaName is the sanitized original filename of the media.
	MediaName string `json:"mediaName"`
	// SourceGroup is the WhatsApp group JID the receipt arrived from.
	SourceGroup string `json:"sourceGroup"`

	// Forwarded reports whether the receipt has been delivered to Telegram.
	// It flips only after a successful delivery.
	Forwarded bool `json:"forwarded"`

	// CreatedAt is the time the receipt was ingested.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the receipt was last changed.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks a soft delete; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
