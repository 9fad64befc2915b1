// Package evolution defines the client abstraction for the Evolution API
// (WAHA) WhatsApp gateway: downloading message media and sending text back
// into groups.
package evolution

import "context"

// Client is the abstraction over the Evolution API instance the relay is
// attached to.
//
//go:generate mockgen -package mockevolution -source=interface.go -destination=mock/mockevolution.go *
type Client interface {
	// DownloadMedia fetches the media blob behind a webhook-provided URL.
	DownloadMedia(ctx context.Context, mediaURL string) ([]byte, error)
	// SendText posts a text message to the given chat JID.
	SendText(ctx context.Context, jid, text string) error
}
