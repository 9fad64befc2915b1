package evolution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"relay/pkg/serrors"
)

// maxMediaBytes caps a single media download. WAHA receipts are photos or
// small PDFs; anything larger is rejected rather than buffered.
const maxMediaBytes = 32 << 20

// HTTPClient talks to an Evolution API instance over HTTP and fulfills the
// Client interface. It is safe for concurrent use.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Ensure HTTPClient conforms to the Client interface at compile time.
var _ Client = (*HTTPClient)(nil)

// New constructs an HTTPClient for the instance at baseURL, authenticating
// every request with the given API key.
func New(httpClient *http.Client, baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// DownloadMedia fetches the blob behind mediaURL. Webhook payloads carry
// absolute URLs pointing back at the gateway; the API key header is attached
// since gateways require it for media routes.
func (c *HTTPClient) DownloadMedia(ctx context.Context, mediaURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "media not found: %s", mediaURL)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.RateLimited(retryAfter(resp.Header), "gateway rate limited media download")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return nil, fmt.Errorf("media download failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaBytes+1))
	if err != nil {
		return nil, fmt.Errorf("could not read media body: %w", err)
	}
	if len(data) > maxMediaBytes {
		return nil, serrors.With(serrors.ErrBadRequest, "media larger than %d bytes", maxMediaBytes)
	}

	return data, nil
}

// SendText posts a text message to the given chat JID via the gateway's
// sendText route.
func (c *HTTPClient) SendText(ctx context.Context, jid, text string) error {
	type textMessage struct {
		Text string `json:"text"`
	}
	type sendTextReq struct {
		Number      string      `json:"number"`
		TextMessage textMessage `json:"textMessage"`
	}

	body, err := json.Marshal(sendTextReq{Number: jid, TextMessage: textMessage{Text: text}})
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/message/sendText",
		bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return serrors.RateLimited(retryAfter(resp.Header), "gateway rate limited sendText")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return fmt.Errorf("sendText failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return nil
}

// retryAfter parses the Retry-After header as delay seconds, zero if absent
// or malformed.
func retryAfter(h http.Header) time.Duration {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0
	}

	return time.Duration(secs) * time.Second
}
