package handler

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"relay/internal/relay"
	"relay/pkg/logger"
	"relay/pkg/metrics"
)

// Webhook handles message deliveries from the Evolution (WAHA) gateway.
type Webhook struct {
	deps Deps

	// secret guards the endpoint; empty disables the check.
	secret string
}

// NewWebhook constructs the webhook handler.
func NewWebhook(deps Deps, secret string) *Webhook {
	return &Webhook{deps: deps, secret: secret}
}

// mediaInfo describes downloadable media. Gateways disagree on the URL field
// name, so all known variants are accepted.
type mediaInfo struct {
	URL      string `json:"url"`
	MediaURL string `json:"mediaUrl"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

func (m *mediaInfo) downloadURL() string {
	if m == nil {
		return ""
	}
	for _, u := range []string{m.URL, m.MediaURL, m.FileURL} {
		if u != "" {
			return u
		}
	}

	return ""
}

// webhookPayload is the liberal shape of a gateway delivery. Different WAHA
// setups place the chat ID, text and media under different keys; every field
// here is optional and the handler picks the first one present.
type webhookPayload struct {
	ChatID      string `json:"chatId"`
	ChatIDSnake string `json:"chat_id"`
	From        string `json:"from"`
	Type        string `json:"type"`

	Text string `json:"text"`
	Body string `json:"body"`

	CustomerName string `json:"customer_name"`
	SenderName   string `json:"senderName"`

	Media   *mediaInfo `json:"media"`
	Message struct {
		Text    string     `json:"text"`
		Caption string     `json:"caption"`
		Media   *mediaInfo `json:"media"`
	} `json:"message"`
}

func (p *webhookPayload) group() string {
	for _, id := range []string{p.ChatID, p.ChatIDSnake, p.From} {
		if id != "" {
			return id
		}
	}

	return ""
}

func (p *webhookPayload) text() string {
	for _, t := range []string{p.Text, p.Body, p.Message.Text, p.Message.Caption} {
		if t != "" {
			return t
		}
	}

	return ""
}

func (p *webhookPayload) customerName() string {
	for _, n := range []string{p.CustomerName, p.SenderName, p.text()} {
		if n != "" {
			return n
		}
	}

	return ""
}

func (p *webhookPayload) media() *mediaInfo {
	if p.Media != nil {
		return p.Media
	}

	return p.Message.Media
}

// ServeHTTP ingests one gateway delivery. The secret header is checked
// before the payload is read at all. Media messages become receipts, text
// messages become customer-name queries; both respond 200 so the gateway
// does not redeliver.
func (h *Webhook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.secret != "" {
		received := r.Header.Get("X-Webhook-Secret")
		if subtle.ConstantTimeCompare([]byte(received), []byte(h.secret)) != 1 {
			logger.Warn(r.Context(), "invalid webhook secret")
			metrics.WebhooksReceived.WithLabelValues("unauthorized").Inc()
			respondJSON(w, http.StatusUnauthorized, map[string]string{"status": "unauthorized"})

			return
		}
	}

	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		metrics.WebhooksReceived.WithLabelValues("bad_payload").Inc()
		respondJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Detail: "invalid payload"})

		return
	}

	ctx := logger.WithFields(r.Context(), zap.String("group", payload.group()))

	if media := payload.media(); media != nil {
		if media.downloadURL() == "" {
			logger.Info(ctx, "media object present but no URL found")
			metrics.WebhooksReceived.WithLabelValues("ignored").Inc()
			respondJSON(w, http.StatusOK, map[string]string{"status": "ignored", "reason": "media has no url"})

			return
		}

		receipt, err := h.deps.Relay.IngestMedia(ctx, relay.MediaMessage{
			SourceGroup:  payload.group(),
			CustomerName: payload.customerName(),
			FileName:     media.FileName,
			MediaURL:     media.downloadURL(),
		})
		if err != nil {
			h.respondIngestError(w, r, err)

			return
		}

		metrics.WebhooksReceived.WithLabelValues("media").Inc()
		respondJSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"receiptId": receipt.ID.String(),
		})

		return
	}

	if payload.text() == "" {
		metrics.WebhooksReceived.WithLabelValues("ignored").Inc()
		respondJSON(w, http.StatusOK, map[string]string{"status": "ignored", "reason": "no media or text"})

		return
	}

	query, err := h.deps.Relay.IngestQuery(ctx, relay.QueryMessage{
		QueryGroup:   payload.group(),
		CustomerName: payload.text(),
	})
	if err != nil {
		h.respondIngestError(w, r, err)

		return
	}

	metrics.WebhooksReceived.WithLabelValues("query").Inc()
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"queryId": query.ID.String(),
		"match":   string(query.Status),
	})
}

// respondIngestError acknowledges unmonitored groups with 200 so the gateway
// stops redelivering; everything else goes through the usual error mapping
// and is flagged to the admin chat.
func (h *Webhook) respondIngestError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, relay.ErrGroupNotMonitored) {
		logger.Info(r.Context(), "message from non-monitored group, ignoring")
		metrics.WebhooksReceived.WithLabelValues("ignored").Inc()
		respondJSON(w, http.StatusOK, map[string]string{"status": "ignored", "reason": "group not monitored"})

		return
	}

	metrics.WebhooksReceived.WithLabelValues("error").Inc()
	if notifyErr := h.deps.Relay.NotifyAdmin(r.Context(),
		"Webhook handler error: "+err.Error()); notifyErr != nil {
		logger.Error(r.Context(), "could not notify admin", zap.Error(notifyErr))
	}

	respondError(w, r, err)
}
