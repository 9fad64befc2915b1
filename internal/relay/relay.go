// Package relay implements the core service: ingesting webhook messages from
// the WhatsApp gateway, storing encrypted receipts, matching customer-name
// queries, and enqueueing Telegram deliveries.
package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"relay/internal/config"
	"relay/pkg/domain"
	"relay/pkg/evolution"
	"relay/pkg/logger"
	"relay/pkg/match"
	"relay/pkg/metrics"
	"relay/pkg/serrors"
	"relay/pkg/storage"
	"relay/pkg/vault"
)

// ErrGroupNotMonitored marks messages from groups outside the monitored set.
// The webhook acknowledges these without ingesting them.
var ErrGroupNotMonitored = serrors.NewKind("GROUP_NOT_MONITORED")

// Options configure ingest and delivery behavior, typically derived from the
// application config.
type Options struct {
	// MonitoredGroups is the whitelist of group JIDs; empty accepts all.
	MonitoredGroups []string
	// ForwardChat is the Telegram destination for receipt documents.
	ForwardChat string
	// AdminChat is the Telegram destination for notifications.
	AdminChat string
	// MatchThreshold is the minimum score (0-100) for a query match.
	MatchThreshold int
	// MaxDeliveryAttempts bounds River retries per delivery job.
	MaxDeliveryAttempts int
	// DeliveryUniquePeriod is the deduplication window for document jobs.
	DeliveryUniquePeriod time.Duration
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MonitoredGroups:      cfg.Webhook.MonitoredGroups,
		ForwardChat:          cfg.Telegram.ForwardChat,
		AdminChat:            cfg.Telegram.AdminChat,
		MatchThreshold:       cfg.Relay.MatchThreshold,
		MaxDeliveryAttempts:  cfg.Relay.MaxDeliveryAttempts,
		DeliveryUniquePeriod: cfg.Relay.DeliveryUniquePeriod,
	}
}

// service is the concrete Service implementation.
type service struct {
	options   Options
	storage   storage.Storage
	vault     *vault.Vault
	evolution evolution.Client
}

// New creates a Service backed by the given storage, media vault and
// gateway client.
func New(strg storage.Storage, v *vault.Vault, evo evolution.Client, options Options) Service {
	return &service{
		options:   options,
		storage:   strg,
		vault:     v,
		evolution: evo,
	}
}

func (s *service) IngestMedia(ctx context.Context, msg MediaMessage) (*domain.Receipt, error) {
	group, err := NormalizeJID(msg.SourceGroup)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid source group")
	}
	if !monitored(group, s.options.MonitoredGroups) {
		return nil, serrors.With(ErrGroupNotMonitored, "group %s is not monitored", group)
	}

	name := msg.CustomerName
	if name == "" {
		name = "unknown"
	}

	data, err := s.evolution.DownloadMedia(ctx, msg.MediaURL)
	if err != nil {
		return nil, fmt.Errorf("could not download media: %w", err)
	}

	// The ID is generated up front so the vault file carries it: media files
	// stay attributable even if the database insert below fails.
	id := domain.ReceiptID(uuid.New())
	fileName := msg.FileName
	if fileName == "" {
		fileName = "receipt.bin"
	}
	mediaPath, err := s.vault.Save(id.String(), fileName, data)
	if err != nil {
		return nil, fmt.Errorf("could not store media: %w", err)
	}

	var receipt *domain.Receipt
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreReceipts(ctx, domain.Receipt{
			ID:           id,
			CustomerName: name,
			MediaPath:    mediaPath,
			MediaName:    vault.SanitizeFilename(fileName),
			SourceGroup:  group,
		})
		if err != nil {
			return fmt.Errorf("could not store receipt: %w", err)
		}
		receipt = &stored[0]

		if err := tx.LogEvent(ctx, domain.EventReceiptStored, map[string]string{
			"receiptId": receipt.ID.String(),
			"group":     group,
		}); err != nil {
			return fmt.Errorf("could not log event: %w", err)
		}

		caption := fmt.Sprintf("Receipt: %s\nsource_group: %s\nreceipt_id: %s", name, group, receipt.ID)

		return s.enqueueDocument(ctx, tx, receipt.ID, caption)
	}); err != nil {
		return nil, fmt.Errorf("could not ingest media: %w", err)
	}

	metrics.ReceiptsStored.Inc()
	logger.Info(ctx, "receipt ingested",
		zap.String("receiptId", receipt.ID.String()),
		zap.String("group", group))

	return receipt, nil
}

func (s *service) IngestQuery(ctx context.Context, msg QueryMessage) (*domain.Query, error) {
	group, err := NormalizeJID(msg.QueryGroup)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid query group")
	}
	if !monitored(group, s.options.MonitoredGroups) {
		return nil, serrors.With(ErrGroupNotMonitored, "group %s is not monitored", group)
	}
	if msg.CustomerName == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "empty query text")
	}

	candidates, err := s.storage.UndeliveredReceipts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load undelivered receipts: %w", err)
	}

	idx, score := match.Best(msg.CustomerName, candidates)
	metrics.MatchScores.Observe(float64(score))

	query := domain.Query{
		ID:           domain.QueryID(uuid.New()),
		CustomerName: msg.CustomerName,
		QueryGroup:   group,
		Score:        score,
		Status:       domain.QueryStatusUnmatched,
	}

	if idx >= 0 && score >= s.options.MatchThreshold {
		matchedID := candidates[idx].ID
		query.MatchedReceiptID = &matchedID
		query.Status = domain.QueryStatusMatched
	}

	var stored *domain.Query
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err = tx.StoreQuery(ctx, query)
		if err != nil {
			return fmt.Errorf("could not store query: %w", err)
		}

		if query.Status != domain.QueryStatusMatched {
			return tx.LogEvent(ctx, domain.EventQueryUnmatched, map[string]string{
				"queryId": stored.ID.String(),
				"score":   fmt.Sprint(score),
			})
		}

		if err := tx.LogEvent(ctx, domain.EventQueryMatched, map[string]string{
			"queryId":   stored.ID.String(),
			"receiptId": query.MatchedReceiptID.String(),
			"score":     fmt.Sprint(score),
		}); err != nil {
			return fmt.Errorf("could not log event: %w", err)
		}

		caption := fmt.Sprintf("Matched receipt %s for query %q (score %d)",
			query.MatchedReceiptID, msg.CustomerName, score)

		return s.enqueueDocument(ctx, tx, *query.MatchedReceiptID, caption)
	}); err != nil {
		return nil, fmt.Errorf("could not ingest query: %w", err)
	}

	logger.Info(ctx, "query ingested",
		zap.String("queryId", stored.ID.String()),
		zap.String("status", string(stored.Status)),
		zap.Int("score", score))

	return stored, nil
}

// enqueueDocument adds a delivery job for the given receipt within tx.
// A deduplicated insert is fine: the live job will deliver the receipt.
func (s *service) enqueueDocument(ctx context.Context, tx storage.AllStorage,
	id domain.ReceiptID, caption string) error {
	added, err := tx.AddJob(ctx, DeliveryArgs{
		Mode:         DeliverDocument,
		ReceiptID:    id.String(),
		Chat:         s.options.ForwardChat,
		Caption:      caption,
		maxAttempts:  s.options.MaxDeliveryAttempts,
		uniquePeriod: s.options.DeliveryUniquePeriod,
	}, nil)
	if err != nil {
		return fmt.Errorf("could not add delivery job: %w", err)
	}
	if !added {
		logger.Debug(ctx, "delivery job already queued", zap.String("receiptId", id.String()))

		return nil
	}

	return tx.LogEvent(ctx, domain.EventReceiptEnqueued, map[string]string{
		"receiptId": id.String(),
	})
}

func (s *service) Receipt(ctx context.Context, id domain.ReceiptID) (*domain.Receipt, error) {
	receipt, err := s.storage.ReceiptByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get receipt: %w", err)
	}
	if receipt == nil {
		return nil, serrors.With(serrors.ErrNotFound, "receipt not found")
	}

	return receipt, nil
}

func (s *service) OpenMedia(ctx context.Context, id domain.ReceiptID) (*domain.Receipt, []byte, error) {
	receipt, err := s.Receipt(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.vault.Open(receipt.MediaPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open media: %w", err)
	}

	return receipt, data, nil
}

func (s *service) DeleteReceipt(ctx context.Context, id domain.ReceiptID) error {
	deleted, err := s.storage.DeleteReceipt(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete receipt: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "receipt not found")
	}

	return nil
}

func (s *service) Receipts(ctx context.Context, cursor string, limit uint) ([]domain.Receipt, string, error) {
	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := s.storage.Receipts(ctx, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list receipts: %w", err)
	}

	return page.Receipts, formatCursor(page.NextCursor), nil
}

func (s *service) Queries(ctx context.Context, cursor string, limit uint) ([]domain.Query, string, error) {
	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := s.storage.Queries(ctx, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list queries: %w", err)
	}

	return page.Queries, formatCursor(page.NextCursor), nil
}

func (s *service) Events(ctx context.Context, limit uint) ([]domain.Event, error) {
	events, err := s.storage.Events(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not list events: %w", err)
	}

	return events, nil
}

func (s *service) NotifyAdmin(ctx context.Context, text string) error {
	if s.options.AdminChat == "" {
		return nil
	}

	if _, err := s.storage.AddJob(ctx, DeliveryArgs{
		Mode:        DeliverMessage,
		Chat:        s.options.AdminChat,
		Text:        text,
		maxAttempts: s.options.MaxDeliveryAttempts,
	}, nil); err != nil {
		return fmt.Errorf("could not enqueue admin notification: %w", err)
	}

	return nil
}

func parseCursor(cursor string) (time.Time, error) {
	if cursor == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, cursor)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return t, nil
}

func formatCursor(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(time.RFC3339)
}
