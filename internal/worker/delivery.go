package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"relay/internal/relay"
	"relay/pkg/domain"
	"relay/pkg/logger"
	"relay/pkg/metrics"
	"relay/pkg/serrors"
	"relay/pkg/storage"
	"relay/pkg/telegram"
	"relay/pkg/vault"
)

// DeliveryWorker is a River worker that delivers queued receipts and
// notifications to Telegram.
//
// Document jobs re-read the receipt before sending: a receipt soft-deleted
// after enqueue cancels the job instead of being delivered. The forwarded
// flag is flipped only after Telegram accepted the upload, inside the same
// transaction as the audit record, so a crash between send and commit can
// only cause a duplicate delivery, never a lost one.
//
// Telegram's flood control is honored by snoozing the job for the
// server-provided retry-after instead of burning a retry attempt.
type DeliveryWorker struct {
	river.WorkerDefaults[relay.DeliveryArgs]

	storage  storage.Storage
	vault    *vault.Vault
	telegram telegram.Client
}

// NewDeliveryWorker constructs a DeliveryWorker.
func NewDeliveryWorker(strg storage.Storage, v *vault.Vault, tg telegram.Client) *DeliveryWorker {
	return &DeliveryWorker{
		storage:  strg,
		vault:    v,
		telegram: tg,
	}
}

// Work executes a single delivery job, mapping errors to River actions:
// rate limiting snoozes, permanent destination errors cancel, everything
// else retries.
func (w *DeliveryWorker) Work(ctx context.Context, job *river.Job[relay.DeliveryArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("mode", job.Args.Mode),
		zap.String("chat", job.Args.Chat))

	var err error
	switch job.Args.Mode {
	case relay.DeliverDocument:
		err = w.deliverDocument(ctx, job.Args)
	case relay.DeliverMessage:
		err = w.telegram.SendMessage(ctx, job.Args.Chat, job.Args.Text)
	default:
		return river.JobCancel(fmt.Errorf("unknown delivery mode %q", job.Args.Mode)) //nolint: wrapcheck
	}

	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			logger.Warn(ctx, "telegram flood control, snoozing", zap.Error(err))
			metrics.Deliveries.WithLabelValues("rate_limited").Inc()

			return river.JobSnooze(serrors.RetryAfterOf(err)) //nolint: wrapcheck
		}

		logger.Error(ctx, "delivery failed", zap.Error(err))
		metrics.Deliveries.WithLabelValues("error").Inc()

		if logErr := w.storage.LogEvent(ctx, domain.EventDeliveryError, map[string]string{
			"receiptId": job.Args.ReceiptID,
			"error":     err.Error(),
		}); logErr != nil {
			logger.Error(ctx, "could not log delivery error", zap.Error(logErr))
		}

		if errors.Is(err, serrors.ErrBadRequest) || errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		return fmt.Errorf("could not deliver: %w", err)
	}

	metrics.Deliveries.WithLabelValues("delivered").Inc()
	logger.Info(ctx, "delivered")

	return nil
}

func (w *DeliveryWorker) deliverDocument(ctx context.Context, args relay.DeliveryArgs) error {
	rawID, err := uuid.Parse(args.ReceiptID)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid receipt id in job args")
	}
	id := domain.ReceiptID(rawID)

	receipt, err := w.storage.ReceiptByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get receipt: %w", err)
	}
	if receipt == nil {
		// Deleted after enqueue; nothing to deliver.
		return serrors.With(serrors.ErrNotFound, "receipt %s no longer exists", id)
	}
	if receipt.Forwarded {
		logger.Info(ctx, "receipt already forwarded, skipping",
			zap.String("receiptId", id.String()))

		return nil
	}

	data, err := w.vault.Open(receipt.MediaPath)
	if err != nil {
		return fmt.Errorf("could not open media: %w", err)
	}

	if err := w.telegram.SendDocument(ctx, args.Chat, receipt.MediaName, data, args.Caption); err != nil {
		return fmt.Errorf("could not send document: %w", err)
	}

	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.MarkReceiptForwarded(ctx, id); err != nil {
			return fmt.Errorf("could not mark receipt forwarded: %w", err)
		}

		return tx.LogEvent(ctx, domain.EventReceiptDelivered, map[string]string{
			"receiptId": id.String(),
			"chat":      args.Chat,
		})
	}); err != nil {
		return fmt.Errorf("could not record delivery: %w", err)
	}

	return nil
}
