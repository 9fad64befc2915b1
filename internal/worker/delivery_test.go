package worker_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"relay/internal/relay"
	"relay/internal/worker"
	"relay/pkg/domain"
	"relay/pkg/logger"
	"relay/pkg/serrors"
	"relay/pkg/storage"
	mockstorage "relay/pkg/storage/mock"
	mocktelegram "relay/pkg/telegram/mock"
	"relay/pkg/vault"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, args relay.DeliveryArgs) *river.Job[relay.DeliveryArgs] {
	return &river.Job[relay.DeliveryArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   args,
	}
}

type deliveryFixture struct {
	ctrl     *gomock.Controller
	storage  *mockstorage.MockStorage
	telegram *mocktelegram.MockClient
	vault    *vault.Vault
	worker   *worker.DeliveryWorker
}

func newDeliveryFixture(t *testing.T) *deliveryFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	tg := mocktelegram.NewMockClient(ctrl)

	key, err := vault.GenerateKey()
	require.NoError(t, err)
	v, err := vault.New(filepath.Join(t.TempDir(), "media"), key)
	require.NoError(t, err)

	return &deliveryFixture{
		ctrl:     ctrl,
		storage:  st,
		telegram: tg,
		vault:    v,
		worker:   worker.NewDeliveryWorker(st, v, tg),
	}
}

// seedReceipt stores encrypted media in the fixture vault and returns the
// matching receipt row.
func (f *deliveryFixture) seedReceipt(t *testing.T, forwarded bool) *domain.Receipt {
	t.Helper()

	id := domain.ReceiptID(uuid.New())
	path, err := f.vault.Save(id.String(), "receipt.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	return &domain.Receipt{
		ID:           id,
		CustomerName: "ACME Corp",
		MediaPath:    path,
		MediaName:    "receipt.jpg",
		SourceGroup:  "1203630@g.us",
		Forwarded:    forwarded,
	}
}

func TestDeliveryWorker_Document_Success(t *testing.T) {
	f := newDeliveryFixture(t)
	receipt := f.seedReceipt(t, false)

	f.storage.EXPECT().ReceiptByID(gomock.Any(), receipt.ID).Return(receipt, nil)
	f.telegram.EXPECT().
		SendDocument(gomock.Any(), "@receipts", "receipt.jpg", []byte("jpeg-bytes"), "cap").
		Return(nil)
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			tx.EXPECT().MarkReceiptForwarded(gomock.Any(), receipt.ID).Return(receipt, nil)
			tx.EXPECT().LogEvent(gomock.Any(), domain.EventReceiptDelivered, gomock.Any()).Return(nil)

			return cb(tx)
		},
	)

	err := f.worker.Work(context.Background(), makeJob(1, relay.DeliveryArgs{
		Mode:      relay.DeliverDocument,
		ReceiptID: receipt.ID.String(),
		Chat:      "@receipts",
		Caption:   "cap",
	}))
	require.NoError(t, err)
}

func TestDeliveryWorker_Document_AlreadyForwardedSkips(t *testing.T) {
	f := newDeliveryFixture(t)
	receipt := f.seedReceipt(t, true)

	f.storage.EXPECT().ReceiptByID(gomock.Any(), receipt.ID).Return(receipt, nil)

	err := f.worker.Work(context.Background(), makeJob(2, relay.DeliveryArgs{
		Mode:      relay.DeliverDocument,
		ReceiptID: receipt.ID.String(),
		Chat:      "@receipts",
	}))
	require.NoError(t, err)
}

func TestDeliveryWorker_Document_DeletedReceiptCancels(t *testing.T) {
	f := newDeliveryFixture(t)
	id := domain.ReceiptID(uuid.New())

	f.storage.EXPECT().ReceiptByID(gomock.Any(), id).Return(nil, nil)
	f.storage.EXPECT().LogEvent(gomock.Any(), domain.EventDeliveryError, gomock.Any()).Return(nil)

	err := f.worker.Work(context.Background(), makeJob(3, relay.DeliveryArgs{
		Mode:      relay.DeliverDocument,
		ReceiptID: id.String(),
		Chat:      "@receipts",
	}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestDeliveryWorker_Document_RateLimitedSnoozes(t *testing.T) {
	f := newDeliveryFixture(t)
	receipt := f.seedReceipt(t, false)

	f.storage.EXPECT().ReceiptByID(gomock.Any(), receipt.ID).Return(receipt, nil)
	f.telegram.EXPECT().
		SendDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(serrors.RateLimited(42*time.Second, "flood control"))

	err := f.worker.Work(context.Background(), makeJob(4, relay.DeliveryArgs{
		Mode:      relay.DeliverDocument,
		ReceiptID: receipt.ID.String(),
		Chat:      "@receipts",
	}))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 42*time.Second, snoozeErr.Duration)
}

func TestDeliveryWorker_Document_BadRequestCancels(t *testing.T) {
	f := newDeliveryFixture(t)
	receipt := f.seedReceipt(t, false)

	f.storage.EXPECT().ReceiptByID(gomock.Any(), receipt.ID).Return(receipt, nil)
	f.telegram.EXPECT().
		SendDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrBadRequest, "chat not found"))
	f.storage.EXPECT().LogEvent(gomock.Any(), domain.EventDeliveryError, gomock.Any()).Return(nil)

	err := f.worker.Work(context.Background(), makeJob(5, relay.DeliveryArgs{
		Mode:      relay.DeliverDocument,
		ReceiptID: receipt.ID.String(),
		Chat:      "@nonexistent",
	}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestDeliveryWorker_Document_GenericErrorRetries(t *testing.T) {
	f := newDeliveryFixture(t)
	receipt := f.seedReceipt(t, false)

	f.storage.EXPECT().ReceiptByID(gomock.Any(), receipt.ID).Return(receipt, nil)
	f.telegram.EXPECT().
		SendDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("network flake"))
	f.storage.EXPECT().LogEvent(gomock.Any(), domain.EventDeliveryError, gomock.Any()).Return(nil)

	err := f.worker.Work(context.Background(), makeJob(6, relay.DeliveryArgs{
		Mode:      relay.DeliverDocument,
		ReceiptID: receipt.ID.String(),
		Chat:      "@receipts",
	}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

func TestDeliveryWorker_Message_Success(t *testing.T) {
	f := newDeliveryFixture(t)

	f.telegram.EXPECT().SendMessage(gomock.Any(), "12345", "hello admin").Return(nil)

	err := f.worker.Work(context.Background(), makeJob(7, relay.DeliveryArgs{
		Mode: relay.DeliverMessage,
		Chat: "12345",
		Text: "hello admin",
	}))
	require.NoError(t, err)
}

func TestDeliveryWorker_UnknownModeCancels(t *testing.T) {
	f := newDeliveryFixture(t)

	err := f.worker.Work(context.Background(), makeJob(8, relay.DeliveryArgs{Mode: "bogus"}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}
