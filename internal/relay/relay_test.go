package relay_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"relay/internal/relay"
	"relay/pkg/domain"
	mockevolution "relay/pkg/evolution/mock"
	"relay/pkg/logger"
	"relay/pkg/storage"
	mockstorage "relay/pkg/storage/mock"
	"relay/pkg/vault"
)

const (
	testGroup    = "1203630@g.us"
	testMediaURL = "https://waha.local/media/abc"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func testVault(t *testing.T) *vault.Vault {
	t.Helper()

	key, err := vault.GenerateKey()
	require.NoError(t, err)
	v, err := vault.New(filepath.Join(t.TempDir(), "media"), key)
	require.NoError(t, err)

	return v
}

func newTestService(t *testing.T, opts relay.Options) (
	*gomock.Controller, *mockstorage.MockStorage, *mockevolution.MockClient, *vault.Vault, relay.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	evo := mockevolution.NewMockClient(ctrl)
	v := testVault(t)

	if opts.ForwardChat == "" {
		opts.ForwardChat = "@receipts"
	}
	if opts.MaxDeliveryAttempts == 0 {
		opts.MaxDeliveryAttempts = 3
	}
	if opts.DeliveryUniquePeriod == 0 {
		opts.DeliveryUniquePeriod = time.Hour
	}
	if opts.MatchThreshold == 0 {
		opts.MatchThreshold = 72
	}

	return ctrl, st, evo, v, relay.New(st, v, evo, opts)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestService_IngestMedia_StoresAndEnqueues(t *testing.T) {
	ctrl, st, evo, v, s := newTestService(t, relay.Options{})

	evo.EXPECT().DownloadMedia(gomock.Any(), testMediaURL).Return([]byte("jpeg-bytes"), nil)

	var storedPath string
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreReceipts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, receipts ...domain.Receipt) ([]domain.Receipt, error) {
				require.Len(t, receipts, 1)
				require.Equal(t, "ACME Corp", receipts[0].CustomerName)
				require.Equal(t, testGroup, receipts[0].SourceGroup)
				require.NotEqual(t, domain.ReceiptID{}, receipts[0].ID)
				storedPath = receipts[0].MediaPath

				return receipts, nil
			},
		)
		tx.EXPECT().LogEvent(gomock.Any(), domain.EventReceiptStored, gomock.Any()).Return(nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args any, _ any) (bool, error) {
				delivery, ok := args.(relay.DeliveryArgs)
				require.True(t, ok)
				require.Equal(t, relay.DeliverDocument, delivery.Mode)
				require.Equal(t, "@receipts", delivery.Chat)
				require.Contains(t, delivery.Caption, "ACME Corp")

				return true, nil
			},
		)
		tx.EXPECT().LogEvent(gomock.Any(), domain.EventReceiptEnqueued, gomock.Any()).Return(nil)
	})

	receipt, err := s.IngestMedia(context.Background(), relay.MediaMessage{
		SourceGroup:  testGroup,
		CustomerName: "ACME Corp",
		FileName:     "receipt.jpg",
		MediaURL:     testMediaURL,
	})
	require.NoError(t, err)
	require.NotNil(t, receipt)

	// media must be readable back through the vault, never stored raw
	data, err := v.Open(storedPath)
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg-bytes"), data)
}

func TestService_IngestMedia_UnmonitoredGroup(t *testing.T) {
	_, _, _, _, s := newTestService(t, relay.Options{
		MonitoredGroups: []string{"999@g.us"},
	})

	_, err := s.IngestMedia(context.Background(), relay.MediaMessage{
		SourceGroup: testGroup,
		MediaURL:    testMediaURL,
	})
	require.Error(t, err)
	require.ErrorIs(t, err, relay.ErrGroupNotMonitored)
}

func TestService_IngestMedia_DuplicateJobSkipsEnqueueEvent(t *testing.T) {
	ctrl, st, evo, _, s := newTestService(t, relay.Options{})

	evo.EXPECT().DownloadMedia(gomock.Any(), testMediaURL).Return([]byte("bytes"), nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreReceipts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, receipts ...domain.Receipt) ([]domain.Receipt, error) {
				return receipts, nil
			},
		)
		tx.EXPECT().LogEvent(gomock.Any(), domain.EventReceiptStored, gomock.Any()).Return(nil)
		// deduplicated insert: no receipt_enqueued event
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
	})

	_, err := s.IngestMedia(context.Background(), relay.MediaMessage{
		SourceGroup: testGroup,
		MediaURL:    testMediaURL,
	})
	require.NoError(t, err)
}

func TestService_IngestMedia_DownloadErrorRollsNothing(t *testing.T) {
	_, _, evo, _, s := newTestService(t, relay.Options{})

	evo.EXPECT().DownloadMedia(gomock.Any(), testMediaURL).Return(nil, errors.New("gateway down"))

	_, err := s.IngestMedia(context.Background(), relay.MediaMessage{
		SourceGroup: testGroup,
		MediaURL:    testMediaURL,
	})
	require.Error(t, err)
}

func TestService_IngestQuery_Match(t *testing.T) {
	ctrl, st, evo, _, s := newTestService(t, relay.Options{MatchThreshold: 70})
	_ = evo

	wanted := domain.Receipt{ID: domain.ReceiptID(uuid.New()), CustomerName: "John Smith"}
	other := domain.Receipt{ID: domain.ReceiptID(uuid.New()), CustomerName: "Completely Different"}

	st.EXPECT().UndeliveredReceipts(gomock.Any()).Return([]domain.Receipt{other, wanted}, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreQuery(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q domain.Query) (*domain.Query, error) {
				require.Equal(t, domain.QueryStatusMatched, q.Status)
				require.NotNil(t, q.MatchedReceiptID)
				require.Equal(t, wanted.ID, *q.MatchedReceiptID)
				require.GreaterOrEqual(t, q.Score, 70)

				return &q, nil
			},
		)
		tx.EXPECT().LogEvent(gomock.Any(), domain.EventQueryMatched, gomock.Any()).Return(nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
		tx.EXPECT().LogEvent(gomock.Any(), domain.EventReceiptEnqueued, gomock.Any()).Return(nil)
	})

	query, err := s.IngestQuery(context.Background(), relay.QueryMessage{
		QueryGroup:   testGroup,
		CustomerName: "smith john",
	})
	require.NoError(t, err)
	require.Equal(t, domain.QueryStatusMatched, query.Status)
}

func TestService_IngestQuery_BelowThresholdUnmatched(t *testing.T) {
	ctrl, st, _, _, s := newTestService(t, relay.Options{MatchThreshold: 95})

	st.EXPECT().UndeliveredReceipts(gomock.Any()).Return([]domain.Receipt{
		{ID: domain.ReceiptID(uuid.New()), CustomerName: "Jane Doe"},
	}, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreQuery(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q domain.Query) (*domain.Query, error) {
				require.Equal(t, domain.QueryStatusUnmatched, q.Status)
				require.Nil(t, q.MatchedReceiptID)

				return &q, nil
			},
		)
		tx.EXPECT().LogEvent(gomock.Any(), domain.EventQueryUnmatched, gomock.Any()).Return(nil)
	})

	query, err := s.IngestQuery(context.Background(), relay.QueryMessage{
		QueryGroup:   testGroup,
		CustomerName: "someone else entirely",
	})
	require.NoError(t, err)
	require.Equal(t, domain.QueryStatusUnmatched, query.Status)
}

func TestService_IngestQuery_NoCandidates(t *testing.T) {
	ctrl, st, _, _, s := newTestService(t, relay.Options{})

	st.EXPECT().UndeliveredReceipts(gomock.Any()).Return(nil, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreQuery(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q domain.Query) (*domain.Query, error) {
				require.Equal(t, domain.QueryStatusUnmatched, q.Status)

				return &q, nil
			},
		)
		tx.EXPECT().LogEvent(gomock.Any(), domain.EventQueryUnmatched, gomock.Any()).Return(nil)
	})

	query, err := s.IngestQuery(context.Background(), relay.QueryMessage{
		QueryGroup:   testGroup,
		CustomerName: "anyone",
	})
	require.NoError(t, err)
	require.Equal(t, domain.QueryStatusUnmatched, query.Status)
}

func TestService_IngestQuery_EmptyText(t *testing.T) {
	_, _, _, _, s := newTestService(t, relay.Options{})

	_, err := s.IngestQuery(context.Background(), relay.QueryMessage{QueryGroup: testGroup})
	require.Error(t, err)
}

func TestService_Receipt_NotFound(t *testing.T) {
	_, st, _, _, s := newTestService(t, relay.Options{})

	id := domain.ReceiptID(uuid.New())
	st.EXPECT().ReceiptByID(gomock.Any(), id).Return(nil, nil)

	_, err := s.Receipt(context.Background(), id)
	require.Error(t, err)
}

func TestService_Receipts_CursorRoundtrip(t *testing.T) {
	_, st, _, _, s := newTestService(t, relay.Options{})

	next := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	st.EXPECT().Receipts(gomock.Any(), time.Time{}, uint(10)).Return(storage.ReceiptPage{
		Receipts:   []domain.Receipt{{ID: domain.ReceiptID(uuid.New())}},
		NextCursor: &next,
	}, nil)

	receipts, cursor, err := s.Receipts(context.Background(), "", 10)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	require.Equal(t, next.Format(time.RFC3339), cursor)

	// feed the cursor back
	st.EXPECT().Receipts(gomock.Any(), gomock.Any(), uint(10)).DoAndReturn(
		func(_ context.Context, c time.Time, _ uint) (storage.ReceiptPage, error) {
			require.True(t, c.Equal(next))

			return storage.ReceiptPage{}, nil
		},
	)
	_, cursor, err = s.Receipts(context.Background(), cursor, 10)
	require.NoError(t, err)
	require.Empty(t, cursor)
}

func TestService_Receipts_BadCursor(t *testing.T) {
	_, _, _, _, s := newTestService(t, relay.Options{})

	_, _, err := s.Receipts(context.Background(), "not-a-time", 10)
	require.Error(t, err)
}

func TestService_NotifyAdmin(t *testing.T) {
	_, st, _, _, s := newTestService(t, relay.Options{AdminChat: "12345"})

	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args any, _ any) (bool, error) {
			delivery, ok := args.(relay.DeliveryArgs)
			require.True(t, ok)
			require.Equal(t, relay.DeliverMessage, delivery.Mode)
			require.Equal(t, "12345", delivery.Chat)
			require.Equal(t, "boom", delivery.Text)

			return true, nil
		},
	)

	require.NoError(t, s.NotifyAdmin(context.Background(), "boom"))
}

func TestService_NotifyAdmin_NoAdminChatConfigured(t *testing.T) {
	_, _, _, _, s := newTestService(t, relay.Options{})

	require.NoError(t, s.NotifyAdmin(context.Background(), "boom"))
}
