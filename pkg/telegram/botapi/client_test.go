package botapi

import (
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"relay/pkg/serrors"
)

func TestBaseChat(t *testing.T) {
	tests := []struct {
		chat         string
		wantUsername string
		wantID       int64
	}{
		{chat: "@receipts", wantUsername: "@receipts"},
		{chat: "receipts", wantUsername: "@receipts"},
		{chat: "-1001234567890", wantID: -1001234567890},
		{chat: "42", wantID: 42},
	}

	for _, tt := range tests {
		t.Run(tt.chat, func(t *testing.T) {
			base := baseChat(tt.chat)
			require.Equal(t, tt.wantUsername, base.ChannelUsername)
			require.Equal(t, tt.wantID, base.ChatID)
		})
	}
}

func TestMapError_RateLimited(t *testing.T) {
	err := mapError(&tgbotapi.Error{
		Code:    429,
		Message: "Too Many Requests",
		ResponseParameters: tgbotapi.ResponseParameters{
			RetryAfter: 17,
		},
	}, "could not send document to %s", "@receipts")

	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, 17*time.Second, serrors.RetryAfterOf(err))
}

func TestMapError_BadChat(t *testing.T) {
	for _, code := range []int{400, 403} {
		err := mapError(&tgbotapi.Error{Code: code, Message: "chat not found"},
			"could not send message to %s", "@nope")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}
}

func TestMapError_Other(t *testing.T) {
	cause := errors.New("connection reset")
	err := mapError(cause, "could not send message to %s", "@receipts")

	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrRateLimited)
	require.NotErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, err.Error(), "@receipts")
}
