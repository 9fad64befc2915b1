// Package botapi implements the telegram.Client interface on top of the
// Telegram Bot API.
package botapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"relay/pkg/serrors"
	"relay/pkg/telegram"
)

// Client delivers documents and messages through a Telegram bot. It is safe
// for concurrent use.
type Client struct {
	bot *tgbotapi.BotAPI
}

// Ensure Client conforms to the telegram.Client interface at compile time.
var _ telegram.Client = (*Client)(nil)

// New authenticates the bot token against the Bot API and returns a Client.
func New(token string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("could not create telegram bot client: %w", err)
	}

	return &Client{bot: bot}, nil
}

// SendDocument uploads data as a document to chat with the given caption.
func (c *Client) SendDocument(ctx context.Context, chat, filename string, data []byte, caption string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context done before send: %w", err)
	}

	doc := tgbotapi.DocumentConfig{
		BaseFile: tgbotapi.BaseFile{
			BaseChat: baseChat(chat),
			File:     tgbotapi.FileBytes{Name: filename, Bytes: data},
		},
		Caption: caption,
	}

	if _, err := c.bot.Send(doc); err != nil {
		return mapError(err, "could not send document to %s", chat)
	}

	return nil
}

// SendMessage sends a plain text message to chat.
func (c *Client) SendMessage(ctx context.Context, chat, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context done before send: %w", err)
	}

	msg := tgbotapi.MessageConfig{
		BaseChat: baseChat(chat),
		Text:     text,
	}

	if _, err := c.bot.Send(msg); err != nil {
		return mapError(err, "could not send message to %s", chat)
	}

	return nil
}

// baseChat builds the Bot API chat target from a chat reference: usernames
// keep their leading "@", anything else is parsed as a numeric chat ID.
func baseChat(chat string) tgbotapi.BaseChat {
	if strings.HasPrefix(chat, "@") {
		return tgbotapi.BaseChat{ChannelUsername: chat}
	}

	id, err := strconv.ParseInt(chat, 10, 64)
	if err != nil {
		// Bare usernames without "@" are accepted for config convenience.
		return tgbotapi.BaseChat{ChannelUsername: "@" + chat}
	}

	return tgbotapi.BaseChat{ChatID: id}
}

// mapError converts Bot API errors to semantic kinds: 429 becomes
// ErrRateLimited carrying the server's retry_after, 400/403 chat failures
// become ErrBadRequest (retrying won't help).
func mapError(err error, msgFmt string, args ...any) error {
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		switch {
		case tgErr.Code == 429:
			return serrors.RateLimited(
				time.Duration(tgErr.RetryAfter)*time.Second,
				"telegram rate limited: %s", tgErr.Message)
		case tgErr.Code == 400 || tgErr.Code == 403:
			return serrors.Wrap(serrors.ErrBadRequest, err, msgFmt, args...)
		}
	}

	return fmt.Errorf(msgFmt+": %w", append(args, err)...)
}
