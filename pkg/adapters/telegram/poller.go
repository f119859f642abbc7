package telegram

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/avetono/jsonbot/internal/logging"
	"github.com/avetono/jsonbot/pkg/domain"
)

// Handler consumes one inbound chat event. *bot.Bot satisfies it.
type Handler interface {
	HandleUpdate(ctx context.Context, upd domain.Update) error
}

// Poller drives the bot from getUpdates long polling.
type Poller struct {
	client  *Client
	handler Handler
	logger  *slog.Logger

	pollTimeout time.Duration
	retryDelay  time.Duration
}

// PollerOption configures the Poller.
type PollerOption func(*Poller)

// WithPollerLogger configures a logger.
func WithPollerLogger(logger *slog.Logger) PollerOption {
	return func(p *Poller) {
		p.logger = logger
	}
}

// WithPollTimeout sets the long-poll window passed to getUpdates.
func WithPollTimeout(d time.Duration) PollerOption {
	return func(p *Poller) {
		p.pollTimeout = d
	}
}

// WithRetryDelay sets the pause after a failed getUpdates call.
func WithRetryDelay(d time.Duration) PollerOption {
	return func(p *Poller) {
		p.retryDelay = d
	}
}

// NewPoller creates a Poller feeding handler.
func NewPoller(client *Client, handler Handler, opts ...PollerOption) *Poller {
	p := &Poller{
		client:      client,
		handler:     handler,
		logger:      logging.NewNop(),
		pollTimeout: 50 * time.Second,
		retryDelay:  3 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run polls until ctx is cancelled. Handler errors are logged and polling
// continues; one misbehaving chat must not stall the others.
func (p *Poller) Run(ctx context.Context) error {
	var offset int64
	for {
		updates, err := p.client.GetUpdates(ctx, offset, p.pollTimeout)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			p.logger.Error("failed to fetch updates", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.retryDelay):
			}
			continue
		}

		for _, raw := range updates {
			offset = raw.UpdateID + 1

			upd, ok := convertUpdate(raw)
			if !ok {
				continue
			}
			if err := p.handler.HandleUpdate(ctx, upd); err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				p.logger.Error("failed to handle update",
					"update_id", raw.UpdateID,
					"chat_id", upd.ChatID,
					"error", err,
				)
			}
		}
	}
}

// ConvertUpdate maps a Bot API update onto the domain event. The second
// return is false for updates the bot has nothing to do with.
func ConvertUpdate(raw Update) (domain.Update, bool) {
	return convertUpdate(raw)
}

func convertUpdate(raw Update) (domain.Update, bool) {
	msg := raw.Message
	if msg == nil {
		return domain.Update{}, false
	}

	upd := domain.Update{
		ChatID: strconv.FormatInt(msg.Chat.ID, 10),
		Text:   msg.Text,
	}
	if msg.Document != nil {
		upd.Document = &domain.Document{
			Handle: msg.Document.FileID,
			Name:   msg.Document.FileName,
		}
	}
	if upd.Text == "" && upd.Document == nil {
		return domain.Update{}, false
	}
	return upd, true
}
