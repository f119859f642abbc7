package jsonbot

import (
	"log/slog"

	"github.com/avetono/jsonbot/pkg/adapters/memory"
	"github.com/avetono/jsonbot/pkg/bot"
	"github.com/avetono/jsonbot/pkg/ports"
	"github.com/avetono/jsonbot/pkg/session"
)

// Version is the release version reported by the version command.
var Version = "0.2.0"

type settings struct {
	store  ports.SessionStore
	locker ports.DistributedLocker
	logger *slog.Logger
}

// Option configures the assembled bot.
type Option func(*settings)

// WithStore replaces the default in-memory session store.
func WithStore(store ports.SessionStore) Option {
	return func(s *settings) {
		s.store = store
	}
}

// WithLocker adds a distributed per-chat lock for multi-replica setups.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(s *settings) {
		s.locker = locker
	}
}

// WithLogger sets a structured logger for the bot and session manager.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// New assembles a Bot over the given transport. By default sessions live
// in memory and vanish on restart; pass WithStore for persistence.
func New(transport ports.Transport, opts ...Option) *bot.Bot {
	s := &settings{store: memory.NewStore()}
	for _, opt := range opts {
		opt(s)
	}

	var sessOpts []session.Option
	if s.locker != nil {
		sessOpts = append(sessOpts, session.WithLocker(s.locker))
	}
	if s.logger != nil {
		sessOpts = append(sessOpts, session.WithLogger(s.logger))
	}
	sessions := session.NewManager(s.store, sessOpts...)

	var botOpts []bot.Option
	if s.logger != nil {
		botOpts = append(botOpts, bot.WithLogger(s.logger))
	}
	return bot.New(sessions, transport, botOpts...)
}
