package main

import (
	"fmt"

	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/avetono/jsonbot/internal/config"
	"github.com/avetono/jsonbot/pkg/adapters/file"
	"github.com/avetono/jsonbot/pkg/adapters/memory"
	"github.com/avetono/jsonbot/pkg/adapters/redis"
	"github.com/avetono/jsonbot/pkg/ports"
	"github.com/avetono/jsonbot/pkg/session"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// buildStore assembles the configured session store and any session
// manager options that go with it (the distributed lock for redis).
// The returned closer releases backend connections; it may be nil.
func buildStore(cfg *config.Config) (ports.SessionStore, []session.Option, func() error, error) {
	switch cfg.Store.Backend {
	case "memory":
		return memory.NewStore(), nil, nil, nil

	case "file":
		return file.New(cfg.Store.Path), nil, nil, nil

	case "redis":
		rc := cfg.Store.Redis
		client := backend.NewClient(&backend.Options{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
		})
		store := redis.NewFromClient(client, redis.WithTTL(rc.TTL))

		var opts []session.Option
		if rc.Lock {
			opts = append(opts, session.WithLocker(redis.NewLocker(client, "jsonbot:session:")))
		}
		return store, opts, client.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
