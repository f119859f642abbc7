package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/avetono/jsonbot/internal/logging"
	"github.com/avetono/jsonbot/internal/metrics"
	httpAdapter "github.com/avetono/jsonbot/pkg/adapters/http"
	"github.com/avetono/jsonbot/pkg/adapters/telegram"
	"github.com/avetono/jsonbot/pkg/bot"
	"github.com/avetono/jsonbot/pkg/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	Long: `Starts the bot against the Telegram Bot API, receiving updates by long
polling or webhook depending on the configuration, and serving health and
metrics endpoints over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Token == "" {
			return errors.New("no bot token configured (set token in the config file or JSONBOT_TOKEN)")
		}

		logger := logging.New(cfg.SlogLevel())

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		m := metrics.New(registry)

		store, sessOpts, closeStore, err := buildStore(cfg)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		sessOpts = append(sessOpts, session.WithLogger(logger))
		sessions := session.NewManager(store, sessOpts...)

		client := telegram.NewClient(cfg.Token, telegram.WithClientLogger(logger))
		b := bot.New(sessions, telegram.NewTransport(client),
			bot.WithLogger(logger),
			bot.WithMetrics(m),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		me, err := client.GetMe(ctx)
		if err != nil {
			return fmt.Errorf("failed to reach the bot api: %w", err)
		}
		logger.Info("bot authorized", "username", me.Username, "mode", cfg.Mode, "store", cfg.Store.Backend)

		srv := &http.Server{
			Addr: cfg.Listen,
			Handler: httpAdapter.NewHandler(b, httpAdapter.Options{
				Registry: registry,
				Logger:   logger,
			}),
		}

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			logger.Info("http server listening", "addr", cfg.Listen)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		if cfg.Mode == "poll" {
			poller := telegram.NewPoller(client, b, telegram.WithPollerLogger(logger))
			g.Go(func() error {
				if err := poller.Run(ctx); !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
		logger.Info("shut down cleanly")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
