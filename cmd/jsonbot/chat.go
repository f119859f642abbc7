package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/avetono/jsonbot/internal/logging"
	"github.com/avetono/jsonbot/pkg/adapters/console"
	"github.com/avetono/jsonbot/pkg/bot"
	"github.com/avetono/jsonbot/pkg/domain"
	"github.com/avetono/jsonbot/pkg/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the bot from your terminal",
	Long: `Runs the bot as a local REPL. Commands work exactly like in the chat:
/merge, /split 3, /operation, /replace, /done. Files are attached with

    upload path/to/file.json

and results are written to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		outputDir, _ := cmd.Flags().GetString("output")
		if outputDir == "" {
			outputDir = cfg.OutputDir
		}

		logger := logging.New(cfg.SlogLevel())

		store, sessOpts, closeStore, err := buildStore(cfg)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}
		sessions := session.NewManager(store, sessOpts...)

		transport := console.New(outputDir, console.WithLogger(logger))
		b := bot.New(sessions, transport, bot.WithLogger(logger))

		// Each REPL run is its own conversation.
		chatID := uuid.NewString()
		ctx := cmd.Context()

		printBanner()
		fmt.Println("Type /help to begin, Ctrl-D to quit.")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			upd := domain.Update{ChatID: chatID, Text: line}
			if path, ok := strings.CutPrefix(line, "upload "); ok {
				path = strings.TrimSpace(path)
				upd = domain.Update{
					ChatID:   chatID,
					Document: &domain.Document{Handle: path, Name: path},
				}
			}

			if err := b.HandleUpdate(ctx, upd); err != nil {
				fmt.Printf("error: %v\n", err)
			}
		}
		return scanner.Err()
	},
}

func printBanner() {
	p := termenv.ColorProfile()
	title := termenv.String("jsonbot").Foreground(p.Color("#818cf8")).Bold()
	tag := termenv.String("conversational JSON toolkit").Foreground(p.Color("#a78bfa"))
	fmt.Printf("\n  %s — %s\n\n", title, tag)
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringP("output", "o", "", "Directory for result files (default from config)")
}
