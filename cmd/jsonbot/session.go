package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avetono/jsonbot/pkg/ports"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage stored chat sessions",
	Long:  `List, inspect, and remove sessions from the configured store.`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := sessionStore(cmd)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}

		ids, err := store.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("No stored sessions.")
			return nil
		}
		for _, id := range ids {
			fmt.Println("- " + id)
		}
		return nil
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <chat-id>",
	Short: "Print the state of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := sessionStore(cmd)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}

		sess, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load session %q: %w", args[0], err)
		}
		data, err := json.MarshalIndent(sess, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <chat-id>...",
	Short: "Remove one or more sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := sessionStore(cmd)
		if err != nil {
			return err
		}
		if closeStore != nil {
			defer closeStore()
		}

		failed := false
		for _, id := range args {
			if err := store.Delete(cmd.Context(), id); err != nil {
				fmt.Fprintf(os.Stderr, "failed to remove %q: %v\n", id, err)
				failed = true
				continue
			}
			fmt.Printf("Removed session %q\n", id)
		}
		if failed {
			return fmt.Errorf("some sessions could not be removed")
		}
		return nil
	},
}

func sessionStore(cmd *cobra.Command) (ports.SessionStore, func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	store, _, closeStore, err := buildStore(cfg)
	return store, closeStore, err
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionInspectCmd)
	sessionCmd.AddCommand(sessionRmCmd)
}
