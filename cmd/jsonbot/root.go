package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jsonbot",
	Short: "jsonbot is a conversational JSON list toolkit",
	Long: `jsonbot merges, splits, subtracts and rewrites JSON array files through
a chat conversation, over Telegram or directly in your terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "jsonbot.yaml", "Path to the configuration file")
}
