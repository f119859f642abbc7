package main

import (
	"fmt"
	"strings"

	"github.com/avetono/jsonbot"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of jsonbot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jsonbot version %s\n", strings.TrimSpace(jsonbot.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
