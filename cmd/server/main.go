// Package main is the entry point for the character sheet gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-sheet/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "character-sheet",
	Short: "Character sheet gRPC server",
	Long: `character-sheet serves a roster of character sheets over gRPC: attribute and skill
point allocation, class selection, skill checks and saving to the character API.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
