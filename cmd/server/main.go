// Package main is the entry point for the choice resolution server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Ledger of Heroes choice server",
	Long: `Ledger of Heroes resolves the pending decisions of D&D 5e characters ` +
		`(proficiencies, languages, spells, equipment and level-up choices) over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
