// Package cli defines the command tree for the searcher binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build metadata, overridden at link time.
var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

// Credential flags shared by every subcommand. Flag values take
// precedence over the environment.
var (
	clientID     string
	clientSecret string
)

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "amadeus-searcher",
		Short:         "Search Amadeus flight offers and cheapest travel dates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&clientID, "client-id", "", "Amadeus API client ID (defaults to AMADEUS_SEARCHER_CLIENT_ID)")
	root.PersistentFlags().StringVar(&clientSecret, "client-secret", "", "Amadeus API client secret (defaults to AMADEUS_SEARCHER_CLIENT_SECRET)")

	root.AddCommand(newOneWayCmd())
	root.AddCommand(newCheapestCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
