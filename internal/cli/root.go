// Package cli implements the preciosa command-line client. It talks to the
// backend over the HTTP API and caches the session token on disk between
// invocations.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every command.
type RootOptions struct {
	ServerURL string
	Verbose   bool
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "preciosa",
		Short: "Pricing and income planning for resellers",
		Long: `Preciosa computes resale price points under cash and card payment
strategies, plans how many pieces to sell for a monthly profit goal, and
keeps a per-account history of saved simulations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ServerURL, "server", "http://localhost:8080", "backend base URL")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(
		NewRegisterCommand(opts),
		NewLoginCommand(opts),
		NewLogoutCommand(opts),
		NewPricingCommand(opts),
		NewSalaryCommand(opts),
		NewHistoryCommand(opts),
	)

	return cmd
}
