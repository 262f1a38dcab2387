package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/preciosa-app/backend/internal/models"
	"github.com/preciosa-app/backend/pkg/mathutil"
)

// NewHistoryCommand creates the history command and its subcommands.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage saved simulations",
	}

	cmd.AddCommand(
		newHistoryListCommand(rootOpts),
		newHistoryRemoveCommand(rootOpts),
		newHistoryClearCommand(rootOpts),
	)

	return cmd
}

func newHistoryListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved simulations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession()
			if err != nil {
				return err
			}
			client := newClient(rootOpts, sess.Token)

			// Simulations is a tagged union, so the array is decoded in two
			// steps: raw first, then per-record dispatch on the type field.
			var resp struct {
				Simulations json.RawMessage `json:"simulations"`
			}
			if err := client.do(http.MethodGet, "/api/v1/simulations", nil, &resp); err != nil {
				return err
			}
			sims, err := models.DecodeHistory(resp.Simulations)
			if err != nil {
				return err
			}

			if len(sims) == 0 {
				fmt.Println("No saved simulations")
				return nil
			}
			for _, sim := range sims {
				printHistoryEntry(sim)
			}
			return nil
		},
	}
}

func newHistoryRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove one saved simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession()
			if err != nil {
				return err
			}
			client := newClient(rootOpts, sess.Token)

			path := "/api/v1/simulations/" + url.PathEscape(args[0])
			if err := client.do(http.MethodDelete, path, nil, nil); err != nil {
				return err
			}
			fmt.Println("Removed")
			return nil
		},
	}
}

func newHistoryClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession()
			if err != nil {
				return err
			}
			client := newClient(rootOpts, sess.Token)

			if err := client.do(http.MethodDelete, "/api/v1/simulations", nil, nil); err != nil {
				return err
			}
			fmt.Println("History cleared")
			return nil
		},
	}
}

func printHistoryEntry(sim models.Simulation) {
	switch s := sim.(type) {
	case models.PricingSimulation:
		fmt.Printf("%s  %s  pricing  cost %s, margin %.0f%%, card %.1f%%  ->  cash %s, embedded %s\n",
			s.ID, s.Date.Format("2006-01-02 15:04"),
			mathutil.FormatBRL(s.Inputs.Cost), s.Inputs.MarginPercent, s.Inputs.CardRatePercent,
			mathutil.FormatBRL(s.Results.PriceCash), mathutil.FormatBRL(s.Results.PriceCardEmbedded))
	case models.SalarySimulation:
		fmt.Printf("%s  %s  salary   goal %s, margin %.0f%%, ticket %s  ->  %d pieces/month\n",
			s.ID, s.Date.Format("2006-01-02 15:04"),
			mathutil.FormatBRL(s.Inputs.TargetMonthlyProfit), s.Inputs.MarginPercent,
			mathutil.FormatBRL(s.Inputs.AvgTicket), s.Results.PiecesPerMonth)
	}
}
