package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/preciosa-app/backend/internal/handler"
	"github.com/preciosa-app/backend/internal/models"
	"github.com/preciosa-app/backend/pkg/mathutil"
)

// NewPricingCommand creates the pricing command.
func NewPricingCommand(rootOpts *RootOptions) *cobra.Command {
	var inputs models.PricingInputs
	var save bool

	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Compute price points for cash and card strategies",
		Example: `  preciosa pricing --cost 25 --margin 100 --card-rate 10
  preciosa pricing --cost 25 --margin 100 --card-rate 10 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession()
			if err != nil {
				return err
			}
			client := newClient(rootOpts, sess.Token)

			var results models.PricingResults
			if save {
				raw, err := json.Marshal(inputs)
				if err != nil {
					return err
				}
				var sim models.PricingSimulation
				req := handler.SaveRequest{Type: models.TypePricing, Inputs: raw}
				if err := client.do(http.MethodPost, "/api/v1/simulations", req, &sim); err != nil {
					return err
				}
				results = sim.Results
				fmt.Printf("Saved as %s\n\n", sim.ID)
			} else {
				if err := client.do(http.MethodPost, "/api/v1/pricing", inputs, &results); err != nil {
					return err
				}
			}

			printPricing(inputs, results)
			return nil
		},
	}

	cmd.Flags().Float64Var(&inputs.Cost, "cost", 0, "piece cost (required)")
	cmd.Flags().Float64Var(&inputs.MarginPercent, "margin", 0, "desired markup over cost, in percent (required)")
	cmd.Flags().Float64Var(&inputs.CardRatePercent, "card-rate", 0, "effective card fee, in percent")
	cmd.Flags().BoolVar(&save, "save", false, "persist the result in your history")
	_ = cmd.MarkFlagRequired("cost")
	_ = cmd.MarkFlagRequired("margin")

	return cmd
}

// NewSalaryCommand creates the salary command.
func NewSalaryCommand(rootOpts *RootOptions) *cobra.Command {
	var inputs models.SalaryInputs
	var save bool

	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Plan how many pieces to sell for a monthly profit goal",
		Example: `  preciosa salary --target 3000 --margin 100 --ticket 30
  preciosa salary --target 3000 --margin 100 --ticket 30 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession()
			if err != nil {
				return err
			}
			client := newClient(rootOpts, sess.Token)

			var results models.SalaryResults
			if save {
				raw, err := json.Marshal(inputs)
				if err != nil {
					return err
				}
				var sim models.SalarySimulation
				req := handler.SaveRequest{Type: models.TypeSalary, Inputs: raw}
				if err := client.do(http.MethodPost, "/api/v1/simulations", req, &sim); err != nil {
					return err
				}
				results = sim.Results
				fmt.Printf("Saved as %s\n\n", sim.ID)
			} else {
				if err := client.do(http.MethodPost, "/api/v1/salary", inputs, &results); err != nil {
					return err
				}
			}

			printSalary(results)
			return nil
		},
	}

	cmd.Flags().Float64Var(&inputs.TargetMonthlyProfit, "target", 0, "monthly profit goal (required)")
	cmd.Flags().Float64Var(&inputs.MarginPercent, "margin", 0, "markup over cost, in percent (required)")
	cmd.Flags().Float64Var(&inputs.AvgTicket, "ticket", 0, "average sale price per piece (required)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("margin")
	_ = cmd.MarkFlagRequired("ticket")
	cmd.Flags().BoolVar(&save, "save", false, "persist the result in your history")

	return cmd
}

func printPricing(inputs models.PricingInputs, r models.PricingResults) {
	fmt.Printf("Cash sale:      %s (profit %s)\n", mathutil.FormatBRL(r.PriceCash), mathutil.FormatBRL(r.ProfitCash))
	fmt.Printf("Card, simple:   %s (profit %s, fee costs you %s)\n",
		mathutil.FormatBRL(r.PriceCard), mathutil.FormatBRL(r.ProfitCard), mathutil.FormatBRL(r.Difference))
	fmt.Printf("Card, embedded: %s (you receive %s, profit %s)\n",
		mathutil.FormatBRL(r.PriceCardEmbedded), mathutil.FormatBRL(r.ReceivedEmbedded), mathutil.FormatBRL(r.ProfitCardEmbedded))
	fmt.Printf("Promo price:    %s\n", mathutil.FormatBRL(r.SuggestedPromoPrice))
}

func printSalary(r models.SalaryResults) {
	fmt.Printf("Profit per piece:   %s\n", mathutil.FormatBRL(r.ProfitPerPiece))
	fmt.Printf("Pieces to sell:     %d/month  %d/week  %d/day\n", r.PiecesPerMonth, r.PiecesPerWeek, r.PiecesPerDay)
	fmt.Printf("Daily goals:        revenue %s, profit %s\n",
		mathutil.FormatBRL(r.DailyRevenueGoal), mathutil.FormatBRL(r.DailyProfitGoal))
	fmt.Printf("Monthly revenue:    %s\n", mathutil.FormatBRL(r.TotalMonthlyRevenue))
	fmt.Printf("Investment needed:  %s\n", mathutil.FormatBRL(r.TotalInvestment))
	fmt.Printf("Projected profit:   %s\n", mathutil.FormatBRL(r.ProjectedMonthlyProfit))
}
