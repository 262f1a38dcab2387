// Package calculator implements the pricing and salary-goal formulas.
// All functions are pure and deterministic: no state, no I/O, and never a
// non-finite value on success.
package calculator

import (
	"math"

	"github.com/preciosa-app/backend/internal/models"
)

// promoDiscount is the fixed cash-discount heuristic behind the suggested
// promo price (5% off the cash price).
const promoDiscount = 0.95

// Pricing computes price points for the three payment strategies:
//
//   - cash: cost plus the desired markup
//   - simple card: same sticker price as cash, the card fee comes out of
//     the seller's profit
//   - embedded card: the sticker price is raised so that the amount received
//     net of the fee still covers the desired profit
//
// MarginPercent is a markup over cost (100 = 100%). CardRatePercent is the
// effective deduction for card payments and must stay below 100: at exactly
// 100 the embedded price is undefined, which is reported as a DomainError.
func Pricing(in models.PricingInputs) (models.PricingResults, error) {
	var zero models.PricingResults

	if !isFinite(in.Cost) || in.Cost <= 0 {
		return zero, &ValidationError{Field: "cost", Reason: "must be a positive number"}
	}
	if !isFinite(in.MarginPercent) || in.MarginPercent < 0 {
		return zero, &ValidationError{Field: "marginPercent", Reason: "must be a non-negative number"}
	}
	if !isFinite(in.CardRatePercent) || in.CardRatePercent < 0 || in.CardRatePercent > 100 {
		return zero, &ValidationError{Field: "cardRatePercent", Reason: "must be between 0 and 100"}
	}
	if in.CardRatePercent == 100 {
		return zero, &DomainError{Reason: "card rate of 100% leaves nothing after the fee; embedded price is undefined"}
	}

	desiredProfit := in.Cost * in.MarginPercent / 100
	priceCash := in.Cost + desiredProfit
	profitCash := priceCash - in.Cost

	// Simple strategy: card buyers pay the cash price, the fee eats into profit.
	priceCard := priceCash
	feeKeep := 1 - in.CardRatePercent/100
	amountReceived := priceCard * feeKeep
	profitCard := amountReceived - in.Cost

	// Embedded strategy: solve for the price whose net-of-fee revenue still
	// covers the desired profit.
	priceCardEmbedded := (in.Cost + desiredProfit) / feeKeep
	receivedEmbedded := priceCardEmbedded * feeKeep

	return models.PricingResults{
		PriceCash:           priceCash,
		PriceCard:           priceCard,
		ProfitCash:          profitCash,
		ProfitCard:          profitCard,
		SuggestedPromoPrice: priceCash * promoDiscount,
		PriceCardEmbedded:   priceCardEmbedded,
		ReceivedEmbedded:    receivedEmbedded,
		ProfitCardEmbedded:  receivedEmbedded - in.Cost,
		Difference:          profitCash - profitCard,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
