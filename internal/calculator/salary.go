package calculator

import (
	"math"

	"github.com/preciosa-app/backend/internal/models"
)

// minProfitPerPiece guards the salary plan against margin/ticket pairs whose
// per-piece profit is negligible: dividing a monthly goal by it would explode
// into an absurd piece count.
const minProfitPerPiece = 0.01

// SalaryPlan works backwards from a monthly profit goal to the number of
// pieces the seller must move. MarginPercent is a markup over cost, so the
// piece cost is estimated as avgTicket / (1 + margin/100).
//
// Piece counts always round up: a partial piece cannot be sold. Because of
// that ceiling, ProjectedMonthlyProfit is always >= TargetMonthlyProfit.
// Monetary figures keep full floating precision; rounding is display-only.
func SalaryPlan(in models.SalaryInputs) (models.SalaryResults, error) {
	var zero models.SalaryResults

	if !isFinite(in.TargetMonthlyProfit) || in.TargetMonthlyProfit <= 0 {
		return zero, &ValidationError{Field: "targetMonthlyProfit", Reason: "must be a positive number"}
	}
	if !isFinite(in.MarginPercent) || in.MarginPercent <= 0 {
		return zero, &ValidationError{Field: "marginPercent", Reason: "must be a positive number"}
	}
	if !isFinite(in.AvgTicket) || in.AvgTicket <= 0 {
		return zero, &ValidationError{Field: "avgTicket", Reason: "must be a positive number"}
	}

	markupMultiplier := 1 + in.MarginPercent/100
	estimatedCost := in.AvgTicket / markupMultiplier
	profitPerPiece := in.AvgTicket - estimatedCost

	if profitPerPiece <= minProfitPerPiece {
		return zero, &DomainError{Reason: "margin and ticket combination yields negligible or negative profit per piece"}
	}

	piecesPerMonth := int(math.Ceil(in.TargetMonthlyProfit / profitPerPiece))
	piecesPerWeek := int(math.Ceil(float64(piecesPerMonth) / 4))
	piecesPerDay := int(math.Ceil(float64(piecesPerMonth) / 30))

	totalMonthlyRevenue := float64(piecesPerMonth) * in.AvgTicket
	totalInvestment := float64(piecesPerMonth) * estimatedCost
	projectedMonthlyProfit := float64(piecesPerMonth) * profitPerPiece

	return models.SalaryResults{
		ProfitPerPiece:         profitPerPiece,
		PiecesPerMonth:         piecesPerMonth,
		PiecesPerWeek:          piecesPerWeek,
		PiecesPerDay:           piecesPerDay,
		DailyRevenueGoal:       totalMonthlyRevenue / 30,
		DailyProfitGoal:        in.TargetMonthlyProfit / 30,
		TotalMonthlyRevenue:    totalMonthlyRevenue,
		TotalInvestment:        totalInvestment,
		ProjectedMonthlyProfit: projectedMonthlyProfit,
	}, nil
}
