package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/preciosa-app/backend/internal/models"
)

func TestSalaryPlan(t *testing.T) {
	tests := []struct {
		name         string
		inputs       models.SalaryInputs
		wantErr      bool
		wantDomain   bool
		validateFunc func(t *testing.T, r models.SalaryResults)
	}{
		{
			name:   "reference case target=3000 margin=100 ticket=30",
			inputs: models.SalaryInputs{TargetMonthlyProfit: 3000, MarginPercent: 100, AvgTicket: 30},
			validateFunc: func(t *testing.T, r models.SalaryResults) {
				if math.Abs(r.ProfitPerPiece-15.0) > epsilon {
					t.Errorf("ProfitPerPiece = %v, want 15.00", r.ProfitPerPiece)
				}
				if r.PiecesPerMonth != 200 {
					t.Errorf("PiecesPerMonth = %d, want 200", r.PiecesPerMonth)
				}
				if r.PiecesPerWeek != 50 {
					t.Errorf("PiecesPerWeek = %d, want 50", r.PiecesPerWeek)
				}
				if r.PiecesPerDay != 7 {
					t.Errorf("PiecesPerDay = %d, want 7", r.PiecesPerDay)
				}
				if math.Abs(r.TotalMonthlyRevenue-6000.0) > epsilon {
					t.Errorf("TotalMonthlyRevenue = %v, want 6000.00", r.TotalMonthlyRevenue)
				}
				if math.Abs(r.TotalInvestment-3000.0) > epsilon {
					t.Errorf("TotalInvestment = %v, want 3000.00", r.TotalInvestment)
				}
				if math.Abs(r.ProjectedMonthlyProfit-3000.0) > epsilon {
					t.Errorf("ProjectedMonthlyProfit = %v, want 3000.00", r.ProjectedMonthlyProfit)
				}
				if math.Abs(r.DailyProfitGoal-100.0) > epsilon {
					t.Errorf("DailyProfitGoal = %v, want 100.00", r.DailyProfitGoal)
				}
				if math.Abs(r.DailyRevenueGoal-200.0) > epsilon {
					t.Errorf("DailyRevenueGoal = %v, want 200.00", r.DailyRevenueGoal)
				}
			},
		},
		{
			name:   "piece count rounds up, never down",
			inputs: models.SalaryInputs{TargetMonthlyProfit: 1000, MarginPercent: 100, AvgTicket: 60},
			validateFunc: func(t *testing.T, r models.SalaryResults) {
				// profit per piece = 30, 1000/30 = 33.33 -> 34 pieces
				if r.PiecesPerMonth != 34 {
					t.Errorf("PiecesPerMonth = %d, want 34", r.PiecesPerMonth)
				}
			},
		},
		{
			name:       "tiny margin yields negligible profit",
			inputs:     models.SalaryInputs{TargetMonthlyProfit: 3000, MarginPercent: 0.01, AvgTicket: 30},
			wantErr:    true,
			wantDomain: true,
		},
		{
			name:    "zero target rejected",
			inputs:  models.SalaryInputs{TargetMonthlyProfit: 0, MarginPercent: 100, AvgTicket: 30},
			wantErr: true,
		},
		{
			name:    "zero margin rejected",
			inputs:  models.SalaryInputs{TargetMonthlyProfit: 3000, MarginPercent: 0, AvgTicket: 30},
			wantErr: true,
		},
		{
			name:    "negative ticket rejected",
			inputs:  models.SalaryInputs{TargetMonthlyProfit: 3000, MarginPercent: 100, AvgTicket: -10},
			wantErr: true,
		},
		{
			name:    "NaN target rejected",
			inputs:  models.SalaryInputs{TargetMonthlyProfit: math.NaN(), MarginPercent: 100, AvgTicket: 30},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := SalaryPlan(tt.inputs)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var domainErr *DomainError
				isDomain := errors.As(err, &domainErr)
				if tt.wantDomain && !isDomain {
					t.Errorf("expected DomainError, got %T: %v", err, err)
				}
				if !tt.wantDomain {
					var validationErr *ValidationError
					if !errors.As(err, &validationErr) {
						t.Errorf("expected ValidationError, got %T: %v", err, err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("SalaryPlan failed: %v", err)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, r)
			}
		})
	}
}

// TestSalaryPlanCeilingMonotonicity checks the invariant behind the ceiling:
// selling whole pieces can only overshoot the goal, never undershoot it.
func TestSalaryPlanCeilingMonotonicity(t *testing.T) {
	targets := []float64{100, 999.99, 3000, 12345.67}
	margins := []float64{20, 50, 100, 150}
	tickets := []float64{10, 29.9, 75, 300}

	for _, target := range targets {
		for _, margin := range margins {
			for _, ticket := range tickets {
				r, err := SalaryPlan(models.SalaryInputs{TargetMonthlyProfit: target, MarginPercent: margin, AvgTicket: ticket})
				if err != nil {
					t.Fatalf("SalaryPlan(target=%v margin=%v ticket=%v) failed: %v", target, margin, ticket, err)
				}
				if r.ProjectedMonthlyProfit < target-epsilon {
					t.Errorf("target=%v margin=%v ticket=%v: ProjectedMonthlyProfit = %v undershoots the goal",
						target, margin, ticket, r.ProjectedMonthlyProfit)
				}
				if r.PiecesPerMonth <= 0 || r.PiecesPerWeek <= 0 || r.PiecesPerDay <= 0 {
					t.Errorf("target=%v margin=%v ticket=%v: piece counts must be positive, got %d/%d/%d",
						target, margin, ticket, r.PiecesPerMonth, r.PiecesPerWeek, r.PiecesPerDay)
				}
			}
		}
	}
}
