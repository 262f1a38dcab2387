package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// SimulationType discriminates the two record shapes in a user's history.
type SimulationType string

const (
	TypeSalary  SimulationType = "salary"
	TypePricing SimulationType = "pricing"
)

// Simulation is the tagged union of SalarySimulation and PricingSimulation.
// Callers that render or aggregate records type-switch on the concrete type;
// both arms must always be handled.
type Simulation interface {
	// SimulationID returns the record id. Generated client-side at creation,
	// superseded when a backend assigns its own canonical id at write time.
	SimulationID() string

	// SimulationType returns the discriminator value.
	SimulationType() SimulationType

	// CreatedAt returns the creation instant; history is presented newest
	// first by this value.
	CreatedAt() time.Time

	// WithID returns a copy of the record carrying the given id.
	WithID(id string) Simulation
}

// SalaryInputs are the raw numbers behind a salary-goal plan.
type SalaryInputs struct {
	TargetMonthlyProfit float64 `json:"targetMonthlyProfit"`
	MarginPercent       float64 `json:"marginPercent"`
	AvgTicket           float64 `json:"avgTicket"`
}

// SalaryResults is the piece plan derived from SalaryInputs.
type SalaryResults struct {
	ProfitPerPiece         float64 `json:"profitPerPiece"`
	PiecesPerMonth         int     `json:"piecesPerMonth"`
	PiecesPerWeek          int     `json:"piecesPerWeek"`
	PiecesPerDay           int     `json:"piecesPerDay"`
	DailyRevenueGoal       float64 `json:"dailyRevenueGoal"`
	DailyProfitGoal        float64 `json:"dailyProfitGoal"`
	TotalMonthlyRevenue    float64 `json:"totalMonthlyRevenue"`
	TotalInvestment        float64 `json:"totalInvestment"`
	ProjectedMonthlyProfit float64 `json:"projectedMonthlyProfit"`
}

// PricingInputs are the raw numbers behind a price-point calculation.
type PricingInputs struct {
	Cost            float64 `json:"cost"`
	MarginPercent   float64 `json:"marginPercent"`
	CardRatePercent float64 `json:"cardRatePercent"`
}

// PricingResults holds the price points for all three payment strategies.
// Difference is the only field allowed to go negative: it expresses the
// opportunity cost of the simple-card strategy versus cash.
type PricingResults struct {
	PriceCash           float64 `json:"priceCash"`
	PriceCard           float64 `json:"priceCard"`
	ProfitCash          float64 `json:"profitCash"`
	ProfitCard          float64 `json:"profitCard"`
	SuggestedPromoPrice float64 `json:"suggestedPromoPrice"`
	PriceCardEmbedded   float64 `json:"priceCardEmbedded"`
	ReceivedEmbedded    float64 `json:"receivedEmbedded"`
	ProfitCardEmbedded  float64 `json:"profitCardEmbedded"`
	Difference          float64 `json:"difference"`
}

// SalarySimulation is one saved salary-goal calculation.
type SalarySimulation struct {
	ID      string         `json:"id"`
	Type    SimulationType `json:"type"`
	Date    time.Time      `json:"date"`
	Inputs  SalaryInputs   `json:"inputs"`
	Results SalaryResults  `json:"results"`
}

func (s SalarySimulation) SimulationID() string { return s.ID }

func (s SalarySimulation) SimulationType() SimulationType { return TypeSalary }

func (s SalarySimulation) CreatedAt() time.Time { return s.Date }

func (s SalarySimulation) WithID(id string) Simulation { s.ID = id; return s }

// PricingSimulation is one saved price-point calculation.
type PricingSimulation struct {
	ID      string         `json:"id"`
	Type    SimulationType `json:"type"`
	Date    time.Time      `json:"date"`
	Inputs  PricingInputs  `json:"inputs"`
	Results PricingResults `json:"results"`
}

func (p PricingSimulation) SimulationID() string { return p.ID }

func (p PricingSimulation) SimulationType() SimulationType { return TypePricing }

func (p PricingSimulation) CreatedAt() time.Time { return p.Date }

func (p PricingSimulation) WithID(id string) Simulation { p.ID = id; return p }

// NewSalarySimulation builds a record with a fresh client id and UTC timestamp.
func NewSalarySimulation(id string, inputs SalaryInputs, results SalaryResults) SalarySimulation {
	return SalarySimulation{
		ID:      id,
		Type:    TypeSalary,
		Date:    time.Now().UTC(),
		Inputs:  inputs,
		Results: results,
	}
}

// NewPricingSimulation builds a record with a fresh client id and UTC timestamp.
func NewPricingSimulation(id string, inputs PricingInputs, results PricingResults) PricingSimulation {
	return PricingSimulation{
		ID:      id,
		Type:    TypePricing,
		Date:    time.Now().UTC(),
		Inputs:  inputs,
		Results: results,
	}
}

// DecodeSimulation unmarshals one record, dispatching on the "type" field.
func DecodeSimulation(data []byte) (Simulation, error) {
	var probe struct {
		Type SimulationType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to read simulation type: %w", err)
	}

	switch probe.Type {
	case TypeSalary:
		var s SalarySimulation
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode salary simulation: %w", err)
		}
		return s, nil
	case TypePricing:
		var p PricingSimulation
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to decode pricing simulation: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown simulation type %q", probe.Type)
	}
}

// DecodeHistory unmarshals a flat JSON array of records.
func DecodeHistory(data []byte) ([]Simulation, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}

	sims := make([]Simulation, 0, len(raws))
	for _, raw := range raws {
		sim, err := DecodeSimulation(raw)
		if err != nil {
			return nil, err
		}
		sims = append(sims, sim)
	}
	return sims, nil
}

// EncodeHistory marshals records as a flat JSON array.
func EncodeHistory(sims []Simulation) ([]byte, error) {
	if sims == nil {
		sims = []Simulation{}
	}
	data, err := json.Marshal(sims)
	if err != nil {
		return nil, fmt.Errorf("failed to encode history: %w", err)
	}
	return data, nil
}

// SortNewestFirst orders records by date descending. The sort is stable so
// records sharing a date keep their insertion order.
func SortNewestFirst(sims []Simulation) {
	sort.SliceStable(sims, func(i, j int) bool {
		return sims[i].CreatedAt().After(sims[j].CreatedAt())
	})
}
