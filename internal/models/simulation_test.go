package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDecodeSimulation(t *testing.T) {
	t.Run("Dispatches pricing records", func(t *testing.T) {
		data := []byte(`{
			"id": "p-1",
			"type": "pricing",
			"date": "2025-06-01T12:00:00Z",
			"inputs": {"cost": 100, "marginPercent": 100, "cardRatePercent": 10},
			"results": {"priceCash": 200, "profitCash": 100}
		}`)

		sim, err := DecodeSimulation(data)
		if err != nil {
			t.Fatalf("DecodeSimulation failed: %v", err)
		}
		p, ok := sim.(PricingSimulation)
		if !ok {
			t.Fatalf("Expected PricingSimulation, got %T", sim)
		}
		if p.ID != "p-1" || p.Inputs.Cost != 100 || p.Results.PriceCash != 200 {
			t.Errorf("Decoded fields mismatch: %+v", p)
		}
	})

	t.Run("Dispatches salary records", func(t *testing.T) {
		data := []byte(`{
			"id": "s-1",
			"type": "salary",
			"date": "2025-06-01T12:00:00Z",
			"inputs": {"targetMonthlyProfit": 3000, "marginPercent": 100, "avgTicket": 30},
			"results": {"piecesPerMonth": 200}
		}`)

		sim, err := DecodeSimulation(data)
		if err != nil {
			t.Fatalf("DecodeSimulation failed: %v", err)
		}
		s, ok := sim.(SalarySimulation)
		if !ok {
			t.Fatalf("Expected SalarySimulation, got %T", sim)
		}
		if s.Inputs.TargetMonthlyProfit != 3000 || s.Results.PiecesPerMonth != 200 {
			t.Errorf("Decoded fields mismatch: %+v", s)
		}
	})

	t.Run("Rejects unknown type", func(t *testing.T) {
		_, err := DecodeSimulation([]byte(`{"id": "x", "type": "mystery"}`))
		if err == nil {
			t.Fatal("Expected error for unknown type, got nil")
		}
		if !strings.Contains(err.Error(), "mystery") {
			t.Errorf("Expected error to name the type, got: %v", err)
		}
	})

	t.Run("Rejects malformed JSON", func(t *testing.T) {
		if _, err := DecodeSimulation([]byte(`{not json`)); err == nil {
			t.Error("Expected error for malformed JSON, got nil")
		}
	})
}

func TestHistoryRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sims := []Simulation{
		PricingSimulation{ID: "p-1", Type: TypePricing, Date: now, Inputs: PricingInputs{Cost: 50}},
		SalarySimulation{ID: "s-1", Type: TypeSalary, Date: now.Add(-time.Hour), Inputs: SalaryInputs{AvgTicket: 25}},
	}

	data, err := EncodeHistory(sims)
	if err != nil {
		t.Fatalf("EncodeHistory failed: %v", err)
	}

	decoded, err := DecodeHistory(data)
	if err != nil {
		t.Fatalf("DecodeHistory failed: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(decoded))
	}
	if decoded[0].SimulationType() != TypePricing || decoded[1].SimulationType() != TypeSalary {
		t.Errorf("Type order not preserved: %s, %s", decoded[0].SimulationType(), decoded[1].SimulationType())
	}
	if decoded[1].SimulationID() != "s-1" {
		t.Errorf("Expected id s-1, got %s", decoded[1].SimulationID())
	}
}

func TestEncodeHistoryNil(t *testing.T) {
	data, err := EncodeHistory(nil)
	if err != nil {
		t.Fatalf("EncodeHistory failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected empty array for nil history, got %s", data)
	}
}

func TestSortNewestFirst(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Orders by date descending", func(t *testing.T) {
		sims := []Simulation{
			PricingSimulation{ID: "old", Date: now.Add(-2 * time.Hour)},
			PricingSimulation{ID: "new", Date: now},
			PricingSimulation{ID: "mid", Date: now.Add(-time.Hour)},
		}

		SortNewestFirst(sims)

		for i, want := range []string{"new", "mid", "old"} {
			if sims[i].SimulationID() != want {
				t.Errorf("Position %d: got %s, want %s", i, sims[i].SimulationID(), want)
			}
		}
	})

	t.Run("Ties keep insertion order", func(t *testing.T) {
		sims := []Simulation{
			PricingSimulation{ID: "first", Date: now},
			SalarySimulation{ID: "second", Date: now},
			PricingSimulation{ID: "third", Date: now},
		}

		SortNewestFirst(sims)

		for i, want := range []string{"first", "second", "third"} {
			if sims[i].SimulationID() != want {
				t.Errorf("Position %d: got %s, want %s", i, sims[i].SimulationID(), want)
			}
		}
	})
}

func TestWithIDReturnsCopy(t *testing.T) {
	original := PricingSimulation{ID: "client-id", Type: TypePricing}

	relabeled := original.WithID("server-id")

	if relabeled.SimulationID() != "server-id" {
		t.Errorf("Expected server-id, got %s", relabeled.SimulationID())
	}
	if original.ID != "client-id" {
		t.Errorf("WithID mutated the original: %s", original.ID)
	}
}

func TestSimulationJSONShape(t *testing.T) {
	sim := NewPricingSimulation("p-1", PricingInputs{Cost: 100}, PricingResults{PriceCash: 200})

	data, err := json.Marshal(sim)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Wire fields are camelCase; the discriminator travels with the record.
	for _, key := range []string{`"id"`, `"type":"pricing"`, `"date"`, `"priceCash"`, `"cardRatePercent"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Expected %s in encoded record, got: %s", key, data)
		}
	}
}
