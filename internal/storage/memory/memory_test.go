package memory

import (
	"context"
	"testing"
	"time"

	"github.com/preciosa-app/backend/internal/models"
)

func TestMemoryStore(t *testing.T) {
	store := New()
	ctx := context.Background()
	now := time.Now().UTC()

	alice := models.Identity{ID: "alice"}
	bob := models.Identity{ID: "bob"}

	t.Run("Create assigns an id when missing", func(t *testing.T) {
		id, err := store.Create(ctx, alice, models.PricingSimulation{Type: models.TypePricing, Date: now})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if id == "" {
			t.Error("Expected generated id, got empty string")
		}
	})

	t.Run("List is newest first and isolated per identity", func(t *testing.T) {
		store.Create(ctx, bob, models.PricingSimulation{ID: "b-old", Type: models.TypePricing, Date: now.Add(-time.Hour)})
		store.Create(ctx, bob, models.PricingSimulation{ID: "b-new", Type: models.TypePricing, Date: now})

		sims, err := store.List(ctx, bob)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(sims) != 2 || sims[0].SimulationID() != "b-new" {
			t.Errorf("Expected [b-new b-old], got %v", sims)
		}

		aliceSims, _ := store.List(ctx, alice)
		for _, sim := range aliceSims {
			if sim.SimulationID() == "b-new" || sim.SimulationID() == "b-old" {
				t.Errorf("Bob's record leaked into Alice's history: %s", sim.SimulationID())
			}
		}
	})

	t.Run("Delete and Clear", func(t *testing.T) {
		carol := models.Identity{ID: "carol"}
		store.Create(ctx, carol, models.SalarySimulation{ID: "s-1", Type: models.TypeSalary, Date: now})
		store.Create(ctx, carol, models.SalarySimulation{ID: "s-2", Type: models.TypeSalary, Date: now})

		if err := store.Delete(ctx, carol, "s-1"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := store.Delete(ctx, carol, "s-1"); err != nil {
			t.Errorf("Repeated delete failed: %v", err)
		}

		sims, _ := store.List(ctx, carol)
		if len(sims) != 1 || sims[0].SimulationID() != "s-2" {
			t.Errorf("Expected only s-2, got %v", sims)
		}

		if err := store.Clear(ctx, carol); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		sims, _ = store.List(ctx, carol)
		if len(sims) != 0 {
			t.Errorf("Expected empty history after clear, got %d records", len(sims))
		}
	})
}
