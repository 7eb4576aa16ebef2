package inventory

import (
	"reflect"
	"testing"

	"shopledger/domain"
)

func sampleCatalog() domain.Catalog {
	return domain.Catalog{Products: []domain.Product{
		{ID: "1", Name: "Plain Cake", Category: "Bakery", Stock: 50, Sales: 0, WholesaleRate: 10, OurRate: 15},
		{ID: "2", Name: "Bread", Category: "Bakery", Stock: 100, Sales: 20, WholesaleRate: 20, OurRate: 30},
	}}
}

// checkInvariants asserts what must hold for every reachable snapshot:
// 0 <= sales <= stock and pairwise-distinct ids.
func checkInvariants(t *testing.T, snap domain.Catalog) {
	t.Helper()
	seen := map[string]bool{}
	for _, p := range snap.Products {
		if p.Sales < 0 || p.Sales > p.Stock {
			t.Fatalf("product %s violates 0 <= sales <= stock: sales=%d stock=%d", p.ID, p.Sales, p.Stock)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestAddProduct(t *testing.T) {
	t.Run("assigns fresh id and zero sales", func(t *testing.T) {
		empty := domain.Catalog{}
		next, p, err := AddProduct(empty, domain.Draft{
			Name: "Bun", Category: "Bakery", Stock: 10, WholesaleRate: 5, OurRate: 8,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(next.Products) != 1 {
			t.Fatalf("expected one product, got %d", len(next.Products))
		}
		if p.ID == "" {
			t.Fatal("expected a non-empty id")
		}
		if p.Sales != 0 {
			t.Fatalf("expected zero sales, got %d", p.Sales)
		}
		if len(empty.Products) != 0 {
			t.Fatal("input snapshot was mutated")
		}
		checkInvariants(t, next)
	})

	t.Run("ids are unique across additions", func(t *testing.T) {
		snap := domain.Catalog{}
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			var p domain.Product
			var err error
			snap, p, err = AddProduct(snap, domain.Draft{Name: "X", Category: "C"})
			if err != nil {
				t.Fatalf("add failed: %v", err)
			}
			if seen[p.ID] {
				t.Fatalf("id %s assigned twice", p.ID)
			}
			seen[p.ID] = true
		}
		checkInvariants(t, snap)
	})

	t.Run("rejects malformed drafts", func(t *testing.T) {
		snap := sampleCatalog()
		next, _, err := AddProduct(snap, domain.Draft{Name: "", Category: "Bakery"})
		if !domain.IsValidationError(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if !reflect.DeepEqual(next, snap) {
			t.Fatal("snapshot changed on rejected add")
		}
	})
}

func TestRecordSales(t *testing.T) {
	t.Run("sets sales and leaves stock untouched", func(t *testing.T) {
		next, p, err := RecordSales(sampleCatalog(), "1", 30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Sales != 30 || p.Stock != 50 {
			t.Fatalf("expected sales=30 stock=50, got sales=%d stock=%d", p.Sales, p.Stock)
		}
		checkInvariants(t, next)
	})

	t.Run("clamps request above stock", func(t *testing.T) {
		// catalog [{id:"1", stock:50, wholesale:10, rate:15}]: selling 60
		// yields sales=50 and a line profit of (15-10)*50 = 250
		next, p, err := RecordSales(sampleCatalog(), "1", 60)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Sales != 50 {
			t.Fatalf("expected sales clamped to 50, got %d", p.Sales)
		}
		if p.LineProfit() != 250 {
			t.Fatalf("expected line profit 250, got %v", p.LineProfit())
		}
		checkInvariants(t, next)
	})

	t.Run("idempotent", func(t *testing.T) {
		once, _, err := RecordSales(sampleCatalog(), "1", 25)
		if err != nil {
			t.Fatalf("first apply failed: %v", err)
		}
		twice, _, err := RecordSales(once, "1", 25)
		if err != nil {
			t.Fatalf("second apply failed: %v", err)
		}
		if !reflect.DeepEqual(once, twice) {
			t.Fatal("applying the same sales twice changed the snapshot")
		}
	})

	t.Run("negative request rejected", func(t *testing.T) {
		snap := sampleCatalog()
		next, _, err := RecordSales(snap, "1", -3)
		if !domain.IsValidationError(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if !reflect.DeepEqual(next, snap) {
			t.Fatal("snapshot changed on rejected request")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := RecordSales(sampleCatalog(), "no-such", 1)
		if !domain.IsNotFoundError(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestAdjustStock(t *testing.T) {
	t.Run("additive up and down", func(t *testing.T) {
		orig := sampleCatalog()
		up, _, err := AdjustStock(orig, "1", 5)
		if err != nil {
			t.Fatalf("restock failed: %v", err)
		}
		down, p, err := AdjustStock(up, "1", -5)
		if err != nil {
			t.Fatalf("correction failed: %v", err)
		}
		if p.Stock != 50 {
			t.Fatalf("expected stock restored to 50, got %d", p.Stock)
		}
		checkInvariants(t, down)
	})

	t.Run("rejects stock below recorded sales", func(t *testing.T) {
		snap := domain.Catalog{Products: []domain.Product{
			{ID: "x", Name: "X", Category: "C", Stock: 20, Sales: 5},
		}}
		next, _, err := AdjustStock(snap, "x", -20)
		if !domain.IsInvariantViolationError(err) {
			t.Fatalf("expected InvariantViolationError, got %v", err)
		}
		if !reflect.DeepEqual(next, snap) {
			t.Fatal("snapshot changed on rejected adjustment")
		}
	})

	t.Run("shrink down to exactly sales is allowed", func(t *testing.T) {
		snap := domain.Catalog{Products: []domain.Product{
			{ID: "x", Name: "X", Category: "C", Stock: 20, Sales: 5},
		}}
		next, p, err := AdjustStock(snap, "x", -15)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Stock != 5 {
			t.Fatalf("expected stock 5, got %d", p.Stock)
		}
		checkInvariants(t, next)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := AdjustStock(sampleCatalog(), "no-such", 1)
		if !domain.IsNotFoundError(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestResetSales(t *testing.T) {
	next := ResetSales(sampleCatalog())
	for _, p := range next.Products {
		if p.Sales != 0 {
			t.Fatalf("product %s still has sales %d", p.ID, p.Sales)
		}
	}
	if next.Products[1].Stock != 100 {
		t.Fatal("reset touched stock")
	}
	checkInvariants(t, next)

	// no-op on an empty catalog
	if got := ResetSales(domain.Catalog{}); len(got.Products) != 0 {
		t.Fatal("reset invented products")
	}
}

func TestDeleteProduct(t *testing.T) {
	t.Run("removes the product", func(t *testing.T) {
		next := DeleteProduct(sampleCatalog(), "1")
		if len(next.Products) != 1 || next.Products[0].ID != "2" {
			t.Fatalf("unexpected catalog after delete: %+v", next.Products)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		snap := sampleCatalog()
		next := DeleteProduct(snap, "no-such")
		if !reflect.DeepEqual(next, snap) {
			t.Fatal("deleting an absent id changed the snapshot")
		}
	})
}
