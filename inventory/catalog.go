// Package inventory implements the catalog state machine: pure,
// invariant-preserving transitions over immutable snapshots, and a Store
// that mirrors every new snapshot to the persistence gateway.
package inventory

import (
	"shopledger/domain"

	"github.com/google/uuid"
)

// AddProduct validates draft, assigns a fresh id and a zero sales counter,
// and appends the product to a new snapshot.
func AddProduct(snap domain.Catalog, draft domain.Draft) (domain.Catalog, domain.Product, error) {
	if err := domain.ValidateDraft(draft); err != nil {
		return snap, domain.Product{}, err
	}
	p := domain.Product{
		ID:            uuid.NewString(),
		Name:          draft.Name,
		Category:      draft.Category,
		Stock:         draft.Stock,
		Sales:         0,
		WholesaleRate: draft.WholesaleRate,
		OurRate:       draft.OurRate,
	}
	next := snap.Clone()
	next.Products = append(next.Products, p)
	return next, p, nil
}

// RecordSales replaces the product's sales counter with requested, capped at
// the current stock. Negative input is rejected. Stock is untouched, so the
// operation is idempotent.
func RecordSales(snap domain.Catalog, id string, requested int) (domain.Catalog, domain.Product, error) {
	if requested < 0 {
		return snap, domain.Product{}, domain.NewValidationError("sales", "must be non-negative", requested)
	}
	i := snap.IndexOf(id)
	if i < 0 {
		return snap, domain.Product{}, domain.NewNotFoundError(id)
	}
	next := snap.Clone()
	p := &next.Products[i]
	effective := requested
	if effective > p.Stock {
		effective = p.Stock
	}
	p.Sales = effective
	return next, *p, nil
}

// AdjustStock applies a signed delta to the product's stock. The result may
// not fall below already-recorded sales; that is a data-integrity error the
// caller must resolve explicitly, not something to clamp away silently.
func AdjustStock(snap domain.Catalog, id string, delta int) (domain.Catalog, domain.Product, error) {
	i := snap.IndexOf(id)
	if i < 0 {
		return snap, domain.Product{}, domain.NewNotFoundError(id)
	}
	if snap.Products[i].Stock+delta < snap.Products[i].Sales {
		return snap, domain.Product{}, domain.NewInvariantViolationError(id,
			"stock would fall below recorded sales")
	}
	next := snap.Clone()
	next.Products[i].Stock += delta
	return next, next.Products[i], nil
}

// ResetSales zeroes every sales counter, starting a new accounting day.
// Stock and all other fields are untouched. Never fails.
func ResetSales(snap domain.Catalog) domain.Catalog {
	next := snap.Clone()
	for i := range next.Products {
		next.Products[i].Sales = 0
	}
	return next
}

// DeleteProduct removes the product with id if present. Deleting an absent
// id is a no-op, not an error.
func DeleteProduct(snap domain.Catalog, id string) domain.Catalog {
	i := snap.IndexOf(id)
	if i < 0 {
		return snap
	}
	next := domain.Catalog{Products: make([]domain.Product, 0, len(snap.Products)-1)}
	next.Products = append(next.Products, snap.Products[:i]...)
	next.Products = append(next.Products, snap.Products[i+1:]...)
	return next
}
