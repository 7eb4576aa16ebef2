// Package domain defines core business types and interfaces.
package domain

import "context"

// Product is one inventory line: units on hand and units sold in the
// current accounting day.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Stock         int     `json:"stock"`
	Sales         int     `json:"sales"`
	WholesaleRate float64 `json:"wholesaleRate"`
	OurRate       float64 `json:"ourRate"`
}

// Remaining is the number of units still available for sale today.
func (p Product) Remaining() int { return p.Stock - p.Sales }

// ProfitPerUnit may be negative; selling below wholesale is allowed.
func (p Product) ProfitPerUnit() float64 { return p.OurRate - p.WholesaleRate }

// LineProfit is today's profit for this product.
func (p Product) LineProfit() float64 { return p.ProfitPerUnit() * float64(p.Sales) }

// LineSalesValue is today's gross sales value for this product.
func (p Product) LineSalesValue() float64 { return p.OurRate * float64(p.Sales) }

// Draft carries operator input for a new product. The id and the zeroed
// sales counter are assigned by the catalog, not the caller.
type Draft struct {
	Name          string
	Category      string
	Stock         int
	WholesaleRate float64
	OurRate       float64
}

// ValidateDraft rejects malformed input before it reaches the catalog.
func ValidateDraft(d Draft) error {
	if d.Name == "" {
		return NewValidationError("name", "cannot be empty", d.Name)
	}
	if d.Category == "" {
		return NewValidationError("category", "cannot be empty", d.Category)
	}
	if d.Stock < 0 {
		return NewValidationError("stock", "must be non-negative", d.Stock)
	}
	if d.WholesaleRate < 0 {
		return NewValidationError("wholesaleRate", "must be non-negative", d.WholesaleRate)
	}
	if d.OurRate < 0 {
		return NewValidationError("ourRate", "must be non-negative", d.OurRate)
	}
	return nil
}

// Catalog is the full ordered product list at a point in time. Transitions
// never modify a catalog in place; they return a fresh snapshot.
type Catalog struct {
	Products []Product `json:"products"`
}

// Clone returns a deep copy safe to hand out or mutate.
func (c Catalog) Clone() Catalog {
	out := Catalog{Products: make([]Product, len(c.Products))}
	copy(out.Products, c.Products)
	return out
}

// Find returns the product with the given id, if present.
func (c Catalog) Find(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// IndexOf returns the position of id in the catalog, or -1.
func (c Catalog) IndexOf(id string) int {
	for i, p := range c.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Totals are the day's aggregate figures across the whole catalog.
type Totals struct {
	SalesValue float64
	Profit     float64
	ItemsSold  int
}

// Totals sums today's sales value, profit and units sold.
func (c Catalog) Totals() Totals {
	var t Totals
	for _, p := range c.Products {
		t.SalesValue += p.LineSalesValue()
		t.Profit += p.LineProfit()
		t.ItemsSold += p.Sales
	}
	return t
}

// Gateway mirrors catalog snapshots to a durable slot and recovers the last
// snapshot on startup. Load never fails outward: an absent or unreadable
// slot yields the seed catalog instead.
type Gateway interface {
	Load(ctx context.Context) (Catalog, error)
	Save(ctx context.Context, snapshot Catalog) error
}
