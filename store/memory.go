// Package store provides persistence gateway implementations for the shop
// ledger: a JSON file slot and an in-memory slot for tests and throwaway
// sessions.
package store

import (
	"context"
	"sync"

	"shopledger/domain"
)

// MemoryGateway keeps the slot in memory. It backs `--store memory` runs
// and serves as the test double for the file gateway.
type MemoryGateway struct {
	mu     sync.Mutex
	slot   domain.Catalog
	loaded bool

	// SaveErr, when set, is returned by every Save. Tests use it to
	// exercise the logged-and-swallowed write-failure path.
	SaveErr error

	// Saves counts successful Save calls.
	Saves int
}

// compile-time assertion
var _ domain.Gateway = (*MemoryGateway)(nil)

// NewMemoryGateway constructs an empty in-memory slot.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

// Load returns the last saved snapshot, or the seed catalog if nothing has
// been saved yet.
func (g *MemoryGateway) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.loaded {
		return domain.Seed(), nil
	}
	return g.slot.Clone(), nil
}

// Save overwrites the slot with a copy of the snapshot.
func (g *MemoryGateway) Save(ctx context.Context, snap domain.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.SaveErr != nil {
		return g.SaveErr
	}
	g.slot = snap.Clone()
	g.loaded = true
	g.Saves++
	return nil
}

// Seed preloads the slot with a snapshot, as if it had been saved before.
func (g *MemoryGateway) Seed(snap domain.Catalog) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.slot = snap.Clone()
	g.loaded = true
}
