package inventory

import (
	"context"
	"log/slog"
	"sync"

	"shopledger/domain"
)

// Store holds the current catalog snapshot and mirrors every successful
// transition through the persistence gateway. There is exactly one writer
// per session; the mutex only guards against accidental concurrent use.
type Store struct {
	mu   sync.RWMutex
	snap domain.Catalog
	gw   domain.Gateway
	log  *slog.Logger
}

// NewStore recovers the last snapshot from the gateway (or the seed catalog
// if the slot is empty or unreadable) and writes it back so the recovered
// state becomes the first durable snapshot.
func NewStore(ctx context.Context, gw domain.Gateway, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	snap, err := gw.Load(ctx)
	if err != nil {
		// gateways fall back to seed themselves; a hard Load error means
		// the context was cancelled
		return nil, err
	}
	s := &Store{snap: snap, gw: gw, log: log}
	s.persist(ctx)
	return s, nil
}

// Snapshot returns a copy of the current catalog.
func (s *Store) Snapshot() domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// AddProduct creates a product from draft and returns it.
func (s *Store) AddProduct(ctx context.Context, draft domain.Draft) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, p, err := AddProduct(s.snap, draft)
	if err != nil {
		return domain.Product{}, err
	}
	s.snap = next
	s.persist(ctx)
	return p, nil
}

// RecordSales sets today's sales for the product, capped at its stock, and
// returns the updated product.
func (s *Store) RecordSales(ctx context.Context, id string, requested int) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, p, err := RecordSales(s.snap, id, requested)
	if err != nil {
		return domain.Product{}, err
	}
	s.snap = next
	s.persist(ctx)
	return p, nil
}

// AdjustStock applies a signed stock delta and returns the updated product.
func (s *Store) AdjustStock(ctx context.Context, id string, delta int) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, p, err := AdjustStock(s.snap, id, delta)
	if err != nil {
		return domain.Product{}, err
	}
	s.snap = next
	s.persist(ctx)
	return p, nil
}

// ResetSales zeroes every sales counter, starting a new accounting day.
func (s *Store) ResetSales(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = ResetSales(s.snap)
	s.persist(ctx)
	return nil
}

// DeleteProduct removes the product if present; absent ids are a no-op.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = DeleteProduct(s.snap, id)
	s.persist(ctx)
	return nil
}

// persist mirrors the current snapshot to the gateway. A write failure is
// logged and swallowed: the in-memory snapshot stays authoritative for the
// rest of the session. Callers hold the write lock.
func (s *Store) persist(ctx context.Context) {
	if err := s.gw.Save(ctx, s.snap); err != nil {
		s.log.Warn("snapshot save failed, continuing in memory", "error", err)
	}
}
