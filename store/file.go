package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"shopledger/domain"
)

// FileGateway keeps the catalog in a single JSON file holding
// {"products": [...]}, the durable slot of the ledger.
type FileGateway struct {
	path string
	log  *slog.Logger
}

// compile-time assertion
var _ domain.Gateway = (*FileGateway)(nil)

// NewFileGateway constructs a gateway over the given file path. The file is
// not touched until Load or Save.
func NewFileGateway(path string, log *slog.Logger) *FileGateway {
	if log == nil {
		log = slog.Default()
	}
	return &FileGateway{path: path, log: log}
}

// Load reads the slot. It never fails outward: a missing, empty or
// unparsable file is logged and yields the seed catalog instead, which then
// becomes the first durable snapshot on the next Save.
func (g *FileGateway) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}
	b, err := os.ReadFile(g.path)
	if err != nil {
		if !os.IsNotExist(err) {
			g.log.Warn("slot unreadable, falling back to seed catalog",
				"path", g.path, "error", domain.NewPersistenceError("load", err))
		}
		return domain.Seed(), nil
	}
	if len(b) == 0 {
		return domain.Seed(), nil
	}
	var snap domain.Catalog
	if err := json.Unmarshal(b, &snap); err != nil {
		g.log.Warn("slot unparsable, falling back to seed catalog",
			"path", g.path, "error", domain.NewPersistenceError("load", err))
		return domain.Seed(), nil
	}
	if snap.Products == nil {
		snap.Products = []domain.Product{}
	}
	return snap, nil
}

// Save serializes the full snapshot and overwrites the slot. The write goes
// through a tmp file and rename so a crash mid-write cannot corrupt the
// previous snapshot.
func (g *FileGateway) Save(ctx context.Context, snap domain.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.NewPersistenceError("save", err)
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return domain.NewPersistenceError("save", err)
	}
	tmp := g.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return domain.NewPersistenceError("save", err)
	}
	if err := os.Rename(tmp, g.path); err != nil {
		return domain.NewPersistenceError("save", err)
	}
	return nil
}
