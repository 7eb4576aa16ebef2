package store

import (
	"fmt"
	"log/slog"

	"shopledger/domain"
)

// NewGateway constructs a domain.Gateway by kind: "memory" or "file".
// For the file gateway, provide the slot path; for memory, path is ignored.
func NewGateway(kind, path string, log *slog.Logger) (domain.Gateway, error) {
	switch kind {
	case "memory", "mem":
		return NewMemoryGateway(), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("file path required for file gateway")
		}
		return NewFileGateway(path, log), nil
	default:
		return nil, fmt.Errorf("unknown gateway kind: %s", kind)
	}
}
