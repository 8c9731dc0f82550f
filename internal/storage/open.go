package storage

import (
	"fmt"
	"io"

	"coolcalc/internal/config"
)

// Backend is a Handler owning resources that must be released.
type Backend interface {
	Handler
	io.Closer
}

// Open builds the backend selected by cfg.
func Open(cfg config.Storage) (Backend, error) {
	switch cfg.Backend {
	case config.BackendFile:
		h, err := NewFileHandler(cfg.Path)
		if err != nil {
			return nil, err
		}
		return h, nil
	case config.BackendSQLite:
		h, err := NewSQLiteHandler(cfg.Path)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
