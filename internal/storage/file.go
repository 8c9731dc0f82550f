package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrMultilineRecord is returned for records that would span several lines.
var ErrMultilineRecord = errors.New("record contains a line break")

// FileHandler appends one record per line to a file.
type FileHandler struct {
	mu   sync.Mutex
	path string
}

// NewFileHandler creates the parent directory of path if needed. The file
// itself is created on the first Save.
func NewFileHandler(path string) (*FileHandler, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &FileHandler{path: path}, nil
}

func (h *FileHandler) Path() string {
	return h.path
}

func (h *FileHandler) Save(ctx context.Context, record string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(record, "\r\n") {
		return fmt.Errorf("%w: %q", ErrMultilineRecord, record)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", h.path, err)
	}

	if _, err := f.WriteString(record + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", h.path, err)
	}

	return f.Close()
}

// Close is a no-op; the file is reopened for every record.
func (h *FileHandler) Close() error {
	return nil
}
