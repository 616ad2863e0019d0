package mapping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// FileStore persists a Mapping as an indented JSON document.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the document path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the document. A missing file yields an empty mapping.
func (s *FileStore) Load(ctx context.Context) (Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read mapping %s: %w", s.path, err)
	}

	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode mapping %s: %w", s.path, err)
	}
	return m, nil
}

// Save writes the document atomically (temp file, fsync, rename).
func (s *FileStore) Save(ctx context.Context, m Mapping) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(m)
	if err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create mapping dir %s: %w", dir, err)
		}
	}

	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write mapping %s: %w", s.path, err)
	}
	return nil
}

// Encode renders a mapping as the persisted JSON document.
func Encode(m Mapping) ([]byte, error) {
	if m == nil {
		m = New()
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a persisted JSON document.
func Decode(data []byte) (Mapping, error) {
	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m.normalize(), nil
}
