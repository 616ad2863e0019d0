package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"asset-sync/core/mapping"
)

// Asset is a local file waiting to be reconciled.
type Asset struct {
	// Kind is the bucket the asset belongs to, taken from its folder.
	Kind mapping.AssetKind `json:"kind"`
	// Title is the file name without its extension.
	Title string `json:"title"`
	// Path is the local file path.
	Path string `json:"path"`
}

// Folder binds a local directory to an asset kind.
type Folder struct {
	Kind mapping.AssetKind
	Dir  string
}

// Scanner enumerates asset files in a fixed folder order.
type Scanner struct {
	folders    []Folder
	extensions map[string]struct{}
}

// NewScanner creates a scanner accepting the given extensions (case-insensitive,
// with or without the leading dot).
func NewScanner(folders []Folder, extensions []string) *Scanner {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[ext] = struct{}{}
	}
	return &Scanner{folders: folders, extensions: exts}
}

// Scan returns the assets of every folder, folder by folder, files in name order.
// Missing folders are returned in skipped rather than failing the scan.
func (s *Scanner) Scan() (found []Asset, skipped []string, err error) {
	for _, folder := range s.folders {
		entries, err := os.ReadDir(folder.Dir)
		if errors.Is(err, fs.ErrNotExist) {
			skipped = append(skipped, folder.Dir)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read asset folder %s: %w", folder.Dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			ext := filepath.Ext(name)
			if _, ok := s.extensions[strings.ToLower(ext)]; !ok {
				continue
			}
			found = append(found, Asset{
				Kind:  folder.Kind,
				Title: strings.TrimSuffix(name, ext),
				Path:  filepath.Join(folder.Dir, name),
			})
		}
	}
	return found, skipped, nil
}

// Consume removes a reconciled asset from the local folder.
func Consume(a Asset) error {
	if err := os.Remove(a.Path); err != nil {
		return fmt.Errorf("remove %s: %w", a.Path, err)
	}
	return nil
}
