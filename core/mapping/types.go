package mapping

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownKind is returned when parsing an asset kind that is not supported.
	ErrUnknownKind = errors.New("unknown asset kind")
	// ErrVideoNotFound is returned when a video id is not present in the mapping.
	ErrVideoNotFound = errors.New("video not found")
)

// AssetKind tags the logical bucket of an uploaded asset.
type AssetKind string

const (
	// KindInfographic is a single-image summary of a video.
	KindInfographic AssetKind = "infographic"
	// KindMindmap is a mind map of a video's topics.
	KindMindmap AssetKind = "mindmap"
)

// Kinds returns every supported asset kind.
func Kinds() []AssetKind {
	return []AssetKind{KindInfographic, KindMindmap}
}

// ParseAssetKind validates a kind name.
func ParseAssetKind(s string) (AssetKind, error) {
	kind := AssetKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Kinds() {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Entry maps each asset kind of one video to its asset reference.
type Entry map[AssetKind]string

// Mapping is the full VideoId -> Entry document.
type Mapping map[string]Entry

// Store loads and saves a whole Mapping.
type Store interface {
	// Load reads the full document. A missing document loads as an empty mapping.
	Load(ctx context.Context) (Mapping, error)
	// Save replaces the full document.
	Save(ctx context.Context, m Mapping) error
}

// New returns an empty mapping.
func New() Mapping {
	return make(Mapping)
}

// EnsureVideo records a known video with an empty entry. It reports whether the
// video was added.
func (m Mapping) EnsureVideo(videoID string) bool {
	if entry, ok := m[videoID]; ok {
		if entry == nil {
			m[videoID] = Entry{}
		}
		return false
	}
	m[videoID] = Entry{}
	return true
}

// Set stores ref for (videoID, kind), replacing any earlier reference.
// It returns the previous reference, if there was one.
func (m Mapping) Set(videoID string, kind AssetKind, ref string) (previous string, replaced bool) {
	m.EnsureVideo(videoID)
	previous, replaced = m[videoID][kind]
	m[videoID][kind] = ref
	return previous, replaced
}

// Get returns the reference stored for (videoID, kind).
func (m Mapping) Get(videoID string, kind AssetKind) (string, bool) {
	entry, ok := m[videoID]
	if !ok {
		return "", false
	}
	ref, ok := entry[kind]
	return ref, ok
}

// VideoIDs returns the known video ids in sorted order.
func (m Mapping) VideoIDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for id, entry := range m {
		copied := make(Entry, len(entry))
		for kind, ref := range entry {
			copied[kind] = ref
		}
		out[id] = copied
	}
	return out
}

// Stats summarizes a mapping.
type Stats struct {
	Videos     int
	WithAssets int
	Assets     int
}

// Stats counts videos and references.
func (m Mapping) Stats() Stats {
	s := Stats{Videos: len(m)}
	for _, entry := range m {
		if len(entry) > 0 {
			s.WithAssets++
		}
		s.Assets += len(entry)
	}
	return s
}

// normalize replaces nil entries with empty ones so that documents round-trip.
func (m Mapping) normalize() Mapping {
	if m == nil {
		return New()
	}
	for id, entry := range m {
		if entry == nil {
			m[id] = Entry{}
		}
	}
	return m
}
