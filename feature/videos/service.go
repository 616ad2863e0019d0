package videos

import (
	"context"
	"fmt"

	"asset-sync/core/mapping"

	"go.uber.org/zap"
)

// AssetView is one stored asset of a video.
type AssetView struct {
	Reference string `json:"reference"`
	URL       string `json:"url"`
}

// VideoView is the mapping entry of one video with public URLs.
type VideoView struct {
	VideoID string                          `json:"videoId"`
	Assets  map[mapping.AssetKind]AssetView `json:"assets"`
}

// ListView is the response of the list endpoint.
type ListView struct {
	Videos     int         `json:"videos"`
	WithAssets int         `json:"videosWithAssets"`
	References int         `json:"references"`
	Items      []VideoView `json:"items"`
}

// Service reads the mapping for the API.
type Service struct {
	store     mapping.Store
	publicURL func(ref string) string
	logger    *zap.Logger
}

// NewService creates a new video service. publicURL turns a reference into a
// download URL.
func NewService(store mapping.Store, publicURL func(ref string) string, logger *zap.Logger) *Service {
	if publicURL == nil {
		publicURL = func(ref string) string { return ref }
	}
	return &Service{store: store, publicURL: publicURL, logger: logger}
}

// List returns every known video in id order.
func (s *Service) List(ctx context.Context) (*ListView, error) {
	m, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mapping: %w", err)
	}

	stats := m.Stats()
	view := &ListView{
		Videos:     stats.Videos,
		WithAssets: stats.WithAssets,
		References: stats.Assets,
		Items:      make([]VideoView, 0, len(m)),
	}
	for _, id := range m.VideoIDs() {
		view.Items = append(view.Items, s.view(id, m[id]))
	}
	return view, nil
}

// Get returns the entry of one video.
func (s *Service) Get(ctx context.Context, videoID string) (*VideoView, error) {
	m, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mapping: %w", err)
	}

	entry, ok := m[videoID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", mapping.ErrVideoNotFound, videoID)
	}
	v := s.view(videoID, entry)
	return &v, nil
}

func (s *Service) view(videoID string, entry mapping.Entry) VideoView {
	v := VideoView{VideoID: videoID, Assets: make(map[mapping.AssetKind]AssetView, len(entry))}
	for kind, ref := range entry {
		v.Assets[kind] = AssetView{Reference: ref, URL: s.publicURL(ref)}
	}
	return v
}
