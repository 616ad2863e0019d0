package discovery

import (
	"context"
	"fmt"

	"asset-sync/core/catalog"
	"asset-sync/core/mapping"

	"go.uber.org/zap"
)

// Result summarizes one discovery pass.
type Result struct {
	// Fetched is the number of videos the catalog listed.
	Fetched int `json:"fetched"`
	// Added is the number of video ids that were not in the mapping yet.
	Added int `json:"added"`
}

// Discoverer seeds a mapping with every video of a channel.
type Discoverer struct {
	lister    catalog.Lister
	channelID string
	logger    *zap.Logger
}

// NewDiscoverer creates a discoverer for one channel.
func NewDiscoverer(lister catalog.Lister, channelID string, logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{lister: lister, channelID: channelID, logger: logger}
}

// Seed lists the channel and inserts unknown video ids with empty entries.
// Existing entries are never modified. On error the mapping is left untouched.
func (d *Discoverer) Seed(ctx context.Context, m mapping.Mapping) (Result, error) {
	videos, err := d.lister.ListAll(ctx, d.channelID)
	if err != nil {
		return Result{}, fmt.Errorf("list channel %s: %w", d.channelID, err)
	}

	result := Result{Fetched: len(videos)}
	for _, v := range videos {
		if v.ID == "" {
			continue
		}
		if m.EnsureVideo(v.ID) {
			result.Added++
			d.logger.Debug("Discovered video",
				zap.String("video_id", v.ID),
				zap.String("title", v.Title),
			)
		}
	}

	d.logger.Info("Video discovery complete",
		zap.String("channel_id", d.channelID),
		zap.Int("fetched", result.Fetched),
		zap.Int("added", result.Added),
		zap.Int("known", len(m)),
	)
	return result, nil
}
