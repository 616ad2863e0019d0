package mapping

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// VideoRecord is a known catalog video.
type VideoRecord struct {
	VideoID   string `gorm:"column:video_id;primaryKey;size:64"`
	CreatedAt time.Time
}

// TableName returns the table name for VideoRecord.
func (VideoRecord) TableName() string {
	return "videos"
}

// AssetRecord is one (video, kind) -> reference row.
type AssetRecord struct {
	VideoID   string `gorm:"column:video_id;primaryKey;size:64"`
	Kind      string `gorm:"column:kind;primaryKey;size:32"`
	Reference string `gorm:"column:reference;size:512;not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for AssetRecord.
func (AssetRecord) TableName() string {
	return "video_assets"
}

// DBStore persists a Mapping in two relational tables.
type DBStore struct {
	db *gorm.DB
}

var _ Store = (*DBStore)(nil)

// NewDBStore creates a database-backed store.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Migrate creates or updates the mapping tables.
func (s *DBStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&VideoRecord{}, &AssetRecord{}); err != nil {
		return fmt.Errorf("migrate mapping tables: %w", err)
	}
	return nil
}

// Load reads every video and asset row.
func (s *DBStore) Load(ctx context.Context) (Mapping, error) {
	var videos []VideoRecord
	if err := s.db.WithContext(ctx).Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("load videos: %w", err)
	}

	var assets []AssetRecord
	if err := s.db.WithContext(ctx).Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("load video assets: %w", err)
	}

	m := New()
	for _, v := range videos {
		m.EnsureVideo(v.VideoID)
	}
	for _, a := range assets {
		m.Set(a.VideoID, AssetKind(a.Kind), a.Reference)
	}
	return m, nil
}

// Save replaces both tables with the contents of m in a single transaction.
func (s *DBStore) Save(ctx context.Context, m Mapping) error {
	videos := make([]VideoRecord, 0, len(m))
	var assets []AssetRecord
	for _, id := range m.VideoIDs() {
		videos = append(videos, VideoRecord{VideoID: id})
		for kind, ref := range m[id] {
			assets = append(assets, AssetRecord{VideoID: id, Kind: string(kind), Reference: ref})
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := global.Delete(&AssetRecord{}).Error; err != nil {
			return fmt.Errorf("clear video assets: %w", err)
		}
		if err := global.Delete(&VideoRecord{}).Error; err != nil {
			return fmt.Errorf("clear videos: %w", err)
		}
		if len(videos) > 0 {
			if err := tx.CreateInBatches(videos, 500).Error; err != nil {
				return fmt.Errorf("insert videos: %w", err)
			}
		}
		if len(assets) > 0 {
			if err := tx.CreateInBatches(assets, 500).Error; err != nil {
				return fmt.Errorf("insert video assets: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save mapping: %w", err)
	}
	return nil
}
