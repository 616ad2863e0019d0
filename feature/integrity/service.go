package integrity

import (
	"context"
	"fmt"

	"asset-sync/core/mapping"
	"asset-sync/core/storage"

	"go.uber.org/zap"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	store  mapping.Store
	logger *zap.Logger
}

// NewService creates a new integrity service for the objects under prefix.
func NewService(client storage.Client, bucket, prefix string, store mapping.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		store:  store,
		logger: logger,
	}
}

// Check loads the mapping and compares it with the bucket.
func (s *Service) Check(ctx context.Context) (*Report, error) {
	m, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mapping: %w", err)
	}
	return CheckReferences(ctx, s.client, s.bucket, s.prefix, m)
}

// Prune removes the orphans of a report.
func (s *Service) Prune(ctx context.Context, report *Report) (int, error) {
	return RemoveOrphans(ctx, s.client, s.bucket, s.logger, report.Orphans)
}
