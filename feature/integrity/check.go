package integrity

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"asset-sync/core/mapping"
	"asset-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MissingReference is a mapping reference with no object behind it.
type MissingReference struct {
	VideoID   string            `json:"videoId"`
	Kind      mapping.AssetKind `json:"kind"`
	Reference string            `json:"reference"`
}

// Report compares the mapping with the objects of the bucket.
type Report struct {
	Bucket     string             `json:"bucket"`
	Prefix     string             `json:"prefix"`
	References int                `json:"references"`
	Objects    int                `json:"objects"`
	Missing    []MissingReference `json:"missing"`
	// Orphans are objects under Prefix that no mapping entry references.
	Orphans []string `json:"orphans"`
}

// Healthy reports whether nothing is missing or orphaned.
func (r *Report) Healthy() bool {
	return len(r.Missing) == 0 && len(r.Orphans) == 0
}

// CheckReferences lists the objects under prefix and compares them with m.
func CheckReferences(ctx context.Context, client storage.Client, bucket, prefix string, m mapping.Mapping) (*Report, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	prefix = strings.Trim(prefix, "/")
	opts := minio.ListObjectsOptions{Recursive: true}
	if prefix != "" {
		opts.Prefix = prefix + "/"
	}

	objects := make(map[string]bool)
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		objects[obj.Key] = false
	}

	report := &Report{Bucket: bucket, Prefix: prefix, Objects: len(objects)}
	for _, id := range m.VideoIDs() {
		entry := m[id]
		kinds := make([]string, 0, len(entry))
		for kind := range entry {
			kinds = append(kinds, string(kind))
		}
		sort.Strings(kinds)

		// Every stored kind counts, including ones this build does not know.
		for _, k := range kinds {
			kind := mapping.AssetKind(k)
			ref := entry[kind]
			report.References++
			if _, found := objects[ref]; !found {
				report.Missing = append(report.Missing, MissingReference{VideoID: id, Kind: kind, Reference: ref})
				continue
			}
			objects[ref] = true
		}
	}

	for key, referenced := range objects {
		if !referenced {
			report.Orphans = append(report.Orphans, key)
		}
	}
	sort.Strings(report.Orphans)

	return report, nil
}

// RemoveOrphans deletes the given objects and returns how many were removed.
func RemoveOrphans(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, orphans []string) (int, error) {
	if len(orphans) == 0 {
		return 0, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(orphans))
	for _, key := range orphans {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	failed := 0
	var firstErr error
	for rerr := range client.RemoveObjects(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed++
		logger.Error("Failed to remove orphan", zap.String("object", rerr.ObjectName), zap.Error(rerr.Err))
		if firstErr == nil {
			firstErr = rerr.Err
		}
	}

	removed := len(orphans) - failed
	logger.Info("Removed orphan objects", zap.Int("removed", removed), zap.Int("failed", failed))
	if firstErr != nil {
		return removed, fmt.Errorf("failed to remove %d orphan objects: %w", failed, firstErr)
	}
	return removed, nil
}
