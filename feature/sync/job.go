package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"asset-sync/core/mapping"
	"asset-sync/feature/assets"
	"asset-sync/feature/discovery"

	"go.uber.org/zap"
)

// Seeder inserts catalog videos into a mapping.
type Seeder interface {
	Seed(ctx context.Context, m mapping.Mapping) (discovery.Result, error)
}

// Scanner enumerates local assets.
type Scanner interface {
	Scan() (found []assets.Asset, skipped []string, err error)
}

// Publisher uploads the saved mapping document.
type Publisher interface {
	UploadBytes(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

// Job wires one batch run: lock, load, discover, reconcile, save, publish.
// Nil steps are skipped.
type Job struct {
	// LockPath is the advisory lock file guarding the mapping.
	LockPath string
	// Store persists the mapping.
	Store mapping.Store
	// Seeder, when set, runs discovery before the asset step.
	Seeder Seeder
	// Scanner and Runner, when both set, run the asset step.
	Scanner Scanner
	Runner  *Runner
	// Publisher and PublishObject, when both set, upload the saved document.
	Publisher     Publisher
	PublishObject string
	// DryRun skips save and publish.
	DryRun bool
	Logger *zap.Logger
}

// Result is the outcome of a job.
type Result struct {
	Discovery *discovery.Result
	Report    *Report
	Mapping   mapping.Mapping
	Saved     bool
	Published string
	Duration  time.Duration
}

// Execute runs the job. Any returned error is a global failure: nothing after the
// failing step ran.
func (j *Job) Execute(ctx context.Context) (*Result, error) {
	l := j.Logger
	if l == nil {
		l = zap.NewNop()
	}
	if j.Store == nil {
		return nil, errors.New("mapping store required")
	}

	start := time.Now()
	res := &Result{}

	if j.LockPath != "" {
		lock, err := mapping.AcquireLock(j.LockPath)
		if err != nil {
			return nil, err
		}
		defer func() {
			if rerr := lock.Release(); rerr != nil {
				l.Warn("Failed to release mapping lock", zap.String("path", lock.Path()), zap.Error(rerr))
			}
		}()
	}

	m, err := j.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mapping: %w", err)
	}
	res.Mapping = m
	l.Info("Mapping loaded", zap.Int("videos", len(m)))

	if j.Seeder != nil {
		d, err := j.Seeder.Seed(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("discover videos: %w", err)
		}
		res.Discovery = &d
	}

	if j.Scanner != nil && j.Runner != nil {
		found, skipped, err := j.Scanner.Scan()
		if err != nil {
			return nil, fmt.Errorf("scan assets: %w", err)
		}
		for _, dir := range skipped {
			l.Warn("Asset folder not found, skipping", zap.String("dir", dir))
		}
		res.Report = j.Runner.Run(ctx, found, m)
	}

	if j.DryRun {
		l.Info("Dry run: mapping not saved")
		res.Duration = time.Since(start)
		return res, nil
	}

	if err := j.Store.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save mapping: %w", err)
	}
	res.Saved = true

	if j.Publisher != nil && j.PublishObject != "" {
		data, err := mapping.Encode(m)
		if err != nil {
			return nil, fmt.Errorf("encode mapping: %w", err)
		}
		ref, err := j.Publisher.UploadBytes(ctx, j.PublishObject, data, "application/json")
		if err != nil {
			return nil, fmt.Errorf("publish mapping: %w", err)
		}
		res.Published = ref
		l.Info("Mapping published", zap.String("reference", ref))
	}

	res.Duration = time.Since(start)
	return res, nil
}

// LogSummary writes the final summary line of a job.
func LogSummary(l *zap.Logger, res *Result) {
	stats := res.Mapping.Stats()
	fields := []zap.Field{
		zap.Int("videos", stats.Videos),
		zap.Int("videos_with_assets", stats.WithAssets),
		zap.Int("references", stats.Assets),
		zap.Bool("saved", res.Saved),
		zap.Duration("duration", res.Duration),
	}
	if res.Discovery != nil {
		fields = append(fields,
			zap.Int("fetched", res.Discovery.Fetched),
			zap.Int("added", res.Discovery.Added),
		)
	}
	if res.Report != nil {
		s := res.Report.Summary
		fields = append(fields,
			zap.String("run_id", res.Report.RunID),
			zap.Int("assets", s.Total),
			zap.Int("matched", s.Matched),
			zap.Int("unmatched", s.Unmatched),
			zap.Int("failed", s.Failed),
			zap.Int("exact", s.Exact),
			zap.Int("prefix", s.Prefix),
			zap.Int("fuzzy", s.Fuzzy),
			zap.Int("replaced", s.Replaced),
			zap.Int("lookup_errors", s.LookupErrors),
		)
	}
	if res.Published != "" {
		fields = append(fields, zap.String("published", res.Published))
	}
	l.Info("Sync complete", fields...)

	if res.Report != nil {
		for _, item := range res.Report.Unmatched() {
			l.Warn("Unmatched asset",
				zap.String("kind", string(item.Kind)),
				zap.String("title", item.Title),
			)
		}
	}
}
