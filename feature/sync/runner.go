package sync

import (
	"context"

	"asset-sync/core/catalog"
	"asset-sync/core/logger"
	"asset-sync/core/mapping"
	"asset-sync/core/reconcile"
	"asset-sync/core/storage"
	"asset-sync/feature/assets"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Uploader stores a local file and returns its reference.
type Uploader interface {
	UploadFile(ctx context.Context, localPath, objectName string) (string, error)
}

// RunnerOptions tunes a Runner.
type RunnerOptions struct {
	// ChannelID scopes catalog lookups.
	ChannelID string
	// CandidateLimit is the number of candidates requested per asset.
	CandidateLimit int
	// ObjectPrefix is prepended to uploaded object names.
	ObjectPrefix string
	// DryRun computes matches without uploading, mutating or consuming anything.
	DryRun bool
	// Consume removes a reconciled asset. Defaults to assets.Consume.
	Consume func(assets.Asset) error
}

// Runner reconciles local assets against the catalog, one at a time.
type Runner struct {
	searcher catalog.Searcher
	engine   *reconcile.Engine
	uploader Uploader
	opts     RunnerOptions
	logger   *zap.Logger
}

// NewRunner creates a batch runner.
func NewRunner(searcher catalog.Searcher, engine *reconcile.Engine, uploader Uploader, opts RunnerOptions, logger *zap.Logger) *Runner {
	if opts.CandidateLimit <= 0 {
		opts.CandidateLimit = 10
	}
	if opts.Consume == nil {
		opts.Consume = assets.Consume
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		searcher: searcher,
		engine:   engine,
		uploader: uploader,
		opts:     opts,
		logger:   logger,
	}
}

// Run processes the assets in order and records matches in m. Per-asset failures
// never abort the batch; they are reported per item.
func (r *Runner) Run(ctx context.Context, items []assets.Asset, m mapping.Mapping) *Report {
	report := &Report{RunID: uuid.NewString(), DryRun: r.opts.DryRun}
	l := logger.WithRunID(r.logger, report.RunID)

	l.Info("Reconciling assets",
		zap.Int("assets", len(items)),
		zap.Bool("dry_run", r.opts.DryRun),
	)

	for _, asset := range items {
		if err := ctx.Err(); err != nil {
			l.Warn("Run interrupted", zap.Error(err))
			break
		}
		report.add(r.process(ctx, l, asset, m))
	}

	return report
}

func (r *Runner) process(ctx context.Context, l *zap.Logger, asset assets.Asset, m mapping.Mapping) ItemReport {
	item := ItemReport{
		Kind:    asset.Kind,
		Title:   asset.Title,
		Path:    asset.Path,
		Outcome: OutcomeUnmatched,
		Rule:    reconcile.RuleNone,
	}
	l = l.With(zap.String("kind", string(asset.Kind)), zap.String("title", asset.Title))

	videos, err := r.searcher.Search(ctx, r.opts.ChannelID, asset.Title, r.opts.CandidateLimit)
	if err != nil {
		item.Err = err
		l.Error("Catalog lookup failed", zap.Error(err))
		return item
	}

	candidates := make([]reconcile.Candidate, 0, len(videos))
	for _, v := range videos {
		candidates = append(candidates, reconcile.Candidate{ID: v.ID, Title: v.Title})
	}

	result := r.engine.Match(asset.Title, candidates)
	item.Rule = result.Rule
	if !result.Matched() {
		l.Warn("Asset left unmatched", zap.String("path", asset.Path))
		return item
	}

	item.VideoID = result.VideoID
	item.CandidateTitle = result.CandidateTitle
	item.Score = result.Score

	if r.opts.DryRun {
		item.Outcome = OutcomeMatched
		l.Info("Dry run: skipping upload", zap.String("video_id", result.VideoID))
		return item
	}

	objectName := storage.ObjectName(r.opts.ObjectPrefix, result.VideoID, string(asset.Kind), asset.Path)
	ref, err := r.uploader.UploadFile(ctx, asset.Path, objectName)
	if err != nil {
		item.Outcome = OutcomeFailed
		item.Err = err
		l.Error("Upload failed, keeping local file",
			zap.String("video_id", result.VideoID),
			zap.String("object", objectName),
			zap.Error(err),
		)
		return item
	}

	previous, replaced := m.Set(result.VideoID, asset.Kind, ref)
	item.Outcome = OutcomeMatched
	item.Reference = ref
	item.Replaced = replaced

	fields := []zap.Field{
		zap.String("video_id", result.VideoID),
		zap.String("reference", ref),
	}
	if item.Replaced {
		fields = append(fields, zap.String("previous_reference", previous))
	}
	l.Info("Asset uploaded", fields...)

	if err := r.opts.Consume(asset); err != nil {
		l.Warn("Failed to remove local asset", zap.Error(err))
	}
	return item
}
