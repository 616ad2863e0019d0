package cmd

import (
	"context"
	"fmt"

	"asset-sync/core/catalog"
	"asset-sync/core/config"
	"asset-sync/core/database"
	"asset-sync/core/logger"
	"asset-sync/core/mapping"
	"asset-sync/core/reconcile"
	"asset-sync/core/storage"
	"asset-sync/feature/assets"
	"asset-sync/feature/discovery"
	assetsync "asset-sync/feature/sync"

	"go.uber.org/zap"
)

// bootstrap loads and validates configuration and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// connectCatalog builds the catalog client and resolves the channel. A configured
// channel id wins over the handle.
func connectCatalog(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*catalog.Client, string, error) {
	client, err := catalog.NewClient(cfg.Catalog)
	if err != nil {
		return nil, "", fmt.Errorf("create catalog client: %w", err)
	}

	if cfg.Catalog.ChannelID != "" {
		return client, cfg.Catalog.ChannelID, nil
	}

	channelID, err := client.ResolveChannel(ctx, cfg.Catalog.ChannelHandle)
	if err != nil {
		return nil, "", err
	}
	logg.Info("Resolved channel",
		zap.String("handle", cfg.Catalog.ChannelHandle),
		zap.String("channel_id", channelID),
	)
	return client, channelID, nil
}

// openStore opens the configured mapping backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (mapping.Store, func(), error) {
	if cfg.Mapping.Backend != mapping.BackendDatabase {
		return mapping.NewFileStore(cfg.Mapping.Path), func() {}, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	store := mapping.NewDBStore(db)
	if err := store.Migrate(ctx); err != nil {
		closeDB()
		return nil, nil, err
	}
	return store, closeDB, nil
}

// newUploader connects to object storage and makes sure the bucket exists.
func newUploader(ctx context.Context, cfg *config.Config) (*storage.Uploader, error) {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	uploader := storage.NewUploader(client, cfg.Storage)
	if err := uploader.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return uploader, nil
}

type jobOptions struct {
	discover bool
	assets   bool
	dryRun   bool
}

// buildJob wires a sync job from configuration.
func buildJob(ctx context.Context, cfg *config.Config, logg *zap.Logger, opts jobOptions) (*assetsync.Job, func(), error) {
	store, release, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	job := &assetsync.Job{
		LockPath: cfg.Mapping.LockPath(),
		Store:    store,
		DryRun:   opts.dryRun,
		Logger:   logg,
	}

	if !opts.discover && !opts.assets {
		return job, release, nil
	}

	client, channelID, err := connectCatalog(ctx, cfg, logg)
	if err != nil {
		release()
		return nil, nil, err
	}

	if opts.discover {
		job.Seeder = discovery.NewDiscoverer(client, channelID, logg)
	}

	needsStorage := !opts.dryRun && (opts.assets || cfg.Mapping.PublishObject != "")
	var uploader *storage.Uploader
	if needsStorage {
		uploader, err = newUploader(ctx, cfg)
		if err != nil {
			release()
			return nil, nil, err
		}
		if cfg.Mapping.PublishObject != "" {
			job.Publisher = uploader
			job.PublishObject = cfg.Mapping.PublishObject
		}
	}

	if opts.assets {
		engine := reconcile.NewEngine(cfg.Match.Policy(), logg)
		var up assetsync.Uploader
		if uploader != nil {
			up = uploader
		}
		job.Scanner = assets.NewScanner(cfg.Sync.Folders(), cfg.Sync.ExtensionList())
		job.Runner = assetsync.NewRunner(client, engine, up, assetsync.RunnerOptions{
			ChannelID:      channelID,
			CandidateLimit: cfg.Match.CandidateLimit,
			ObjectPrefix:   cfg.Sync.ObjectPrefix,
			DryRun:         opts.dryRun,
		}, logg)
	}

	return job, release, nil
}
