package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	assetsync "asset-sync/feature/sync"

	"github.com/spf13/cobra"
)

var (
	// Flags shared by the batch commands
	dryRun        bool
	skipDiscovery bool
)

// syncCmd runs discovery followed by asset reconciliation.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Discover channel videos, then upload and map local assets",
	Long: `Runs the full synchronization:

  1. Seed the mapping with every video of the channel (unless disabled).
  2. Match every local infographic and mind map to a video, upload it and record it.

A discovery failure aborts the run before any asset is touched.

Examples:
  # Full run
  asset-sync sync

  # Preview matches without uploading or saving
  asset-sync sync --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(jobOptions{discover: !skipDiscovery, assets: true, dryRun: dryRun})
	},
}

// videosCmd only refreshes the list of known videos.
var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Seed the mapping with every video of the channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(jobOptions{discover: true, dryRun: dryRun})
	},
}

// assetsCmd only reconciles local assets.
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Match, upload and map local assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(jobOptions{assets: true, dryRun: dryRun})
	},
}

func init() {
	for _, c := range []*cobra.Command{syncCmd, videosCmd, assetsCmd} {
		c.Flags().BoolVar(&dryRun, "dry-run", false, "Compute matches without uploading, deleting or saving")
		RootCmd.AddCommand(c)
	}
	syncCmd.Flags().BoolVar(&skipDiscovery, "skip-discovery", false, "Skip video discovery")
}

func runJob(opts jobOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.assets && !cfg.Sync.Discover {
		opts.discover = false
	}

	job, release, err := buildJob(ctx, cfg, logg, opts)
	if err != nil {
		return err
	}
	defer release()

	res, err := job.Execute(ctx)
	if err != nil {
		return err
	}

	assetsync.LogSummary(logg, res)
	return nil
}
