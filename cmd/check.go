package cmd

import (
	"context"
	"fmt"

	"asset-sync/core/storage"
	"asset-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneOrphans bool

// checkCmd compares the mapping with the asset bucket.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every mapped reference exists in storage",
	Long: `Lists the objects under the asset prefix and compares them with the mapping.

Reports references whose object is missing and objects no video points to.
With --prune, orphan objects are deleted. The mapping itself is never modified.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&pruneOrphans, "prune", false, "Delete orphan objects")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	if err := cfg.Mapping.Validate(); err != nil {
		return err
	}

	store, release, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}

	svc := integrity.NewService(client, cfg.Storage.Bucket, cfg.Sync.ObjectPrefix, store, logg)
	report, err := svc.Check(ctx)
	if err != nil {
		return err
	}

	for _, m := range report.Missing {
		logg.Warn("Missing object",
			zap.String("video_id", m.VideoID),
			zap.String("kind", string(m.Kind)),
			zap.String("reference", m.Reference),
		)
	}
	for _, key := range report.Orphans {
		logg.Warn("Orphan object", zap.String("object", key))
	}
	logg.Info("Integrity check complete",
		zap.String("bucket", report.Bucket),
		zap.Int("references", report.References),
		zap.Int("objects", report.Objects),
		zap.Int("missing", len(report.Missing)),
		zap.Int("orphans", len(report.Orphans)),
	)

	if pruneOrphans {
		if _, err := svc.Prune(ctx, report); err != nil {
			return err
		}
	}

	if len(report.Missing) > 0 {
		return fmt.Errorf("%d mapped references have no object", len(report.Missing))
	}
	return nil
}
