package cmd

import (
	"context"
	"strings"

	"asset-sync/core/reconcile"
	"asset-sync/core/textnorm"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// matchCmd looks a single title up without touching storage or the mapping.
var matchCmd = &cobra.Command{
	Use:   "match <title>",
	Short: "Show which video a title would be mapped to",
	Long: `Looks the title up in the channel and runs the exact, prefix and fuzzy passes
against the returned candidates. Nothing is uploaded or saved.

Example:
  asset-sync match "The Five Pillars of Stoicism"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	RootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	title := strings.Join(args, " ")

	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	if err := cfg.Validate(); err != nil {
		return err
	}

	client, channelID, err := connectCatalog(ctx, cfg, logg)
	if err != nil {
		return err
	}

	videos, err := client.Search(ctx, channelID, title, cfg.Match.CandidateLimit)
	if err != nil {
		return err
	}

	normTitle := textnorm.Normalize(title)
	candidates := make([]reconcile.Candidate, 0, len(videos))
	for i, v := range videos {
		candidates = append(candidates, reconcile.Candidate{ID: v.ID, Title: v.Title})
		logg.Debug("Candidate",
			zap.Int("rank", i+1),
			zap.String("video_id", v.ID),
			zap.String("title", v.Title),
			zap.Int("score", reconcile.TokenSortRatio(normTitle, textnorm.Normalize(v.Title))),
		)
	}

	result := reconcile.NewEngine(cfg.Match.Policy(), logg).Match(title, candidates)
	logg.Info("Match decision",
		zap.String("title", title),
		zap.String("rule", string(result.Rule)),
		zap.String("video_id", result.VideoID),
		zap.String("candidate_title", result.CandidateTitle),
		zap.Int("score", result.Score),
		zap.Int("candidates", len(candidates)),
	)
	return nil
}
