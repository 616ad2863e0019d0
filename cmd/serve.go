package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"asset-sync/core/loader"
	"asset-sync/core/logger"
	"asset-sync/core/middleware/auth"
	"asset-sync/core/middleware/rayid"
	"asset-sync/core/storage"
	"asset-sync/feature/integrity"
	"asset-sync/feature/videos"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mapping over a read-only HTTP API",
	Long:  `Starts the HTTP server exposing the video -> asset mapping with public asset URLs.`,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	if err := cfg.Mapping.Validate(); err != nil {
		return err
	}

	store, release, err := openStore(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer release()

	// Public URLs only need the bucket layout, not a live connection
	publicURL := storage.NewUploader(nil, cfg.Storage).PublicURL

	// Storage is optional; without it the integrity feature stays disabled
	var client storage.Client
	if c, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Storage client unavailable", zap.Error(err))
	} else {
		client = c
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager()
	mgr.Register(videos.NewFeature(store, publicURL, logg))
	mgr.Register(integrity.NewFeature(client, cfg.Storage.Bucket, cfg.Sync.ObjectPrefix, store, logg))

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("port", cfg.Server.Port))
		errCh <- app.Listen(cfg.Server.Address())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logg.Info("Shutting down server...")
	return app.Shutdown()
}
