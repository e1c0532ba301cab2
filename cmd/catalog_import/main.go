package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	catalogapp "bannerstore/internal/application/catalog"
	"bannerstore/internal/config"
	"bannerstore/internal/infrastructure/catalogfile"
	"bannerstore/internal/infrastructure/http/backend"
	"bannerstore/internal/infrastructure/metrics"
	"bannerstore/internal/infrastructure/persistence/postgres"
	"bannerstore/pkg/logger"
)

// Imports product definitions into postgres, from CATALOG_FILE when set or
// else from the hosted backend at CATALOG_BACKEND_URL.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	lg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer lg.Sync()

	var source catalogapp.ProductSource
	switch {
	case cfg.Catalog.File != "":
		lg.Info("importing catalog from file", logger.String("path", cfg.Catalog.File))
		source = catalogfile.NewSource(cfg.Catalog.File)
	case cfg.Catalog.BackendURL != "":
		lg.Info("importing catalog from backend", logger.String("url", cfg.Catalog.BackendURL))
		source = backend.NewClient(cfg.Catalog, lg)
	default:
		lg.Fatal("CATALOG_FILE or CATALOG_BACKEND_URL must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		lg.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		lg.Fatal("ensure schema failed", logger.Error(err))
	}

	svc := catalogapp.NewService(source, postgres.NewProductRepository(pool), metrics.NewRegistry(), lg)
	res, err := svc.Import(ctx)
	if err != nil {
		lg.Fatal("catalog import failed", logger.Error(err))
	}

	if cfg.Catalog.ExportFile != "" {
		if err := catalogfile.WriteFile(cfg.Catalog.ExportFile, res.Products); err != nil {
			lg.Fatal("catalog export failed", logger.Error(err))
		}
		lg.Info("catalog exported", logger.String("path", cfg.Catalog.ExportFile))
	}

	for id, reason := range res.Rejected {
		lg.Warn("product rejected", logger.String("product_id", id), logger.Error(reason))
	}
	lg.Info("catalog import finished",
		logger.Int("imported", res.Imported),
		logger.Int("rejected", len(res.Rejected)),
	)
}
