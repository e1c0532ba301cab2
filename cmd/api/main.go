package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	catalogapp "bannerstore/internal/application/catalog"
	orderapp "bannerstore/internal/application/order"
	pricingapp "bannerstore/internal/application/pricing"
	"bannerstore/internal/config"
	"bannerstore/internal/infrastructure/catalogfile"
	"bannerstore/internal/infrastructure/encoding/avro"
	"bannerstore/internal/infrastructure/http/backend"
	ginserver "bannerstore/internal/infrastructure/http/gin"
	kafkainfra "bannerstore/internal/infrastructure/messaging/kafka"
	"bannerstore/internal/infrastructure/metrics"
	"bannerstore/internal/infrastructure/persistence/postgres"
	"bannerstore/internal/interfaces/http/handler"
	"bannerstore/internal/interfaces/http/router"
	"bannerstore/pkg/logger"
)

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

	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	historyRepo := postgres.NewStatusHistoryRepository(pool)
	reg := metrics.NewRegistry()

	// Seed the catalog on boot when a file is configured.
	if cfg.Catalog.File != "" {
		res, err := catalogapp.NewService(catalogfile.NewSource(cfg.Catalog.File), productRepo, reg, lg).Import(ctx)
		if err != nil {
			lg.Fatal("seed catalog failed", logger.Error(err))
		}
		lg.Info("catalog seeded",
			logger.Int("imported", res.Imported),
			logger.Int("rejected", len(res.Rejected)),
		)
	}

	if cfg.Catalog.SyncInterval > 0 {
		importer := catalogapp.NewService(backend.NewClient(cfg.Catalog, lg), productRepo, reg, lg)
		go catalogapp.NewSyncer(importer, cfg.Catalog.SyncInterval, lg).Run(ctx)
	}

	codec, err := avro.NewCodec()
	if err != nil {
		lg.Fatal("init avro codec failed", logger.Error(err))
	}

	producer, err := kafkainfra.NewEventProducer(cfg.Kafka, lg)
	if err != nil {
		lg.Fatal("init kafka producer failed", logger.Error(err))
	}
	defer producer.Close(context.Background())

	pricingService := pricingapp.NewService(productRepo, reg, lg)
	orderService := orderapp.NewService(orderapp.Deps{
		Orders:    orderRepo,
		History:   historyRepo,
		Quoter:    pricingService,
		Encoder:   codec,
		Publisher: producer,
		Metrics:   reg,
		Logger:    lg,
	})

	if cfg.Kafka.ConsumerEnabled {
		consumer := kafkainfra.NewEventConsumer(cfg.Kafka, codec, orderService, lg)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				lg.Error("kafka consumer stopped", logger.Error(err))
			}
		}()
		defer consumer.Close()
	}

	handlers := router.Handlers{
		Products: handler.NewProductHandler(pricingService, lg),
		Orders:   handler.NewOrderHandler(orderService, lg),
		Statuses: handler.NewStatusHandler(),
	}
	if cfg.Metrics.Enabled {
		handlers.Metrics = reg.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
	}

	engine := ginserver.NewEngine(lg, reg)
	router.RegisterRoutes(engine, handlers)

	server := ginserver.NewServer(cfg.Server, engine, lg)
	if err := server.Run(ctx); err != nil {
		lg.Fatal("server run failed", logger.Error(err))
	}
	lg.Info("server stopped")
}
