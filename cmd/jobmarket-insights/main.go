package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/NotKing22/BigData-Project/internal/config"
	"github.com/NotKing22/BigData-Project/internal/database"
	"github.com/NotKing22/BigData-Project/internal/dataset"
	"github.com/NotKing22/BigData-Project/internal/enrich"
	"github.com/NotKing22/BigData-Project/internal/events"
	"github.com/NotKing22/BigData-Project/internal/forecast"
	"github.com/NotKing22/BigData-Project/internal/insights"
	"github.com/NotKing22/BigData-Project/internal/skills"
	"github.com/NotKing22/BigData-Project/internal/store"
	"github.com/NotKing22/BigData-Project/internal/telemetry"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "DEV" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newNATSConnection(cfg *config.Config) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.NATSConnTimeout),
		nats.Name("insights-service"),
		nats.RetryOnFailedConnect(true),
	}
	return nats.Connect(cfg.NATSURL, opts...)
}

func newSource(cfg *config.Config, logger *zap.Logger) (dataset.Source, error) {
	if cfg.SourceBackend == "clickhouse" {
		db, err := database.New(context.Background(), database.Options{
			DSN:             cfg.ClickHouseDSN,
			MaxOpenConns:    cfg.ClickHouseMaxOpenConns,
			MaxIdleConns:    cfg.ClickHouseMaxIdleConns,
			ConnMaxLifetime: cfg.ClickHouseConnMaxLife,
			Username:        cfg.ClickHouseUsername,
			Password:        cfg.ClickHousePassword,
			Database:        cfg.ClickHouseDatabase,
		}, logger)
		if err != nil {
			return nil, err
		}
		return dataset.NewClickHouseSource(logger, db.Conn()), nil
	}
	return dataset.NewCSVSource(logger, cfg), nil
}

func newStore(cfg *config.Config) store.Store {
	if cfg.CacheBackend == "redis" {
		return store.NewRedisStore(store.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	return store.NewMemoryStore()
}

func newDictionary(cfg *config.Config, source dataset.Source) (*skills.Dictionary, error) {
	return skills.NewDictionary(context.Background(), source)
}

func newEngine(cfg *config.Config, logger *zap.Logger) *forecast.Engine {
	return forecast.NewEngine(logger, cfg.ForecastHorizonDays, cfg.ForecastWorkers)
}

func newBoundaries(cfg *config.Config) (dataset.Boundaries, error) {
	return dataset.LoadBoundaries(cfg.USGeoPath)
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newNATSConnection,
			newSource,
			newStore,
			newDictionary,
			newEngine,
			newBoundaries,
			enrich.NewPipeline,
			insights.NewService,
			events.NewHandler,
		),
		fx.Invoke(
			func(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
				if !cfg.TracingEnabled {
					return
				}
				shutdown, err := telemetry.InitTracer(context.Background(), "jobmarket-insights", cfg.OTLPCollector)
				if err != nil {
					logger.Warn("tracing disabled", zap.Error(err))
					return
				}
				lc.Append(fx.Hook{
					OnStop: func(ctx context.Context) error {
						shutdown()
						return nil
					},
				})
			},
			func(handler *events.Handler, lc fx.Lifecycle) error {
				return handler.RegisterSubscriptions(lc)
			},
			func(service *insights.Service, logger *zap.Logger, lc fx.Lifecycle) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						if _, err := service.ProcessJobPostings(ctx); err != nil {
							logger.Error("initial dataset load failed", zap.Error(err))
							return err
						}
						return nil
					},
				})
			},
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx := context.Background()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
