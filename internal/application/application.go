package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"profit/internal/config"
	"profit/internal/domain/service/profit"
	"profit/internal/infrastructure/cache"
	"profit/internal/infrastructure/percentage"
	"profit/internal/infrastructure/persistence"
	"profit/internal/server"
	"profit/internal/worker"
	"profit/pkg/application/connectors"
	"profit/pkg/application/modules"
	"profit/pkg/httpx"
	"profit/pkg/logx"
	"profit/pkg/middlewarex"
)

const metricsNamespace = "profit"

func Run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	// 1. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	log.Info("database connection OK")

	// 2. Repositories
	profitRepo := persistence.NewProfitRepository(db)

	// 3. Cache
	percentageCache, closeCache, err := newPercentageCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("percentage cache: %w", err)
	}
	defer closeCache()

	log.Info("percentage cache ready", slog.String("driver", cfg.Cache.Driver))

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	// 5. Percentage provider + domain
	masker := logx.NewSensitiveDataMasker()

	provider := percentage.NewClient(percentage.Options{
		URL:     cfg.Percentage.ProviderURL,
		APIKey:  cfg.Percentage.ProviderAPIKey,
		Timeout: cfg.Percentage.ProviderTimeout,
		LoggingOptions: []httpx.Option{
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(cfg.Log.FieldMaxLen),
		},
	})

	resolver := profit.NewPercentageResolver(
		provider,
		percentageCache,
		profit.WithCacheKey(cfg.Percentage.CacheKey),
		profit.WithFetchDelay(cfg.Percentage.FetchDelay),
		profit.WithMetrics(profit.NewMetrics(registry)),
	)

	svc := profit.NewService(resolver, profitRepo)

	// 6. HTTP
	httpMetrics := middlewarex.NewHTTPMetrics(metricsNamespace, registry)

	router := server.NewRouter(
		server.NewServer(server.NewProfitServer(svc)),
		server.RouterOptions{
			SensitiveDataMasker: masker,
			LogFieldMaxLen:      cfg.Log.FieldMaxLen,
			Metrics:             &httpMetrics,
		},
	)

	g, ctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	// 7. Worker (опционально)
	if cfg.Worker.Enabled {
		asynqServer := modules.AsynqServer{
			RedisUsername: cfg.Redis.Username,
			RedisPassword: cfg.Redis.Password,
			RedisAddress:  cfg.Redis.Address,
			RedisDB:       cfg.Redis.DatabaseNumber,
		}

		refresher := worker.NewPercentageRefresher(resolver)

		asynqServer.Run(ctx, g, modules.AsynqQueues{cfg.Worker.Queue: 1}, refresher.Handler())

		if cfg.Worker.RefreshCron != "" {
			asynqServer.RunScheduler(ctx, g, refresher.PeriodicTask(cfg.Worker.RefreshCron, cfg.Worker.Queue))
			log.Info("percentage refresh scheduled", slog.String("cron", cfg.Worker.RefreshCron))
		}
	}

	log.Info("application started", slog.String(logx.FieldAppName, cfg.App.Name), slog.String(logx.FieldAppVersion, cfg.App.Version))

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	log.Info("application stopping...")

	return nil
}

func newPercentageCache(ctx context.Context, cfg config.Config) (profit.PercentageCache, func(), error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverMemory:
		return cache.NewMemory(cfg.Cache.TTL), func() {}, nil
	case config.CacheDriverRedis:
		rds := &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}

		return cache.NewRedis(rds.Client(ctx), cfg.Cache.TTL), func() { rds.Close(ctx) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}
