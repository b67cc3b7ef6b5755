package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/harborpark/transport/internal/config"
	"github.com/harborpark/transport/internal/domain"
	"github.com/harborpark/transport/internal/feed"
	"github.com/harborpark/transport/internal/httpserver"
	"github.com/harborpark/transport/internal/httpserver/deps"
	"github.com/harborpark/transport/internal/logger"
	"github.com/harborpark/transport/internal/redis"
	"github.com/harborpark/transport/internal/sources/govhk"
	"github.com/harborpark/transport/internal/sources/staticset"
	"github.com/harborpark/transport/internal/store/postgres"
	redisstore "github.com/harborpark/transport/internal/store/redis"
	"github.com/harborpark/transport/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Curated fallback dataset, used when a space id is not present in
	// the live feed. Missing or malformed file degrades to live-only.
	var staticSpaces []domain.ParkingSpace
	if cfg.StaticSpacesFile != "" {
		raw, err := staticset.NewLoader(cfg.StaticSpacesFile).Load()
		if err != nil {
			loggerClient.Warn("static spaces file unreadable, continuing live-only",
				logger.String("file", cfg.StaticSpacesFile),
				logger.Error(err))
		} else if staticSpaces, err = staticset.NewMapper().MapSpaces(raw); err != nil {
			loggerClient.Warn("static spaces file invalid, continuing live-only",
				logger.String("file", cfg.StaticSpacesFile),
				logger.Error(err))
		} else {
			loggerClient.Info("static spaces loaded",
				logger.Int("count", len(staticSpaces)))
		}
	}

	fetcher := govhk.NewClient(loggerClient, cfg.FetchTimeout)
	aggregator := feed.New(fetcher, loggerClient, feed.Config{
		CarparkInfoURL:    cfg.CarparkInfoURL,
		CarparkVacancyURL: cfg.CarparkVacancyURL,
		TrafficNewsURL:    cfg.TrafficNewsURL,
		CacheTTL:          cfg.CacheTTL,
	})
	resolver := feed.NewSpaceResolver(staticSpaces, aggregator, loggerClient)

	// Booking store is optional; when a DSN is set the database must be
	// reachable at startup, so fail fast rather than serve half-broken.
	var bookings deps.BookingStore
	if cfg.DatabaseDSN != "" {
		store, err := postgres.New(cfg.DatabaseDSN)
		if err != nil {
			loggerClient.Errorf("Failed to connect to postgres: %v", err)
			os.Exit(1)
		}
		bookings = store
		loggerClient.Info("Postgres booking store initialized")
	} else {
		loggerClient.Info("No database DSN configured, bookings disabled")
	}

	// Redis lookup counters are best-effort; a connection failure only
	// disables them.
	var redisClient *goredis.Client
	var usage *redisstore.Store
	if cfg.RedisAddr != "" {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDialTimeout,
			ReadTimeout:    cfg.RedisReadTimeout,
			WriteTimeout:   cfg.RedisWriteTimeout,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			loggerClient.Warn("redis unavailable, lookup counters disabled",
				logger.Error(err))
		} else {
			redisClient = client
			usage = redisstore.NewStore(client)
			loggerClient.Info("Redis initialized successfully")
		}
	}

	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,

		Feed:     aggregator,
		Spaces:   resolver,
		Bookings: bookings,
		Usage:    usage,

		CacheTTL: cfg.CacheTTL,

		BookingBurst:        cfg.BookingBurst,
		BookingRefillPerMin: cfg.BookingRefillPerMin,
		TrustProxy:          cfg.TrustProxy,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Harborpark v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Harborpark %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Harborpark stopped cleanly")
	return nil
}
