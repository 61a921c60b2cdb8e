package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelance-hub/internal/cache"
	"freelance-hub/internal/config"
	"freelance-hub/internal/database"
	"freelance-hub/internal/job"
	"freelance-hub/internal/logger"
	"freelance-hub/internal/metrics"
	appmw "freelance-hub/internal/middleware"
	"freelance-hub/internal/router"
	"freelance-hub/internal/service"
	"freelance-hub/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	_ "freelance-hub/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	scheduleJob     = job.Schedule
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	notifyContext   = func(parent context.Context) (context.Context, context.CancelFunc) {
		return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	}
)

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}

func run() error {
	cfg, err := loadConfig(configPath())
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	log, err := newLogger(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("Logger 建立失敗: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// budget 以 JSON number 輸出
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := notifyContext(context.Background())
	defer stop()

	db, err := newPgxPool(ctx, cfg.Database.URL, database.PoolOptions{
		StatementTimeout: cfg.Database.StatementTimeout,
		MaxConns:         cfg.Database.MaxConns,
	})
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn("關閉 Redis 連線失敗", zap.Error(err))
		}
	}()

	if err := runMigrationsFn(cfg.Database.URL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}
	log.Info("database migrated")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewWithRegistry(reg)

	authn := service.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	svc := service.New(db,
		service.WithCache(rdb, cfg.Redis.TTL),
		service.WithAuthenticator(authn),
		service.WithMetrics(m),
		service.WithLogger(log),
	)

	wp := newWorkerPool(cfg.Server.Workers, worker.WithPanicHandler(func(r any) {
		log.Error("worker task panicked", zap.Any("recovered", r))
	}))
	defer wp.Stop()

	reconciler := job.NewVacancyReconciler(ctx, svc, wp, m, log)
	sched, err := scheduleJob(cfg.Reconcile.Schedule, reconciler, log)
	if err != nil {
		return fmt.Errorf("無效的 RECONCILE_SCHEDULE %q: %w", cfg.Reconcile.Schedule, err)
	}
	defer stopScheduler(sched)

	e := newEcho(log, m)
	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    rdb,
		Service:  svc,
		Verifier: authn,
		Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Info("starting server", zap.String("addr", cfg.Addr()), zap.Int("workers", cfg.Server.Workers))
	return serve(ctx, e, cfg.Addr(), log)
}

func newEcho(log *zap.Logger, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(appmw.RequestLogger(log))
	e.Use(appmw.Metrics(m))
	e.Use(middleware.Recover())
	return e
}

// serve 直到 server 結束或收到訊號後 graceful shutdown
func serve(ctx context.Context, e *echo.Echo, addr string, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, addr) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("Server 啟動失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return fmt.Errorf("Server 關閉失敗: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// stopScheduler 等待執行中的 reconcile 結束
func stopScheduler(c *cron.Cron) {
	<-c.Stop().Done()
}
