package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"portfolio.backend/internal/config"
	domainrepos "portfolio.backend/internal/domain/repositories"
	"portfolio.backend/internal/infrastructure/cache"
	"portfolio.backend/internal/infrastructure/datasources"
	"portfolio.backend/internal/infrastructure/storage"
	"portfolio.backend/pkg/logger"
	"portfolio.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv     = godotenv.Load
	loadCfg        = config.Load
	initLog        = logger.Init
	initRedis      = redis.Init
	openDB         = datasources.OpenMigrated
	newMediaStore  = storage.New
	notifyShutdown = func(ctx context.Context) (context.Context, context.CancelFunc) {
		return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	}
	runServer = serve
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	logger.Info(ctx, "Database ready", zap.String("driver", cfg.Database.Driver))

	store, err := newMediaStore(ctx, cfg.Media)
	if err != nil {
		return fmt.Errorf("failed to initialize media store: %w", err)
	}

	var homepageCache domainrepos.HomepageCache
	if client := redis.GetClient(); client != nil {
		homepageCache = cache.NewHomepageCache(client, cfg.Redis.HomepageTTL)
	}

	deps, err := newRouteDeps(cfg, db, store, homepageCache)
	if err != nil {
		return err
	}
	r, err := buildRouter(cfg, deps)
	if err != nil {
		return err
	}

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	runCtx, stop := notifyShutdown(ctx)
	defer stop()

	logger.Info(ctx, "Portfolio backend starting", zap.String("port", cfg.Server.Port))
	if err := runServer(runCtx, r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info(ctx, "Server stopped")
	return nil
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight requests
func serve(ctx context.Context, handler http.Handler, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info(context.Background(), "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
