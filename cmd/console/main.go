package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/practiceos/console/config"
	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/handler"
	appointmentTypeHandler "github.com/practiceos/console/internal/handler/appointmenttype"
	authHandler "github.com/practiceos/console/internal/handler/auth"
	bookingHandler "github.com/practiceos/console/internal/handler/booking"
	directoryHandler "github.com/practiceos/console/internal/handler/directory"
	memberHandler "github.com/practiceos/console/internal/handler/member"
	practiceHandler "github.com/practiceos/console/internal/handler/practice"
	practitionerHandler "github.com/practiceos/console/internal/handler/practitioner"
	"github.com/practiceos/console/internal/middleware"
	"github.com/practiceos/console/internal/router"
	appointmentTypeService "github.com/practiceos/console/internal/service/appointmenttype"
	authService "github.com/practiceos/console/internal/service/auth"
	directoryService "github.com/practiceos/console/internal/service/directory"
	memberService "github.com/practiceos/console/internal/service/member"
	practitionerService "github.com/practiceos/console/internal/service/practitioner"
	"github.com/practiceos/console/internal/session"
	"github.com/practiceos/console/internal/store"
	"github.com/practiceos/console/pkg/logger"
	"github.com/practiceos/console/pkg/metrics"
)

func main() {
	// A missing .env is fine; config falls back to config.yaml.
	_ = godotenv.Load()

	appLogger := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Fatal(err, "failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
		appLogger = logger.NewLogger(&logger.Config{
			Level:      level,
			TimeFormat: time.RFC3339,
			Output:     os.Stdout,
		})
	}

	m := metrics.NewMetrics("practiceos", "console")

	// Shared read cache: redis when configured, in-process otherwise.
	var cache store.Store
	if cfg.Cache.RedisURL != "" {
		redisStore, err := store.NewRedisStore(cfg.Cache.RedisURL, cfg.Cache.Prefix, m)
		if err != nil {
			appLogger.Fatal(err, "failed to connect to redis")
		}
		defer redisStore.Close()
		cache = redisStore
	} else {
		cache = store.NewMemoryStore(cfg.CacheTTL(), 2*cfg.CacheTTL(), m)
	}

	client := apiclient.NewClient(apiclient.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.UpstreamTimeout(),
	}, m)

	sessions := session.NewManager(cfg.Session.Secret, cfg.SessionTTL(), m)

	cacheTTL := cfg.CacheTTL()
	authSvc := authService.NewService(client, sessions)
	memberSvc := memberService.NewService(client, cache, cacheTTL)
	typesSvc := appointmentTypeService.NewService(client, cache, cacheTTL)
	directorySvc := directoryService.NewService(client, cache, cacheTTL)
	practitionerSvc := practitionerService.NewService(client, cache, cacheTTL)

	authMiddleware := middleware.NewAuthMiddleware(sessions)

	h := handler.NewHandler()
	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		practiceHandler.NewHandler(client, cache, cacheTTL),
		practitionerHandler.NewHandler(practitionerSvc, client, cache, cacheTTL),
		memberHandler.NewHandler(memberSvc),
		appointmentTypeHandler.NewHandler(typesSvc),
		bookingHandler.NewHandler(client, m),
		directoryHandler.NewHandler(directorySvc),
		h,
		router.Config{
			RateLimitRPS:  cfg.Server.RateLimitRPS,
			RateBurst:     cfg.Server.RateBurst,
			Timeout:       cfg.ServerTimeout(),
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "console",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLogger.Info("starting console server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal(err, "server forced to shutdown")
	}

	appLogger.Info("server exited properly")
}
