package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/wolfman30/lalalu-site/cmd/mainconfig"
	"github.com/wolfman30/lalalu-site/internal/api/router"
	"github.com/wolfman30/lalalu-site/internal/app/bootstrap"
	"github.com/wolfman30/lalalu-site/internal/assets"
	"github.com/wolfman30/lalalu-site/internal/catalog"
	appconfig "github.com/wolfman30/lalalu-site/internal/config"
	httpmiddleware "github.com/wolfman30/lalalu-site/internal/http/middleware"
	"github.com/wolfman30/lalalu-site/internal/observability/metrics"
	"github.com/wolfman30/lalalu-site/internal/seo"
	"github.com/wolfman30/lalalu-site/internal/site"
	"github.com/wolfman30/lalalu-site/pkg/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting lalalu site",
		"env", cfg.Env,
		"port", cfg.Port,
		"base_url", cfg.PublicBaseURL,
	)

	handler, cleanup, err := buildHandler(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to build site", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// setupMetrics creates a private registry with runtime collectors and the
// site counters, and the /metrics handler serving it.
func setupMetrics() (http.Handler, *metrics.SiteMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), metrics.NewSiteMetrics(reg)
}

// buildHandler wires the site from configuration. cleanup stops the rate
// limiter and releases the Redis connection when one was opened.
func buildHandler(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (http.Handler, func(), error) {
	cleanup := func() {}

	cat := catalog.Default()
	for _, ref := range cat.DanglingReferences() {
		logger.Warn("concern recommends unknown service",
			"concern", ref.ConcernSlug,
			"service_id", ref.ServiceID,
		)
	}

	campaign, err := bootstrap.BuildCampaign(cfg)
	if err != nil {
		return nil, cleanup, err
	}

	var redisClient *redis.Client
	if cfg.UseRedisSessions() {
		redisClient = bootstrap.BuildRedisClient(ctx, cfg, logger, true)
		if redisClient != nil {
			cleanup = func() { _ = redisClient.Close() }
		}
	}

	metricsHandler, siteMetrics := setupMetrics()

	var awsCfg aws.Config
	if cfg.MediaBucket != "" {
		awsCfg, err = mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("load aws config: %w", err)
		}
		logger.Info("serving media from s3", "bucket", cfg.MediaBucket, "prefix", cfg.MediaPrefix)
	}
	media := bootstrap.BuildMediaStore(awsCfg, cfg, logger)

	srv, err := site.New(site.Config{
		Catalog:    cat,
		SEO:        seo.NewBuilder(cfg.PublicBaseURL),
		Assets:     bootstrap.BuildResolver(cfg),
		Campaign:   campaign,
		Stores:     bootstrap.BuildPromoStores(cfg, redisClient, logger),
		BookingURL: cfg.BookingURL,
		Metrics:    siteMetrics,
		Logger:     logger,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	routerCfg := &router.Config{
		Logger:         logger,
		Site:           srv,
		Media:          assets.NewMediaHandler(media, cfg.StaticDir, siteMetrics, logger),
		MetricsHandler: metricsHandler,
		StaticDir:      cfg.StaticDir,
		CORS: httpmiddleware.CORSOptions{
			Origins: cfg.CORSAllowedOrigins,
			MaxAge:  cfg.CORSMaxAge,
		},
		SessionCookie:  cfg.SessionCookie,
		CookieSecure:   cfg.CookieSecure,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}
	handler := router.New(routerCfg)
	if limiter := routerCfg.RateLimiter; limiter != nil {
		closeRedis := cleanup
		cleanup = func() {
			limiter.Stop()
			closeRedis()
		}
	}
	return handler, cleanup, nil
}
