package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/payments"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/storage"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const serviceName = "salon-scheduler"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(serviceName, "error").Error("failed to load config", "err", err)
		os.Exit(1)
	}

	log := logger.New(serviceName, cfg.LogLevel)
	timezone.SetDefault(cfg.DefaultTimezone)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Error("failed to connect database", "err", err)
		os.Exit(1)
	}

	deps := routes.Deps{Log: log}

	// Métricas
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Metrics = metrics.New(reg, serviceName)
		deps.Gatherer = reg
	}

	// Auditoria assíncrona
	deps.Audit = audit.NewDispatcher(audit.New(db), log)

	// Rate limit (Redis opcional)
	if cfg.RedisURL != "" {
		rdb, err := middleware.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Error("invalid redis url", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		deps.Limiter = middleware.NewRedisCounter(rdb, serviceName)
		log.Info("rate limiting enabled", "per_minute", cfg.RateLimitPerMinute)
	}

	// Avatares
	if cfg.S3.Enabled() {
		deps.Avatars = storage.NewS3Store(cfg.S3)
		log.Info("avatar storage enabled", "bucket", cfg.S3.Bucket)
	}

	// Pagamentos
	if cfg.MercadoPagoAccessToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MercadoPagoAccessToken, cfg.PaymentCurrency)
		if err != nil {
			log.Error("failed to configure mercado pago", "err", err)
			os.Exit(1)
		}
		deps.Payments = mp
		log.Info("payments enabled", "currency", cfg.PaymentCurrency)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "err", err)
	}
	if err := deps.Audit.Close(shutdownCtx); err != nil {
		log.Warn("audit queue not drained", "err", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
