package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/config"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/consumer"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/handler"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/middleware"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/natsclient"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/telemetry"
)

// The audit node runs the recorder and the DLQ reprocessor and serves the
// read-only audit-log API. It shares config and schema with the API nodes
// but holds no caches and never writes outside audit_logs.
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration invalid", zap.Error(err))
	}

	if vaultAddr := os.Getenv("VAULT_ADDR"); vaultAddr != "" {
		vaultToken := os.Getenv("VAULT_TOKEN")
		secretPath := os.Getenv("VAULT_SECRET_PATH")
		if secretPath == "" {
			secretPath = config.DefaultVaultPath
		}

		sm, err := config.NewSecretManager(vaultAddr, vaultToken)
		if err != nil {
			logger.Fatal("Vault connection failed", zap.Error(err))
		}
		if err := cfg.HydrateSecrets(sm, secretPath); err != nil {
			logger.Fatal("Vault secret loading failed", zap.Error(err))
		}
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("configuration invalid", zap.Error(err))
	}

	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint != "" {
		tp, err := telemetry.InitTracer(context.Background(), "access-control-audit", otelEndpoint)
		if err != nil {
			logger.Error("failed to init OTel tracer", zap.Error(err))
		} else {
			defer tp.Shutdown(context.Background())
		}

		mp, err := telemetry.InitMeterProvider(context.Background(), "access-control-audit", otelEndpoint)
		if err != nil {
			logger.Error("failed to init OTel meter provider", zap.Error(err))
		} else {
			defer mp.Shutdown(context.Background())
		}
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to parse database.url", zap.Error(err))
	}
	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	querier := db.New(pool)

	natsClient, err := natsclient.NewClient(cfg.BusURL, logger)
	if err != nil {
		logger.Fatal("NATS connection failed", zap.Error(err))
	}
	defer natsClient.Close()
	if err := natsClient.ProvisionStreams(); err != nil {
		logger.Fatal("NATS stream provisioning failed", zap.Error(err))
	}

	// --- Consumers ---
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	auditConsumer := consumer.NewAuditConsumer(natsClient, querier, logger)
	if err := auditConsumer.Start(consumerCtx); err != nil {
		logger.Fatal("audit consumer failed to start", zap.Error(err))
	}

	dlq := consumer.NewDLQReprocessor(natsClient, querier, logger)
	if err := dlq.Start(consumerCtx); err != nil {
		logger.Fatal("DLQ reprocessor failed to start", zap.Error(err))
	}

	// --- HTTP server (read-only) ---
	e := echo.New()
	e.HideBanner = true
	e.Use(otelecho.Middleware("access-control-audit"))
	e.Use(middleware.InternalContext())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("HTTP request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(middleware.NullToEmptyArray())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	handler.NewAuditHandler(querier, logger).Register(e)

	go func() {
		logger.Info("audit HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failure", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	consumerCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", zap.Error(err))
	}
	logger.Info("audit node shut down cleanly")
}
