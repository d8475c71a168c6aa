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

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/clock"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/config"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/consumer"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/handler"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/middleware"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/natsclient"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/outbox"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/rulecache"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/service"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/telemetry"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/zone"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration invalid", zap.Error(err))
	}

	// Vault is optional: when VAULT_ADDR is unset the connection URLs come
	// straight from the environment.
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
		logger.Info("secrets hydrated from Vault", zap.String("path", secretPath))
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("configuration invalid", zap.Error(err))
	}

	// --- OpenTelemetry ---
	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint != "" {
		tp, err := telemetry.InitTracer(context.Background(), "access-control-api", otelEndpoint)
		if err != nil {
			logger.Error("failed to init OTel tracer", zap.Error(err))
		} else {
			defer tp.Shutdown(context.Background())
		}

		mp, err := telemetry.InitMeterProvider(context.Background(), "access-control-api", otelEndpoint)
		if err != nil {
			logger.Error("failed to init OTel meter provider", zap.Error(err))
		} else {
			defer mp.Shutdown(context.Background())
		}
		logger.Info("OTel initialized", zap.String("endpoint", otelEndpoint))
	}

	// --- Database ---
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
	logger.Info("connected to database (OTel-instrumented)")

	store := db.NewStore(pool)

	// --- NATS JetStream ---
	natsClient, err := natsclient.NewClient(cfg.BusURL, logger)
	if err != nil {
		logger.Fatal("NATS connection failed", zap.Error(err))
	}
	defer natsClient.Close()
	if err := natsClient.ProvisionStreams(); err != nil {
		logger.Fatal("NATS stream provisioning failed", zap.Error(err))
	}

	// --- Shared components ---
	clk := clock.System()
	events := outbox.NewWriter(clk)
	rules := rulecache.New()
	zones := zone.NewProvider(store, logger)

	// --- Services ---
	svcs := handler.Services{
		Attempts:      service.NewAttemptService(store, events, zones, rules, clk, cfg.DefaultDecision, logger),
		Organizations: service.NewOrganizationService(store, events, zones, clk, cfg.DefaultTimezone, logger),
		Areas:         service.NewAreaService(store, events, zones, clk, logger),
		Devices:       service.NewDeviceService(store, logger),
		Residents:     service.NewResidentService(store, logger),
		Visitors:      service.NewVisitorService(store, logger),
		Groups:        service.NewGroupService(store, logger),
		Rules:         service.NewRuleService(store, events, rules, clk, logger),
	}

	// --- Outbox dispatcher ---
	dispatcher := outbox.NewDispatcher(store, outbox.NewBusSender(natsClient, logger), clk, outbox.DispatcherConfig{
		InstanceID:       cfg.InstanceID,
		DispatchEvery:    cfg.OutboxDispatchEvery,
		MaintenanceEvery: cfg.OutboxMaintenanceEvery,
		LockTTL:          cfg.OutboxLockTTL,
		BatchSize:        cfg.OutboxBatchSize,
		MaxAttempts:      cfg.OutboxMaxAttempts,
		MaxRetryAfter:    cfg.OutboxMaxRetryAfter,
	}, logger)
	if err := dispatcher.Start(); err != nil {
		logger.Fatal("outbox dispatcher failed to start", zap.Error(err))
	}
	logger.Info("outbox dispatcher started", zap.String("instance_id", cfg.InstanceID))

	// --- Policy-change consumer ---
	// Every API node runs one so its local rule and zone caches follow
	// changes committed by peers.
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	policyConsumer := consumer.NewPolicyConsumer(natsClient, rules, zones, cfg.InstanceID, logger)
	if err := policyConsumer.Start(consumerCtx); err != nil {
		logger.Fatal("policy-change consumer failed to start", zap.Error(err))
	}

	// --- HTTP server ---
	e := echo.New()
	e.HideBanner = true
	e.Use(otelecho.Middleware("access-control-api"))
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

	health := handler.NewHealthHandler(store, cfg.OutboxLockTTL, logger)
	handler.RegisterRoutes(e, svcs, health, logger)
	handler.NewReasonHandler(store, logger).Register(e)

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failure", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	consumerCancel()
	dispatcher.Stop()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", zap.Error(err))
	}
	logger.Info("shut down cleanly")
}
