package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"

	"github.com/fredneedsausername/GateKeeper/internal/config"
	"github.com/fredneedsausername/GateKeeper/internal/handler"
	"github.com/fredneedsausername/GateKeeper/internal/platform/natsclient"
	"github.com/fredneedsausername/GateKeeper/internal/platform/telemetry"
	"github.com/fredneedsausername/GateKeeper/internal/platform/vault"
	db "github.com/fredneedsausername/GateKeeper/internal/repository/db"
	"github.com/fredneedsausername/GateKeeper/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// --- Vault Secret Overlay ---
	// When VAULT_ADDR is set, secrets from the KV2 path override the plain
	// environment before config.Load reads it.
	if vaultAddr := os.Getenv("VAULT_ADDR"); vaultAddr != "" {
		if err := overlayVaultSecrets(vaultAddr, logger); err != nil {
			logger.Fatal("Failed to load secrets from Vault", zap.Error(err))
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}
	if cfg.Env == config.EnvDevelopment {
		devLogger, err := zap.NewDevelopment()
		if err == nil {
			logger = devLogger
		}
	}

	// --- OpenTelemetry ---
	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint != "" {
		tp, err := telemetry.InitTracer(context.Background(), "gatekeeper", otelEndpoint)
		if err != nil {
			logger.Error("failed to init OTel tracer", zap.Error(err))
		} else {
			defer tp.Shutdown(context.Background())
			logger.Info("OTel tracer initialized", zap.String("endpoint", otelEndpoint))
		}
	}

	// --- Database ---
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to parse DATABASE_URL", zap.Error(err))
	}
	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()
	poolCfg.MinConns = 4
	poolCfg.MaxConns = 20
	poolCfg.ConnConfig.ConnectTimeout = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("connected to database (OTel-instrumented)")

	// --- NATS JetStream ---
	var publisher service.PresencePublisher
	if cfg.NATSURL != "" {
		natsClient, err := natsclient.NewClient(cfg.NATSURL, logger)
		if err != nil {
			logger.Fatal("NATS initialization failed", zap.Error(err))
		}
		defer natsClient.Close()
		if err := natsClient.ProvisionStreams(); err != nil {
			logger.Fatal("NATS stream provisioning failed", zap.Error(err))
		}
		publisher = natsClient
	}

	// --- Repository & Services ---
	querier := db.New(pool)
	txm := db.NewTxManager(pool)
	svcs := handler.Services{
		Ingest: service.NewIngestService(txm, service.IngestConfig{
			BatteryMaxMillivolts: cfg.BatteryMaxMillivolts,
			AutoRegisterTags:     cfg.AutoRegisterTags,
			CloseLogOnReentry:    cfg.CloseLogOnReentry,
		}, publisher, logger),
		Auth:    service.NewAuthService(querier, cfg.JWTSecret),
		Crew:    service.NewCrewService(querier),
		Ships:   service.NewShipService(querier),
		Tags:    service.NewTagService(querier, txm),
		Logs:    service.NewLogService(querier),
		Catalog: service.NewCatalogService(querier),
	}

	// --- HTTP Server ---
	e := echo.New()
	e.HideBanner = true
	e.Use(otelecho.Middleware("gatekeeper"))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("HTTP request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	handler.RegisterRoutes(e, svcs, cfg, logger)

	// Development stays on loopback so a stray yard device cannot hit a
	// debug instance.
	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	if cfg.Env == config.EnvDevelopment {
		addr = fmt.Sprintf("127.0.0.1:%d", cfg.HTTPPort)
	}

	go func() {
		logger.Info("gatekeeper HTTP server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failure", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Echo shutdown error", zap.Error(err))
	}
	logger.Info("gatekeeper shut down cleanly")
}

// overlayVaultSecrets copies string secrets from the configured KV2 path into
// the process environment so config.Load picks them up.
func overlayVaultSecrets(vaultAddr string, logger *zap.Logger) error {
	vaultToken := os.Getenv("VAULT_TOKEN")
	secretPath := os.Getenv("VAULT_SECRET_PATH")
	if secretPath == "" {
		secretPath = "secret/data/gatekeeper"
	}

	manager, err := vault.NewSecretManager(vaultAddr, vaultToken)
	if err != nil {
		return err
	}
	secrets, err := manager.GetKV2(secretPath)
	if err != nil {
		return err
	}
	for key, val := range secrets {
		if s, ok := val.(string); ok {
			os.Setenv(key, s)
		}
	}
	logger.Info("Vault secrets applied", zap.String("path", secretPath), zap.Int("keys", len(secrets)))
	return nil
}
