package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charole/auto-ux-backend/internal/api"
	uxapi "github.com/charole/auto-ux-backend/internal/api/ux"
	"github.com/charole/auto-ux-backend/internal/config"
	"github.com/charole/auto-ux-backend/internal/integration/llm"
	"github.com/charole/auto-ux-backend/internal/pkg/intent"
	"github.com/charole/auto-ux-backend/internal/pkg/metrics"
	"github.com/charole/auto-ux-backend/internal/pkg/payload"
	"github.com/charole/auto-ux-backend/internal/pkg/prompt"
	"github.com/charole/auto-ux-backend/internal/pkg/uiparse"
	"github.com/charole/auto-ux-backend/internal/pkg/validator"
	"github.com/charole/auto-ux-backend/internal/repository"
	"github.com/charole/auto-ux-backend/internal/usecase/catalog"
	"github.com/charole/auto-ux-backend/internal/usecase/ux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection. An unreachable store is not fatal: catalog
	// reads fail soft and UI generation falls back.
	db, dbReady, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	if cfg.RunMigrations && dbReady {
		logger.Info("Running database migrations")
		if err := repository.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("Database migrations completed successfully")
	}

	catalogRepo := repository.NewCatalogPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize generation connector (with mock support)
	var generator ux.Generator
	if cfg.EnableMocks {
		logger.Info("Using mock connector for UI generation")
		generator = llm.NewMockConnector(logger)
	} else {
		generator = llm.NewConnector(cfg.LLMConnectorCfg, logger)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	uxMetrics := metrics.New(registry)

	// Pipeline stages
	parser, err := uiparse.NewParser()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init response parser: %w", err)
	}
	extractor := intent.NewDefaultExtractor()
	formatter := payload.NewFormatter(cfg.PipelineCfg.SearchBudget, cfg.PipelineCfg.GenericBudget)
	synthesizer := prompt.NewSynthesizer()

	// Initialize use cases
	uxUC := ux.NewUsecase(
		catalogRepo,
		generator,
		extractor,
		formatter,
		synthesizer,
		parser,
		uxMetrics,
		cfg.PipelineCfg,
	)
	catalogUC := catalog.NewUsecase(catalogRepo, cfg.CatalogCacheCfg)
	logger.Info("Use cases initialized")

	// Setup API handlers
	uxHandler := uxapi.NewHandler(uxUC, catalogUC, validator.NewValidator())

	router := api.SetupRouter(cfg, uxHandler, registry, logger)
	logger.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
		zap.Bool("database_ready", dbReady),
		zap.Bool("generation_available", generator.Available()),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
