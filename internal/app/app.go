package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/cloudadopt/cloudadopt-backend/internal/data/db"
	"github.com/cloudadopt/cloudadopt-backend/internal/http"
	"github.com/cloudadopt/cloudadopt-backend/internal/observability"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *db.Service
	Router   *gin.Engine
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics

	server       *http.Server
	shutdownOtel func(context.Context) error
}

func New(ctx context.Context, cfg Config) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	shutdownOtel, err := observability.InitOTel(ctx, log, cfg.Otel)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init otel: %w", err)
	}

	log.Info("Opening database...", "driver", cfg.DB.Driver)
	database, err := db.Open(log, cfg.DB.Driver, cfg.DB.DSN())
	if err != nil {
		_ = shutdownOtel(ctx)
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := database.AutoMigrateAll(); err != nil {
		_ = database.Close()
		_ = shutdownOtel(ctx)
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	clients, err := wireClients(ctx, log, cfg.Redis)
	if err != nil {
		_ = database.Close()
		_ = shutdownOtel(ctx)
		log.Sync()
		return nil, err
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.New()
	}

	reposet := wireRepos(database.DB(), log)
	serviceset := wireServices(log, reposet, metrics)
	handlerset := wireHandlers(log, serviceset, database, clients)
	router := wireRouter(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		DB:           database,
		Router:       router,
		Cfg:          cfg,
		Clients:      clients,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		server:       http.WrapEngine(router),
		shutdownOtel: shutdownOtel,
	}, nil
}

// Start launches the metrics listener and collectors. They stop when ctx is done.
func (a *App) Start(ctx context.Context) {
	if a == nil || a.Metrics == nil {
		return
	}
	a.Metrics.StartServer(ctx, a.Log, a.Cfg.MetricsAddr)
	a.Metrics.StartDBCollector(ctx, a.Log, a.DB.DB())
	a.Metrics.StartRedisCollector(ctx, a.Log, a.Clients.Redis)
}

func (a *App) Run() error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("API server listening", "addr", a.Cfg.Addr())
	return a.server.Run(a.Cfg.Addr())
}

func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.server == nil {
		return nil
	}
	a.Log.Info("Shutting down API server...")
	return a.server.Shutdown(ctx)
}

func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.shutdownOtel != nil {
		if err := a.shutdownOtel(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	a.Log.Sync()
}
