package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cloudadopt/cloudadopt-backend/internal/data/db"
	"github.com/cloudadopt/cloudadopt-backend/internal/http"
	httpH "github.com/cloudadopt/cloudadopt-backend/internal/http/handlers"
	"github.com/cloudadopt/cloudadopt-backend/internal/observability"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Profile    *httpH.ProfileHandler
	Assessment *httpH.AssessmentHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, database *db.Service, clients Clients) Handlers {
	log.Info("Wiring handlers...")

	checks := []httpH.ReadinessCheck{
		{Name: "database", Ping: database.Ping},
	}
	if clients.Redis != nil {
		rdb := clients.Redis
		checks = append(checks, httpH.ReadinessCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	return Handlers{
		Health:     httpH.NewHealthHandler(log, checks...),
		Profile:    httpH.NewProfileHandler(log, serviceset.Profile),
		Assessment: httpH.NewAssessmentHandler(log, serviceset.Assessment),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers, metrics *observability.Metrics) *gin.Engine {
	tracing := ""
	if cfg.Otel.Enabled {
		tracing = cfg.Otel.ServiceName
	}
	return http.NewRouter(http.RouterConfig{
		Log:                log,
		Metrics:            metrics,
		TracingService:     tracing,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		HealthHandler:      handlerset.Health,
		ProfileHandler:     handlerset.Profile,
		AssessmentHandler:  handlerset.Assessment,
	})
}
