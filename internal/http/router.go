package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/cloudadopt/cloudadopt-backend/internal/http/handlers"
	httpMW "github.com/cloudadopt/cloudadopt-backend/internal/http/middleware"
	"github.com/cloudadopt/cloudadopt-backend/internal/observability"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	// TracingService enables otelgin spans when non-empty.
	TracingService     string
	CORSAllowedOrigins []string

	ProfileHandler    *httpH.ProfileHandler
	AssessmentHandler *httpH.AssessmentHandler
	HealthHandler     *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log, "/healthcheck", "/readyz"))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSAllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	api := r.Group("/api")
	{
		// Onboarding submissions
		if cfg.ProfileHandler != nil {
			api.POST("/user-assessment", cfg.ProfileHandler.Submit)
			api.GET("/user-assessment/:id", cfg.ProfileHandler.Get)
		}

		// Cloud journey (computed on read)
		if cfg.AssessmentHandler != nil {
			api.GET("/cloud-journey", cfg.AssessmentHandler.CloudJourney)
			api.GET("/user-assessment/:id/cloud-journey", cfg.AssessmentHandler.StoredCloudJourney)
		}
	}

	return r
}
