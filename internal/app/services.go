package app

import (
	"github.com/cloudadopt/cloudadopt-backend/internal/observability"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
	"github.com/cloudadopt/cloudadopt-backend/internal/services"
)

type Services struct {
	Profile    services.ProfileService
	Assessment services.AssessmentService
}

func wireServices(log *logger.Logger, reposet Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	profiles := services.NewProfileService(log, reposet.Profile, metrics)
	return Services{
		Profile:    profiles,
		Assessment: services.NewAssessmentService(log, profiles, metrics),
	}
}
