package services

import (
	"context"

	"github.com/google/uuid"

	types "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
	"github.com/cloudadopt/cloudadopt-backend/internal/modules/readiness"
	"github.com/cloudadopt/cloudadopt-backend/internal/observability"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/ctxutil"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

// Assessment sources recorded in metrics.
const (
	SourceQuery  = "query"
	SourceStored = "stored"
)

type AssessmentService interface {
	// Evaluate scores an answer set passed directly by the client. It never fails.
	Evaluate(ctx context.Context, p types.BusinessProfile) readiness.Assessment
	// EvaluateStored loads a submitted profile and scores it.
	EvaluateStored(ctx context.Context, id uuid.UUID) (readiness.Assessment, error)
}

type assessmentService struct {
	log      *logger.Logger
	profiles ProfileService
	metrics  *observability.Metrics
}

func NewAssessmentService(log *logger.Logger, profiles ProfileService, metrics *observability.Metrics) AssessmentService {
	return &assessmentService{
		log:      log.With("service", "AssessmentService"),
		profiles: profiles,
		metrics:  metrics,
	}
}

func (s *assessmentService) Evaluate(ctx context.Context, p types.BusinessProfile) readiness.Assessment {
	p.Normalize()
	return s.evaluate(ctx, p, SourceQuery)
}

func (s *assessmentService) EvaluateStored(ctx context.Context, id uuid.UUID) (readiness.Assessment, error) {
	p, err := s.profiles.Get(ctx, id)
	if err != nil {
		return readiness.Assessment{}, err
	}
	return s.evaluate(ctx, *p, SourceStored), nil
}

func (s *assessmentService) evaluate(ctx context.Context, p types.BusinessProfile, source string) readiness.Assessment {
	a := readiness.Evaluate(p)
	s.metrics.ObserveAssessment(string(a.Band), source, a.Score)
	s.log.Debug("assessment computed", append(ctxutil.LogFields(ctx),
		"source", source,
		"score", a.Score,
		"band", a.Band,
		"industry", p.Industry,
	)...)
	return a
}
