package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cloudadopt/cloudadopt-backend/internal/data/repos"
	types "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
	"github.com/cloudadopt/cloudadopt-backend/internal/observability"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/apierr"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/ctxutil"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrProfileNotFound = errors.New("business profile not found")
)

type ProfileService interface {
	// Submit validates and persists a new profile. Only the six answer
	// fields of in are used; id and timestamps are assigned on insert.
	Submit(ctx context.Context, in types.BusinessProfile) (*types.BusinessProfile, error)
	Get(ctx context.Context, id uuid.UUID) (*types.BusinessProfile, error)
}

type profileService struct {
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	metrics     *observability.Metrics
}

func NewProfileService(log *logger.Logger, profileRepo repos.ProfileRepo, metrics *observability.Metrics) ProfileService {
	return &profileService{
		log:         log.With("service", "ProfileService"),
		profileRepo: profileRepo,
		metrics:     metrics,
	}
}

func (s *profileService) Submit(ctx context.Context, in types.BusinessProfile) (*types.BusinessProfile, error) {
	p := &types.BusinessProfile{
		CompanyName:           in.CompanyName,
		CompanySize:           in.CompanySize,
		Industry:              in.Industry,
		CurrentInfrastructure: in.CurrentInfrastructure,
		CloudExperience:       in.CloudExperience,
		PrimaryGoal:           in.PrimaryGoal,
	}
	p.Normalize()

	if missing := p.MissingFields(); len(missing) > 0 {
		s.metrics.ObserveSubmission(observability.SubmissionInvalid)
		return nil, apierr.New(
			http.StatusBadRequest,
			apierr.CodeMissingFields,
			fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", ")),
		)
	}

	created, err := s.profileRepo.Create(ctx, nil, []*types.BusinessProfile{p})
	if err != nil {
		s.metrics.ObserveSubmission(observability.SubmissionFailed)
		s.log.Error("persist business profile failed", append(ctxutil.LogFields(ctx), "error", err, "company_name", p.CompanyName)...)
		return nil, apierr.New(http.StatusInternalServerError, apierr.CodeInternal, fmt.Errorf("persist business profile: %w", err))
	}
	if len(created) != 1 {
		s.metrics.ObserveSubmission(observability.SubmissionFailed)
		return nil, apierr.New(http.StatusInternalServerError, apierr.CodeInternal, fmt.Errorf("persist business profile: expected 1 row, got %d", len(created)))
	}

	s.metrics.ObserveSubmission(observability.SubmissionCreated)
	s.log.Info("business profile created", append(ctxutil.LogFields(ctx),
		"profile_id", created[0].ID,
		"company_name", created[0].CompanyName,
		"industry", created[0].Industry,
	)...)
	return created[0], nil
}

func (s *profileService) Get(ctx context.Context, id uuid.UUID) (*types.BusinessProfile, error) {
	p, err := s.profileRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Error("load business profile failed", append(ctxutil.LogFields(ctx), "error", err, "profile_id", id)...)
		return nil, apierr.New(http.StatusInternalServerError, apierr.CodeInternal, fmt.Errorf("load business profile: %w", err))
	}
	if p == nil {
		return nil, apierr.New(http.StatusNotFound, apierr.CodeNotFound, ErrProfileNotFound)
	}
	return p, nil
}
