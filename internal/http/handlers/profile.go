package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
	"github.com/cloudadopt/cloudadopt-backend/internal/http/response"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/apierr"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
	"github.com/cloudadopt/cloudadopt-backend/internal/services"
)

var errInvalidID = errors.New("invalid business profile id")

type ProfileHandler struct {
	log      *logger.Logger
	profiles services.ProfileService
}

func NewProfileHandler(log *logger.Logger, profiles services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		log:      log.With("handler", "ProfileHandler"),
		profiles: profiles,
	}
}

// submitProfileRequest mirrors the onboarding form. Unknown keys are ignored.
type submitProfileRequest struct {
	CompanyName           string `json:"companyName"`
	CompanySize           string `json:"companySize"`
	Industry              string `json:"industry"`
	CurrentInfrastructure string `json:"currentInfrastructure"`
	CloudExperience       string `json:"cloudExperience"`
	PrimaryGoal           string `json:"primaryGoal"`
}

func (r submitProfileRequest) profile() types.BusinessProfile {
	return types.BusinessProfile{
		CompanyName:           r.CompanyName,
		CompanySize:           r.CompanySize,
		Industry:              r.Industry,
		CurrentInfrastructure: r.CurrentInfrastructure,
		CloudExperience:       r.CloudExperience,
		PrimaryGoal:           r.PrimaryGoal,
	}
}

// POST /api/user-assessment
func (h *ProfileHandler) Submit(c *gin.Context) {
	var req submitProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Submit: unreadable body", "error", err)
		response.RespondError(c, http.StatusBadRequest, apierr.CodeMissingFields, services.ErrMissingFields)
		return
	}

	created, err := h.profiles.Submit(c.Request.Context(), req.profile())
	if err != nil {
		if !errors.Is(err, services.ErrMissingFields) {
			_ = c.Error(err)
		}
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

// GET /api/user-assessment/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := parseProfileID(c)
	if !ok {
		return
	}
	p, err := h.profiles.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, p)
}

func parseProfileID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil || id == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidID, errInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
