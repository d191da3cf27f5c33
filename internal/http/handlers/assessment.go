package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
	"github.com/cloudadopt/cloudadopt-backend/internal/http/response"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
	"github.com/cloudadopt/cloudadopt-backend/internal/services"
)

type AssessmentHandler struct {
	log         *logger.Logger
	assessments services.AssessmentService
}

func NewAssessmentHandler(log *logger.Logger, assessments services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		log:         log.With("handler", "AssessmentHandler"),
		assessments: assessments,
	}
}

// queryParam returns the first non-empty value among the given keys.
func queryParam(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}

// GET /api/cloud-journey
func (h *AssessmentHandler) CloudJourney(c *gin.Context) {
	p := types.BusinessProfile{
		CompanyName:           queryParam(c, "companyName"),
		CompanySize:           queryParam(c, "companySize"),
		Industry:              queryParam(c, "industry"),
		CurrentInfrastructure: queryParam(c, "infrastructure", "currentInfrastructure"),
		CloudExperience:       queryParam(c, "experience", "cloudExperience"),
		PrimaryGoal:           queryParam(c, "goal", "primaryGoal"),
	}
	response.RespondOK(c, h.assessments.Evaluate(c.Request.Context(), p))
}

// GET /api/user-assessment/:id/cloud-journey
func (h *AssessmentHandler) StoredCloudJourney(c *gin.Context) {
	id, ok := parseProfileID(c)
	if !ok {
		return
	}
	a, err := h.assessments.EvaluateStored(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, a)
}
