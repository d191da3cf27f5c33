package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
	"github.com/cloudadopt/cloudadopt-backend/internal/http/response"
	"github.com/cloudadopt/cloudadopt-backend/internal/modules/readiness"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/apierr"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
	"github.com/cloudadopt/cloudadopt-backend/internal/services"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

// fakeProfileService validates presence like the real service but keeps
// profiles in memory.
type fakeProfileService struct {
	submitErr   error
	submitCalls int
	stored      map[uuid.UUID]*types.BusinessProfile
}

func (f *fakeProfileService) Submit(ctx context.Context, in types.BusinessProfile) (*types.BusinessProfile, error) {
	in.Normalize()
	if missing := in.MissingFields(); len(missing) > 0 {
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeMissingFields, fmt.Errorf("%w: %s", services.ErrMissingFields, strings.Join(missing, ", ")))
	}
	f.submitCalls++
	if f.submitErr != nil {
		return nil, apierr.New(http.StatusInternalServerError, apierr.CodeInternal, f.submitErr)
	}
	if f.stored == nil {
		f.stored = map[uuid.UUID]*types.BusinessProfile{}
	}
	in.ID = uuid.New()
	f.stored[in.ID] = &in
	return &in, nil
}

func (f *fakeProfileService) Get(ctx context.Context, id uuid.UUID) (*types.BusinessProfile, error) {
	if p, ok := f.stored[id]; ok {
		return p, nil
	}
	return nil, apierr.New(http.StatusNotFound, apierr.CodeNotFound, services.ErrProfileNotFound)
}

type fakeAssessmentService struct {
	profiles *fakeProfileService
	lastSeen types.BusinessProfile
}

func (f *fakeAssessmentService) Evaluate(ctx context.Context, p types.BusinessProfile) readiness.Assessment {
	f.lastSeen = p
	return readiness.Evaluate(p)
}

func (f *fakeAssessmentService) EvaluateStored(ctx context.Context, id uuid.UUID) (readiness.Assessment, error) {
	p, err := f.profiles.Get(ctx, id)
	if err != nil {
		return readiness.Assessment{}, err
	}
	return readiness.Evaluate(*p), nil
}

func newTestEngine(t *testing.T, profiles *fakeProfileService, assessments *fakeAssessmentService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := newTestLogger(t)
	ph := NewProfileHandler(log, profiles)
	ah := NewAssessmentHandler(log, assessments)

	r := gin.New()
	r.POST("/api/user-assessment", ph.Submit)
	r.GET("/api/user-assessment/:id", ph.Get)
	r.GET("/api/user-assessment/:id/cloud-journey", ah.StoredCloudJourney)
	r.GET("/api/cloud-journey", ah.CloudJourney)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.APIError {
	t.Helper()
	var env response.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error envelope: %v (body=%s)", err, rec.Body.String())
	}
	return env.Error
}

const validBody = `{"companyName":"Acme","companySize":"1-10","industry":"finance","currentInfrastructure":"cloud","cloudExperience":"extensive","primaryGoal":"security"}`

func TestSubmitCreated(t *testing.T) {
	profiles := &fakeProfileService{}
	r := newTestEngine(t, profiles, &fakeAssessmentService{profiles: profiles})

	rec := do(r, http.MethodPost, "/api/user-assessment", validBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got=%d want=%d body=%s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var got types.BusinessProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID == uuid.Nil || got.CompanyName != "Acme" || got.PrimaryGoal != "security" {
		t.Fatalf("unexpected created profile: %+v", got)
	}
}

func TestSubmitValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "empty_object", body: `{}`},
		{name: "blank_company", body: strings.Replace(validBody, `"Acme"`, `"   "`, 1)},
		{name: "missing_goal", body: `{"companyName":"Acme","companySize":"1-10","industry":"finance","currentInfrastructure":"cloud","cloudExperience":"extensive"}`},
		{name: "not_json", body: `companyName=Acme`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profiles := &fakeProfileService{}
			r := newTestEngine(t, profiles, &fakeAssessmentService{profiles: profiles})

			rec := do(r, http.MethodPost, "/api/user-assessment", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status: got=%d want=%d", rec.Code, http.StatusBadRequest)
			}
			if apiErr := decodeError(t, rec); apiErr.Code != apierr.CodeMissingFields {
				t.Fatalf("code: got=%q want=%q", apiErr.Code, apierr.CodeMissingFields)
			}
			if profiles.submitCalls != 0 {
				t.Fatalf("store must not be reached on validation failure")
			}
		})
	}
}

func TestSubmitStorageFailureHidesCause(t *testing.T) {
	profiles := &fakeProfileService{submitErr: errors.New("dial tcp 10.0.0.5:5432: connection refused")}
	r := newTestEngine(t, profiles, &fakeAssessmentService{profiles: profiles})

	rec := do(r, http.MethodPost, "/api/user-assessment", validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Message != "Internal server error" || apiErr.Code != apierr.CodeInternal {
		t.Fatalf("unexpected error envelope: %+v", apiErr)
	}
}

func TestGetProfile(t *testing.T) {
	profiles := &fakeProfileService{}
	r := newTestEngine(t, profiles, &fakeAssessmentService{profiles: profiles})

	created, err := profiles.Submit(context.Background(), types.BusinessProfile{
		CompanyName: "Acme", CompanySize: "11-50", Industry: "retail",
		CurrentInfrastructure: "hybrid", CloudExperience: "moderate", PrimaryGoal: "scalability",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if rec := do(r, http.MethodGet, "/api/user-assessment/"+created.ID.String(), ""); rec.Code != http.StatusOK {
		t.Fatalf("known id: got status %d", rec.Code)
	}
	if rec := do(r, http.MethodGet, "/api/user-assessment/"+uuid.NewString(), ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id: got status %d", rec.Code)
	}
	rec := do(r, http.MethodGet, "/api/user-assessment/not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: got status %d", rec.Code)
	}
	if apiErr := decodeError(t, rec); apiErr.Code != apierr.CodeInvalidID {
		t.Fatalf("malformed id code: got %q", apiErr.Code)
	}
}

func TestCloudJourneyEmptyQuery(t *testing.T) {
	profiles := &fakeProfileService{}
	r := newTestEngine(t, profiles, &fakeAssessmentService{profiles: profiles})

	rec := do(r, http.MethodGet, "/api/cloud-journey", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	var a readiness.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Score != readiness.MinScore {
		t.Fatalf("score: got=%d want=%d", a.Score, readiness.MinScore)
	}
	if a.IndustryGuidance.TailoredFor != "your industry" {
		t.Fatalf("tailoredFor: got %q", a.IndustryGuidance.TailoredFor)
	}
}

func TestCloudJourneyQueryAliases(t *testing.T) {
	profiles := &fakeProfileService{}
	assessments := &fakeAssessmentService{profiles: profiles}
	r := newTestEngine(t, profiles, assessments)

	short := do(r, http.MethodGet, "/api/cloud-journey?companySize=1-10&industry=technology&infrastructure=cloud&experience=extensive&goal=innovation", "")
	shortSeen := assessments.lastSeen
	long := do(r, http.MethodGet, "/api/cloud-journey?companySize=1-10&industry=technology&currentInfrastructure=cloud&cloudExperience=extensive&primaryGoal=innovation", "")
	longSeen := assessments.lastSeen

	if short.Code != http.StatusOK || long.Code != http.StatusOK {
		t.Fatalf("status: short=%d long=%d", short.Code, long.Code)
	}
	if shortSeen != longSeen {
		t.Fatalf("aliases disagree: short=%+v long=%+v", shortSeen, longSeen)
	}
	if shortSeen.CurrentInfrastructure != "cloud" || shortSeen.PrimaryGoal != "innovation" {
		t.Fatalf("query not mapped: %+v", shortSeen)
	}
}

func TestStoredCloudJourney(t *testing.T) {
	profiles := &fakeProfileService{}
	r := newTestEngine(t, profiles, &fakeAssessmentService{profiles: profiles})

	rec := do(r, http.MethodPost, "/api/user-assessment", validBody)
	var created types.BusinessProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = do(r, http.MethodGet, "/api/user-assessment/"+created.ID.String()+"/cloud-journey", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	var a readiness.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Score != readiness.MaxScore || a.Band != readiness.BandWellPrepared {
		t.Fatalf("assessment: score=%d band=%q", a.Score, a.Band)
	}

	if rec := do(r, http.MethodGet, "/api/user-assessment/"+uuid.NewString()+"/cloud-journey", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id: got status %d", rec.Code)
	}
}

func TestHealthAndReadiness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := newTestLogger(t)

	healthy := NewHealthHandler(log,
		ReadinessCheck{Name: "database", Ping: func(context.Context) error { return nil }},
	)
	degraded := NewHealthHandler(log,
		ReadinessCheck{Name: "database", Ping: func(context.Context) error { return nil }},
		ReadinessCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }},
	)

	r := gin.New()
	r.GET("/healthcheck", healthy.HealthCheck)
	r.GET("/readyz", healthy.Ready)
	r.GET("/readyz-degraded", degraded.Ready)

	rec := do(r, http.MethodGet, "/healthcheck", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: status=%d body=%q", rec.Code, rec.Body.String())
	}
	if rec := do(r, http.MethodGet, "/readyz", ""); rec.Code != http.StatusOK {
		t.Fatalf("readyz: got status %d", rec.Code)
	}
	rec = do(r, http.MethodGet, "/readyz-degraded", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("degraded readyz: got status %d", rec.Code)
	}
	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "not_ready" || body.Checks["redis"] != "unavailable" || body.Checks["database"] != "ok" {
		t.Fatalf("unexpected readiness body: %+v", body)
	}
}
