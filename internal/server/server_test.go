package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	achievementdto "hunttrack/internal/modules/achievement/dto"
	achievementin "hunttrack/internal/modules/achievement/port/in"
	applicationdto "hunttrack/internal/modules/application/dto"
	applicationin "hunttrack/internal/modules/application/port/in"
	metricsdto "hunttrack/internal/modules/metrics/dto"
	metricsin "hunttrack/internal/modules/metrics/port/in"
	studydto "hunttrack/internal/modules/study/dto"
	studyin "hunttrack/internal/modules/study/port/in"
	apperrors "hunttrack/internal/platform/errors"
	"hunttrack/internal/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeApplications struct {
	applicationin.Usecase
	added   []applicationdto.AddInput
	updated []applicationdto.UpdateInput
	listed  applicationdto.ListInput
}

func (f *fakeApplications) Add(_ context.Context, in applicationdto.AddInput) (applicationdto.ApplicationOutput, error) {
	if in.Company == "" {
		return applicationdto.ApplicationOutput{}, apperrors.Invalid("company", "is required")
	}
	f.added = append(f.added, in)
	return applicationdto.ApplicationOutput{ID: "a1", Company: in.Company, Role: in.Role, Status: "Applied"}, nil
}

func (f *fakeApplications) Update(_ context.Context, in applicationdto.UpdateInput) (applicationdto.ApplicationOutput, error) {
	f.updated = append(f.updated, in)
	if in.ID != "a1" {
		return applicationdto.ApplicationOutput{}, apperrors.NotFound("application", in.ID)
	}
	return applicationdto.ApplicationOutput{ID: in.ID, Status: *in.Status}, nil
}

func (f *fakeApplications) List(_ context.Context, in applicationdto.ListInput) ([]applicationdto.ApplicationOutput, error) {
	f.listed = in
	return []applicationdto.ApplicationOutput{{ID: "a1"}}, nil
}

func (f *fakeApplications) Delete(_ context.Context, id string) error {
	if id != "a1" {
		return apperrors.NotFound("application", id)
	}
	return nil
}

type fakeStudy struct {
	studyin.Usecase
}

func (fakeStudy) Log(_ context.Context, in studydto.LogInput) (studydto.StudyLogOutput, error) {
	return studydto.StudyLogOutput{ID: "s1", Date: "2026-03-04", Minutes: in.Minutes}, nil
}

func (fakeStudy) List(context.Context, studydto.ListInput) ([]studydto.StudyLogOutput, error) {
	return nil, apperrors.Storage("list study logs", errors.New("database is locked"))
}

type fakeMetrics struct {
	metricsin.Usecase
}

func (fakeMetrics) Dashboard(context.Context) (metricsdto.DashboardOutput, error) {
	return metricsdto.DashboardOutput{Today: "2026-03-04", Feedback: metricsdto.FeedbackOutput{Category: "no_data"}}, nil
}

type fakeAchievements struct {
	achievementin.Usecase
}

func (fakeAchievements) List(context.Context) ([]achievementdto.AchievementOutput, error) {
	return []achievementdto.AchievementOutput{{ID: "time_30", Unlocked: true}}, nil
}

func newServer() (http.Handler, *fakeApplications) {
	apps := &fakeApplications{}
	srv := server.New(server.Options{
		Applications: apps,
		Study:        fakeStudy{},
		Metrics:      fakeMetrics{},
		Achievements: fakeAchievements{},
	})
	return srv.Handler(), apps
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndDashboard(t *testing.T) {
	t.Parallel()
	h, _ := newServer()
	if rec := do(t, h, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: %d", rec.Code)
	}
	rec := do(t, h, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: %d", rec.Code)
	}
	var out metricsdto.DashboardOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil || out.Feedback.Category != "no_data" {
		t.Fatalf("unexpected dashboard body %s: %v", rec.Body.String(), err)
	}
}

func TestApplicationRoutes(t *testing.T) {
	t.Parallel()
	h, apps := newServer()

	rec := do(t, h, http.MethodPost, "/api/applications", `{"company":"Acme","role":"SRE","applied_date":"2026-03-01"}`)
	if rec.Code != http.StatusCreated || len(apps.added) != 1 || apps.added[0].AppliedDate != "2026-03-01" {
		t.Fatalf("add: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/api/applications", `{"role":"SRE"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), `"field":"company"`) {
		t.Fatalf("validation: %d %s", rec.Code, rec.Body.String())
	}

	if rec = do(t, h, http.MethodPost, "/api/applications", `{`); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json: %d", rec.Code)
	}

	rec = do(t, h, http.MethodPatch, "/api/applications/a1", `{"status":"Offer"}`)
	if rec.Code != http.StatusOK || apps.updated[0].ID != "a1" || apps.updated[0].Company != nil {
		t.Fatalf("update: %d %s", rec.Code, rec.Body.String())
	}
	if rec = do(t, h, http.MethodPatch, "/api/applications/zz", `{"status":"Offer"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("update missing: %d", rec.Code)
	}

	if rec = do(t, h, http.MethodGet, "/api/applications?status=Applied&status=Offer&from=2026-01-01", ""); rec.Code != http.StatusOK {
		t.Fatalf("list: %d", rec.Code)
	}
	if len(apps.listed.Statuses) != 2 || apps.listed.From != "2026-01-01" {
		t.Fatalf("query not bound: %+v", apps.listed)
	}

	if rec = do(t, h, http.MethodDelete, "/api/applications/a1", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rec.Code)
	}
	if rec = do(t, h, http.MethodDelete, "/api/applications/zz", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("delete missing: %d", rec.Code)
	}
}

func TestStudyAndAchievementRoutes(t *testing.T) {
	t.Parallel()
	h, _ := newServer()
	rec := do(t, h, http.MethodPost, "/api/study-logs", `{"minutes_studied":45}`)
	if rec.Code != http.StatusCreated || !strings.Contains(rec.Body.String(), `"minutes_studied":45`) {
		t.Fatalf("log: %d %s", rec.Code, rec.Body.String())
	}
	if rec = do(t, h, http.MethodGet, "/api/study-logs", ""); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("storage failures should be 503, got %d", rec.Code)
	}
	rec = do(t, h, http.MethodGet, "/api/achievements", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "time_30") {
		t.Fatalf("achievements: %d %s", rec.Code, rec.Body.String())
	}
}
