package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/satya-supercluster/brand-voice-service/internal/analyzer"
	"github.com/satya-supercluster/brand-voice-service/internal/domain"
	"github.com/satya-supercluster/brand-voice-service/internal/repository"
	"github.com/satya-supercluster/brand-voice-service/internal/service"
)

const sampleContent = "We are a professional enterprise organization delivering innovative solutions with strategic excellence."

type mockProfileRepo struct {
	profiles map[string]domain.BrandProfile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]domain.BrandProfile)}
}

func (m *mockProfileRepo) Create(_ context.Context, profile domain.BrandProfile) error {
	if _, ok := m.profiles[profile.CustomerID]; ok {
		return repository.ErrDuplicateCustomer
	}
	m.profiles[profile.CustomerID] = profile
	return nil
}

func (m *mockProfileRepo) GetByCustomerID(_ context.Context, customerID string) (domain.BrandProfile, error) {
	profile, ok := m.profiles[customerID]
	if !ok {
		return domain.BrandProfile{}, pgx.ErrNoRows
	}
	return profile, nil
}

func (m *mockProfileRepo) DeleteByCustomerID(_ context.Context, customerID string) error {
	if _, ok := m.profiles[customerID]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.profiles, customerID)
	return nil
}

func setupRouter(limiter service.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewBrandVoiceService(zap.NewNop(), newMockProfileRepo(), analyzer.HeuristicEngine{}, nil, nil)
	h := NewBrandVoiceHandler(zap.NewNop(), svc)
	return NewRouter(zap.NewNop(), limiter, h)
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProfileEndpoint(t *testing.T) {
	router := setupRouter(nil)

	w := performRequest(router, http.MethodPost, "/api/v1/brand-voice/profiles", gin.H{
		"customerId":    "c1",
		"brandName":     "Acme",
		"sampleContent": sampleContent,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var view domain.ProfileView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if view.ProfileID == "" || view.CustomerID != "c1" || view.Status != "active" {
		t.Fatalf("unexpected profile view: %+v", view)
	}
	if view.ConfidenceScore != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", view.ConfidenceScore)
	}
}

func TestCreateProfileShortSample(t *testing.T) {
	router := setupRouter(nil)

	w := performRequest(router, http.MethodPost, "/api/v1/brand-voice/profiles", gin.H{
		"customerId":    "c1",
		"brandName":     "Acme",
		"sampleContent": strings.Repeat("x", 50),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short sample, got %d", w.Code)
	}
}

func TestCreateProfileDuplicate(t *testing.T) {
	router := setupRouter(nil)
	body := gin.H{"customerId": "c2", "brandName": "Acme", "sampleContent": sampleContent}

	if w := performRequest(router, http.MethodPost, "/api/v1/brand-voice/profiles", body); w.Code != http.StatusCreated {
		t.Fatalf("first create failed: %d", w.Code)
	}
	if w := performRequest(router, http.MethodPost, "/api/v1/brand-voice/profiles", body); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d", w.Code)
	}
}

func TestGetProfileEndpoint(t *testing.T) {
	router := setupRouter(nil)

	if w := performRequest(router, http.MethodGet, "/api/v1/brand-voice/profiles/missing", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown customer, got %d", w.Code)
	}

	performRequest(router, http.MethodPost, "/api/v1/brand-voice/profiles", gin.H{
		"customerId": "c3", "brandName": "Acme", "sampleContent": sampleContent,
	})
	w := performRequest(router, http.MethodGet, "/api/v1/brand-voice/profiles/c3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var view domain.ProfileView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if view.CustomerID != "c3" || view.VoiceAttributes.Tone != domain.ToneProfessional {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestValidateContentEndpoint(t *testing.T) {
	router := setupRouter(nil)

	performRequest(router, http.MethodPost, "/api/v1/brand-voice/profiles", gin.H{
		"customerId": "c4", "brandName": "Acme", "sampleContent": sampleContent,
	})

	w := performRequest(router, http.MethodPost, "/api/v1/brand-voice/validate", gin.H{
		"customerId": "c4",
		"content":    "Hey folks! Check out our awesome cool stuff! It's gonna be super amazing!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var result domain.ValidationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.Verdict != domain.VerdictOffBrand {
		t.Fatalf("expected off_brand, got %q", result.Verdict)
	}
	if len(result.DetailedScores) != 4 {
		t.Fatalf("expected four detailed scores, got %+v", result.DetailedScores)
	}
	if len(result.Issues) == 0 {
		t.Fatalf("expected issues for off-brand content")
	}
}

func TestValidateContentFailures(t *testing.T) {
	router := setupRouter(nil)

	w := performRequest(router, http.MethodPost, "/api/v1/brand-voice/validate", gin.H{
		"customerId": "ghost",
		"content":    "Some content long enough to pass validation.",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without profile, got %d", w.Code)
	}

	w = performRequest(router, http.MethodPost, "/api/v1/brand-voice/validate", gin.H{
		"customerId": "c5",
		"content":    "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short content, got %d", w.Code)
	}
}

func TestDeleteProfileEndpoint(t *testing.T) {
	router := setupRouter(nil)

	performRequest(router, http.MethodPost, "/api/v1/brand-voice/profiles", gin.H{
		"customerId": "c6", "brandName": "Acme", "sampleContent": sampleContent,
	})

	if w := performRequest(router, http.MethodDelete, "/api/v1/brand-voice/profiles/c6", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := performRequest(router, http.MethodGet, "/api/v1/brand-voice/profiles/c6", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
	if w := performRequest(router, http.MethodDelete, "/api/v1/brand-voice/profiles/c6", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting twice, got %d", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(nil)

	w := performRequest(router, http.MethodGet, "/api/v1/brand-voice/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
}

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }

func TestRateLimitMiddleware(t *testing.T) {
	router := setupRouter(denyAllLimiter{})

	w := performRequest(router, http.MethodGet, "/api/v1/brand-voice/profiles/c1", nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 when limited, got %d", w.Code)
	}

	// El health check queda fuera del rate limit.
	if w := performRequest(router, http.MethodGet, "/api/v1/brand-voice/health", nil); w.Code != http.StatusOK {
		t.Fatalf("expected health to bypass limiter, got %d", w.Code)
	}
}
