package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet_survey/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func TestNewRouter_Ping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(nil)

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	want := []string{
		"POST /v1/certificates",
		"GET /v1/certificates/upcoming-surveys",
		"GET /v1/certificates/:id",
		"PUT /v1/certificates/:id",
		"POST /v1/certificates/:id/update-next-survey",
		"POST /v1/ships",
		"GET /v1/ships/:id",
		"GET /v1/ships/:id/certificates",
		"POST /v1/companies",
		"GET /v1/companies/:id",
		"GET /swagger/*any",
	}
	for _, route := range want {
		if !registered[route] {
			t.Fatalf("route %s not registered", route)
		}
	}
}

func TestNewRouter_UpcomingSurveysNeedsCompany(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/certificates/upcoming-surveys", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without %s, got %d", handlers.HeaderCompanyID, w.Code)
	}
}
