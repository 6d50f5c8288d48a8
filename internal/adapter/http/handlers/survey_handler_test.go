package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet_survey/internal/adapter/http/handlers/mocks"
	"fleet_survey/internal/domain/survey"
	"fleet_survey/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSurveyRouter(h *SurveyHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/certificates/:id/update-next-survey", h.UpdateNextSurvey)
	r.GET("/v1/certificates/upcoming-surveys", h.UpcomingSurveys)
	return r
}

func TestSurveyHandler_UpdateNextSurvey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ship not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := newSurveyRouter(NewSurveyHandler(uc))

		uc.EXPECT().RecomputeShip(gomock.Any(), "ship-1").Return(usecase.RecomputeSummary{}, usecase.ErrShipNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/certificates/ship-1/update-next-survey", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := newSurveyRouter(NewSurveyHandler(uc))

		uc.EXPECT().RecomputeShip(gomock.Any(), "ship-1").Return(usecase.RecomputeSummary{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/certificates/ship-1/update-next-survey", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := newSurveyRouter(NewSurveyHandler(uc))

		next := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().RecomputeShip(gomock.Any(), "ship-1").Return(usecase.RecomputeSummary{
			ShipID:            "ship-1",
			ShipName:          "Aurora",
			TotalCertificates: 2,
			UpdatedCount:      1,
			ErrorCount:        1,
			Results: []usecase.CertificateRecompute{
				{CertificateID: "c-1", Updated: true, After: usecase.NextSurveySnapshot{NextSurvey: "15/06/2025 (-3M)", NextSurveyType: "Initial", NextSurveyDate: &next}},
				{CertificateID: "c-2", Error: "parse valid_date"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/certificates/ship-1/update-next-survey", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["updated_count"].(float64) != 1 || body["total_certificates"].(float64) != 2 || body["error_count"].(float64) != 1 {
			t.Fatalf("unexpected counts: %v", body)
		}
		results := body["results"].([]any)
		first := results[0].(map[string]any)
		if first["new_next_survey"] != "15/06/2025 (-3M)" || first["new_next_survey_date"] != "2025-03-15T00:00:00Z" {
			t.Fatalf("unexpected result: %v", first)
		}
	})
}

func TestSurveyHandler_UpcomingSurveys(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing company header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := newSurveyRouter(NewSurveyHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/certificates/upcoming-surveys", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := newSurveyRouter(NewSurveyHandler(uc))

		for _, q := range []string{"days=abc", "days=-1"} {
			req := httptest.NewRequest(http.MethodGet, "/v1/certificates/upcoming-surveys?"+q, nil)
			req.Header.Set(HeaderCompanyID, "co-1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", q, w.Code)
			}
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := newSurveyRouter(NewSurveyHandler(uc))

		uc.EXPECT().UpcomingSurveys(gomock.Any(), "co-1").Return(usecase.UpcomingSurveysResult{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/certificates/upcoming-surveys", nil)
		req.Header.Set(HeaderCompanyID, "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := newSurveyRouter(NewSurveyHandler(uc))

		day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
		uc.EXPECT().UpcomingSurveys(gomock.Any(), "co-1").Return(usecase.UpcomingSurveysResult{
			Company:   "Blue Line",
			CheckDate: day(2025, time.May, 20),
			Surveys: []survey.UpcomingSurvey{{
				CertificateID:          "c-1",
				ShipName:               "Aurora",
				SurveyDate:             day(2025, time.June, 1),
				WindowOpen:             day(2024, time.December, 1),
				WindowClose:            day(2025, time.June, 1),
				WindowType:             "Issue→Valid",
				DaysUntilSurvey:        12,
				IsDueSoon:              true,
				IsConditionCertificate: true,
			}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/certificates/upcoming-surveys?days=7", nil)
		req.Header.Set(HeaderCompanyID, " co-1 ")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["total_count"].(float64) != 1 || body["company"] != "Blue Line" || body["check_date"] != "2025-05-20" || body["days"].(float64) != 7 {
			t.Fatalf("unexpected envelope: %v", body)
		}
		item := body["upcoming_surveys"].([]any)[0].(map[string]any)
		if item["window_type"] != "Issue→Valid" || item["is_due_soon"] != true || item["is_overdue"] != false {
			t.Fatalf("unexpected item: %v", item)
		}
		rules := body["logic_info"].(map[string]any)["window_rules"].(map[string]any)
		for _, k := range []string{"condition_certificate", "special_survey", "other_surveys"} {
			if rules[k] == "" || rules[k] == nil {
				t.Fatalf("missing window rule %s", k)
			}
		}
	})
}
