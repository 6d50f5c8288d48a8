package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleet_survey/internal/domain/entities"
	mock_interfaces "fleet_survey/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 9, 30, 0, 0, time.UTC) }
}

type surveyMocks struct {
	certs     *mock_interfaces.MockICertificateRepository
	ships     *mock_interfaces.MockIShipRepository
	companies *mock_interfaces.MockICompanyRepository
}

func newSurveyUseCase(t *testing.T) (*SurveyUseCase, surveyMocks) {
	ctrl := gomock.NewController(t)
	m := surveyMocks{
		certs:     mock_interfaces.NewMockICertificateRepository(ctrl),
		ships:     mock_interfaces.NewMockIShipRepository(ctrl),
		companies: mock_interfaces.NewMockICompanyRepository(ctrl),
	}
	uc := NewSurveyUseCase(m.certs, m.ships, m.companies).WithClock(fixedClock(2025, time.January, 15))
	return uc, m
}

func TestSurveyUseCase_RecomputeShip(t *testing.T) {
	t.Run("invalid ship id", func(t *testing.T) {
		uc := NewSurveyUseCase(nil, nil, nil)
		_, err := uc.RecomputeShip(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidShipID) {
			t.Fatalf("expected ErrInvalidShipID, got %v", err)
		}
	})

	t.Run("ship not found", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		m.ships.EXPECT().GetByID(gomock.Any(), "ship-1").Return(entities.Ship{}, nil)

		_, err := uc.RecomputeShip(context.Background(), "ship-1")
		if !errors.Is(err, ErrShipNotFound) {
			t.Fatalf("expected ErrShipNotFound, got %v", err)
		}
	})

	t.Run("list error propagates", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		m.ships.EXPECT().GetByID(gomock.Any(), "ship-1").Return(entities.Ship{ID: "ship-1"}, nil)
		m.certs.EXPECT().ListByShipID(gomock.Any(), "ship-1").Return(nil, errors.New("db"))

		_, err := uc.RecomputeShip(context.Background(), "ship-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("per certificate isolation", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		m.ships.EXPECT().GetByID(gomock.Any(), "ship-1").Return(entities.Ship{ID: "ship-1", Name: "MV Aurora"}, nil)
		m.certs.EXPECT().ListByShipID(gomock.Any(), "ship-1").Return([]entities.Certificate{
			{ID: "c-bad", CertType: "Interim", ValidDate: "15/15/2025"},
			{ID: "c-interim", CertType: "Interim", ValidDate: "2025-06-15"},
			{ID: "c-dmlc", CertName: "DMLC Part I", CertType: "Full Term", ValidDate: "2026-01-01"},
			{ID: "c-persist", CertType: "Full Term", ValidDate: "2028-03-18"},
		}, nil)

		m.certs.EXPECT().UpdateNextSurvey(gomock.Any(), "c-interim", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u entities.NextSurveyUpdate) (entities.Certificate, error) {
				if u.NextSurvey != "15/06/2025 (-3M)" || u.NextSurveyType != "Initial" {
					t.Fatalf("unexpected update: %+v", u)
				}
				if u.NextSurveyDate == nil || !u.NextSurveyDate.Equal(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected next survey date: %v", u.NextSurveyDate)
				}
				if u.WindowKind != "fixed_before" || u.WindowMonths != 3 {
					t.Fatalf("unexpected window: %s %d", u.WindowKind, u.WindowMonths)
				}
				if u.WindowAnchor == nil || !u.WindowAnchor.Equal(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("expected window anchored on the valid date, got %v", u.WindowAnchor)
				}
				if u.UpdatedAt.IsZero() {
					t.Fatalf("expected updated_at")
				}
				return entities.Certificate{ID: id, NextSurvey: u.NextSurvey, NextSurveyDisplay: u.NextSurvey, NextSurveyType: u.NextSurveyType, NextSurveyDate: u.NextSurveyDate}, nil
			},
		)
		m.certs.EXPECT().UpdateNextSurvey(gomock.Any(), "c-persist", gomock.Any()).Return(entities.Certificate{}, errors.New("throttled"))

		sum, err := uc.RecomputeShip(context.Background(), "ship-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum.ShipName != "MV Aurora" || sum.TotalCertificates != 4 {
			t.Fatalf("unexpected summary: %+v", sum)
		}
		if sum.UpdatedCount != 1 || sum.ErrorCount != 2 {
			t.Fatalf("expected 1 updated / 2 errors, got %d / %d", sum.UpdatedCount, sum.ErrorCount)
		}
		if len(sum.Results) != 4 {
			t.Fatalf("expected 4 results, got %d", len(sum.Results))
		}
		if sum.Results[0].Error == "" {
			t.Fatalf("expected parse error for c-bad")
		}
		if !sum.Results[1].Updated || sum.Results[1].After.NextSurveyType != "Initial" {
			t.Fatalf("unexpected interim result: %+v", sum.Results[1])
		}
		if sum.Results[2].Updated || sum.Results[2].Error != "" || sum.Results[2].Reasoning == "" {
			t.Fatalf("expected untouched dmlc with reasoning, got %+v", sum.Results[2])
		}
		if sum.Results[3].Error != "throttled" {
			t.Fatalf("expected persist error, got %+v", sum.Results[3])
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		next := time.Date(2025, time.September, 18, 0, 0, 0, 0, time.UTC)
		m.ships.EXPECT().GetByID(gomock.Any(), "ship-1").Return(entities.Ship{ID: "ship-1"}, nil)
		m.certs.EXPECT().ListByShipID(gomock.Any(), "ship-1").Return([]entities.Certificate{{
			ID:                "c-1",
			CertType:          "Full Term",
			ValidDate:         "2028-03-18",
			NextSurvey:        "18/09/2025 (±6M)",
			NextSurveyDisplay: "18/09/2025 (±6M)",
			NextSurveyType:    "Intermediate",
			NextSurveyDate:    &next,
			WindowKind:        "symmetric",
			WindowMonths:      6,
			WindowAnchor:      &next,
		}}, nil)

		sum, err := uc.RecomputeShip(context.Background(), "ship-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum.UpdatedCount != 0 || sum.ErrorCount != 0 {
			t.Fatalf("expected no-op, got %+v", sum)
		}
		if sum.Results[0].After.NextSurveyDate == nil || !sum.Results[0].After.NextSurveyDate.Equal(next) {
			t.Fatalf("expected unchanged date, got %+v", sum.Results[0].After)
		}
	})

	t.Run("indeterminate clears stale fields", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		stale := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		m.ships.EXPECT().GetByID(gomock.Any(), "ship-1").Return(entities.Ship{ID: "ship-1"}, nil)
		m.certs.EXPECT().ListByShipID(gomock.Any(), "ship-1").Return([]entities.Certificate{{
			ID: "c-1", CertType: "Short Term", ValidDate: "2025-06-01",
			NextSurvey: "01/06/2024 (-3M)", NextSurveyType: "Renewal", NextSurveyDate: &stale,
		}}, nil)
		m.certs.EXPECT().UpdateNextSurvey(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u entities.NextSurveyUpdate) (entities.Certificate, error) {
				if u.NextSurvey != "" || u.NextSurveyType != "" || u.NextSurveyDate != nil {
					t.Fatalf("expected cleared fields, got %+v", u)
				}
				return entities.Certificate{ID: id}, nil
			},
		)

		sum, err := uc.RecomputeShip(context.Background(), "ship-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum.UpdatedCount != 1 {
			t.Fatalf("expected 1 updated, got %d", sum.UpdatedCount)
		}
	})

	t.Run("anniversary cycle for unclassified types", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		m.ships.EXPECT().GetByID(gomock.Any(), "ship-1").Return(entities.Ship{
			ID: "ship-1", AnniversaryDay: 15, AnniversaryMonth: 6, DeliveryDate: "2020-06-15",
		}, nil)
		m.certs.EXPECT().ListByShipID(gomock.Any(), "ship-1").Return([]entities.Certificate{
			{ID: "c-1", CertType: "Statutory", ValidDate: "2025-06-15"},
		}, nil)
		m.certs.EXPECT().UpdateNextSurvey(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u entities.NextSurveyUpdate) (entities.Certificate, error) {
				if u.NextSurveyType != "Special Survey" || u.NextSurvey != "15/06/2025 (-3M)" {
					t.Fatalf("unexpected update: %+v", u)
				}
				return entities.Certificate{ID: id, NextSurveyType: u.NextSurveyType}, nil
			},
		)

		if _, err := uc.RecomputeShip(context.Background(), "ship-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSurveyUseCase_UpcomingSurveys(t *testing.T) {
	t.Run("missing company", func(t *testing.T) {
		uc := NewSurveyUseCase(nil, nil, nil)
		_, err := uc.UpcomingSurveys(context.Background(), "")
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("company without ships", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		m.companies.EXPECT().GetByID(gomock.Any(), "co-1").Return(entities.Company{}, nil)
		m.ships.EXPECT().ListByCompany(gomock.Any(), "co-1").Return(nil, nil)

		res, err := uc.UpcomingSurveys(context.Background(), "co-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Surveys == nil || len(res.Surveys) != 0 {
			t.Fatalf("expected empty non-nil list, got %#v", res.Surveys)
		}
		if res.Company != "co-1" {
			t.Fatalf("expected company co-1, got %s", res.Company)
		}
	})

	t.Run("company lookup error", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		m.companies.EXPECT().GetByID(gomock.Any(), "co-1").Return(entities.Company{}, errors.New("db"))

		if _, err := uc.UpcomingSurveys(context.Background(), "co-1"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("matches ships by id and name", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		m.companies.EXPECT().GetByID(gomock.Any(), "co-1").Return(entities.Company{ID: "co-1", Name: "Blue Line"}, nil)
		m.ships.EXPECT().ListByCompany(gomock.Any(), "co-1").Return([]entities.Ship{{ID: "s-1", Name: "Aurora"}}, nil)
		m.ships.EXPECT().ListByCompany(gomock.Any(), "Blue Line").Return([]entities.Ship{{ID: "s-1", Name: "Aurora"}, {ID: "s-2", Name: "Borealis"}}, nil)

		m.certs.EXPECT().ListByShipID(gomock.Any(), "s-1").Return([]entities.Certificate{
			{ID: "special", ShipID: "s-1", NextSurvey: "10/01/2025", NextSurveyType: "Special Survey"},
			{ID: "annual", ShipID: "s-1", NextSurvey: "10/01/2025", NextSurveyType: "Annual 1"},
		}, nil)
		m.certs.EXPECT().ListByShipID(gomock.Any(), "s-2").Return([]entities.Certificate{
			{ID: "broken", ShipID: "s-2", NextSurveyDisplay: "31/02/2025 (±3M)"},
			{ID: "cond", ShipID: "s-2", NextSurveyType: "Condition Certificate Expiry", IssueDate: "2024-12-01", ValidDate: "2025-01-20"},
			{ID: "untyped", ShipID: "s-2", NextSurvey: "01/03/2025"},
		}, nil)

		res, err := uc.UpcomingSurveys(context.Background(), " co-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Company != "Blue Line" {
			t.Fatalf("expected company name, got %s", res.Company)
		}
		if !res.CheckDate.Equal(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected check date %v", res.CheckDate)
		}
		if len(res.Surveys) != 3 {
			t.Fatalf("expected 3 surveys, got %+v", res.Surveys)
		}
		if res.Surveys[0].CertificateID != "annual" || res.Surveys[1].CertificateID != "cond" || res.Surveys[2].CertificateID != "untyped" {
			t.Fatalf("unexpected order: %s %s %s", res.Surveys[0].CertificateID, res.Surveys[1].CertificateID, res.Surveys[2].CertificateID)
		}
		if res.Surveys[0].ShipName != "Aurora" || res.Surveys[1].ShipName != "Borealis" {
			t.Fatalf("expected ship names to be carried")
		}
		if !res.Surveys[1].IsCritical || !res.Surveys[1].IsConditionCertificate {
			t.Fatalf("expected critical condition certificate, got %+v", res.Surveys[1])
		}
		if res.Skipped != 1 || res.Defaulted != 1 {
			t.Fatalf("expected 1 skipped / 1 defaulted, got %d / %d", res.Skipped, res.Defaulted)
		}
	})

	t.Run("stored schedule without a display date", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		uc.WithClock(fixedClock(2025, time.April, 1))
		next := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
		valid := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

		m.companies.EXPECT().GetByID(gomock.Any(), "co-1").Return(entities.Company{}, nil)
		m.ships.EXPECT().ListByCompany(gomock.Any(), "co-1").Return([]entities.Ship{{ID: "s-1", Name: "Aurora"}}, nil)
		m.certs.EXPECT().ListByShipID(gomock.Any(), "s-1").Return([]entities.Certificate{
			{ID: "annual", ShipID: "s-1", NextSurvey: "01/05/2025 (±3M)", NextSurveyType: "Annual 1"},
			{
				ID: "interim", ShipID: "s-1", CertType: "Interim", ValidDate: "2025-06-15",
				NextSurvey: "see remarks", NextSurveyType: "Initial", NextSurveyDate: &next, WindowAnchor: &valid,
				WindowKind: "fixed_before", WindowMonths: 3,
			},
		}, nil)

		res, err := uc.UpcomingSurveys(context.Background(), "co-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Surveys) != 2 || res.Surveys[0].CertificateID != "interim" {
			t.Fatalf("expected interim first, got %+v", res.Surveys)
		}
		got := res.Surveys[0]
		if !got.SurveyDate.Equal(next) || !got.WindowOpen.Equal(next) || !got.WindowClose.Equal(valid) {
			t.Fatalf("unexpected interim window %+v", got)
		}
		if got.DaysUntilSurvey != -17 {
			t.Fatalf("expected -17 days until survey, got %d", got.DaysUntilSurvey)
		}
	})

	t.Run("certificate listing error propagates", func(t *testing.T) {
		uc, m := newSurveyUseCase(t)
		m.companies.EXPECT().GetByID(gomock.Any(), "co-1").Return(entities.Company{}, nil)
		m.ships.EXPECT().ListByCompany(gomock.Any(), "co-1").Return([]entities.Ship{{ID: "s-1"}}, nil)
		m.certs.EXPECT().ListByShipID(gomock.Any(), "s-1").Return(nil, errors.New("db"))

		if _, err := uc.UpcomingSurveys(context.Background(), "co-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
