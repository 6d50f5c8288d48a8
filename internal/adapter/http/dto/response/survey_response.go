package response

import (
	"fleet_survey/internal/domain/survey"
	"fleet_survey/internal/usecase"
	"fmt"
	"time"
)

type RecomputeItemResponse struct {
	CertificateID     string     `json:"certificate_id"`
	CertName          string     `json:"cert_name"`
	CertType          string     `json:"cert_type"`
	OldNextSurvey     string     `json:"old_next_survey"`
	NewNextSurvey     string     `json:"new_next_survey"`
	OldNextSurveyType string     `json:"old_next_survey_type"`
	NewNextSurveyType string     `json:"new_next_survey_type"`
	OldNextSurveyDate *time.Time `json:"old_next_survey_date"`
	NewNextSurveyDate *time.Time `json:"new_next_survey_date"`
	Updated           bool       `json:"updated"`
	Reasoning         string     `json:"reasoning,omitempty"`
	Error             string     `json:"error,omitempty"`
}

type RecomputeResponse struct {
	Success           bool                    `json:"success"`
	Message           string                  `json:"message"`
	ShipID            string                  `json:"ship_id"`
	ShipName          string                  `json:"ship_name"`
	TotalCertificates int                     `json:"total_certificates"`
	UpdatedCount      int                     `json:"updated_count"`
	ErrorCount        int                     `json:"error_count"`
	Results           []RecomputeItemResponse `json:"results"`
}

func FromRecomputeSummary(s usecase.RecomputeSummary) RecomputeResponse {
	items := make([]RecomputeItemResponse, 0, len(s.Results))
	for _, r := range s.Results {
		items = append(items, RecomputeItemResponse{
			CertificateID:     r.CertificateID,
			CertName:          r.CertName,
			CertType:          r.CertType,
			OldNextSurvey:     r.Before.NextSurvey,
			NewNextSurvey:     r.After.NextSurvey,
			OldNextSurveyType: r.Before.NextSurveyType,
			NewNextSurveyType: r.After.NextSurveyType,
			OldNextSurveyDate: r.Before.NextSurveyDate,
			NewNextSurveyDate: r.After.NextSurveyDate,
			Updated:           r.Updated,
			Reasoning:         r.Reasoning,
			Error:             r.Error,
		})
	}
	return RecomputeResponse{
		Success:           true,
		Message:           fmt.Sprintf("Updated next survey for %d of %d certificates", s.UpdatedCount, s.TotalCertificates),
		ShipID:            s.ShipID,
		ShipName:          s.ShipName,
		TotalCertificates: s.TotalCertificates,
		UpdatedCount:      s.UpdatedCount,
		ErrorCount:        s.ErrorCount,
		Results:           items,
	}
}

type UpcomingSurveyResponse struct {
	CertificateID          string `json:"certificate_id"`
	ShipID                 string `json:"ship_id"`
	ShipName               string `json:"ship_name"`
	CertName               string `json:"cert_name"`
	CertType               string `json:"cert_type"`
	NextSurvey             string `json:"next_survey"`
	NextSurveyType         string `json:"next_survey_type"`
	NextSurveyDate         string `json:"next_survey_date"`
	WindowOpen             string `json:"window_open"`
	WindowClose            string `json:"window_close"`
	WindowType             string `json:"window_type"`
	DaysUntilSurvey        int    `json:"days_until_survey"`
	DaysUntilWindowClose   int    `json:"days_until_window_close"`
	IsOverdue              bool   `json:"is_overdue"`
	IsCritical             bool   `json:"is_critical"`
	IsDueSoon              bool   `json:"is_due_soon"`
	IsConditionCertificate bool   `json:"is_condition_certificate"`
	DefaultWindowApplied   bool   `json:"default_window_applied"`
}

type WindowRules struct {
	ConditionCertificate string `json:"condition_certificate"`
	SpecialSurvey        string `json:"special_survey"`
	OtherSurveys         string `json:"other_surveys"`
}

type LogicInfo struct {
	WindowRules       WindowRules `json:"window_rules"`
	WindowCalculation string      `json:"window_calculation"`
}

type UpcomingSurveysResponse struct {
	UpcomingSurveys []UpcomingSurveyResponse `json:"upcoming_surveys"`
	TotalCount      int                      `json:"total_count"`
	Company         string                   `json:"company"`
	CheckDate       string                   `json:"check_date"`
	Days            int                      `json:"days"`
	SkippedCount    int                      `json:"skipped_count"`
	LogicInfo       LogicInfo                `json:"logic_info"`
}

// upcomingLogicInfo documents the window rules for clients; it is the same on
// every response.
var upcomingLogicInfo = LogicInfo{
	WindowRules: WindowRules{
		ConditionCertificate: "Issue date → Valid date (window opens at issue, closes at expiry)",
		SpecialSurvey:        "-3M (window opens 3 months before the survey date and closes on it)",
		OtherSurveys:         "±3M (window opens 3 months before and closes 3 months after the survey date)",
	},
	WindowCalculation: "A certificate is listed when window_open ≤ today ≤ window_close. Annotations in next_survey (±6M, ±3M, -3M) override the type rule; without annotation or type, -3M is applied and flagged.",
}

func FromUpcomingSurveys(r usecase.UpcomingSurveysResult, days int) UpcomingSurveysResponse {
	items := make([]UpcomingSurveyResponse, 0, len(r.Surveys))
	for _, s := range r.Surveys {
		items = append(items, UpcomingSurveyResponse{
			CertificateID:          s.CertificateID,
			ShipID:                 s.ShipID,
			ShipName:               s.ShipName,
			CertName:               s.CertName,
			CertType:               s.CertType,
			NextSurvey:             s.NextSurvey,
			NextSurveyType:         s.NextSurveyType,
			NextSurveyDate:         s.SurveyDate.Format(survey.ISOLayout),
			WindowOpen:             s.WindowOpen.Format(survey.ISOLayout),
			WindowClose:            s.WindowClose.Format(survey.ISOLayout),
			WindowType:             s.WindowType,
			DaysUntilSurvey:        s.DaysUntilSurvey,
			DaysUntilWindowClose:   s.DaysUntilWindowClose,
			IsOverdue:              s.IsOverdue,
			IsCritical:             s.IsCritical,
			IsDueSoon:              s.IsDueSoon,
			IsConditionCertificate: s.IsConditionCertificate,
			DefaultWindowApplied:   s.DefaultWindowApplied,
		})
	}
	return UpcomingSurveysResponse{
		UpcomingSurveys: items,
		TotalCount:      len(items),
		Company:         r.Company,
		CheckDate:       r.CheckDate.Format(survey.ISOLayout),
		Days:            days,
		SkippedCount:    r.Skipped,
		LogicInfo:       upcomingLogicInfo,
	}
}
