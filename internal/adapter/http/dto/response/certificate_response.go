package response

import (
	"fleet_survey/internal/domain/entities"
	"fleet_survey/internal/domain/survey"
	"time"
)

type CertificateResponse struct {
	ID                string     `json:"id"`
	ShipID            string     `json:"ship_id"`
	CertName          string     `json:"cert_name"`
	CertType          string     `json:"cert_type"`
	CertNo            string     `json:"cert_no"`
	IssuedBy          string     `json:"issued_by"`
	IssueDate         string     `json:"issue_date"`
	ValidDate         string     `json:"valid_date"`
	LastEndorse       string     `json:"last_endorse"`
	NextSurvey        string     `json:"next_survey"`
	NextSurveyDisplay string     `json:"next_survey_display"`
	NextSurveyType    string     `json:"next_survey_type"`
	NextSurveyDate    *time.Time `json:"next_survey_date"`
	WindowType        string     `json:"window_type"`
	WindowMonths      int        `json:"window_months"`
	WindowAnchor      *time.Time `json:"window_anchor"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromCertificate(c entities.Certificate) CertificateResponse {
	display := c.NextSurveyDisplay
	if display == "" {
		display = c.NextSurvey
	}
	return CertificateResponse{
		ID:                c.ID,
		ShipID:            c.ShipID,
		CertName:          c.CertName,
		CertType:          c.CertType,
		CertNo:            c.CertNo,
		IssuedBy:          c.IssuedBy,
		IssueDate:         c.IssueDate,
		ValidDate:         c.ValidDate,
		LastEndorse:       c.LastEndorse,
		NextSurvey:        c.NextSurvey,
		NextSurveyDisplay: display,
		NextSurveyType:    c.NextSurveyType,
		NextSurveyDate:    c.NextSurveyDate,
		WindowType:        survey.ParseWindowKind(c.WindowKind, c.WindowMonths).Label(),
		WindowMonths:      c.WindowMonths,
		WindowAnchor:      c.WindowAnchor,
		Status:            string(c.Status),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func FromCertificates(list []entities.Certificate) []CertificateResponse {
	out := make([]CertificateResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCertificate(c))
	}
	return out
}
