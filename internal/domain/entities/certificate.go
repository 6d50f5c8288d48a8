package entities

import "time"

// CertificateStatus is the validity state shown in certificate listings.
type CertificateStatus string

const (
	CertificateStatusValid   CertificateStatus = "valid"
	CertificateStatusExpired CertificateStatus = "expired"
	CertificateStatusUnknown CertificateStatus = "unknown"
)

// Certificate is a ship certificate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (ship_id-index): ship_id
//
// Date fields are kept as the strings they were entered with; the survey
// calculator parses them on demand so a bad value only affects its own record.
//
// NextSurvey / NextSurveyDisplay carry the same display string
// ("15/06/2025 (-3M)"); both names are written for older clients.
// WindowAnchor is the date the window bounds are measured from. It differs
// from NextSurveyDate for -3M schedules anchored on the expiry date.
type Certificate struct {
	ID       string `json:"id"`
	ShipID   string `json:"ship_id"`
	CertName string `json:"cert_name"`
	CertType string `json:"cert_type"`
	CertNo   string `json:"cert_no"`
	IssuedBy string `json:"issued_by"`

	IssueDate   string `json:"issue_date"`
	ValidDate   string `json:"valid_date"`
	LastEndorse string `json:"last_endorse"`

	NextSurvey        string     `json:"next_survey"`
	NextSurveyDisplay string     `json:"next_survey_display"`
	NextSurveyType    string     `json:"next_survey_type"`
	NextSurveyDate    *time.Time `json:"next_survey_date"`
	WindowKind        string     `json:"window_kind"`
	WindowMonths      int        `json:"window_months"`
	WindowAnchor      *time.Time `json:"window_anchor"`

	Status    CertificateStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NextSurveyUpdate is the set of fields the survey calculator writes back.
// A nil NextSurveyDate clears the survey fields.
type NextSurveyUpdate struct {
	NextSurvey     string
	NextSurveyType string
	NextSurveyDate *time.Time
	WindowKind     string
	WindowMonths   int
	WindowAnchor   *time.Time
	UpdatedAt      time.Time
}
