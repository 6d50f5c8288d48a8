package request

import (
	"fleet_survey/internal/domain/entities"
	"strings"
)

// CertificateRequest is the payload for creating or replacing a certificate.
// Dates are accepted as entered (YYYY-MM-DD, RFC3339 or DD/MM/YYYY).
type CertificateRequest struct {
	ShipID      string `json:"ship_id"`
	CertName    string `json:"cert_name" binding:"required"`
	CertType    string `json:"cert_type"`
	CertNo      string `json:"cert_no"`
	IssuedBy    string `json:"issued_by"`
	IssueDate   string `json:"issue_date"`
	ValidDate   string `json:"valid_date"`
	LastEndorse string `json:"last_endorse"`
}

func (r CertificateRequest) ToEntity() entities.Certificate {
	return entities.Certificate{
		ShipID:      strings.TrimSpace(r.ShipID),
		CertName:    strings.TrimSpace(r.CertName),
		CertType:    strings.TrimSpace(r.CertType),
		CertNo:      strings.TrimSpace(r.CertNo),
		IssuedBy:    strings.TrimSpace(r.IssuedBy),
		IssueDate:   strings.TrimSpace(r.IssueDate),
		ValidDate:   strings.TrimSpace(r.ValidDate),
		LastEndorse: strings.TrimSpace(r.LastEndorse),
	}
}
