package survey

import "strings"

// Category is the survey category of a certificate, derived from its free-text
// cert_type.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryShortTerm
	CategoryInterim
	CategoryFullTerm
	CategoryCondition
)

func (c Category) String() string {
	switch c {
	case CategoryShortTerm:
		return "Short Term"
	case CategoryInterim:
		return "Interim"
	case CategoryFullTerm:
		return "Full Term"
	case CategoryCondition:
		return "Condition"
	default:
		return "Unknown"
	}
}

// Survey type labels written to next_survey_type.
const (
	TypeInitial         = "Initial"
	TypeIntermediate    = "Intermediate"
	TypeRenewal         = "Renewal"
	TypeSpecialSurvey   = "Special Survey"
	TypeConditionExpiry = "Condition Certificate Expiry"
	typeAnnualPrefix    = "Annual"
)

var typeNormalizer = strings.NewReplacer("-", " ", "_", " ")

// fixedDocumentMarkers name documents that are approved once and never surveyed.
var fixedDocumentMarkers = []string{
	"DMLC I",
	"DMLC II",
	"DMLC PART I",
	"DMLC PART II",
	"SSP",
	"SHIP SECURITY PLAN",
}

// ClassifyCertType maps a raw cert_type to its category. Matching is
// case-insensitive and tolerant of "-"/"_" separators.
func ClassifyCertType(certType string) Category {
	t := strings.Join(strings.Fields(typeNormalizer.Replace(strings.ToUpper(certType))), " ")
	switch {
	case t == "":
		return CategoryUnknown
	case strings.Contains(t, "SHORT TERM"):
		return CategoryShortTerm
	case strings.Contains(t, "INTERIM"):
		return CategoryInterim
	case strings.Contains(t, "FULL TERM"):
		return CategoryFullTerm
	case strings.Contains(t, "CONDITION"):
		return CategoryCondition
	default:
		return CategoryUnknown
	}
}

// IsFixedDocument reports whether the certificate name denotes a DMLC part or
// ship security plan.
func IsFixedDocument(certName string) bool {
	name := strings.ToUpper(certName)
	for _, marker := range fixedDocumentMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// IsConditionType reports whether a next_survey_type tag marks a condition
// certificate.
func IsConditionType(surveyType string) bool {
	return strings.EqualFold(strings.TrimSpace(surveyType), TypeConditionExpiry)
}

// IsSpecialSurvey reports whether a survey type or certificate name refers to a
// Special Survey.
func IsSpecialSurvey(values ...string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToUpper(v), "SPECIAL SURVEY") {
			return true
		}
	}
	return false
}
