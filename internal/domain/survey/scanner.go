package survey

import (
	"errors"
	"sort"
	"time"
)

const (
	criticalDays        = 30
	dueSoonMarginDays   = 30
	conditionCritical   = 7
	conditionDueSoonMax = 30
)

var (
	ErrMissingConditionDates = errors.New("condition certificate is missing issue or valid date")
	ErrNoSurveyDate          = errors.New("next survey has no readable date")
)

// maxDate sorts entries without a usable date after everything else.
var maxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// Certificate is the scanner's view of a stored certificate.
type Certificate struct {
	ID       string
	ShipID   string
	ShipName string
	CertName string
	CertType string

	IssueDate string
	ValidDate string

	// NextSurvey is the display string, e.g. "30/10/2025 (±3M)".
	NextSurvey     string
	NextSurveyType string
	// NextSurveyDate is the persisted survey date. Results report and sort by
	// it; it falls back to the window anchor when empty.
	NextSurveyDate string
	// WindowAnchor is the persisted date the window is measured from, used
	// when the display string carries no date.
	WindowAnchor string
	// Window is the persisted structured window, zero when unknown.
	Window Window
}

// UpcomingSurvey is one certificate currently inside its survey window.
type UpcomingSurvey struct {
	CertificateID string
	ShipID        string
	ShipName      string
	CertName      string
	CertType      string

	NextSurvey     string
	NextSurveyType string
	SurveyDate     time.Time
	WindowOpen     time.Time
	WindowClose    time.Time
	WindowType     string

	DaysUntilSurvey      int
	DaysUntilWindowClose int

	IsOverdue  bool
	IsCritical bool
	IsDueSoon  bool

	DefaultWindowApplied   bool
	IsConditionCertificate bool
}

// Skipped records a certificate the scan could not evaluate.
type Skipped struct {
	CertificateID string
	Reason        string
	Err           error
}

// ScanResult holds the in-window certificates, soonest first, plus the ones
// that were skipped because of bad data.
type ScanResult struct {
	Surveys   []UpcomingSurvey
	Skipped   []Skipped
	Defaulted int
}

// Scan evaluates every certificate against today and keeps the ones whose
// window contains today. A bad record never aborts the scan.
func Scan(today time.Time, certs []Certificate) ScanResult {
	today = civil(today)
	var res ScanResult

	for _, c := range certs {
		var (
			s   UpcomingSurvey
			in  bool
			err error
		)
		if isConditionCertificate(c) {
			s, in, err = scanCondition(today, c)
		} else {
			if c.NextSurvey == "" {
				continue
			}
			s, in, err = scanStandard(today, c)
		}
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{CertificateID: c.ID, Reason: err.Error(), Err: err})
			continue
		}
		if !in {
			continue
		}
		if s.DefaultWindowApplied {
			res.Defaulted++
		}
		res.Surveys = append(res.Surveys, s)
	}

	sort.SliceStable(res.Surveys, func(i, j int) bool {
		return sortKey(res.Surveys[i]).Before(sortKey(res.Surveys[j]))
	})
	return res
}

// ResolveWindow picks the window for a standard certificate. An annotation in
// the display string wins over the persisted window, which wins over inference
// from the survey type. defaulted is true when nothing applied and -3M was used.
func ResolveWindow(c Certificate) (w Window, defaulted bool) {
	if w, ok := WindowFromAnnotation(c.NextSurvey); ok {
		return w, false
	}
	if !c.Window.IsZero() && c.Window.Kind != WindowDateRange {
		return c.Window, false
	}
	if IsSpecialSurvey(c.NextSurveyType, c.CertName) {
		return FixedBefore(3), false
	}
	if c.NextSurveyType != "" {
		return SymmetricAround(3), false
	}
	return FixedBefore(3), true
}

// isConditionCertificate trusts the certificate type when it is known; the
// stored survey type and window can be left over from an earlier condition.
func isConditionCertificate(c Certificate) bool {
	switch ClassifyCertType(c.CertType) {
	case CategoryCondition:
		return true
	case CategoryUnknown:
		return IsConditionType(c.NextSurveyType) || c.Window.Kind == WindowDateRange
	default:
		return false
	}
}

func scanCondition(today time.Time, c Certificate) (UpcomingSurvey, bool, error) {
	issue, okIssue, err := ParseDate("issue_date", c.IssueDate)
	if err != nil {
		return UpcomingSurvey{}, false, err
	}
	valid, okValid, err := ParseDate("valid_date", c.ValidDate)
	if err != nil {
		return UpcomingSurvey{}, false, err
	}
	if !okIssue || !okValid {
		return UpcomingSurvey{}, false, ErrMissingConditionDates
	}
	if today.Before(issue) || today.After(valid) {
		return UpcomingSurvey{}, false, nil
	}

	days := DaysBetween(today, valid)
	s := newUpcoming(c, valid, issue, valid, IssueToValid().Label())
	s.DaysUntilSurvey = days
	s.DaysUntilWindowClose = days
	s.IsOverdue = today.After(valid)
	s.IsCritical = days <= conditionCritical
	s.IsDueSoon = days <= conditionDueSoonMax
	s.IsConditionCertificate = true
	if s.NextSurvey == "" {
		s.NextSurvey = FormatDisplay(valid)
	}
	if s.NextSurveyType == "" {
		s.NextSurveyType = TypeConditionExpiry
	}
	return s, true, nil
}

func scanStandard(today time.Time, c Certificate) (UpcomingSurvey, bool, error) {
	anchor, err := windowAnchor(c)
	if err != nil {
		return UpcomingSurvey{}, false, err
	}
	surveyDate, found, err := ParseDate("next_survey_date", c.NextSurveyDate)
	if err != nil {
		return UpcomingSurvey{}, false, err
	}
	if !found {
		surveyDate = anchor
	}

	w, defaulted := ResolveWindow(c)
	open, closeDate := w.Bounds(anchor)
	if today.Before(open) || today.After(closeDate) {
		return UpcomingSurvey{}, false, nil
	}

	toClose := DaysBetween(today, closeDate)
	s := newUpcoming(c, surveyDate, open, closeDate, w.Label())
	s.DaysUntilSurvey = DaysBetween(today, surveyDate)
	s.DaysUntilWindowClose = toClose
	s.IsOverdue = today.After(closeDate)
	s.IsCritical = toClose >= 0 && toClose <= criticalDays
	s.IsDueSoon = open.Before(today) && today.Before(closeDate.AddDate(0, 0, -dueSoonMarginDays))
	s.DefaultWindowApplied = defaulted
	return s, true, nil
}

// windowAnchor reads the date the window is measured from: the display date,
// then the stored anchor, then the stored survey date for records written
// before anchors were kept.
func windowAnchor(c Certificate) (time.Time, error) {
	if anchor, found, err := DateFromDisplay(c.NextSurvey); err != nil || found {
		return anchor, err
	}
	if anchor, found, err := ParseDate("window_anchor", c.WindowAnchor); err != nil || found {
		return anchor, err
	}
	if anchor, found, err := ParseDate("next_survey_date", c.NextSurveyDate); err != nil || found {
		return anchor, err
	}
	return time.Time{}, ErrNoSurveyDate
}

func newUpcoming(c Certificate, surveyDate, open, closeDate time.Time, label string) UpcomingSurvey {
	return UpcomingSurvey{
		CertificateID:  c.ID,
		ShipID:         c.ShipID,
		ShipName:       c.ShipName,
		CertName:       c.CertName,
		CertType:       c.CertType,
		NextSurvey:     c.NextSurvey,
		NextSurveyType: c.NextSurveyType,
		SurveyDate:     surveyDate,
		WindowOpen:     open,
		WindowClose:    closeDate,
		WindowType:     label,
	}
}

func sortKey(s UpcomingSurvey) time.Time {
	if s.SurveyDate.IsZero() {
		return maxDate
	}
	return s.SurveyDate
}
