package survey

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_ConditionCertificate(t *testing.T) {
	cert := Certificate{
		ID:             "c-1",
		CertName:       "Condition of Class",
		CertType:       "Condition",
		IssueDate:      "2024-12-01",
		ValidDate:      "2025-06-01",
		NextSurveyType: TypeConditionExpiry,
	}

	res := Scan(date(2025, time.May, 20), []Certificate{cert})
	require.Len(t, res.Surveys, 1)
	s := res.Surveys[0]
	assert.True(t, s.IsConditionCertificate)
	assert.True(t, s.IsDueSoon)
	assert.False(t, s.IsOverdue)
	assert.False(t, s.IsCritical)
	assert.Equal(t, 12, s.DaysUntilSurvey)
	assert.Equal(t, "Issue→Valid", s.WindowType)
	assert.Equal(t, date(2024, time.December, 1), s.WindowOpen)
	assert.Equal(t, date(2025, time.June, 1), s.WindowClose)
	assert.Equal(t, "01/06/2025", s.NextSurvey)

	res = Scan(date(2025, time.May, 28), []Certificate{cert})
	require.Len(t, res.Surveys, 1)
	assert.True(t, res.Surveys[0].IsCritical)

	res = Scan(date(2025, time.June, 2), []Certificate{cert})
	assert.Empty(t, res.Surveys)

	res = Scan(date(2024, time.November, 30), []Certificate{cert})
	assert.Empty(t, res.Surveys)
}

func TestScan_ConditionMissingDatesSkipped(t *testing.T) {
	res := Scan(date(2025, time.May, 20), []Certificate{
		{ID: "c-1", NextSurveyType: TypeConditionExpiry, ValidDate: "2025-06-01"},
	})
	assert.Empty(t, res.Surveys)
	require.Len(t, res.Skipped, 1)
	assert.True(t, errors.Is(res.Skipped[0].Err, ErrMissingConditionDates))
}

func TestScan_SpecialSurveyHasNoGrace(t *testing.T) {
	certs := []Certificate{
		{ID: "special", NextSurvey: "10/01/2025", NextSurveyType: TypeSpecialSurvey},
		{ID: "annual", NextSurvey: "10/01/2025", NextSurveyType: "Annual 1"},
	}

	res := Scan(date(2025, time.January, 15), certs)
	require.Len(t, res.Surveys, 1)
	assert.Equal(t, "annual", res.Surveys[0].CertificateID)
	assert.Equal(t, "±3M", res.Surveys[0].WindowType)

	res = Scan(date(2025, time.April, 10), certs)
	require.Len(t, res.Surveys, 1)
	assert.Equal(t, "annual", res.Surveys[0].CertificateID)

	res = Scan(date(2025, time.April, 11), certs)
	assert.Empty(t, res.Surveys)
}

func TestScan_SpecialSurveyInferredFromName(t *testing.T) {
	w, defaulted := ResolveWindow(Certificate{CertName: "Hull Special Survey", NextSurvey: "10/01/2025", NextSurveyType: "Class"})
	assert.Equal(t, FixedBefore(3), w)
	assert.False(t, defaulted)
}

func TestResolveWindow_Precedence(t *testing.T) {
	cases := []struct {
		name      string
		cert      Certificate
		want      Window
		defaulted bool
	}{
		{"annotation beats persisted window", Certificate{NextSurvey: "01/07/2025 (±6M)", Window: FixedBefore(3)}, SymmetricAround(6), false},
		{"ascii plus minus six", Certificate{NextSurvey: "01/07/2025 (+-6M)"}, SymmetricAround(6), false},
		{"ascii plus minus three", Certificate{NextSurvey: "01/07/2025 (+-3M)"}, SymmetricAround(3), false},
		{"plus three", Certificate{NextSurvey: "01/07/2025 (+3M)"}, SymmetricAround(3), false},
		{"minus three annotation beats type inference", Certificate{NextSurvey: "01/07/2025 (-3M)", NextSurveyType: "Annual 2"}, FixedBefore(3), false},
		{"persisted window beats type inference", Certificate{NextSurvey: "01/07/2025", NextSurveyType: TypeSpecialSurvey, Window: SymmetricAround(6)}, SymmetricAround(6), false},
		{"special survey type", Certificate{NextSurvey: "01/07/2025", NextSurveyType: TypeSpecialSurvey}, FixedBefore(3), false},
		{"other type", Certificate{NextSurvey: "01/07/2025", NextSurveyType: "Renewal"}, SymmetricAround(3), false},
		{"nothing to go on", Certificate{NextSurvey: "01/07/2025"}, FixedBefore(3), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, defaulted := ResolveWindow(tc.cert)
			assert.Equal(t, tc.want, w)
			assert.Equal(t, tc.defaulted, defaulted)
		})
	}
}

func TestScan_DefaultWindowFlagged(t *testing.T) {
	res := Scan(date(2025, time.June, 15), []Certificate{{ID: "x", NextSurvey: "01/07/2025"}})
	require.Len(t, res.Surveys, 1)
	assert.True(t, res.Surveys[0].DefaultWindowApplied)
	assert.Equal(t, "-3M", res.Surveys[0].WindowType)
	assert.Equal(t, 1, res.Defaulted)
}

func TestScan_StatusFlags(t *testing.T) {
	// ±3M around 15/06/2025: open 15/03, close 15/09.
	cert := Certificate{ID: "a", NextSurvey: "15/06/2025 (±3M)", NextSurveyType: "Annual 1"}

	res := Scan(date(2025, time.June, 1), []Certificate{cert})
	require.Len(t, res.Surveys, 1)
	s := res.Surveys[0]
	assert.True(t, s.IsDueSoon)
	assert.False(t, s.IsCritical)
	assert.False(t, s.IsOverdue)
	assert.Equal(t, 14, s.DaysUntilSurvey)
	assert.Equal(t, 106, s.DaysUntilWindowClose)

	res = Scan(date(2025, time.August, 20), []Certificate{cert})
	require.Len(t, res.Surveys, 1)
	s = res.Surveys[0]
	assert.True(t, s.IsCritical)
	assert.False(t, s.IsDueSoon)
	assert.Equal(t, -66, s.DaysUntilSurvey)

	// The first day of the window is inside it but not yet "due soon".
	res = Scan(date(2025, time.March, 15), []Certificate{cert})
	require.Len(t, res.Surveys, 1)
	assert.False(t, res.Surveys[0].IsDueSoon)
}

func TestScan_InclusionLaw(t *testing.T) {
	certs := []Certificate{
		{ID: "sym3", NextSurvey: "15/06/2025", NextSurveyType: "Annual 1"},
		{ID: "sym6", NextSurvey: "15/06/2025 (±6M)", NextSurveyType: TypeIntermediate},
		{ID: "fixed", NextSurvey: "15/06/2025 (-3M)", NextSurveyType: TypeRenewal},
		{ID: "cond", NextSurveyType: TypeConditionExpiry, IssueDate: "2025-01-01", ValidDate: "2025-06-15"},
	}
	bounds := map[string][2]time.Time{
		"sym3":  {date(2025, time.March, 15), date(2025, time.September, 15)},
		"sym6":  {date(2024, time.December, 15), date(2025, time.December, 15)},
		"fixed": {date(2025, time.March, 15), date(2025, time.June, 15)},
		"cond":  {date(2025, time.January, 1), date(2025, time.June, 15)},
	}

	for day := date(2024, time.November, 1); day.Before(date(2026, time.February, 1)); day = day.AddDate(0, 0, 1) {
		res := Scan(day, certs)
		got := map[string]bool{}
		for _, s := range res.Surveys {
			got[s.CertificateID] = true
			assert.False(t, s.IsOverdue)
		}
		for id, b := range bounds {
			want := !day.Before(b[0]) && !day.After(b[1])
			assert.Equal(t, want, got[id], "%s on %s", id, day.Format(ISOLayout))
		}
	}
}

func TestScan_SortsSoonestFirst(t *testing.T) {
	res := Scan(date(2025, time.June, 1), []Certificate{
		{ID: "late", NextSurvey: "01/08/2025 (±3M)"},
		{ID: "early", NextSurvey: "01/05/2025 (±3M)"},
		{ID: "cond", NextSurveyType: TypeConditionExpiry, IssueDate: "2025-01-01", ValidDate: "2025-06-10"},
	})
	require.Len(t, res.Surveys, 3)
	assert.Equal(t, "early", res.Surveys[0].CertificateID)
	assert.Equal(t, "cond", res.Surveys[1].CertificateID)
	assert.Equal(t, "late", res.Surveys[2].CertificateID)
}

func TestScan_BadRecordsDoNotAbort(t *testing.T) {
	res := Scan(date(2025, time.June, 1), []Certificate{
		{ID: "bad-date", NextSurvey: "32/13/2025 (±3M)"},
		{ID: "no-date", NextSurvey: "pending"},
		{ID: "blank"},
		{ID: "good", NextSurvey: "15/06/2025 (±3M)"},
	})
	require.Len(t, res.Surveys, 1)
	assert.Equal(t, "good", res.Surveys[0].CertificateID)
	require.Len(t, res.Skipped, 2)

	var perr *ParseError
	assert.True(t, errors.As(res.Skipped[0].Err, &perr))
	assert.Equal(t, "bad-date", res.Skipped[0].CertificateID)
	assert.True(t, errors.Is(res.Skipped[1].Err, ErrNoSurveyDate))
}

func TestScan_FallsBackToStoredDate(t *testing.T) {
	res := Scan(date(2025, time.June, 1), []Certificate{
		{ID: "a", NextSurvey: "see remarks", NextSurveyDate: "2025-06-15T00:00:00Z", Window: SymmetricAround(3)},
	})
	require.Len(t, res.Surveys, 1)
	assert.Equal(t, date(2025, time.June, 15), res.Surveys[0].SurveyDate)
}

func TestScan_CalculatorOutputRoundTrip(t *testing.T) {
	sched, err := Calculate(Input{CertType: "Interim", ValidDate: "2025-06-15"})
	require.NoError(t, err)

	res := Scan(date(2025, time.April, 1), []Certificate{{
		ID:             "a",
		NextSurvey:     sched.Display,
		NextSurveyType: sched.NextSurveyType,
		NextSurveyDate: sched.NextSurveyDate.Format(ISOLayout),
		Window:         sched.Window,
	}})
	require.Len(t, res.Surveys, 1)
	assert.Equal(t, date(2025, time.March, 15), res.Surveys[0].WindowOpen)
	assert.Equal(t, date(2025, time.June, 15), res.Surveys[0].WindowClose)
	assert.Equal(t, "-3M", res.Surveys[0].WindowType)
}

func TestScan_DatelessDisplayUsesStoredAnchor(t *testing.T) {
	sched, err := Calculate(Input{CertType: "Interim", ValidDate: "2025-06-15"})
	require.NoError(t, err)

	cert := Certificate{
		ID:             "a",
		NextSurvey:     "see remarks",
		NextSurveyType: sched.NextSurveyType,
		NextSurveyDate: sched.NextSurveyDate.Format(ISOLayout),
		WindowAnchor:   sched.Anchor.Format(ISOLayout),
		Window:         sched.Window,
	}

	res := Scan(date(2025, time.May, 1), []Certificate{cert})
	require.Len(t, res.Surveys, 1)
	s := res.Surveys[0]
	assert.Equal(t, date(2025, time.March, 15), s.WindowOpen)
	assert.Equal(t, date(2025, time.June, 15), s.WindowClose)
	assert.Equal(t, date(2025, time.March, 15), s.SurveyDate)

	withDisplay := cert
	withDisplay.NextSurvey = sched.Display
	res = Scan(date(2025, time.May, 1), []Certificate{withDisplay})
	require.Len(t, res.Surveys, 1)
	assert.Equal(t, s.WindowOpen, res.Surveys[0].WindowOpen)
	assert.Equal(t, s.WindowClose, res.Surveys[0].WindowClose)
}

func TestScan_ReportsAndSortsByNextSurveyDate(t *testing.T) {
	interim, err := Calculate(Input{CertType: "Interim", ValidDate: "2025-06-15"})
	require.NoError(t, err)

	res := Scan(date(2025, time.April, 1), []Certificate{
		{ID: "annual", NextSurvey: "01/05/2025 (±3M)", NextSurveyType: "Annual 1", NextSurveyDate: "2025-05-01"},
		{
			ID:             "interim",
			NextSurvey:     interim.Display,
			NextSurveyType: interim.NextSurveyType,
			NextSurveyDate: interim.NextSurveyDate.Format(ISOLayout),
			WindowAnchor:   interim.Anchor.Format(ISOLayout),
			Window:         interim.Window,
		},
	})
	require.Len(t, res.Surveys, 2)
	assert.Equal(t, "interim", res.Surveys[0].CertificateID)
	assert.Equal(t, date(2025, time.March, 15), res.Surveys[0].SurveyDate)
	assert.Equal(t, -17, res.Surveys[0].DaysUntilSurvey)
	assert.Equal(t, 75, res.Surveys[0].DaysUntilWindowClose)
	assert.Equal(t, "annual", res.Surveys[1].CertificateID)
	assert.Equal(t, date(2025, time.May, 1), res.Surveys[1].SurveyDate)
}

func TestScan_StaleConditionTagOnKnownType(t *testing.T) {
	res := Scan(date(2025, time.August, 1), []Certificate{{
		ID:             "ft",
		CertType:       "Full Term",
		IssueDate:      "2023-03-19",
		ValidDate:      "2028-03-18",
		NextSurvey:     "18/09/2025 (±6M)",
		NextSurveyType: TypeConditionExpiry,
		Window:         IssueToValid(),
	}})
	require.Len(t, res.Surveys, 1)
	s := res.Surveys[0]
	assert.False(t, s.IsConditionCertificate)
	assert.Equal(t, "±6M", s.WindowType)
	assert.Equal(t, date(2025, time.September, 18), s.SurveyDate)

	res = Scan(date(2025, time.August, 1), []Certificate{{
		ID:             "untyped",
		IssueDate:      "2025-01-01",
		ValidDate:      "2025-09-01",
		NextSurveyType: TypeConditionExpiry,
	}})
	require.Len(t, res.Surveys, 1)
	assert.True(t, res.Surveys[0].IsConditionCertificate)
}
