package survey

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DisplayLayout is the day-first layout used in next_survey display strings.
const DisplayLayout = "02/01/2006"

// ISOLayout is the layout used for persisted and API dates.
const ISOLayout = "2006-01-02"

var acceptedLayouts = []string{
	ISOLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DisplayLayout,
}

var (
	displayDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	isoDatePattern     = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
)

// ParseError reports a stored date string that could not be parsed.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("parse %s %q", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseDate parses a stored date into a UTC civil date.
//
// A blank value is not an error: ok is false and the caller decides whether
// the absence matters.
func ParseDate(field, raw string) (date time.Time, ok bool, err error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false, nil
	}

	var lastErr error
	for _, layout := range acceptedLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return civil(t), true, nil
		}
		lastErr = err
	}
	return time.Time{}, false, &ParseError{Field: field, Value: raw, Err: lastErr}
}

// DateFromDisplay extracts the first date embedded in a display string such as
// "30/10/2025 (±3M)". found is false when the string carries no date at all.
func DateFromDisplay(display string) (date time.Time, found bool, err error) {
	if m := displayDatePattern.FindString(display); m != "" {
		t, err := time.Parse("2/1/2006", m)
		if err != nil {
			return time.Time{}, false, &ParseError{Field: "next_survey", Value: display, Err: err}
		}
		return civil(t), true, nil
	}
	if m := isoDatePattern.FindString(display); m != "" {
		t, err := time.Parse(ISOLayout, m)
		if err != nil {
			return time.Time{}, false, &ParseError{Field: "next_survey", Value: display, Err: err}
		}
		return civil(t), true, nil
	}
	return time.Time{}, false, nil
}

// Today truncates an instant to its UTC civil date.
func Today(now time.Time) time.Time {
	return civil(now.UTC())
}

// AddMonths shifts a date by calendar months, clamping the day to the last day
// of the target month (31 Jan - 3 months is 31 Oct, 31 May - 3 months is 28/29 Feb).
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole days from a to b (negative when b is earlier).
func DaysBetween(a, b time.Time) int {
	return int(civil(b).Sub(civil(a)).Hours() / 24)
}

// FormatDisplay renders a date the way next_survey strings show it.
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
