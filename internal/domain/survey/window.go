package survey

import (
	"fmt"
	"strings"
	"time"
)

// WindowKind tags the shape of a survey window.
type WindowKind string

const (
	WindowNone        WindowKind = ""
	WindowFixedBefore WindowKind = "fixed_before"
	WindowSymmetric   WindowKind = "symmetric"
	WindowDateRange   WindowKind = "date_range"
)

// Window describes when a survey may be carried out relative to its anchor
// date. DateRange windows ignore Months and span issue_date..valid_date.
type Window struct {
	Kind   WindowKind
	Months int
}

func FixedBefore(months int) Window {
	return Window{Kind: WindowFixedBefore, Months: months}
}

func SymmetricAround(months int) Window {
	return Window{Kind: WindowSymmetric, Months: months}
}

func IssueToValid() Window {
	return Window{Kind: WindowDateRange}
}

// ParseWindowKind restores a persisted window; unknown kinds yield the zero Window.
func ParseWindowKind(kind string, months int) Window {
	switch WindowKind(kind) {
	case WindowFixedBefore, WindowSymmetric:
		if months <= 0 {
			return Window{}
		}
		return Window{Kind: WindowKind(kind), Months: months}
	case WindowDateRange:
		return IssueToValid()
	default:
		return Window{}
	}
}

func (w Window) IsZero() bool {
	return w.Kind == WindowNone
}

// Label renders the window the way display strings and API responses show it.
func (w Window) Label() string {
	switch w.Kind {
	case WindowFixedBefore:
		return fmt.Sprintf("-%dM", w.Months)
	case WindowSymmetric:
		return fmt.Sprintf("±%dM", w.Months)
	case WindowDateRange:
		return "Issue→Valid"
	default:
		return ""
	}
}

// Bounds returns the open and close dates around anchor. DateRange windows have
// no anchor-relative bounds; use issue/valid dates instead.
func (w Window) Bounds(anchor time.Time) (open, close time.Time) {
	switch w.Kind {
	case WindowFixedBefore:
		return AddMonths(anchor, -w.Months), anchor
	case WindowSymmetric:
		return AddMonths(anchor, -w.Months), AddMonths(anchor, w.Months)
	default:
		return anchor, anchor
	}
}

// WindowFromAnnotation reads an explicit window marker from a display string.
// Order matters: "+-3M" also contains "-3M".
func WindowFromAnnotation(display string) (Window, bool) {
	s := strings.ReplaceAll(display, " ", "")
	switch {
	case strings.Contains(s, "±6M"), strings.Contains(s, "+-6M"):
		return SymmetricAround(6), true
	case strings.Contains(s, "±3M"), strings.Contains(s, "+-3M"), strings.Contains(s, "+3M"):
		return SymmetricAround(3), true
	case strings.Contains(s, "-3M"):
		return FixedBefore(3), true
	default:
		return Window{}, false
	}
}
