// Package survey holds the certificate survey scheduling rules: the calculator
// that derives next_survey fields for a single certificate and the scanner that
// classifies a fleet's certificates into survey windows for a given day.
//
// Both are pure functions of their inputs. "Today" is always an argument.
package survey

import (
	"fmt"
	"time"
)

const (
	reasonNoValidDate      = "No valid date available"
	reasonFixedDocument    = "Next Survey not required for DMLC / Ship Security Plan documents"
	reasonShortTerm        = "Short Term certificates do not require a survey"
	reasonConditionNoIssue = "No issue date available for condition certificate"
)

// Input is the subset of a certificate record the calculator reads.
type Input struct {
	CertName       string
	CertType       string
	IssueDate      string
	ValidDate      string
	LastEndorse    string
	NextSurveyType string

	// Cycle is the owning ship's anniversary cycle, nil when the ship has no
	// anniversary data.
	Cycle *ShipCycle
	// AsOf is the reference day for the anniversary branch.
	AsOf time.Time
}

// Schedule is the calculator result. A nil NextSurveyDate means no survey is
// scheduled and Reasoning says why.
type Schedule struct {
	NextSurveyDate *time.Time
	NextSurveyType string
	Window         Window
	// Anchor is the date printed in Display; window bounds are relative to it.
	Anchor    *time.Time
	Display   string
	Reasoning string
}

// Determined reports whether a survey date was produced.
func (s Schedule) Determined() bool {
	return s.NextSurveyDate != nil
}

// WindowMonths returns the window width in months (0 for date-range windows).
func (s Schedule) WindowMonths() int {
	return s.Window.Months
}

func indeterminate(reason string) Schedule {
	return Schedule{Reasoning: reason}
}

// Calculate applies the survey rules in order, first match wins:
//
//  1. no valid_date -> indeterminate
//  2. DMLC / SSP documents -> indeterminate
//  3. Short Term -> indeterminate
//  4. condition certificates -> issue..valid window
//  5. Interim -> Initial at valid-3M
//  6. Full Term -> Renewal at valid-3M when endorsed, else Intermediate at valid-30M
//  7. anything else -> ship anniversary cycle when known, else indeterminate
//
// Only unparseable dates return an error (*ParseError).
func Calculate(in Input) (Schedule, error) {
	valid, ok, err := ParseDate("valid_date", in.ValidDate)
	if err != nil {
		return Schedule{}, err
	}
	if !ok {
		return indeterminate(reasonNoValidDate), nil
	}

	if IsFixedDocument(in.CertName) {
		return indeterminate(reasonFixedDocument), nil
	}

	category := ClassifyCertType(in.CertType)
	if category == CategoryUnknown && IsConditionType(in.NextSurveyType) {
		category = CategoryCondition
	}

	switch category {
	case CategoryShortTerm:
		return indeterminate(reasonShortTerm), nil

	case CategoryCondition:
		issue, ok, err := ParseDate("issue_date", in.IssueDate)
		if err != nil {
			return Schedule{}, err
		}
		if !ok {
			return indeterminate(reasonConditionNoIssue), nil
		}
		return Schedule{
			NextSurveyDate: &valid,
			NextSurveyType: TypeConditionExpiry,
			Window:         IssueToValid(),
			Anchor:         &valid,
			Display:        FormatDisplay(valid),
			Reasoning:      fmt.Sprintf("Condition certificate valid %s to %s", FormatDisplay(issue), FormatDisplay(valid)),
		}, nil

	case CategoryInterim:
		return beforeExpiry(valid, TypeInitial, "Interim certificate: Initial survey within 3 months before expiry"), nil

	case CategoryFullTerm:
		_, endorsed, err := ParseDate("last_endorse", in.LastEndorse)
		if err != nil {
			return Schedule{}, err
		}
		if endorsed {
			return beforeExpiry(valid, TypeRenewal, "Full Term certificate endorsed: Renewal survey within 3 months before expiry"), nil
		}
		intermediate := AddMonths(valid, -30)
		return Schedule{
			NextSurveyDate: &intermediate,
			NextSurveyType: TypeIntermediate,
			Window:         SymmetricAround(6),
			Anchor:         &intermediate,
			Display:        fmt.Sprintf("%s (%s)", FormatDisplay(intermediate), SymmetricAround(6).Label()),
			Reasoning:      "Full Term certificate without endorsement: Intermediate survey 30 months before expiry ±6M",
		}, nil
	}

	if in.Cycle != nil {
		return in.Cycle.Next(in.AsOf), nil
	}
	return indeterminate(fmt.Sprintf("Cannot determine Next Survey for cert_type: %s", in.CertType)), nil
}

func beforeExpiry(valid time.Time, surveyType, reason string) Schedule {
	w := FixedBefore(3)
	next := AddMonths(valid, -w.Months)
	return Schedule{
		NextSurveyDate: &next,
		NextSurveyType: surveyType,
		Window:         w,
		Anchor:         &valid,
		Display:        fmt.Sprintf("%s (%s)", FormatDisplay(valid), w.Label()),
		Reasoning:      reason,
	}
}
