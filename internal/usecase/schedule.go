package usecase

import (
	"log"
	"time"

	"fleet_survey/internal/domain/entities"
	"fleet_survey/internal/domain/survey"
)

// shipCycle returns the ship's anniversary cycle, or nil when the ship has none
// or its anniversary data is unusable.
func shipCycle(ship entities.Ship) *survey.ShipCycle {
	cycle, err := survey.NewShipCycle(ship.AnniversaryDay, ship.AnniversaryMonth, ship.SpecialSurveyCycleStart, ship.DeliveryDate)
	if err != nil {
		log.Printf("[survey][usecase] ignoring anniversary cycle ship_id=%s err=%v", ship.ID, err)
		return nil
	}
	return cycle
}

func calculateSchedule(c entities.Certificate, cycle *survey.ShipCycle, today time.Time) (survey.Schedule, error) {
	return survey.Calculate(survey.Input{
		CertName:       c.CertName,
		CertType:       c.CertType,
		IssueDate:      c.IssueDate,
		ValidDate:      c.ValidDate,
		LastEndorse:    c.LastEndorse,
		NextSurveyType: c.NextSurveyType,
		Cycle:          cycle,
		AsOf:           today,
	})
}

func nextSurveyUpdate(s survey.Schedule, now time.Time) entities.NextSurveyUpdate {
	if !s.Determined() {
		return entities.NextSurveyUpdate{UpdatedAt: now}
	}
	return entities.NextSurveyUpdate{
		NextSurvey:     s.Display,
		NextSurveyType: s.NextSurveyType,
		NextSurveyDate: s.NextSurveyDate,
		WindowKind:     string(s.Window.Kind),
		WindowMonths:   s.Window.Months,
		WindowAnchor:   s.Anchor,
		UpdatedAt:      now,
	}
}

func applyNextSurvey(c *entities.Certificate, u entities.NextSurveyUpdate) {
	c.NextSurvey = u.NextSurvey
	c.NextSurveyDisplay = u.NextSurvey
	c.NextSurveyType = u.NextSurveyType
	c.NextSurveyDate = u.NextSurveyDate
	c.WindowKind = u.WindowKind
	c.WindowMonths = u.WindowMonths
	c.WindowAnchor = u.WindowAnchor
	c.UpdatedAt = u.UpdatedAt
}

// sameNextSurvey reports whether applying u would leave c's survey fields as they are.
func sameNextSurvey(c entities.Certificate, u entities.NextSurveyUpdate) bool {
	if c.NextSurvey != u.NextSurvey || c.NextSurveyType != u.NextSurveyType {
		return false
	}
	if c.WindowKind != u.WindowKind || c.WindowMonths != u.WindowMonths {
		return false
	}
	return sameDate(c.NextSurveyDate, u.NextSurveyDate) && sameDate(c.WindowAnchor, u.WindowAnchor)
}

func sameDate(a, b *time.Time) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return a.Equal(*b)
	}
}

func isoDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(survey.ISOLayout)
}

func certificateStatus(validDate string, today time.Time) entities.CertificateStatus {
	valid, ok, err := survey.ParseDate("valid_date", validDate)
	if err != nil || !ok {
		return entities.CertificateStatusUnknown
	}
	if valid.Before(survey.Today(today)) {
		return entities.CertificateStatusExpired
	}
	return entities.CertificateStatusValid
}

func toScannerCertificate(c entities.Certificate, shipName string) survey.Certificate {
	display := c.NextSurveyDisplay
	if display == "" {
		display = c.NextSurvey
	}
	return survey.Certificate{
		ID:             c.ID,
		ShipID:         c.ShipID,
		ShipName:       shipName,
		CertName:       c.CertName,
		CertType:       c.CertType,
		IssueDate:      c.IssueDate,
		ValidDate:      c.ValidDate,
		NextSurvey:     display,
		NextSurveyType: c.NextSurveyType,
		NextSurveyDate: isoDate(c.NextSurveyDate),
		WindowAnchor:   isoDate(c.WindowAnchor),
		Window:         survey.ParseWindowKind(c.WindowKind, c.WindowMonths),
	}
}
