package survey

import (
	"errors"
	"fmt"
	"time"
)

// cycleMonths is the length of a class/statutory survey cycle.
const cycleMonths = 60

// ShipCycle is a ship's anniversary-based five year survey cycle.
type ShipCycle struct {
	AnniversaryDay   int
	AnniversaryMonth time.Month
	CycleStart       time.Time
}

// NewShipCycle builds a cycle from ship record fields. It returns nil without
// error when the ship carries no anniversary. The cycle start falls back to the
// delivery date when no special survey cycle start is recorded.
func NewShipCycle(day, month int, cycleStart, deliveryDate string) (*ShipCycle, error) {
	if day == 0 && month == 0 {
		return nil, nil
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, fmt.Errorf("invalid anniversary date %02d/%02d", day, month)
	}

	start, ok, err := ParseDate("special_survey_cycle_start", cycleStart)
	if err != nil {
		return nil, err
	}
	if !ok {
		start, ok, err = ParseDate("delivery_date", deliveryDate)
		if err != nil {
			return nil, err
		}
	}
	if !ok {
		return nil, errors.New("anniversary cycle needs a cycle start or delivery date")
	}
	return &ShipCycle{AnniversaryDay: day, AnniversaryMonth: time.Month(month), CycleStart: start}, nil
}

// Next returns the first cycle event whose window has not closed by asOf.
// Anniversaries 1, 2 and 4 are annual surveys, the third is the intermediate
// survey and the cycle ends with the special survey (-3M, no grace period).
func (c ShipCycle) Next(asOf time.Time) Schedule {
	asOf = civil(asOf)
	start := civil(c.CycleStart)

	// Jump whole cycles that ended before asOf.
	if elapsed := monthsBetween(start, asOf); elapsed > cycleMonths {
		start = AddMonths(start, (elapsed/cycleMonths-1)*cycleMonths)
	}

	for i := 0; i < 3; i++ {
		for k := 1; k <= 5; k++ {
			anchor, surveyType, w := c.event(start, k)
			if _, closeDate := w.Bounds(anchor); closeDate.Before(asOf) {
				continue
			}
			a := anchor
			return Schedule{
				NextSurveyDate: &a,
				NextSurveyType: surveyType,
				Window:         w,
				Anchor:         &a,
				Display:        fmt.Sprintf("%s (%s)", FormatDisplay(a), w.Label()),
				Reasoning:      fmt.Sprintf("Anniversary cycle from %s: %s", FormatDisplay(start), surveyType),
			}
		}
		start = AddMonths(start, cycleMonths)
	}
	return indeterminate("Anniversary cycle could not be resolved")
}

func (c ShipCycle) event(start time.Time, k int) (time.Time, string, Window) {
	switch k {
	case 5:
		return AddMonths(start, cycleMonths), TypeSpecialSurvey, FixedBefore(3)
	case 3:
		return c.anniversaryIn(start.Year() + k), TypeIntermediate, SymmetricAround(3)
	default:
		return c.anniversaryIn(start.Year() + k), fmt.Sprintf("%s %d", typeAnnualPrefix, k), SymmetricAround(3)
	}
}

func (c ShipCycle) anniversaryIn(year int) time.Time {
	day := c.AnniversaryDay
	if last := daysIn(year, c.AnniversaryMonth); day > last {
		day = last
	}
	return time.Date(year, c.AnniversaryMonth, day, 0, 0, 0, 0, time.UTC)
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
