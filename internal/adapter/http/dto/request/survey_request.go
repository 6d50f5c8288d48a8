package request

import "errors"

const defaultUpcomingDays = 30

var ErrInvalidDays = errors.New("invalid days")

// UpcomingSurveysQuery is the query string of GET /certificates/upcoming-surveys.
// Days is informational: inclusion is decided by each certificate's own window.
type UpcomingSurveysQuery struct {
	Days *int `form:"days"`
}

func (q UpcomingSurveysQuery) ResolveDays() (int, error) {
	if q.Days == nil {
		return defaultUpcomingDays, nil
	}
	if *q.Days < 0 {
		return 0, ErrInvalidDays
	}
	return *q.Days, nil
}
