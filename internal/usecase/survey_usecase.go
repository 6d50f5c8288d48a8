package usecase

import (
	"context"
	"fleet_survey/internal/domain/entities"
	"fleet_survey/internal/domain/survey"
	"fleet_survey/internal/usecase/interfaces"
	"log"
	"strings"
	"time"
)

// NextSurveySnapshot is the persisted next survey state of one certificate.
type NextSurveySnapshot struct {
	NextSurvey     string
	NextSurveyType string
	NextSurveyDate *time.Time
}

// CertificateRecompute reports what a recompute did to one certificate.
type CertificateRecompute struct {
	CertificateID string
	CertName      string
	CertType      string
	Before        NextSurveySnapshot
	After         NextSurveySnapshot
	Updated       bool
	Reasoning     string
	Error         string
}

type RecomputeSummary struct {
	ShipID            string
	ShipName          string
	TotalCertificates int
	UpdatedCount      int
	ErrorCount        int
	Results           []CertificateRecompute
}

type UpcomingSurveysResult struct {
	Company   string
	CheckDate time.Time
	Surveys   []survey.UpcomingSurvey
	Skipped   int
	Defaulted int
}

// ISurveyUseCase exposes the survey scheduling operations:
//   - POST /certificates/{ship_id}/update-next-survey => RecomputeShip()
//   - GET /certificates/upcoming-surveys => UpcomingSurveys()

type ISurveyUseCase interface {
	RecomputeShip(ctx context.Context, shipID string) (RecomputeSummary, error)
	UpcomingSurveys(ctx context.Context, companyID string) (UpcomingSurveysResult, error)
}

type SurveyUseCase struct {
	certs     interfaces.ICertificateRepository
	ships     interfaces.IShipRepository
	companies interfaces.ICompanyRepository
	now       func() time.Time
}

var _ ISurveyUseCase = (*SurveyUseCase)(nil)

func NewSurveyUseCase(
	certs interfaces.ICertificateRepository,
	ships interfaces.IShipRepository,
	companies interfaces.ICompanyRepository,
) *SurveyUseCase {
	return &SurveyUseCase{certs: certs, ships: ships, companies: companies, now: time.Now}
}

// WithClock replaces the clock used to decide "today".
func (u *SurveyUseCase) WithClock(now func() time.Time) *SurveyUseCase {
	u.now = now
	return u
}

// RecomputeShip recalculates next_survey* for every certificate of a ship.
// Certificates are processed independently: a failure is recorded in the
// summary and the loop moves on.
func (u *SurveyUseCase) RecomputeShip(ctx context.Context, shipID string) (RecomputeSummary, error) {
	shipID = strings.TrimSpace(shipID)
	if shipID == "" {
		return RecomputeSummary{}, ErrInvalidShipID
	}

	ship, err := u.ships.GetByID(ctx, shipID)
	if err != nil {
		return RecomputeSummary{}, err
	}
	if ship.ID == "" {
		return RecomputeSummary{}, ErrShipNotFound
	}

	certs, err := u.certs.ListByShipID(ctx, shipID)
	if err != nil {
		return RecomputeSummary{}, err
	}

	now := u.now().UTC()
	cycle := shipCycle(ship)
	summary := RecomputeSummary{
		ShipID:            ship.ID,
		ShipName:          ship.Name,
		TotalCertificates: len(certs),
		Results:           make([]CertificateRecompute, 0, len(certs)),
	}

	for _, c := range certs {
		res := u.recomputeOne(ctx, c, cycle, now)
		if res.Error != "" {
			summary.ErrorCount++
		}
		if res.Updated {
			summary.UpdatedCount++
		}
		summary.Results = append(summary.Results, res)
	}

	log.Printf("[survey][usecase] recompute done ship_id=%s total=%d updated=%d errors=%d",
		ship.ID, summary.TotalCertificates, summary.UpdatedCount, summary.ErrorCount)
	return summary, nil
}

func (u *SurveyUseCase) recomputeOne(ctx context.Context, c entities.Certificate, cycle *survey.ShipCycle, now time.Time) CertificateRecompute {
	res := CertificateRecompute{
		CertificateID: c.ID,
		CertName:      c.CertName,
		CertType:      c.CertType,
		Before:        snapshotOf(c),
	}
	res.After = res.Before

	sched, err := calculateSchedule(c, cycle, now)
	if err != nil {
		log.Printf("[survey][usecase] recompute failed certificate_id=%s err=%v", c.ID, err)
		res.Error = err.Error()
		return res
	}
	res.Reasoning = sched.Reasoning

	update := nextSurveyUpdate(sched, now)
	if sameNextSurvey(c, update) {
		return res
	}

	updated, err := u.certs.UpdateNextSurvey(ctx, c.ID, update)
	if err != nil {
		log.Printf("[survey][usecase] persist failed certificate_id=%s err=%v", c.ID, err)
		res.Error = err.Error()
		return res
	}
	if updated.ID == "" {
		res.Error = ErrCertificateNotFound.Error()
		return res
	}

	res.After = snapshotOf(updated)
	res.Updated = true
	return res
}

// UpcomingSurveys scans every certificate of the company's fleet for surveys
// whose window contains today. Ships are matched by the stored company id or
// the company name. A company without ships yields an empty result.
func (u *SurveyUseCase) UpcomingSurveys(ctx context.Context, companyID string) (UpcomingSurveysResult, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return UpcomingSurveysResult{}, ErrInvalidCompanyID
	}

	today := survey.Today(u.now())
	result := UpcomingSurveysResult{Company: companyID, CheckDate: today, Surveys: []survey.UpcomingSurvey{}}

	company, err := u.companies.GetByID(ctx, companyID)
	if err != nil {
		return UpcomingSurveysResult{}, err
	}
	keys := []string{companyID}
	if company.Name != "" {
		result.Company = company.Name
		if company.Name != companyID {
			keys = append(keys, company.Name)
		}
	}

	ships, err := u.fleet(ctx, keys)
	if err != nil {
		return UpcomingSurveysResult{}, err
	}
	if len(ships) == 0 {
		log.Printf("[survey][usecase] no ships for company=%s", companyID)
		return result, nil
	}

	var certs []survey.Certificate
	for _, s := range ships {
		list, err := u.certs.ListByShipID(ctx, s.ID)
		if err != nil {
			return UpcomingSurveysResult{}, err
		}
		for _, c := range list {
			certs = append(certs, toScannerCertificate(c, s.Name))
		}
	}

	scan := survey.Scan(today, certs)
	for _, sk := range scan.Skipped {
		log.Printf("[survey][usecase] skipped certificate_id=%s reason=%q", sk.CertificateID, sk.Reason)
	}
	for _, s := range scan.Surveys {
		if s.DefaultWindowApplied {
			log.Printf("[survey][usecase] default window applied certificate_id=%s window=%s", s.CertificateID, s.WindowType)
		}
	}
	if scan.Surveys != nil {
		result.Surveys = scan.Surveys
	}
	result.Skipped = len(scan.Skipped)
	result.Defaulted = scan.Defaulted
	return result, nil
}

// fleet lists ships stored under any of keys, deduplicated by ship id.
func (u *SurveyUseCase) fleet(ctx context.Context, keys []string) ([]entities.Ship, error) {
	seen := make(map[string]struct{})
	var out []entities.Ship
	for _, k := range keys {
		ships, err := u.ships.ListByCompany(ctx, k)
		if err != nil {
			return nil, err
		}
		for _, s := range ships {
			if _, ok := seen[s.ID]; ok {
				continue
			}
			seen[s.ID] = struct{}{}
			out = append(out, s)
		}
	}
	return out, nil
}

func snapshotOf(c entities.Certificate) NextSurveySnapshot {
	display := c.NextSurveyDisplay
	if display == "" {
		display = c.NextSurvey
	}
	return NextSurveySnapshot{
		NextSurvey:     display,
		NextSurveyType: c.NextSurveyType,
		NextSurveyDate: c.NextSurveyDate,
	}
}
