package usecase

import (
	"context"
	"errors"
	"fleet_survey/internal/domain/entities"
	"fleet_survey/internal/domain/survey"
	"fleet_survey/internal/usecase/interfaces"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCertificateNotFound    = errors.New("certificate not found")
	ErrInvalidCertificateID   = errors.New("invalid certificate id")
	ErrInvalidCertificate     = errors.New("invalid certificate")
	ErrInvalidCertificateDate = errors.New("invalid certificate date")
)

// ICertificateUseCase exposes certificate record operations.
//
// Create and Update run the survey calculator so next_survey* fields are
// always persisted together with the dates they were derived from.

type ICertificateUseCase interface {
	Create(ctx context.Context, c entities.Certificate) (entities.Certificate, error)
	GetByID(ctx context.Context, id string) (entities.Certificate, error)
	ListByShipID(ctx context.Context, shipID string) ([]entities.Certificate, error)
	Update(ctx context.Context, id string, c entities.Certificate) (entities.Certificate, error)
}

type CertificateUseCase struct {
	certs interfaces.ICertificateRepository
	ships interfaces.IShipRepository
	now   func() time.Time
}

var _ ICertificateUseCase = (*CertificateUseCase)(nil)

func NewCertificateUseCase(certs interfaces.ICertificateRepository, ships interfaces.IShipRepository) *CertificateUseCase {
	return &CertificateUseCase{certs: certs, ships: ships, now: time.Now}
}

func (u *CertificateUseCase) Create(ctx context.Context, c entities.Certificate) (entities.Certificate, error) {
	c.ShipID = strings.TrimSpace(c.ShipID)
	c.CertName = strings.TrimSpace(c.CertName)
	if c.ShipID == "" || c.CertName == "" {
		return entities.Certificate{}, ErrInvalidCertificate
	}
	if err := validateCertificateDates(c); err != nil {
		return entities.Certificate{}, err
	}

	ship, err := u.ships.GetByID(ctx, c.ShipID)
	if err != nil {
		return entities.Certificate{}, err
	}
	if ship.ID == "" {
		return entities.Certificate{}, ErrShipNotFound
	}

	now := u.now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	if err := u.schedule(&c, ship, now); err != nil {
		return entities.Certificate{}, err
	}
	return u.certs.Create(ctx, c)
}

func (u *CertificateUseCase) GetByID(ctx context.Context, id string) (entities.Certificate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Certificate{}, ErrInvalidCertificateID
	}

	c, err := u.certs.GetByID(ctx, id)
	if err != nil {
		return entities.Certificate{}, err
	}
	if c.ID == "" {
		return entities.Certificate{}, ErrCertificateNotFound
	}
	return c, nil
}

func (u *CertificateUseCase) ListByShipID(ctx context.Context, shipID string) ([]entities.Certificate, error) {
	shipID = strings.TrimSpace(shipID)
	if shipID == "" {
		return nil, ErrInvalidShipID
	}

	ship, err := u.ships.GetByID(ctx, shipID)
	if err != nil {
		return nil, err
	}
	if ship.ID == "" {
		return nil, ErrShipNotFound
	}
	return u.certs.ListByShipID(ctx, shipID)
}

// Update replaces the editable fields of a certificate and recalculates its
// next survey. The owning ship cannot change.
func (u *CertificateUseCase) Update(ctx context.Context, id string, in entities.Certificate) (entities.Certificate, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Certificate{}, err
	}

	in.CertName = strings.TrimSpace(in.CertName)
	if in.CertName == "" {
		return entities.Certificate{}, ErrInvalidCertificate
	}
	if err := validateCertificateDates(in); err != nil {
		return entities.Certificate{}, err
	}

	ship, err := u.ships.GetByID(ctx, current.ShipID)
	if err != nil {
		return entities.Certificate{}, err
	}

	current.CertName = in.CertName
	current.CertType = in.CertType
	current.CertNo = in.CertNo
	current.IssuedBy = in.IssuedBy
	current.IssueDate = in.IssueDate
	current.ValidDate = in.ValidDate
	current.LastEndorse = in.LastEndorse

	if err := u.schedule(&current, ship, u.now().UTC()); err != nil {
		return entities.Certificate{}, err
	}

	updated, err := u.certs.Update(ctx, current)
	if err != nil {
		return entities.Certificate{}, err
	}
	if updated.ID == "" {
		return entities.Certificate{}, ErrCertificateNotFound
	}
	return updated, nil
}

func (u *CertificateUseCase) schedule(c *entities.Certificate, ship entities.Ship, now time.Time) error {
	var cycle *survey.ShipCycle
	if ship.ID != "" {
		cycle = shipCycle(ship)
	}
	sched, err := calculateSchedule(*c, cycle, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCertificateDate, err)
	}
	applyNextSurvey(c, nextSurveyUpdate(sched, now))
	c.Status = certificateStatus(c.ValidDate, now)
	return nil
}

func validateCertificateDates(c entities.Certificate) error {
	for field, raw := range map[string]string{
		"issue_date":   c.IssueDate,
		"valid_date":   c.ValidDate,
		"last_endorse": c.LastEndorse,
	} {
		if _, _, err := survey.ParseDate(field, raw); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCertificateDate, err)
		}
	}
	return nil
}
