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
	ErrShipNotFound  = errors.New("ship not found")
	ErrInvalidShipID = errors.New("invalid ship id")
	ErrInvalidShip   = errors.New("invalid ship")
)

type IShipUseCase interface {
	Create(ctx context.Context, s entities.Ship) (entities.Ship, error)
	GetByID(ctx context.Context, id string) (entities.Ship, error)
}

type ShipUseCase struct {
	repo interfaces.IShipRepository
	now  func() time.Time
}

var _ IShipUseCase = (*ShipUseCase)(nil)

func NewShipUseCase(repo interfaces.IShipRepository) *ShipUseCase {
	return &ShipUseCase{repo: repo, now: time.Now}
}

// Create registers a ship. Anniversary data is optional but, when present, must
// be enough to build a survey cycle.
func (u *ShipUseCase) Create(ctx context.Context, s entities.Ship) (entities.Ship, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Company = strings.TrimSpace(s.Company)
	if s.Name == "" || s.Company == "" {
		return entities.Ship{}, ErrInvalidShip
	}
	if _, err := survey.NewShipCycle(s.AnniversaryDay, s.AnniversaryMonth, s.SpecialSurveyCycleStart, s.DeliveryDate); err != nil {
		return entities.Ship{}, fmt.Errorf("%w: %w", ErrInvalidShip, err)
	}

	now := u.now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.repo.Create(ctx, s)
}

func (u *ShipUseCase) GetByID(ctx context.Context, id string) (entities.Ship, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ship{}, ErrInvalidShipID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Ship{}, err
	}
	if s.ID == "" {
		return entities.Ship{}, ErrShipNotFound
	}
	return s, nil
}
