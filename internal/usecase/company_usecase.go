package usecase

import (
	"context"
	"errors"
	"fleet_survey/internal/domain/entities"
	"fleet_survey/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrInvalidCompanyID = errors.New("invalid company id")
	ErrInvalidCompany   = errors.New("invalid company")
)

type ICompanyUseCase interface {
	Create(ctx context.Context, name string) (entities.Company, error)
	GetByID(ctx context.Context, id string) (entities.Company, error)
}

type CompanyUseCase struct {
	repo interfaces.ICompanyRepository
	now  func() time.Time
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(repo interfaces.ICompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, now: time.Now}
}

func (u *CompanyUseCase) Create(ctx context.Context, name string) (entities.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Company{}, ErrInvalidCompany
	}

	now := u.now().UTC()
	return u.repo.Create(ctx, entities.Company{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *CompanyUseCase) GetByID(ctx context.Context, id string) (entities.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Company{}, ErrInvalidCompanyID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Company{}, err
	}
	if c.ID == "" {
		return entities.Company{}, ErrCompanyNotFound
	}
	return c, nil
}
