package interfaces

import (
	"context"
	"fleet_survey/internal/domain/entities"
)

type ICompanyRepository interface {
	Create(ctx context.Context, c entities.Company) (entities.Company, error)
	GetByID(ctx context.Context, id string) (entities.Company, error)
}
