package interfaces

import (
	"context"
	"fleet_survey/internal/domain/entities"
)

// IShipRepository abstracts DynamoDB persistence for Ship.
//
// ListByCompany matches the stored company field exactly; resolving a company
// by id and by name is the caller's job.

type IShipRepository interface {
	Create(ctx context.Context, s entities.Ship) (entities.Ship, error)
	GetByID(ctx context.Context, id string) (entities.Ship, error)
	ListByCompany(ctx context.Context, company string) ([]entities.Ship, error)
}
