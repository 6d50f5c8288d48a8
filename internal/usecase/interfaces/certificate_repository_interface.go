package interfaces

import (
	"context"
	"fleet_survey/internal/domain/entities"
)

// ICertificateRepository abstracts DynamoDB persistence for Certificate.
//
// Lookups return a zero Certificate (empty ID) and a nil error when nothing
// matches; callers translate that into their own not-found error.

type ICertificateRepository interface {
	Create(ctx context.Context, c entities.Certificate) (entities.Certificate, error)
	GetByID(ctx context.Context, id string) (entities.Certificate, error)
	ListByShipID(ctx context.Context, shipID string) ([]entities.Certificate, error)
	Update(ctx context.Context, c entities.Certificate) (entities.Certificate, error)
	UpdateNextSurvey(ctx context.Context, id string, u entities.NextSurveyUpdate) (entities.Certificate, error)
}
