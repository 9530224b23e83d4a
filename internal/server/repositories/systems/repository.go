// Package systems persists the registry of internal applications and their
// security posture.
package systems

import (
	"context"

	"github.com/rmoraesb/sentinela/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, system *models.System) (*models.System, error)
	GetByID(ctx context.Context, id string) (*models.System, error)
	List(ctx context.Context) ([]*models.System, error)
	Update(ctx context.Context, system *models.System) error
	Delete(ctx context.Context, id string) error
}
