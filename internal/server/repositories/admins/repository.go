// Package admins persists console operator accounts.
package admins

import (
	"context"

	"github.com/rmoraesb/sentinela/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, admin *models.Admin) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}
