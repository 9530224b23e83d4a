// Package imports persists the import history audit trail. The trail is
// write-mostly; nothing in the reconciliation logic reads it back.
package imports

import (
	"context"

	"github.com/rmoraesb/sentinela/internal/server/models"
)

type Repository interface {
	Record(ctx context.Context, record *models.ImportRecord) error
	List(ctx context.Context, limit int) ([]*models.ImportRecord, error)
}
