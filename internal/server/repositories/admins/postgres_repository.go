package admins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmoraesb/sentinela/internal/common"
	"github.com/rmoraesb/sentinela/internal/dbx"
	"github.com/rmoraesb/sentinela/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {

	query :=
		`INSERT INTO admins (id, username, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		admin.ID, admin.Username, admin.PasswordHash).Scan(&admin.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return admin, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {

	query :=
		`SELECT id, username, password_hash, created_at FROM admins
		 WHERE username = $1
		 `

	admin := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return admin, nil
}
