package systemusers

import (
	"context"
	"fmt"

	"github.com/rmoraesb/sentinela/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListUsernames(ctx context.Context, systemID string) ([]string, error) {

	query :=
		`SELECT username FROM system_users
		 WHERE system_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, systemID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		usernames = append(usernames, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return usernames, nil
}

func (r *PostgresRepository) ReplaceAll(ctx context.Context, systemID string, usernames []string) error {

	if _, err := r.db.ExecContext(ctx, `DELETE FROM system_users WHERE system_id = $1`, systemID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	query :=
		`INSERT INTO system_users (system_id, username)
		 VALUES ($1, $2)
		 `

	for _, u := range usernames {
		if _, err := r.db.ExecContext(ctx, query, systemID, u); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}

	return nil
}
