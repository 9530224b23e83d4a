package truthusers

import (
	"context"
	"fmt"

	"github.com/rmoraesb/sentinela/internal/dbx"
	"github.com/rmoraesb/sentinela/internal/match"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]match.Identity, error) {

	query :=
		`SELECT display_name, email, username, department FROM truth_users
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var records []match.Identity
	for rows.Next() {
		rec := match.Identity{Source: match.SourceImportedTruth}
		if err := rows.Scan(&rec.DisplayName, &rec.Email, &rec.Username, &rec.Department); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return records, nil
}

func (r *PostgresRepository) ReplaceAll(ctx context.Context, records []match.Identity) error {

	if _, err := r.db.ExecContext(ctx, `DELETE FROM truth_users`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	query :=
		`INSERT INTO truth_users (display_name, email, username, department)
		 VALUES ($1, $2, $3, $4)
		 `

	for _, rec := range records {
		if _, err := r.db.ExecContext(ctx, query, rec.DisplayName, rec.Email, rec.Username, rec.Department); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}

	return nil
}
