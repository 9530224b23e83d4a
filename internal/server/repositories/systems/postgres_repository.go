package systems

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

const systemColumns = `id, name, description, owner, mfa_enabled, sso_enabled, password_policy, centralized_logging, created_at, updated_at`

func scanSystem(row interface{ Scan(...any) error }) (*models.System, error) {
	s := &models.System{}
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Owner,
		&s.MFAEnabled, &s.SSOEnabled, &s.PasswordPolicy, &s.CentralizedLogging,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, system *models.System) (*models.System, error) {

	query :=
		`INSERT INTO systems (id, name, description, owner, mfa_enabled, sso_enabled, password_policy, centralized_logging)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		system.ID, system.Name, system.Description, system.Owner,
		system.MFAEnabled, system.SSOEnabled, system.PasswordPolicy, system.CentralizedLogging).
		Scan(&system.CreatedAt, &system.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return system, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.System, error) {

	query := `SELECT ` + systemColumns + ` FROM systems WHERE id = $1`

	system, err := scanSystem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return system, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.System, error) {

	query := `SELECT ` + systemColumns + ` FROM systems ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.System
	for rows.Next() {
		system, err := scanSystem(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, system)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, system *models.System) error {

	query :=
		`UPDATE systems
		 SET name = $2, description = $3, owner = $4, mfa_enabled = $5, sso_enabled = $6,
		     password_policy = $7, centralized_logging = $8, updated_at = now()
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		system.ID, system.Name, system.Description, system.Owner,
		system.MFAEnabled, system.SSOEnabled, system.PasswordPolicy, system.CentralizedLogging)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM systems WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
