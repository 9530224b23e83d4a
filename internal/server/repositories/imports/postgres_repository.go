package imports

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rmoraesb/sentinela/internal/dbx"
	"github.com/rmoraesb/sentinela/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Record(ctx context.Context, record *models.ImportRecord) error {

	query :=
		`INSERT INTO import_history (system_id, file_name, file_size, total_records, processed_records, status, archive_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	// system_id is nullable: truth-set imports are not tied to a system.
	var systemID sql.NullString
	if record.SystemID != "" {
		systemID = sql.NullString{String: record.SystemID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		systemID, record.FileName, record.FileSize,
		record.TotalRecords, record.ProcessedRecords, record.Status, record.ArchiveKey).
		Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*models.ImportRecord, error) {

	query :=
		`SELECT id, system_id, file_name, file_size, total_records, processed_records, status, archive_key, created_at
		 FROM import_history
		 ORDER BY created_at DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ImportRecord
	for rows.Next() {
		rec := &models.ImportRecord{}
		var systemID sql.NullString
		if err := rows.Scan(&rec.ID, &systemID, &rec.FileName, &rec.FileSize,
			&rec.TotalRecords, &rec.ProcessedRecords, &rec.Status, &rec.ArchiveKey, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		rec.SystemID = systemID.String
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
