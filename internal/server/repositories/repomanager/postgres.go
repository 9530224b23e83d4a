package repomanager

import (
	"context"
	"database/sql"

	"github.com/rmoraesb/sentinela/internal/dbx"
	"github.com/rmoraesb/sentinela/internal/server/migrations"
	"github.com/rmoraesb/sentinela/internal/server/repositories/admins"
	"github.com/rmoraesb/sentinela/internal/server/repositories/imports"
	"github.com/rmoraesb/sentinela/internal/server/repositories/systems"
	"github.com/rmoraesb/sentinela/internal/server/repositories/systemusers"
	"github.com/rmoraesb/sentinela/internal/server/repositories/truthusers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and
// exposes the schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) TruthUsers(db dbx.DBTX) truthusers.Repository {
	return truthusers.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) SystemUsers(db dbx.DBTX) systemusers.Repository {
	return systemusers.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Systems(db dbx.DBTX) systems.Repository {
	return systems.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Imports(db dbx.DBTX) imports.Repository {
	return imports.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Admins(db dbx.DBTX) admins.Repository {
	return admins.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
