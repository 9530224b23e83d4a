package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/rmoraesb/sentinela/internal/server/repositories/admins"
	"github.com/rmoraesb/sentinela/internal/server/repositories/imports"
	"github.com/rmoraesb/sentinela/internal/server/repositories/systems"
	"github.com/rmoraesb/sentinela/internal/server/repositories/systemusers"
	"github.com/rmoraesb/sentinela/internal/server/repositories/truthusers"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	m := NewPostgresRepositoryManager()
	var _ RepositoryManager = m
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewPostgresRepositoryManager()

	if tu := m.TruthUsers(db); tu == nil {
		t.Fatal("TruthUsers() nil")
	}
	if su := m.SystemUsers(db); su == nil {
		t.Fatal("SystemUsers() nil")
	}
	if s := m.Systems(db); s == nil {
		t.Fatal("Systems() nil")
	}
	if im := m.Imports(db); im == nil {
		t.Fatal("Imports() nil")
	}
	if a := m.Admins(db); a == nil {
		t.Fatal("Admins() nil")
	}

	var _ truthusers.Repository = m.TruthUsers(db)
	var _ systemusers.Repository = m.SystemUsers(db)
	var _ systems.Repository = m.Systems(db)
	var _ imports.Repository = m.Imports(db)
	var _ admins.Repository = m.Admins(db)
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
