package systems

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rmoraesb/sentinela/internal/common"
	"github.com/rmoraesb/sentinela/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var systemRowColumns = []string{
	"id", "name", "description", "owner",
	"mfa_enabled", "sso_enabled", "password_policy", "centralized_logging",
	"created_at", "updated_at",
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+systems\s*\(id,\s*name,.*\)\s*VALUES\s*\(\$1,.*\$8\)\s*RETURNING\s+created_at,\s*updated_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now)
	mock.ExpectQuery(q).
		WithArgs("sys-1", "Payroll", "payroll platform", "hr", true, false, true, false).
		WillReturnRows(rows)

	s := &models.System{
		ID: "sys-1", Name: "Payroll", Description: "payroll platform", Owner: "hr",
		MFAEnabled: true, PasswordPolicy: true,
	}
	got, err := repo.Create(context.Background(), s)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected system: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+systems\s*\(`

	mock.ExpectQuery(q).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.System{ID: "sys-1", Name: "Payroll"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,.*FROM\s+systems\s+WHERE\s+id\s*=\s*\$1\s*$`

	now := time.Now()
	rows := sqlmock.NewRows(systemRowColumns).
		AddRow("sys-1", "Payroll", "payroll platform", "hr", true, false, true, false, now, now)
	mock.ExpectQuery(q).
		WithArgs("sys-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "sys-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Name != "Payroll" || !got.MFAEnabled || got.SSOEnabled {
		t.Fatalf("unexpected system: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,.*FROM\s+systems\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,.*FROM\s+systems\s+ORDER\s+BY\s+name\s*$`

	now := time.Now()
	rows := sqlmock.NewRows(systemRowColumns).
		AddRow("sys-2", "CRM", "", "sales", false, true, false, true, now, now).
		AddRow("sys-1", "Payroll", "", "hr", true, false, true, false, now, now)
	mock.ExpectQuery(q).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "CRM" || got[1].Name != "Payroll" {
		t.Fatalf("unexpected systems: %+v", got)
	}
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,.*FROM\s+systems\s+ORDER\s+BY\s+name\s*$`

	mock.ExpectQuery(q).
		WillReturnError(errors.New("db err"))

	_, err := repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+systems\s+SET\s+name\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("sys-1", "Payroll", "payroll platform", "hr", true, false, true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := &models.System{
		ID: "sys-1", Name: "Payroll", Description: "payroll platform", Owner: "hr",
		MFAEnabled: true, PasswordPolicy: true,
	}
	if err := repo.Update(context.Background(), s); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+systems\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("sys-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "sys-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+systems\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if !errors.Is(repo.Delete(context.Background(), "ghost"), common.ErrorNotFound) {
		t.Fatal("want common.ErrorNotFound")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+systems\s+SET\s+name\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.System{ID: "ghost", Name: "Ghost"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
