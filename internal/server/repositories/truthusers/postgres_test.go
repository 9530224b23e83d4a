package truthusers

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rmoraesb/sentinela/internal/match"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+display_name,\s*email,\s*username,\s*department\s+FROM\s+truth_users\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows([]string{"display_name", "email", "username", "department"}).
		AddRow("John Doe", "jdoe@corp.com", "jdoe", "IT").
		AddRow("Anna Smith", "asmith@corp.com", "asmith", "HR")
	mock.ExpectQuery(q).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected records: %+v", got)
	}
	if got[0].DisplayName != "John Doe" || got[0].Source != match.SourceImportedTruth {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[1].Username != "asmith" || got[1].Department != "HR" {
		t.Fatalf("unexpected second record: %+v", got[1])
	}
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+display_name,\s*email,\s*username,\s*department\s+FROM\s+truth_users\s+ORDER\s+BY\s+id\s*$`

	mock.ExpectQuery(q).
		WillReturnError(errors.New("db err"))

	_, err := repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestReplaceAll_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	del := `(?s)^DELETE\s+FROM\s+truth_users\s*$`
	ins := `(?s)^INSERT\s+INTO\s+truth_users\s*\(display_name,\s*email,\s*username,\s*department\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*$`

	mock.ExpectExec(del).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(ins).
		WithArgs("John Doe", "jdoe@corp.com", "jdoe", "IT").
		WillReturnResult(sqlmock.NewResult(1, 1))

	records := []match.Identity{
		{DisplayName: "John Doe", Email: "jdoe@corp.com", Username: "jdoe", Department: "IT"},
	}
	if err := repo.ReplaceAll(context.Background(), records); err != nil {
		t.Fatalf("ReplaceAll error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReplaceAll_DeleteError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	del := `(?s)^DELETE\s+FROM\s+truth_users\s*$`

	mock.ExpectExec(del).WillReturnError(errors.New("db err"))

	err := repo.ReplaceAll(context.Background(), []match.Identity{{Username: "jdoe"}})
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestReplaceAll_InsertError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	del := `(?s)^DELETE\s+FROM\s+truth_users\s*$`
	ins := `(?s)^INSERT\s+INTO\s+truth_users\s*\(`

	mock.ExpectExec(del).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(ins).WillReturnError(errors.New("db err"))

	err := repo.ReplaceAll(context.Background(), []match.Identity{{Username: "jdoe"}})
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
