package systemusers

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestListUsernames_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username\s+FROM\s+system_users\s+WHERE\s+system_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows([]string{"username"}).
		AddRow("jdoe").
		AddRow("asmith")
	mock.ExpectQuery(q).
		WithArgs("sys-1").
		WillReturnRows(rows)

	got, err := repo.ListUsernames(context.Background(), "sys-1")
	if err != nil {
		t.Fatalf("ListUsernames error: %v", err)
	}
	if len(got) != 2 || got[0] != "jdoe" || got[1] != "asmith" {
		t.Fatalf("unexpected usernames: %v", got)
	}
}

func TestListUsernames_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username\s+FROM\s+system_users\s+WHERE\s+system_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	mock.ExpectQuery(q).
		WithArgs("sys-1").
		WillReturnRows(sqlmock.NewRows([]string{"username"}))

	got, err := repo.ListUsernames(context.Background(), "sys-1")
	if err != nil {
		t.Fatalf("ListUsernames error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unexpected usernames: %v", got)
	}
}

func TestListUsernames_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username\s+FROM\s+system_users\s+WHERE\s+system_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	mock.ExpectQuery(q).
		WithArgs("sys-1").
		WillReturnError(errors.New("db err"))

	_, err := repo.ListUsernames(context.Background(), "sys-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestReplaceAll_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	del := `(?s)^DELETE\s+FROM\s+system_users\s+WHERE\s+system_id\s*=\s*\$1\s*$`
	ins := `(?s)^INSERT\s+INTO\s+system_users\s*\(system_id,\s*username\)\s*VALUES\s*\(\$1,\s*\$2\)\s*$`

	mock.ExpectExec(del).WithArgs("sys-1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(ins).WithArgs("sys-1", "jdoe").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(ins).WithArgs("sys-1", "asmith").WillReturnResult(sqlmock.NewResult(2, 1))

	if err := repo.ReplaceAll(context.Background(), "sys-1", []string{"jdoe", "asmith"}); err != nil {
		t.Fatalf("ReplaceAll error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReplaceAll_DeleteError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	del := `(?s)^DELETE\s+FROM\s+system_users\s+WHERE\s+system_id\s*=\s*\$1\s*$`

	mock.ExpectExec(del).WithArgs("sys-1").WillReturnError(errors.New("db err"))

	err := repo.ReplaceAll(context.Background(), "sys-1", []string{"jdoe"})
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestReplaceAll_InsertError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	del := `(?s)^DELETE\s+FROM\s+system_users\s+WHERE\s+system_id\s*=\s*\$1\s*$`
	ins := `(?s)^INSERT\s+INTO\s+system_users\s*\(system_id,\s*username\)\s*VALUES\s*\(\$1,\s*\$2\)\s*$`

	mock.ExpectExec(del).WithArgs("sys-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(ins).WithArgs("sys-1", "jdoe").WillReturnError(errors.New("db err"))

	err := repo.ReplaceAll(context.Background(), "sys-1", []string{"jdoe"})
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
