package imports

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestRecord_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+import_history\s*\(system_id,\s*file_name,.*\)\s*VALUES\s*\(\$1,.*\$7\)\s*RETURNING\s+id,\s*created_at\s*$`

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), created)
	mock.ExpectQuery(q).
		WithArgs(sql.NullString{String: "sys-1", Valid: true}, "users.csv", int64(120), 3, 3, "completed", "imports/sys-1/users.csv").
		WillReturnRows(rows)

	rec := &models.ImportRecord{
		SystemID: "sys-1", FileName: "users.csv", FileSize: 120,
		TotalRecords: 3, ProcessedRecords: 3, Status: "completed",
		ArchiveKey: "imports/sys-1/users.csv",
	}
	if err := repo.Record(context.Background(), rec); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if rec.ID != 11 || !rec.CreatedAt.Equal(created) {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestRecord_TruthImportHasNullSystemID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+import_history\s*\(`

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(12), time.Now())
	mock.ExpectQuery(q).
		WithArgs(sql.NullString{}, "truth.csv", int64(80), 2, 2, "completed", "").
		WillReturnRows(rows)

	rec := &models.ImportRecord{
		FileName: "truth.csv", FileSize: 80,
		TotalRecords: 2, ProcessedRecords: 2, Status: "completed",
	}
	if err := repo.Record(context.Background(), rec); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecord_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+import_history\s*\(`

	mock.ExpectQuery(q).
		WillReturnError(errors.New("db down"))

	err := repo.Record(context.Background(), &models.ImportRecord{FileName: "users.csv"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*system_id,.*FROM\s+import_history\s+ORDER\s+BY\s+created_at\s+DESC\s+LIMIT\s+\$1\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "system_id", "file_name", "file_size",
		"total_records", "processed_records", "status", "archive_key", "created_at",
	}).
		AddRow(int64(2), "sys-1", "users.csv", int64(120), 3, 3, "completed", "imports/sys-1/users.csv", now).
		AddRow(int64(1), nil, "truth.csv", int64(80), 2, 2, "completed", "", now)
	mock.ExpectQuery(q).
		WithArgs(20).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), 20)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected records: %+v", got)
	}
	if got[0].SystemID != "sys-1" || got[0].ID != 2 {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[1].SystemID != "" || got[1].FileName != "truth.csv" {
		t.Fatalf("unexpected second record: %+v", got[1])
	}
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*system_id,.*FROM\s+import_history\s+ORDER\s+BY\s+created_at\s+DESC\s+LIMIT\s+\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs(20).
		WillReturnError(errors.New("db err"))

	_, err := repo.List(context.Background(), 20)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
