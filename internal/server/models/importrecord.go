package models

import "time"

// Import statuses recorded in the audit trail.
const (
	ImportStatusCompleted      = "completed"
	ImportStatusFailed         = "failed"
	ImportStatusNoValidRecords = "no_valid_records"
)

// ImportRecord is one row of the import audit trail. SystemID is empty for
// truth-set imports. TotalRecords counts every data row in the file,
// accepted and rejected alike; ProcessedRecords counts the rows that were
// persisted. ArchiveKey points at the raw uploaded file in the object store
// and may be empty when archiving failed or is disabled.
type ImportRecord struct {
	ID               int64
	SystemID         string
	FileName         string
	FileSize         int64
	TotalRecords     int
	ProcessedRecords int
	Status           string
	ArchiveKey       string
	CreatedAt        time.Time
}
