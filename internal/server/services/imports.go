// Package services holds the orchestration layer between the transport and
// the repositories: roster imports and reconciliation, the systems
// registry, and admin authentication.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmoraesb/sentinela/internal/common"
	"github.com/rmoraesb/sentinela/internal/dbx"
	"github.com/rmoraesb/sentinela/internal/ingest"
	"github.com/rmoraesb/sentinela/internal/logging"
	"github.com/rmoraesb/sentinela/internal/match"
	"github.com/rmoraesb/sentinela/internal/server/models"
	"github.com/rmoraesb/sentinela/internal/server/repositories/repomanager"
)

// ArchiveStore saves raw uploaded files and returns their storage key.
type ArchiveStore interface {
	Save(ctx context.Context, content []byte) (string, error)
}

// PreviewEntry pairs one stored system username with its best-scoring truth
// identity. Advisory only; the persisted comparison uses match.Reconcile.
type PreviewEntry struct {
	SystemIdentity string
	MatchedName    string
	MatchedWith    string
	Match          match.Result
}

type ImportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	archive     ArchiveStore
	logger      logging.Logger
}

func NewImportService(db *sql.DB, m repomanager.RepositoryManager, archive ArchiveStore, logger logging.Logger) *ImportService {
	return &ImportService{
		db:          db,
		repomanager: m,
		archive:     archive,
		logger:      logger.With("module", "imports"),
	}
}

// archiveUpload stores the raw file best-effort. Archive failures are
// logged and swallowed: the database keeps the parsed rows either way.
func (s *ImportService) archiveUpload(ctx context.Context, fileName string, content []byte) string {
	key, err := s.archive.Save(ctx, content)
	if err != nil {
		s.logger.Warn(ctx, "file archive failed", "file", fileName, "error", err.Error())
		return ""
	}
	return key
}

func (s *ImportService) recordHistory(ctx context.Context, rec *models.ImportRecord) {
	if err := s.repomanager.Imports(s.db).Record(ctx, rec); err != nil {
		// The audit trail must never fail an import.
		s.logger.Warn(ctx, "import history write failed", "file", rec.FileName, "error", err.Error())
	}
}

// UploadSystemUsers ingests a per-system user export, replaces the stored
// username list for that system, and reconciles it against the truth set.
//
// Errors: common.ErrorNotFound (unknown system), common.ErrorEmptyFile,
// common.ErrorNoValidRecords (parsed but nothing usable; nothing replaced),
// common.ErrorPersistence (replace failed; prior set intact).
func (s *ImportService) UploadSystemUsers(ctx context.Context, systemID, fileName string, content []byte) (*match.Report, error) {

	if _, err := s.repomanager.Systems(s.db).GetByID(ctx, systemID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading system: %w", err)
	}

	logins, err := ingest.ParseLogins(string(content))
	if err != nil {
		return nil, err
	}
	if len(logins) == 0 {
		s.recordHistory(ctx, &models.ImportRecord{
			SystemID: systemID,
			FileName: fileName,
			FileSize: int64(len(content)),
			Status:   models.ImportStatusNoValidRecords,
		})
		return nil, common.ErrorNoValidRecords
	}

	archiveKey := s.archiveUpload(ctx, fileName, content)

	// Full-replace semantics: delete and insert run as one transaction so a
	// failed insert leaves the prior list in place.
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.SystemUsers(tx).ReplaceAll(ctx, systemID, logins)
	})
	if err != nil {
		s.recordHistory(ctx, &models.ImportRecord{
			SystemID:     systemID,
			FileName:     fileName,
			FileSize:     int64(len(content)),
			TotalRecords: len(logins),
			Status:       models.ImportStatusFailed,
			ArchiveKey:   archiveKey,
		})
		return nil, fmt.Errorf("%w: %v", common.ErrorPersistence, err)
	}

	truth, err := s.repomanager.TruthUsers(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading truth set: %w", err)
	}

	report := match.Reconcile(logins, truth)

	s.recordHistory(ctx, &models.ImportRecord{
		SystemID:         systemID,
		FileName:         fileName,
		FileSize:         int64(len(content)),
		TotalRecords:     len(logins),
		ProcessedRecords: len(logins),
		Status:           models.ImportStatusCompleted,
		ArchiveKey:       archiveKey,
	})

	return report, nil
}

// UploadTruthList ingests a full roster upload and replaces the truth set.
// Returns the number of accepted and rejected rows.
func (s *ImportService) UploadTruthList(ctx context.Context, fileName string, content []byte) (accepted, rejected int, err error) {

	records, rejected, err := ingest.ParseRoster(string(content))
	if err != nil {
		return 0, 0, err
	}
	if len(records) == 0 {
		s.recordHistory(ctx, &models.ImportRecord{
			FileName:     fileName,
			FileSize:     int64(len(content)),
			TotalRecords: rejected,
			Status:       models.ImportStatusNoValidRecords,
		})
		return 0, rejected, common.ErrorNoValidRecords
	}

	identities := make([]match.Identity, 0, len(records))
	for _, r := range records {
		identities = append(identities, match.Identity{
			DisplayName: r.Name,
			Email:       r.Email,
			Username:    r.Username,
			Department:  r.Department,
			Source:      match.SourceImportedTruth,
		})
	}

	archiveKey := s.archiveUpload(ctx, fileName, content)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.TruthUsers(tx).ReplaceAll(ctx, identities)
	})
	if err != nil {
		s.recordHistory(ctx, &models.ImportRecord{
			FileName:     fileName,
			FileSize:     int64(len(content)),
			TotalRecords: len(records) + rejected,
			Status:       models.ImportStatusFailed,
			ArchiveKey:   archiveKey,
		})
		return 0, 0, fmt.Errorf("%w: %v", common.ErrorPersistence, err)
	}

	s.recordHistory(ctx, &models.ImportRecord{
		FileName:         fileName,
		FileSize:         int64(len(content)),
		TotalRecords:     len(records) + rejected,
		ProcessedRecords: len(records),
		Status:           models.ImportStatusCompleted,
		ArchiveKey:       archiveKey,
	})

	return len(records), rejected, nil
}

// MatchPreview scores every stored username of a system against the truth
// set and returns the best candidate per username. This feeds the ad-hoc
// discrepancy screen; it never influences what UploadSystemUsers persists
// or reports.
func (s *ImportService) MatchPreview(ctx context.Context, systemID string) ([]PreviewEntry, error) {

	usernames, err := s.repomanager.SystemUsers(s.db).ListUsernames(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("error loading system users: %w", err)
	}

	truth, err := s.repomanager.TruthUsers(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading truth set: %w", err)
	}

	entries := make([]PreviewEntry, 0, len(usernames))
	for _, username := range usernames {
		entry := PreviewEntry{SystemIdentity: username}

		for _, rec := range truth {
			candidate := rec.Email
			if candidate == "" {
				candidate = rec.Username
			}
			if candidate == "" {
				continue
			}

			result := match.Score(username, candidate)
			if result.Type == match.TypeNone {
				continue
			}
			if result.Similarity > entry.Match.Similarity {
				entry.Match = result
				entry.MatchedName = rec.DisplayName
				entry.MatchedWith = candidate
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// History returns the most recent import audit entries.
func (s *ImportService) History(ctx context.Context, limit int) ([]*models.ImportRecord, error) {
	return s.repomanager.Imports(s.db).List(ctx, limit)
}
