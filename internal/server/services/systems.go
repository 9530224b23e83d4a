package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rmoraesb/sentinela/internal/server/models"
	"github.com/rmoraesb/sentinela/internal/server/repositories/repomanager"
)

// ComplianceSummary counts how many registered systems have each security
// control enabled.
type ComplianceSummary struct {
	TotalSystems       int
	MFAEnabled         int
	SSOEnabled         int
	PasswordPolicy     int
	CentralizedLogging int
}

type SystemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSystemService(db *sql.DB, m repomanager.RepositoryManager) *SystemService {
	return &SystemService{db: db, repomanager: m}
}

func (s *SystemService) Create(ctx context.Context, system *models.System) (*models.System, error) {
	if system.ID == "" {
		system.ID = uuid.NewString()
	}

	created, err := s.repomanager.Systems(s.db).Create(ctx, system)
	if err != nil {
		return nil, fmt.Errorf("error creating system: %w", err)
	}

	return created, nil
}

func (s *SystemService) Get(ctx context.Context, id string) (*models.System, error) {
	return s.repomanager.Systems(s.db).GetByID(ctx, id)
}

func (s *SystemService) List(ctx context.Context) ([]*models.System, error) {
	return s.repomanager.Systems(s.db).List(ctx)
}

func (s *SystemService) Update(ctx context.Context, system *models.System) error {
	return s.repomanager.Systems(s.db).Update(ctx, system)
}

func (s *SystemService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Systems(s.db).Delete(ctx, id)
}

// Compliance aggregates the posture booleans across the registry.
func (s *SystemService) Compliance(ctx context.Context) (*ComplianceSummary, error) {
	systems, err := s.repomanager.Systems(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing systems: %w", err)
	}

	summary := &ComplianceSummary{TotalSystems: len(systems)}
	for _, sys := range systems {
		if sys.MFAEnabled {
			summary.MFAEnabled++
		}
		if sys.SSOEnabled {
			summary.SSOEnabled++
		}
		if sys.PasswordPolicy {
			summary.PasswordPolicy++
		}
		if sys.CentralizedLogging {
			summary.CentralizedLogging++
		}
	}

	return summary, nil
}
