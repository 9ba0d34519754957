// Package scan implements scan ingestion and reporting: storing raw extension
// payloads and deriving normalized data, scores, and issue counts on read.
package scan

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/config"
	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/internal/seo"
)

type scanRepo interface {
	Create(ctx context.Context, s *domain.Scan) (*domain.Scan, error)
	GetByID(ctx context.Context, userID, scanID uuid.UUID) (*domain.Scan, error)
	List(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, limit, offset int) ([]*domain.Scan, error)
}

type folderRepo interface {
	GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error)
}

// Service provides scan ingestion and read operations.
type Service struct {
	scans   scanRepo
	folders folderRepo
	cfg     config.ScanConfig
	log     *slog.Logger
}

// NewService creates a new Scan service.
func NewService(
	log *slog.Logger,
	scans scanRepo,
	folders folderRepo,
	cfg config.ScanConfig,
) *Service {
	return &Service{
		scans:   scans,
		folders: folders,
		cfg:     cfg,
		log:     log.With("service", "scan"),
	}
}

// Summary is one scan in a list response, with derived fields attached.
type Summary struct {
	Scan   *domain.Scan
	Score  int
	Issues int
}

// Report is the full detail view of one scan: the stored raw payload plus the
// normalized form and derived fields.
type Report struct {
	Scan   *domain.Scan
	Data   seo.Data
	Score  int
	Issues int
}
