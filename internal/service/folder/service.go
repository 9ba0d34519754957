// Package folder implements folder management: creating and deleting folders
// and maintaining the scan membership relation between them.
package folder

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
)

type folderRepo interface {
	Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error)
	GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error)
	ListWithScans(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error)
	Delete(ctx context.Context, userID, folderID uuid.UUID) error
	DeleteMemberships(ctx context.Context, folderID uuid.UUID) error

	// M2M: folder <-> scan
	AttachScans(ctx context.Context, folderID uuid.UUID, scanIDs []uuid.UUID) (int, error)
	DetachScan(ctx context.Context, folderID, scanID uuid.UUID) (int, error)
}

type scanRepo interface {
	FilterOwnedIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength  = 100
	MaxScansPerAdd = 200
)

// Service provides folder management operations.
type Service struct {
	folders folderRepo
	scans   scanRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Folder service.
func NewService(
	log *slog.Logger,
	folders folderRepo,
	scans scanRepo,
	tx txManager,
) *Service {
	return &Service{
		folders: folders,
		scans:   scans,
		tx:      tx,
		log:     log.With("service", "folder"),
	}
}

// AddScansResult holds the outcome of a batch attach operation.
type AddScansResult struct {
	// Attached is the number of new memberships created.
	Attached int
	// Skipped counts scan IDs that were not attached: unknown IDs, scans
	// owned by another user, and scans already in the folder.
	Skipped int
}
