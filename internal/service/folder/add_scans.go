package folder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/pkg/ctxutil"
)

// AddScans attaches scans to a folder owned by the authenticated user.
// Idempotent: scans already in the folder are skipped. Scan IDs that do not
// exist or belong to another user are skipped as well, never attached.
func (s *Service) AddScans(ctx context.Context, input AddScansInput) (*AddScansResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check on the folder.
	if _, err := s.folders.GetByID(ctx, userID, input.FolderID); err != nil {
		return nil, fmt.Errorf("get folder: %w", err)
	}

	owned, err := s.scans.FilterOwnedIDs(ctx, userID, input.ScanIDs)
	if err != nil {
		return nil, fmt.Errorf("filter owned scans: %w", err)
	}

	attached, err := s.folders.AttachScans(ctx, input.FolderID, owned)
	if err != nil {
		return nil, fmt.Errorf("attach scans: %w", err)
	}

	result := &AddScansResult{
		Attached: attached,
		Skipped:  len(input.ScanIDs) - attached,
	}

	s.log.InfoContext(ctx, "scans attached to folder",
		slog.String("user_id", userID.String()),
		slog.String("folder_id", input.FolderID.String()),
		slog.Int("attached", result.Attached),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
