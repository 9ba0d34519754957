package folder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/pkg/ctxutil"
)

// RemoveScan detaches a scan from a folder owned by the authenticated user.
// Returns domain.ErrNotFound when the membership does not exist, so the
// caller can distinguish a no-op from a successful removal.
func (s *Service) RemoveScan(ctx context.Context, input RemoveScanInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	// Ownership check on the folder.
	if _, err := s.folders.GetByID(ctx, userID, input.FolderID); err != nil {
		return fmt.Errorf("get folder: %w", err)
	}

	removed, err := s.folders.DetachScan(ctx, input.FolderID, input.ScanID)
	if err != nil {
		return fmt.Errorf("detach scan: %w", err)
	}
	if removed == 0 {
		return fmt.Errorf("membership %s/%s: %w", input.FolderID, input.ScanID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "scan detached from folder",
		slog.String("user_id", userID.String()),
		slog.String("folder_id", input.FolderID.String()),
		slog.String("scan_id", input.ScanID.String()),
	)

	return nil
}
