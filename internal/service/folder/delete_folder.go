package folder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/pkg/ctxutil"
)

// DeleteFolder deletes a folder and its scan memberships for the
// authenticated user. The scans themselves are untouched. Membership removal
// and folder deletion happen in one transaction so a failure leaves both
// intact.
func (s *Service) DeleteFolder(ctx context.Context, input DeleteFolderInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	folder, err := s.folders.GetByID(ctx, userID, input.FolderID)
	if err != nil {
		return fmt.Errorf("get folder: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.folders.DeleteMemberships(txCtx, input.FolderID); err != nil {
			return fmt.Errorf("delete folder memberships: %w", err)
		}
		if err := s.folders.Delete(txCtx, userID, input.FolderID); err != nil {
			return fmt.Errorf("delete folder: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "folder deleted",
		slog.String("user_id", userID.String()),
		slog.String("folder_id", input.FolderID.String()),
		slog.String("name", folder.Name),
	)

	return nil
}
