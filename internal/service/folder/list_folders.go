package folder

import (
	"context"
	"fmt"

	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/pkg/ctxutil"
)

// ListFolders returns all of the authenticated user's folders ordered by
// name, each with its member scans.
func (s *Service) ListFolders(ctx context.Context) ([]*domain.Folder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	folders, err := s.folders.ListWithScans(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	return folders, nil
}
