package folder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/pkg/ctxutil"
)

// CreateFolder creates a new folder for the authenticated user.
// Folder names are not unique; creating two folders with the same name is allowed.
func (s *Service) CreateFolder(ctx context.Context, input CreateFolderInput) (*domain.Folder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	folder, err := s.folders.Create(ctx, &domain.Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder created",
		slog.String("user_id", userID.String()),
		slog.String("folder_id", folder.ID.String()),
		slog.String("name", folder.Name),
	)

	return folder, nil
}
