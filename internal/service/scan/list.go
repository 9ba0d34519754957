package scan

import (
	"context"
	"fmt"

	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/internal/seo"
	"github.com/element-hunter/backend/pkg/ctxutil"
)

// List returns the user's scans, newest first, with derived score and issue
// counts. A nil FolderID lists all scans; a set FolderID narrows the list to
// one folder and requires the folder to belong to the user.
func (s *Service) List(ctx context.Context, input ListInput) ([]Summary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.FolderID != nil {
		if _, err := s.folders.GetByID(ctx, userID, *input.FolderID); err != nil {
			return nil, fmt.Errorf("get folder: %w", err)
		}
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultListLimit
	}
	if s.cfg.MaxListLimit > 0 && limit > s.cfg.MaxListLimit {
		limit = s.cfg.MaxListLimit
	}

	scans, err := s.scans.List(ctx, userID, input.FolderID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}

	summaries := make([]Summary, 0, len(scans))
	for _, sc := range scans {
		data := seo.Normalize(sc.Data)
		summaries = append(summaries, Summary{
			Scan:   sc,
			Score:  seo.Score(data),
			Issues: seo.CountIssues(data),
		})
	}

	return summaries, nil
}
