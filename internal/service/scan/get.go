package scan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/internal/seo"
	"github.com/element-hunter/backend/pkg/ctxutil"
)

// Get returns the full report for one of the user's scans: the stored raw
// payload, its normalized form, and the derived score and issue count.
// Returns domain.ErrNotFound for scans that belong to another user.
func (s *Service) Get(ctx context.Context, scanID uuid.UUID) (*Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	scan, err := s.scans.GetByID(ctx, userID, scanID)
	if err != nil {
		return nil, fmt.Errorf("get scan: %w", err)
	}

	data := seo.Normalize(scan.Data)

	return &Report{
		Scan:   scan,
		Data:   data,
		Score:  seo.Score(data),
		Issues: seo.CountIssues(data),
	}, nil
}
