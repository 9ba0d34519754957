package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/pkg/ctxutil"
)

// Ingest stores a new scan for the authenticated user. The payload is stored
// verbatim; malformed or partial payloads are accepted and scored as-is on
// read, so a broken extension build never loses data.
func (s *Service) Ingest(ctx context.Context, input IngestInput) (*domain.Scan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxPayloadBytes); err != nil {
		return nil, err
	}

	data := input.Data
	if len(data) == 0 || !json.Valid(data) {
		data = json.RawMessage(`{}`)
	}

	scan := &domain.Scan{
		ID:        uuid.New(),
		UserID:    userID,
		URL:       strings.TrimSpace(input.URL),
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.scans.Create(ctx, scan)
	if err != nil {
		return nil, fmt.Errorf("create scan: %w", err)
	}

	s.log.InfoContext(ctx, "scan ingested",
		"scan_id", created.ID,
		"user_id", userID,
		"url", created.URL,
		"payload_bytes", len(created.Data),
	)

	return created, nil
}
