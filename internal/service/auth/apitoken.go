package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/auth"
	"github.com/element-hunter/backend/internal/domain"
	"github.com/element-hunter/backend/pkg/ctxutil"
)

// ValidateAPIToken resolves an extension API token to a user ID.
// Returns ErrUnauthorized if no user carries the token.
func (s *Service) ValidateAPIToken(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByAPIToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrUnauthorized
		}
		return uuid.Nil, fmt.Errorf("auth.ValidateAPIToken: %w", err)
	}

	return user.ID, nil
}

// RotateAPIToken replaces the authenticated user's API token with a fresh one
// and returns the updated user. The old token stops working immediately.
func (s *Service) RotateAPIToken(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	token, err := auth.NewAPIToken()
	if err != nil {
		return nil, fmt.Errorf("auth.RotateAPIToken generate: %w", err)
	}

	user, err := s.users.UpdateAPIToken(ctx, userID, token)
	if err != nil {
		return nil, fmt.Errorf("auth.RotateAPIToken update: %w", err)
	}

	s.log.InfoContext(ctx, "api token rotated", slog.String("user_id", userID.String()))
	return user, nil
}

// Me returns the authenticated user's profile.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}

	return user, nil
}
