package middleware

import (
	"context"

	"github.com/google/uuid"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, error)
}

func (mock *tokenValidatorMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	if mock.ValidateTokenFunc == nil {
		panic("tokenValidatorMock.ValidateTokenFunc: method is nil but tokenValidator.ValidateToken was just called")
	}
	return mock.ValidateTokenFunc(ctx, token)
}

var _ apiTokenValidator = &apiTokenValidatorMock{}

type apiTokenValidatorMock struct {
	ValidateAPITokenFunc func(ctx context.Context, token string) (uuid.UUID, error)
}

func (mock *apiTokenValidatorMock) ValidateAPIToken(ctx context.Context, token string) (uuid.UUID, error) {
	if mock.ValidateAPITokenFunc == nil {
		panic("apiTokenValidatorMock.ValidateAPITokenFunc: method is nil but apiTokenValidator.ValidateAPIToken was just called")
	}
	return mock.ValidateAPITokenFunc(ctx, token)
}
