package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc         func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	GetByAPITokenFunc  func(ctx context.Context, token string) (*domain.User, error)
	UpdateAPITokenFunc func(ctx context.Context, userID uuid.UUID, token string) (*domain.User, error)

	calls struct {
		Create         []*domain.User
		GetByEmail     []string
		UpdateAPIToken []string
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, user)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []*domain.User {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, email)
	mock.lock.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []string {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByEmail
}

func (mock *userRepoMock) GetByAPIToken(ctx context.Context, token string) (*domain.User, error) {
	if mock.GetByAPITokenFunc == nil {
		panic("userRepoMock.GetByAPITokenFunc: method is nil but userRepo.GetByAPIToken was just called")
	}
	return mock.GetByAPITokenFunc(ctx, token)
}

func (mock *userRepoMock) UpdateAPIToken(ctx context.Context, userID uuid.UUID, token string) (*domain.User, error) {
	if mock.UpdateAPITokenFunc == nil {
		panic("userRepoMock.UpdateAPITokenFunc: method is nil but userRepo.UpdateAPIToken was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateAPIToken = append(mock.calls.UpdateAPIToken, token)
	mock.lock.Unlock()
	return mock.UpdateAPITokenFunc(ctx, userID, token)
}

func (mock *userRepoMock) UpdateAPITokenCalls() []string {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateAPIToken
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc          func(ctx context.Context, token *domain.RefreshToken) error
	GetByHashFunc       func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByIDFunc      func(ctx context.Context, id uuid.UUID) error
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc   func(ctx context.Context) (int, error)

	calls struct {
		Create          []*domain.RefreshToken
		RevokeByID      []uuid.UUID
		RevokeAllByUser []uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, token *domain.RefreshToken) error {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, token)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, token)
}

func (mock *tokenRepoMock) CreateCalls() []*domain.RefreshToken {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) RevokeByID(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeByIDFunc == nil {
		panic("tokenRepoMock.RevokeByIDFunc: method is nil but tokenRepo.RevokeByID was just called")
	}
	mock.lock.Lock()
	mock.calls.RevokeByID = append(mock.calls.RevokeByID, id)
	mock.lock.Unlock()
	return mock.RevokeByIDFunc(ctx, id)
}

func (mock *tokenRepoMock) RevokeByIDCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RevokeByID
}

func (mock *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RevokeAllByUserFunc == nil {
		panic("tokenRepoMock.RevokeAllByUserFunc: method is nil but tokenRepo.RevokeAllByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.RevokeAllByUser = append(mock.calls.RevokeAllByUser, userID)
	mock.lock.Unlock()
	return mock.RevokeAllByUserFunc(ctx, userID)
}

func (mock *tokenRepoMock) RevokeAllByUserCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RevokeAllByUser
}

func (mock *tokenRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	return mock.DeleteExpiredFunc(ctx)
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, error)
	GenerateRefreshTokenFunc func() (string, string, error)

	calls struct {
		GenerateAccessToken []uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	mock.lock.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, userID)
	mock.lock.Unlock()
	return mock.GenerateAccessTokenFunc(userID)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GenerateAccessToken
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if mock.GenerateRefreshTokenFunc == nil {
		panic("jwtManagerMock.GenerateRefreshTokenFunc: method is nil but jwtManager.GenerateRefreshToken was just called")
	}
	return mock.GenerateRefreshTokenFunc()
}
