package scan

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
)

var _ scanRepo = &scanRepoMock{}

type scanRepoMock struct {
	CreateFunc  func(ctx context.Context, s *domain.Scan) (*domain.Scan, error)
	GetByIDFunc func(ctx context.Context, userID, scanID uuid.UUID) (*domain.Scan, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, limit, offset int) ([]*domain.Scan, error)

	calls struct {
		Create []*domain.Scan
		List   []listCall
	}
	lock sync.RWMutex
}

type listCall struct {
	FolderID *uuid.UUID
	Limit    int
	Offset   int
}

func (mock *scanRepoMock) Create(ctx context.Context, s *domain.Scan) (*domain.Scan, error) {
	if mock.CreateFunc == nil {
		panic("scanRepoMock.CreateFunc: method is nil but scanRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, s)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *scanRepoMock) CreateCalls() []*domain.Scan {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *scanRepoMock) GetByID(ctx context.Context, userID, scanID uuid.UUID) (*domain.Scan, error) {
	if mock.GetByIDFunc == nil {
		panic("scanRepoMock.GetByIDFunc: method is nil but scanRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, scanID)
}

func (mock *scanRepoMock) List(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, limit, offset int) ([]*domain.Scan, error) {
	if mock.ListFunc == nil {
		panic("scanRepoMock.ListFunc: method is nil but scanRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, listCall{FolderID: folderID, Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, userID, folderID, limit, offset)
}

func (mock *scanRepoMock) ListCalls() []listCall {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

var _ folderRepo = &folderRepoMock{}

type folderRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error)
}

func (mock *folderRepoMock) GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	if mock.GetByIDFunc == nil {
		panic("folderRepoMock.GetByIDFunc: method is nil but folderRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, folderID)
}
