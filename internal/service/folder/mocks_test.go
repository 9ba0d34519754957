package folder

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/element-hunter/backend/internal/domain"
)

var _ folderRepo = &folderRepoMock{}

type folderRepoMock struct {
	CreateFunc            func(ctx context.Context, f *domain.Folder) (*domain.Folder, error)
	GetByIDFunc           func(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error)
	ListWithScansFunc     func(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error)
	DeleteFunc            func(ctx context.Context, userID, folderID uuid.UUID) error
	DeleteMembershipsFunc func(ctx context.Context, folderID uuid.UUID) error
	AttachScansFunc       func(ctx context.Context, folderID uuid.UUID, scanIDs []uuid.UUID) (int, error)
	DetachScanFunc        func(ctx context.Context, folderID, scanID uuid.UUID) (int, error)

	calls struct {
		Create            []*domain.Folder
		Delete            []uuid.UUID
		DeleteMemberships []uuid.UUID
		AttachScans       [][]uuid.UUID
		DetachScan        []uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *folderRepoMock) Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error) {
	if mock.CreateFunc == nil {
		panic("folderRepoMock.CreateFunc: method is nil but folderRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, f)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *folderRepoMock) CreateCalls() []*domain.Folder {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *folderRepoMock) GetByID(ctx context.Context, userID, folderID uuid.UUID) (*domain.Folder, error) {
	if mock.GetByIDFunc == nil {
		panic("folderRepoMock.GetByIDFunc: method is nil but folderRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, folderID)
}

func (mock *folderRepoMock) ListWithScans(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	if mock.ListWithScansFunc == nil {
		panic("folderRepoMock.ListWithScansFunc: method is nil but folderRepo.ListWithScans was just called")
	}
	return mock.ListWithScansFunc(ctx, userID)
}

func (mock *folderRepoMock) Delete(ctx context.Context, userID, folderID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("folderRepoMock.DeleteFunc: method is nil but folderRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, folderID)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, folderID)
}

func (mock *folderRepoMock) DeleteCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *folderRepoMock) DeleteMemberships(ctx context.Context, folderID uuid.UUID) error {
	if mock.DeleteMembershipsFunc == nil {
		panic("folderRepoMock.DeleteMembershipsFunc: method is nil but folderRepo.DeleteMemberships was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteMemberships = append(mock.calls.DeleteMemberships, folderID)
	mock.lock.Unlock()
	return mock.DeleteMembershipsFunc(ctx, folderID)
}

func (mock *folderRepoMock) DeleteMembershipsCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteMemberships
}

func (mock *folderRepoMock) AttachScans(ctx context.Context, folderID uuid.UUID, scanIDs []uuid.UUID) (int, error) {
	if mock.AttachScansFunc == nil {
		panic("folderRepoMock.AttachScansFunc: method is nil but folderRepo.AttachScans was just called")
	}
	mock.lock.Lock()
	mock.calls.AttachScans = append(mock.calls.AttachScans, scanIDs)
	mock.lock.Unlock()
	return mock.AttachScansFunc(ctx, folderID, scanIDs)
}

func (mock *folderRepoMock) AttachScansCalls() [][]uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AttachScans
}

func (mock *folderRepoMock) DetachScan(ctx context.Context, folderID, scanID uuid.UUID) (int, error) {
	if mock.DetachScanFunc == nil {
		panic("folderRepoMock.DetachScanFunc: method is nil but folderRepo.DetachScan was just called")
	}
	mock.lock.Lock()
	mock.calls.DetachScan = append(mock.calls.DetachScan, scanID)
	mock.lock.Unlock()
	return mock.DetachScanFunc(ctx, folderID, scanID)
}

func (mock *folderRepoMock) DetachScanCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DetachScan
}

var _ scanRepo = &scanRepoMock{}

type scanRepoMock struct {
	FilterOwnedIDsFunc func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		FilterOwnedIDs [][]uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *scanRepoMock) FilterOwnedIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.FilterOwnedIDsFunc == nil {
		panic("scanRepoMock.FilterOwnedIDsFunc: method is nil but scanRepo.FilterOwnedIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.FilterOwnedIDs = append(mock.calls.FilterOwnedIDs, ids)
	mock.lock.Unlock()
	return mock.FilterOwnedIDsFunc(ctx, userID, ids)
}

func (mock *scanRepoMock) FilterOwnedIDsCalls() [][]uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FilterOwnedIDs
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx int
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx++
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() int {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
