package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

var _ areaRepo = &areaRepoMock{}

type areaRepoMock struct {
	CreateFunc  func(ctx context.Context, userID uuid.UUID, name string) (*domain.Area, error)
	GetByIDFunc func(ctx context.Context, userID, areaID uuid.UUID) (*domain.Area, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Area, error)
	RenameFunc  func(ctx context.Context, userID, areaID uuid.UUID, name string) (*domain.Area, error)
	DeleteFunc  func(ctx context.Context, userID, areaID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Name   string
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			AreaID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Rename []struct {
			Ctx    context.Context
			UserID uuid.UUID
			AreaID uuid.UUID
			Name   string
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			AreaID uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockRename  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *areaRepoMock) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Area, error) {
	if mock.CreateFunc == nil {
		panic("areaRepoMock.CreateFunc: method is nil but areaRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Name   string
	}{Ctx: ctx, UserID: userID, Name: name}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, name)
}

func (mock *areaRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Name   string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *areaRepoMock) GetByID(ctx context.Context, userID, areaID uuid.UUID) (*domain.Area, error) {
	if mock.GetByIDFunc == nil {
		panic("areaRepoMock.GetByIDFunc: method is nil but areaRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		AreaID uuid.UUID
	}{Ctx: ctx, UserID: userID, AreaID: areaID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, areaID)
}

func (mock *areaRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	AreaID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *areaRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Area, error) {
	if mock.ListFunc == nil {
		panic("areaRepoMock.ListFunc: method is nil but areaRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *areaRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *areaRepoMock) Rename(ctx context.Context, userID, areaID uuid.UUID, name string) (*domain.Area, error) {
	if mock.RenameFunc == nil {
		panic("areaRepoMock.RenameFunc: method is nil but areaRepo.Rename was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		AreaID uuid.UUID
		Name   string
	}{Ctx: ctx, UserID: userID, AreaID: areaID, Name: name}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, userID, areaID, name)
}

func (mock *areaRepoMock) RenameCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	AreaID uuid.UUID
	Name   string
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *areaRepoMock) Delete(ctx context.Context, userID, areaID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("areaRepoMock.DeleteFunc: method is nil but areaRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		AreaID uuid.UUID
	}{Ctx: ctx, UserID: userID, AreaID: areaID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, areaID)
}

func (mock *areaRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	AreaID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
