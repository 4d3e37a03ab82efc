package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	CreateFunc      func(ctx context.Context, userID, areaID uuid.UUID, name string) (*domain.Category, error)
	GetByIDFunc     func(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	ListFunc        func(ctx context.Context, userID uuid.UUID, areaID *uuid.UUID) ([]domain.Category, error)
	CountByAreaFunc func(ctx context.Context, userID, areaID uuid.UUID) (int, error)
	UpdateFunc      func(ctx context.Context, userID, categoryID uuid.UUID, name string, areaID uuid.UUID) (*domain.Category, error)
	DeleteFunc      func(ctx context.Context, userID, categoryID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			AreaID uuid.UUID
			Name   string
		}
		GetByID []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			CategoryID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			AreaID *uuid.UUID
		}
		CountByArea []struct {
			Ctx    context.Context
			UserID uuid.UUID
			AreaID uuid.UUID
		}
		Update []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			CategoryID uuid.UUID
			Name       string
			AreaID     uuid.UUID
		}
		Delete []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			CategoryID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockCountByArea sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *categoryRepoMock) Create(ctx context.Context, userID, areaID uuid.UUID, name string) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		AreaID uuid.UUID
		Name   string
	}{Ctx: ctx, UserID: userID, AreaID: areaID, Name: name}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, areaID, name)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	AreaID uuid.UUID
	Name   string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		CategoryID uuid.UUID
	}{Ctx: ctx, UserID: userID, CategoryID: categoryID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, categoryID)
}

func (mock *categoryRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	CategoryID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *categoryRepoMock) List(ctx context.Context, userID uuid.UUID, areaID *uuid.UUID) ([]domain.Category, error) {
	if mock.ListFunc == nil {
		panic("categoryRepoMock.ListFunc: method is nil but categoryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		AreaID *uuid.UUID
	}{Ctx: ctx, UserID: userID, AreaID: areaID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, areaID)
}

func (mock *categoryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	AreaID *uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *categoryRepoMock) CountByArea(ctx context.Context, userID, areaID uuid.UUID) (int, error) {
	if mock.CountByAreaFunc == nil {
		panic("categoryRepoMock.CountByAreaFunc: method is nil but categoryRepo.CountByArea was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		AreaID uuid.UUID
	}{Ctx: ctx, UserID: userID, AreaID: areaID}
	mock.lockCountByArea.Lock()
	mock.calls.CountByArea = append(mock.calls.CountByArea, callInfo)
	mock.lockCountByArea.Unlock()
	return mock.CountByAreaFunc(ctx, userID, areaID)
}

func (mock *categoryRepoMock) CountByAreaCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	AreaID uuid.UUID
} {
	mock.lockCountByArea.RLock()
	calls := mock.calls.CountByArea
	mock.lockCountByArea.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Update(ctx context.Context, userID, categoryID uuid.UUID, name string, areaID uuid.UUID) (*domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryRepoMock.UpdateFunc: method is nil but categoryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		CategoryID uuid.UUID
		Name       string
		AreaID     uuid.UUID
	}{Ctx: ctx, UserID: userID, CategoryID: categoryID, Name: name, AreaID: areaID}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, categoryID, name, areaID)
}

func (mock *categoryRepoMock) UpdateCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Name       string
	AreaID     uuid.UUID
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("categoryRepoMock.DeleteFunc: method is nil but categoryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		CategoryID uuid.UUID
	}{Ctx: ctx, UserID: userID, CategoryID: categoryID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, categoryID)
}

func (mock *categoryRepoMock) DeleteCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	CategoryID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
