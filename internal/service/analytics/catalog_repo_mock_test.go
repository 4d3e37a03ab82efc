package analytics

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, areaID *uuid.UUID) ([]domain.Category, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			AreaID *uuid.UUID
		}
	}
	lockList sync.RWMutex
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

var _ areaRepo = &areaRepoMock{}

type areaRepoMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Area, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockList sync.RWMutex
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
