package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CountByCategoryFunc func(ctx context.Context, userID, categoryID uuid.UUID) (int, error)

	calls struct {
		CountByCategory []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			CategoryID uuid.UUID
		}
	}
	lockCountByCategory sync.RWMutex
}

func (mock *eventRepoMock) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error) {
	if mock.CountByCategoryFunc == nil {
		panic("eventRepoMock.CountByCategoryFunc: method is nil but eventRepo.CountByCategory was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		CategoryID uuid.UUID
	}{Ctx: ctx, UserID: userID, CategoryID: categoryID}
	mock.lockCountByCategory.Lock()
	mock.calls.CountByCategory = append(mock.calls.CountByCategory, callInfo)
	mock.lockCountByCategory.Unlock()
	return mock.CountByCategoryFunc(ctx, userID, categoryID)
}

func (mock *eventRepoMock) CountByCategoryCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	CategoryID uuid.UUID
} {
	mock.lockCountByCategory.RLock()
	calls := mock.calls.CountByCategory
	mock.lockCountByCategory.RUnlock()
	return calls
}
