package analytics

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	FindFunc func(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error)

	calls struct {
		Find []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.EventFilter
		}
	}
	lockFind sync.RWMutex
}

func (mock *eventRepoMock) Find(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error) {
	if mock.FindFunc == nil {
		panic("eventRepoMock.FindFunc: method is nil but eventRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.EventFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, userID, filter)
}

func (mock *eventRepoMock) FindCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.EventFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}
