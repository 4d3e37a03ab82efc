package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/adapter/postgres/event"
	"github.com/okoshkin/lifelog-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc         func(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetByIDFunc        func(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error)
	FindFunc           func(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error)
	CountFunc          func(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) (int, error)
	UpdateFunc         func(ctx context.Context, userID, eventID uuid.UUID, categoryID uuid.UUID, occurredAt time.Time, comment string, durationMinutes *int, extraPayload map[string]any) (*domain.Event, error)
	DeleteFunc         func(ctx context.Context, userID, eventID uuid.UUID) error
	ListExportRowsFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]event.ExportRow, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Event
		}
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EventID uuid.UUID
		}
		Find []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.EventFilter
		}
		Count []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.EventFilter
		}
		Update []struct {
			Ctx             context.Context
			UserID          uuid.UUID
			EventID         uuid.UUID
			CategoryID      uuid.UUID
			OccurredAt      time.Time
			Comment         string
			DurationMinutes *int
			ExtraPayload    map[string]any
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EventID uuid.UUID
		}
		ListExportRows []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
			Limit  int
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockFind           sync.RWMutex
	lockCount          sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockListExportRows sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Event
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Event
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EventID uuid.UUID
	}{Ctx: ctx, UserID: userID, EventID: eventID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, eventID)
}

func (mock *eventRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EventID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
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

func (mock *eventRepoMock) Count(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("eventRepoMock.CountFunc: method is nil but eventRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.EventFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, userID, filter)
}

func (mock *eventRepoMock) CountCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.EventFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *eventRepoMock) Update(ctx context.Context, userID, eventID uuid.UUID, categoryID uuid.UUID, occurredAt time.Time, comment string, durationMinutes *int, extraPayload map[string]any) (*domain.Event, error) {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		UserID          uuid.UUID
		EventID         uuid.UUID
		CategoryID      uuid.UUID
		OccurredAt      time.Time
		Comment         string
		DurationMinutes *int
		ExtraPayload    map[string]any
	}{Ctx: ctx, UserID: userID, EventID: eventID, CategoryID: categoryID, OccurredAt: occurredAt, Comment: comment, DurationMinutes: durationMinutes, ExtraPayload: extraPayload}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, eventID, categoryID, occurredAt, comment, durationMinutes, extraPayload)
}

func (mock *eventRepoMock) UpdateCalls() []struct {
	Ctx             context.Context
	UserID          uuid.UUID
	EventID         uuid.UUID
	CategoryID      uuid.UUID
	OccurredAt      time.Time
	Comment         string
	DurationMinutes *int
	ExtraPayload    map[string]any
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EventID uuid.UUID
	}{Ctx: ctx, UserID: userID, EventID: eventID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, eventID)
}

func (mock *eventRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EventID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListExportRows(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]event.ExportRow, error) {
	if mock.ListExportRowsFunc == nil {
		panic("eventRepoMock.ListExportRowsFunc: method is nil but eventRepo.ListExportRows was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
		Limit  int
	}{Ctx: ctx, UserID: userID, From: from, To: to, Limit: limit}
	mock.lockListExportRows.Lock()
	mock.calls.ListExportRows = append(mock.calls.ListExportRows, callInfo)
	mock.lockListExportRows.Unlock()
	return mock.ListExportRowsFunc(ctx, userID, from, to, limit)
}

func (mock *eventRepoMock) ListExportRowsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
	Limit  int
} {
	mock.lockListExportRows.RLock()
	calls := mock.calls.ListExportRows
	mock.lockListExportRows.RUnlock()
	return calls
}
