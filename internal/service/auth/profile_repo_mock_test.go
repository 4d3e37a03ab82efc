package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.Profile, error)
	CreateFunc         func(ctx context.Context, p *domain.Profile, confirmationTokenHash string) (*domain.Profile, error)
	ConfirmByTokenFunc func(ctx context.Context, tokenHash string) (*domain.Profile, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Create []struct {
			Ctx                   context.Context
			P                     *domain.Profile
			ConfirmationTokenHash string
		}
		ConfirmByToken []struct {
			Ctx       context.Context
			TokenHash string
		}
	}
	lockGetByID        sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockCreate         sync.RWMutex
	lockConfirmByToken sync.RWMutex
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if mock.GetByEmailFunc == nil {
		panic("profileRepoMock.GetByEmailFunc: method is nil but profileRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *profileRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *profileRepoMock) Create(ctx context.Context, p *domain.Profile, confirmationTokenHash string) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx                   context.Context
		P                     *domain.Profile
		ConfirmationTokenHash string
	}{Ctx: ctx, P: p, ConfirmationTokenHash: confirmationTokenHash}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p, confirmationTokenHash)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx                   context.Context
	P                     *domain.Profile
	ConfirmationTokenHash string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) ConfirmByToken(ctx context.Context, tokenHash string) (*domain.Profile, error) {
	if mock.ConfirmByTokenFunc == nil {
		panic("profileRepoMock.ConfirmByTokenFunc: method is nil but profileRepo.ConfirmByToken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockConfirmByToken.Lock()
	mock.calls.ConfirmByToken = append(mock.calls.ConfirmByToken, callInfo)
	mock.lockConfirmByToken.Unlock()
	return mock.ConfirmByTokenFunc(ctx, tokenHash)
}

func (mock *profileRepoMock) ConfirmByTokenCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockConfirmByToken.RLock()
	calls := mock.calls.ConfirmByToken
	mock.lockConfirmByToken.RUnlock()
	return calls
}
