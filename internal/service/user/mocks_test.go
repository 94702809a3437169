package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg user . userRepo

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	GetOrCreateByEmailFunc func(ctx context.Context, email string, name string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetOrCreateByEmail []struct {
			Ctx   context.Context
			Email string
			Name  string
		}
	}
	lockGetByID            sync.RWMutex
	lockGetOrCreateByEmail sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetOrCreateByEmail(ctx context.Context, email string, name string) (*domain.User, error) {
	if mock.GetOrCreateByEmailFunc == nil {
		panic("userRepoMock.GetOrCreateByEmailFunc: method is nil but userRepo.GetOrCreateByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Name  string
	}{Ctx: ctx, Email: email, Name: name}
	mock.lockGetOrCreateByEmail.Lock()
	mock.calls.GetOrCreateByEmail = append(mock.calls.GetOrCreateByEmail, callInfo)
	mock.lockGetOrCreateByEmail.Unlock()
	return mock.GetOrCreateByEmailFunc(ctx, email, name)
}

func (mock *userRepoMock) GetOrCreateByEmailCalls() []struct {
	Ctx   context.Context
	Email string
	Name  string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
		Name  string
	}
	mock.lockGetOrCreateByEmail.RLock()
	calls = mock.calls.GetOrCreateByEmail
	mock.lockGetOrCreateByEmail.RUnlock()
	return calls
}
