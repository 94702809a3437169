package brainstorm

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg brainstorm . brainstormRepo auditLogger txManager

var _ brainstormRepo = &brainstormRepoMock{}
var _ auditLogger = &auditLoggerMock{}
var _ txManager = &txManagerMock{}

type brainstormRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, b *domain.Brainstorm) (*domain.Brainstorm, error)

	GetByIDFunc func(ctx context.Context, userID uuid.UUID, brainstormID uuid.UUID) (*domain.Brainstorm, error)

	UpdateFunc func(ctx context.Context, userID uuid.UUID, brainstormID uuid.UUID, params domain.BrainstormUpdateParams) (*domain.Brainstorm, error)

	DeleteFunc func(ctx context.Context, userID uuid.UUID, brainstormID uuid.UUID) error

	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Brainstorm, error)

	SearchFunc func(ctx context.Context, userID uuid.UUID, query string) ([]domain.Brainstorm, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			B      *domain.Brainstorm
		}
		GetByID []struct {
			Ctx          context.Context
			UserID       uuid.UUID
			BrainstormID uuid.UUID
		}
		Update []struct {
			Ctx          context.Context
			UserID       uuid.UUID
			BrainstormID uuid.UUID
			Params       domain.BrainstormUpdateParams
		}
		Delete []struct {
			Ctx          context.Context
			UserID       uuid.UUID
			BrainstormID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Search []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Query  string
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockListByUser sync.RWMutex
	lockSearch     sync.RWMutex
}

func (mock *brainstormRepoMock) Create(ctx context.Context, userID uuid.UUID, b *domain.Brainstorm) (*domain.Brainstorm, error) {
	if mock.CreateFunc == nil {
		panic("brainstormRepoMock.CreateFunc: method is nil but brainstormRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		B      *domain.Brainstorm
	}{Ctx: ctx, UserID: userID, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, b)
}

func (mock *brainstormRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	B      *domain.Brainstorm
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		B      *domain.Brainstorm
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *brainstormRepoMock) GetByID(ctx context.Context, userID uuid.UUID, brainstormID uuid.UUID) (*domain.Brainstorm, error) {
	if mock.GetByIDFunc == nil {
		panic("brainstormRepoMock.GetByIDFunc: method is nil but brainstormRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       uuid.UUID
		BrainstormID uuid.UUID
	}{Ctx: ctx, UserID: userID, BrainstormID: brainstormID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, brainstormID)
}

func (mock *brainstormRepoMock) GetByIDCalls() []struct {
	Ctx          context.Context
	UserID       uuid.UUID
	BrainstormID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		UserID       uuid.UUID
		BrainstormID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *brainstormRepoMock) Update(ctx context.Context, userID uuid.UUID, brainstormID uuid.UUID, params domain.BrainstormUpdateParams) (*domain.Brainstorm, error) {
	if mock.UpdateFunc == nil {
		panic("brainstormRepoMock.UpdateFunc: method is nil but brainstormRepo.Update was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       uuid.UUID
		BrainstormID uuid.UUID
		Params       domain.BrainstormUpdateParams
	}{Ctx: ctx, UserID: userID, BrainstormID: brainstormID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, brainstormID, params)
}

func (mock *brainstormRepoMock) UpdateCalls() []struct {
	Ctx          context.Context
	UserID       uuid.UUID
	BrainstormID uuid.UUID
	Params       domain.BrainstormUpdateParams
} {
	var calls []struct {
		Ctx          context.Context
		UserID       uuid.UUID
		BrainstormID uuid.UUID
		Params       domain.BrainstormUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *brainstormRepoMock) Delete(ctx context.Context, userID uuid.UUID, brainstormID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("brainstormRepoMock.DeleteFunc: method is nil but brainstormRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       uuid.UUID
		BrainstormID uuid.UUID
	}{Ctx: ctx, UserID: userID, BrainstormID: brainstormID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, brainstormID)
}

func (mock *brainstormRepoMock) DeleteCalls() []struct {
	Ctx          context.Context
	UserID       uuid.UUID
	BrainstormID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		UserID       uuid.UUID
		BrainstormID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *brainstormRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Brainstorm, error) {
	if mock.ListByUserFunc == nil {
		panic("brainstormRepoMock.ListByUserFunc: method is nil but brainstormRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *brainstormRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *brainstormRepoMock) Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.Brainstorm, error) {
	if mock.SearchFunc == nil {
		panic("brainstormRepoMock.SearchFunc: method is nil but brainstormRepo.Search was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Query  string
	}{Ctx: ctx, UserID: userID, Query: query}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, userID, query)
}

func (mock *brainstormRepoMock) SearchCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Query  string
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Query  string
	}
	mock.lockSearch.RLock()
	calls = mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	var calls []struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}
	mock.lockLog.RLock()
	calls = mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
