package contextprofile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg contextprofile . profileRepo auditLogger txManager

var _ profileRepo = &profileRepoMock{}
var _ auditLogger = &auditLoggerMock{}
var _ txManager = &txManagerMock{}

type profileRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, p *domain.ContextProfile) (*domain.ContextProfile, error)

	GetByIDFunc func(ctx context.Context, userID uuid.UUID, profileID uuid.UUID) (*domain.ContextProfile, error)

	UpdateFunc func(ctx context.Context, userID uuid.UUID, profileID uuid.UUID, params domain.ContextProfileUpdateParams) (*domain.ContextProfile, error)

	DeleteFunc func(ctx context.Context, userID uuid.UUID, profileID uuid.UUID) error

	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ContextProfile, error)

	SearchFunc func(ctx context.Context, userID uuid.UUID, query string) ([]domain.ContextProfile, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			P      *domain.ContextProfile
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProfileID uuid.UUID
		}
		Update []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProfileID uuid.UUID
			Params    domain.ContextProfileUpdateParams
		}
		Delete []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProfileID uuid.UUID
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

func (mock *profileRepoMock) Create(ctx context.Context, userID uuid.UUID, p *domain.ContextProfile) (*domain.ContextProfile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		P      *domain.ContextProfile
	}{Ctx: ctx, UserID: userID, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, p)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	P      *domain.ContextProfile
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		P      *domain.ContextProfile
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByID(ctx context.Context, userID uuid.UUID, profileID uuid.UUID) (*domain.ContextProfile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProfileID uuid.UUID
	}{Ctx: ctx, UserID: userID, ProfileID: profileID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, profileID)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProfileID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProfileID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) Update(ctx context.Context, userID uuid.UUID, profileID uuid.UUID, params domain.ContextProfileUpdateParams) (*domain.ContextProfile, error) {
	if mock.UpdateFunc == nil {
		panic("profileRepoMock.UpdateFunc: method is nil but profileRepo.Update was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProfileID uuid.UUID
		Params    domain.ContextProfileUpdateParams
	}{Ctx: ctx, UserID: userID, ProfileID: profileID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, profileID, params)
}

func (mock *profileRepoMock) UpdateCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProfileID uuid.UUID
	Params    domain.ContextProfileUpdateParams
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProfileID uuid.UUID
		Params    domain.ContextProfileUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *profileRepoMock) Delete(ctx context.Context, userID uuid.UUID, profileID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("profileRepoMock.DeleteFunc: method is nil but profileRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProfileID uuid.UUID
	}{Ctx: ctx, UserID: userID, ProfileID: profileID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, profileID)
}

func (mock *profileRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProfileID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProfileID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *profileRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContextProfile, error) {
	if mock.ListByUserFunc == nil {
		panic("profileRepoMock.ListByUserFunc: method is nil but profileRepo.ListByUser was just called")
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

func (mock *profileRepoMock) ListByUserCalls() []struct {
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

func (mock *profileRepoMock) Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.ContextProfile, error) {
	if mock.SearchFunc == nil {
		panic("profileRepoMock.SearchFunc: method is nil but profileRepo.Search was just called")
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

func (mock *profileRepoMock) SearchCalls() []struct {
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
