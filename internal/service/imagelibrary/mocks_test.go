package imagelibrary

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg imagelibrary . libraryRepo auditLogger txManager

var _ libraryRepo = &libraryRepoMock{}
var _ auditLogger = &auditLoggerMock{}
var _ txManager = &txManagerMock{}

type libraryRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, entry *domain.ImageLibraryEntry) (*domain.ImageLibraryEntry, error)

	ListFunc func(ctx context.Context, userID uuid.UUID, filter domain.ImageLibraryFilter) ([]domain.ImageLibraryEntry, error)

	StatsFunc func(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.ImageLibraryStats, error)

	UpdateTagsFunc func(ctx context.Context, userID uuid.UUID, imageID uuid.UUID, tags []string) (*domain.ImageLibraryEntry, error)

	DeleteFunc func(ctx context.Context, userID uuid.UUID, imageID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Entry  *domain.ImageLibraryEntry
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.ImageLibraryFilter
		}
		Stats []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
		}
		UpdateTags []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			ImageID uuid.UUID
			Tags    []string
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			ImageID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockList       sync.RWMutex
	lockStats      sync.RWMutex
	lockUpdateTags sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *libraryRepoMock) Create(ctx context.Context, userID uuid.UUID, entry *domain.ImageLibraryEntry) (*domain.ImageLibraryEntry, error) {
	if mock.CreateFunc == nil {
		panic("libraryRepoMock.CreateFunc: method is nil but libraryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Entry  *domain.ImageLibraryEntry
	}{Ctx: ctx, UserID: userID, Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, entry)
}

func (mock *libraryRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Entry  *domain.ImageLibraryEntry
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Entry  *domain.ImageLibraryEntry
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *libraryRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.ImageLibraryFilter) ([]domain.ImageLibraryEntry, error) {
	if mock.ListFunc == nil {
		panic("libraryRepoMock.ListFunc: method is nil but libraryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.ImageLibraryFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *libraryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.ImageLibraryFilter
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.ImageLibraryFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *libraryRepoMock) Stats(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.ImageLibraryStats, error) {
	if mock.StatsFunc == nil {
		panic("libraryRepoMock.StatsFunc: method is nil but libraryRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
	}{Ctx: ctx, UserID: userID, Now: now}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, userID, now)
}

func (mock *libraryRepoMock) StatsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
	}
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *libraryRepoMock) UpdateTags(ctx context.Context, userID uuid.UUID, imageID uuid.UUID, tags []string) (*domain.ImageLibraryEntry, error) {
	if mock.UpdateTagsFunc == nil {
		panic("libraryRepoMock.UpdateTagsFunc: method is nil but libraryRepo.UpdateTags was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		ImageID uuid.UUID
		Tags    []string
	}{Ctx: ctx, UserID: userID, ImageID: imageID, Tags: tags}
	mock.lockUpdateTags.Lock()
	mock.calls.UpdateTags = append(mock.calls.UpdateTags, callInfo)
	mock.lockUpdateTags.Unlock()
	return mock.UpdateTagsFunc(ctx, userID, imageID, tags)
}

func (mock *libraryRepoMock) UpdateTagsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	ImageID uuid.UUID
	Tags    []string
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		ImageID uuid.UUID
		Tags    []string
	}
	mock.lockUpdateTags.RLock()
	calls = mock.calls.UpdateTags
	mock.lockUpdateTags.RUnlock()
	return calls
}

func (mock *libraryRepoMock) Delete(ctx context.Context, userID uuid.UUID, imageID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("libraryRepoMock.DeleteFunc: method is nil but libraryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		ImageID uuid.UUID
	}{Ctx: ctx, UserID: userID, ImageID: imageID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, imageID)
}

func (mock *libraryRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	ImageID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		ImageID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
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
