package imagegen

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg imagegen . imageGenerator libraryRepo

var _ imageGenerator = &imageGeneratorMock{}
var _ libraryRepo = &libraryRepoMock{}

type imageGeneratorMock struct {
	HasCredentialFunc func() bool

	GenerateFunc func(ctx context.Context, model string, prompt string, size string) ([]string, error)

	calls struct {
		HasCredential []struct {
		}
		Generate []struct {
			Ctx    context.Context
			Model  string
			Prompt string
			Size   string
		}
	}
	lockHasCredential sync.RWMutex
	lockGenerate      sync.RWMutex
}

func (mock *imageGeneratorMock) HasCredential() bool {
	if mock.HasCredentialFunc == nil {
		panic("imageGeneratorMock.HasCredentialFunc: method is nil but imageGenerator.HasCredential was just called")
	}
	callInfo := struct {
	}{}
	mock.lockHasCredential.Lock()
	mock.calls.HasCredential = append(mock.calls.HasCredential, callInfo)
	mock.lockHasCredential.Unlock()
	return mock.HasCredentialFunc()
}

func (mock *imageGeneratorMock) HasCredentialCalls() []struct {
} {
	var calls []struct {
	}
	mock.lockHasCredential.RLock()
	calls = mock.calls.HasCredential
	mock.lockHasCredential.RUnlock()
	return calls
}

func (mock *imageGeneratorMock) Generate(ctx context.Context, model string, prompt string, size string) ([]string, error) {
	if mock.GenerateFunc == nil {
		panic("imageGeneratorMock.GenerateFunc: method is nil but imageGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Model  string
		Prompt string
		Size   string
	}{Ctx: ctx, Model: model, Prompt: prompt, Size: size}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, model, prompt, size)
}

func (mock *imageGeneratorMock) GenerateCalls() []struct {
	Ctx    context.Context
	Model  string
	Prompt string
	Size   string
} {
	var calls []struct {
		Ctx    context.Context
		Model  string
		Prompt string
		Size   string
	}
	mock.lockGenerate.RLock()
	calls = mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

type libraryRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, entry *domain.ImageLibraryEntry) (*domain.ImageLibraryEntry, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Entry  *domain.ImageLibraryEntry
		}
	}
	lockCreate sync.RWMutex
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
