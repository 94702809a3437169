package presentation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/brainstorm"
	"github.com/heartmarshall/fastslide-backend/internal/service/contextprofile"
	"github.com/heartmarshall/fastslide-backend/internal/service/generation"
)

//go:generate moq -out mocks_test.go -pkg presentation . presentationRepo brainstormRepo profileRepo slideRepo brainstormService profileService slideGenerator auditLogger txManager

var _ presentationRepo = &presentationRepoMock{}
var _ brainstormRepo = &brainstormRepoMock{}
var _ profileRepo = &profileRepoMock{}
var _ slideRepo = &slideRepoMock{}
var _ brainstormService = &brainstormServiceMock{}
var _ profileService = &profileServiceMock{}
var _ slideGenerator = &slideGeneratorMock{}
var _ auditLogger = &auditLoggerMock{}
var _ txManager = &txManagerMock{}

type presentationRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, p *domain.Presentation) (*domain.Presentation, error)

	GetByIDFunc func(ctx context.Context, userID uuid.UUID, presentationID uuid.UUID) (*domain.Presentation, error)

	UpdateFunc func(ctx context.Context, userID uuid.UUID, presentationID uuid.UUID, params domain.PresentationUpdateParams) (*domain.Presentation, error)

	DeleteFunc func(ctx context.Context, userID uuid.UUID, presentationID uuid.UUID) error

	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Presentation, error)

	SearchFunc func(ctx context.Context, userID uuid.UUID, query string) ([]domain.Presentation, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			P      *domain.Presentation
		}
		GetByID []struct {
			Ctx            context.Context
			UserID         uuid.UUID
			PresentationID uuid.UUID
		}
		Update []struct {
			Ctx            context.Context
			UserID         uuid.UUID
			PresentationID uuid.UUID
			Params         domain.PresentationUpdateParams
		}
		Delete []struct {
			Ctx            context.Context
			UserID         uuid.UUID
			PresentationID uuid.UUID
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

func (mock *presentationRepoMock) Create(ctx context.Context, userID uuid.UUID, p *domain.Presentation) (*domain.Presentation, error) {
	if mock.CreateFunc == nil {
		panic("presentationRepoMock.CreateFunc: method is nil but presentationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		P      *domain.Presentation
	}{Ctx: ctx, UserID: userID, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, p)
}

func (mock *presentationRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	P      *domain.Presentation
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		P      *domain.Presentation
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *presentationRepoMock) GetByID(ctx context.Context, userID uuid.UUID, presentationID uuid.UUID) (*domain.Presentation, error) {
	if mock.GetByIDFunc == nil {
		panic("presentationRepoMock.GetByIDFunc: method is nil but presentationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		UserID         uuid.UUID
		PresentationID uuid.UUID
	}{Ctx: ctx, UserID: userID, PresentationID: presentationID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, presentationID)
}

func (mock *presentationRepoMock) GetByIDCalls() []struct {
	Ctx            context.Context
	UserID         uuid.UUID
	PresentationID uuid.UUID
} {
	var calls []struct {
		Ctx            context.Context
		UserID         uuid.UUID
		PresentationID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *presentationRepoMock) Update(ctx context.Context, userID uuid.UUID, presentationID uuid.UUID, params domain.PresentationUpdateParams) (*domain.Presentation, error) {
	if mock.UpdateFunc == nil {
		panic("presentationRepoMock.UpdateFunc: method is nil but presentationRepo.Update was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		UserID         uuid.UUID
		PresentationID uuid.UUID
		Params         domain.PresentationUpdateParams
	}{Ctx: ctx, UserID: userID, PresentationID: presentationID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, presentationID, params)
}

func (mock *presentationRepoMock) UpdateCalls() []struct {
	Ctx            context.Context
	UserID         uuid.UUID
	PresentationID uuid.UUID
	Params         domain.PresentationUpdateParams
} {
	var calls []struct {
		Ctx            context.Context
		UserID         uuid.UUID
		PresentationID uuid.UUID
		Params         domain.PresentationUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *presentationRepoMock) Delete(ctx context.Context, userID uuid.UUID, presentationID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("presentationRepoMock.DeleteFunc: method is nil but presentationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		UserID         uuid.UUID
		PresentationID uuid.UUID
	}{Ctx: ctx, UserID: userID, PresentationID: presentationID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, presentationID)
}

func (mock *presentationRepoMock) DeleteCalls() []struct {
	Ctx            context.Context
	UserID         uuid.UUID
	PresentationID uuid.UUID
} {
	var calls []struct {
		Ctx            context.Context
		UserID         uuid.UUID
		PresentationID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *presentationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Presentation, error) {
	if mock.ListByUserFunc == nil {
		panic("presentationRepoMock.ListByUserFunc: method is nil but presentationRepo.ListByUser was just called")
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

func (mock *presentationRepoMock) ListByUserCalls() []struct {
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

func (mock *presentationRepoMock) Search(ctx context.Context, userID uuid.UUID, query string) ([]domain.Presentation, error) {
	if mock.SearchFunc == nil {
		panic("presentationRepoMock.SearchFunc: method is nil but presentationRepo.Search was just called")
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

func (mock *presentationRepoMock) SearchCalls() []struct {
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

type brainstormRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, brainstormID uuid.UUID) (*domain.Brainstorm, error)

	calls struct {
		GetByID []struct {
			Ctx          context.Context
			UserID       uuid.UUID
			BrainstormID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

type profileRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, profileID uuid.UUID) (*domain.ContextProfile, error)

	calls struct {
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProfileID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

type slideRepoMock struct {
	CreateFunc func(ctx context.Context, s *domain.Slide) (*domain.Slide, error)

	ListByPresentationFunc func(ctx context.Context, presentationID uuid.UUID) ([]domain.Slide, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Slide
		}
		ListByPresentation []struct {
			Ctx            context.Context
			PresentationID uuid.UUID
		}
	}
	lockCreate             sync.RWMutex
	lockListByPresentation sync.RWMutex
}

func (mock *slideRepoMock) Create(ctx context.Context, s *domain.Slide) (*domain.Slide, error) {
	if mock.CreateFunc == nil {
		panic("slideRepoMock.CreateFunc: method is nil but slideRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Slide
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *slideRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Slide
} {
	var calls []struct {
		Ctx context.Context
		S   *domain.Slide
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *slideRepoMock) ListByPresentation(ctx context.Context, presentationID uuid.UUID) ([]domain.Slide, error) {
	if mock.ListByPresentationFunc == nil {
		panic("slideRepoMock.ListByPresentationFunc: method is nil but slideRepo.ListByPresentation was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		PresentationID uuid.UUID
	}{Ctx: ctx, PresentationID: presentationID}
	mock.lockListByPresentation.Lock()
	mock.calls.ListByPresentation = append(mock.calls.ListByPresentation, callInfo)
	mock.lockListByPresentation.Unlock()
	return mock.ListByPresentationFunc(ctx, presentationID)
}

func (mock *slideRepoMock) ListByPresentationCalls() []struct {
	Ctx            context.Context
	PresentationID uuid.UUID
} {
	var calls []struct {
		Ctx            context.Context
		PresentationID uuid.UUID
	}
	mock.lockListByPresentation.RLock()
	calls = mock.calls.ListByPresentation
	mock.lockListByPresentation.RUnlock()
	return calls
}

type brainstormServiceMock struct {
	CreateBrainstormFunc func(ctx context.Context, input brainstorm.CreateBrainstormInput) (*domain.Brainstorm, error)

	calls struct {
		CreateBrainstorm []struct {
			Ctx   context.Context
			Input brainstorm.CreateBrainstormInput
		}
	}
	lockCreateBrainstorm sync.RWMutex
}

func (mock *brainstormServiceMock) CreateBrainstorm(ctx context.Context, input brainstorm.CreateBrainstormInput) (*domain.Brainstorm, error) {
	if mock.CreateBrainstormFunc == nil {
		panic("brainstormServiceMock.CreateBrainstormFunc: method is nil but brainstormService.CreateBrainstorm was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input brainstorm.CreateBrainstormInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateBrainstorm.Lock()
	mock.calls.CreateBrainstorm = append(mock.calls.CreateBrainstorm, callInfo)
	mock.lockCreateBrainstorm.Unlock()
	return mock.CreateBrainstormFunc(ctx, input)
}

func (mock *brainstormServiceMock) CreateBrainstormCalls() []struct {
	Ctx   context.Context
	Input brainstorm.CreateBrainstormInput
} {
	var calls []struct {
		Ctx   context.Context
		Input brainstorm.CreateBrainstormInput
	}
	mock.lockCreateBrainstorm.RLock()
	calls = mock.calls.CreateBrainstorm
	mock.lockCreateBrainstorm.RUnlock()
	return calls
}

type profileServiceMock struct {
	CreateDefaultProfileFunc func(ctx context.Context, input contextprofile.CreateDefaultInput) (*domain.ContextProfile, error)

	calls struct {
		CreateDefaultProfile []struct {
			Ctx   context.Context
			Input contextprofile.CreateDefaultInput
		}
	}
	lockCreateDefaultProfile sync.RWMutex
}

func (mock *profileServiceMock) CreateDefaultProfile(ctx context.Context, input contextprofile.CreateDefaultInput) (*domain.ContextProfile, error) {
	if mock.CreateDefaultProfileFunc == nil {
		panic("profileServiceMock.CreateDefaultProfileFunc: method is nil but profileService.CreateDefaultProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contextprofile.CreateDefaultInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateDefaultProfile.Lock()
	mock.calls.CreateDefaultProfile = append(mock.calls.CreateDefaultProfile, callInfo)
	mock.lockCreateDefaultProfile.Unlock()
	return mock.CreateDefaultProfileFunc(ctx, input)
}

func (mock *profileServiceMock) CreateDefaultProfileCalls() []struct {
	Ctx   context.Context
	Input contextprofile.CreateDefaultInput
} {
	var calls []struct {
		Ctx   context.Context
		Input contextprofile.CreateDefaultInput
	}
	mock.lockCreateDefaultProfile.RLock()
	calls = mock.calls.CreateDefaultProfile
	mock.lockCreateDefaultProfile.RUnlock()
	return calls
}

type slideGeneratorMock struct {
	GenerateSlidesFunc func(ctx context.Context, input generation.GenerateSlidesInput) []domain.AIGeneratedSlide

	calls struct {
		GenerateSlides []struct {
			Ctx   context.Context
			Input generation.GenerateSlidesInput
		}
	}
	lockGenerateSlides sync.RWMutex
}

func (mock *slideGeneratorMock) GenerateSlides(ctx context.Context, input generation.GenerateSlidesInput) []domain.AIGeneratedSlide {
	if mock.GenerateSlidesFunc == nil {
		panic("slideGeneratorMock.GenerateSlidesFunc: method is nil but slideGenerator.GenerateSlides was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input generation.GenerateSlidesInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerateSlides.Lock()
	mock.calls.GenerateSlides = append(mock.calls.GenerateSlides, callInfo)
	mock.lockGenerateSlides.Unlock()
	return mock.GenerateSlidesFunc(ctx, input)
}

func (mock *slideGeneratorMock) GenerateSlidesCalls() []struct {
	Ctx   context.Context
	Input generation.GenerateSlidesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input generation.GenerateSlidesInput
	}
	mock.lockGenerateSlides.RLock()
	calls = mock.calls.GenerateSlides
	mock.lockGenerateSlides.RUnlock()
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
