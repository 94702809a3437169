package slide

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg slide . slideRepo presentationRepo auditLogger txManager

var _ slideRepo = &slideRepoMock{}
var _ presentationRepo = &presentationRepoMock{}
var _ auditLogger = &auditLoggerMock{}
var _ txManager = &txManagerMock{}

type slideRepoMock struct {
	GetByIDFunc func(ctx context.Context, presentationID uuid.UUID, slideID uuid.UUID) (*domain.Slide, error)

	ListByPresentationFunc func(ctx context.Context, presentationID uuid.UUID) ([]domain.Slide, error)

	NextOrderFunc func(ctx context.Context, presentationID uuid.UUID) (int, error)

	CreateFunc func(ctx context.Context, s *domain.Slide) (*domain.Slide, error)

	UpdateFunc func(ctx context.Context, presentationID uuid.UUID, slideID uuid.UUID, params domain.SlideUpdateParams) (*domain.Slide, error)

	UpdateOrderFunc func(ctx context.Context, presentationID uuid.UUID, slideID uuid.UUID, order int) error

	ShiftOrdersAfterFunc func(ctx context.Context, presentationID uuid.UUID, order int) (int64, error)

	DeleteFunc func(ctx context.Context, presentationID uuid.UUID, slideID uuid.UUID) (int, error)

	calls struct {
		GetByID []struct {
			Ctx            context.Context
			PresentationID uuid.UUID
			SlideID        uuid.UUID
		}
		ListByPresentation []struct {
			Ctx            context.Context
			PresentationID uuid.UUID
		}
		NextOrder []struct {
			Ctx            context.Context
			PresentationID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Slide
		}
		Update []struct {
			Ctx            context.Context
			PresentationID uuid.UUID
			SlideID        uuid.UUID
			Params         domain.SlideUpdateParams
		}
		UpdateOrder []struct {
			Ctx            context.Context
			PresentationID uuid.UUID
			SlideID        uuid.UUID
			Order          int
		}
		ShiftOrdersAfter []struct {
			Ctx            context.Context
			PresentationID uuid.UUID
			Order          int
		}
		Delete []struct {
			Ctx            context.Context
			PresentationID uuid.UUID
			SlideID        uuid.UUID
		}
	}
	lockGetByID            sync.RWMutex
	lockListByPresentation sync.RWMutex
	lockNextOrder          sync.RWMutex
	lockCreate             sync.RWMutex
	lockUpdate             sync.RWMutex
	lockUpdateOrder        sync.RWMutex
	lockShiftOrdersAfter   sync.RWMutex
	lockDelete             sync.RWMutex
}

func (mock *slideRepoMock) GetByID(ctx context.Context, presentationID uuid.UUID, slideID uuid.UUID) (*domain.Slide, error) {
	if mock.GetByIDFunc == nil {
		panic("slideRepoMock.GetByIDFunc: method is nil but slideRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		PresentationID uuid.UUID
		SlideID        uuid.UUID
	}{Ctx: ctx, PresentationID: presentationID, SlideID: slideID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, presentationID, slideID)
}

func (mock *slideRepoMock) GetByIDCalls() []struct {
	Ctx            context.Context
	PresentationID uuid.UUID
	SlideID        uuid.UUID
} {
	var calls []struct {
		Ctx            context.Context
		PresentationID uuid.UUID
		SlideID        uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
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

func (mock *slideRepoMock) NextOrder(ctx context.Context, presentationID uuid.UUID) (int, error) {
	if mock.NextOrderFunc == nil {
		panic("slideRepoMock.NextOrderFunc: method is nil but slideRepo.NextOrder was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		PresentationID uuid.UUID
	}{Ctx: ctx, PresentationID: presentationID}
	mock.lockNextOrder.Lock()
	mock.calls.NextOrder = append(mock.calls.NextOrder, callInfo)
	mock.lockNextOrder.Unlock()
	return mock.NextOrderFunc(ctx, presentationID)
}

func (mock *slideRepoMock) NextOrderCalls() []struct {
	Ctx            context.Context
	PresentationID uuid.UUID
} {
	var calls []struct {
		Ctx            context.Context
		PresentationID uuid.UUID
	}
	mock.lockNextOrder.RLock()
	calls = mock.calls.NextOrder
	mock.lockNextOrder.RUnlock()
	return calls
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

func (mock *slideRepoMock) Update(ctx context.Context, presentationID uuid.UUID, slideID uuid.UUID, params domain.SlideUpdateParams) (*domain.Slide, error) {
	if mock.UpdateFunc == nil {
		panic("slideRepoMock.UpdateFunc: method is nil but slideRepo.Update was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		PresentationID uuid.UUID
		SlideID        uuid.UUID
		Params         domain.SlideUpdateParams
	}{Ctx: ctx, PresentationID: presentationID, SlideID: slideID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, presentationID, slideID, params)
}

func (mock *slideRepoMock) UpdateCalls() []struct {
	Ctx            context.Context
	PresentationID uuid.UUID
	SlideID        uuid.UUID
	Params         domain.SlideUpdateParams
} {
	var calls []struct {
		Ctx            context.Context
		PresentationID uuid.UUID
		SlideID        uuid.UUID
		Params         domain.SlideUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *slideRepoMock) UpdateOrder(ctx context.Context, presentationID uuid.UUID, slideID uuid.UUID, order int) error {
	if mock.UpdateOrderFunc == nil {
		panic("slideRepoMock.UpdateOrderFunc: method is nil but slideRepo.UpdateOrder was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		PresentationID uuid.UUID
		SlideID        uuid.UUID
		Order          int
	}{Ctx: ctx, PresentationID: presentationID, SlideID: slideID, Order: order}
	mock.lockUpdateOrder.Lock()
	mock.calls.UpdateOrder = append(mock.calls.UpdateOrder, callInfo)
	mock.lockUpdateOrder.Unlock()
	return mock.UpdateOrderFunc(ctx, presentationID, slideID, order)
}

func (mock *slideRepoMock) UpdateOrderCalls() []struct {
	Ctx            context.Context
	PresentationID uuid.UUID
	SlideID        uuid.UUID
	Order          int
} {
	var calls []struct {
		Ctx            context.Context
		PresentationID uuid.UUID
		SlideID        uuid.UUID
		Order          int
	}
	mock.lockUpdateOrder.RLock()
	calls = mock.calls.UpdateOrder
	mock.lockUpdateOrder.RUnlock()
	return calls
}

func (mock *slideRepoMock) ShiftOrdersAfter(ctx context.Context, presentationID uuid.UUID, order int) (int64, error) {
	if mock.ShiftOrdersAfterFunc == nil {
		panic("slideRepoMock.ShiftOrdersAfterFunc: method is nil but slideRepo.ShiftOrdersAfter was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		PresentationID uuid.UUID
		Order          int
	}{Ctx: ctx, PresentationID: presentationID, Order: order}
	mock.lockShiftOrdersAfter.Lock()
	mock.calls.ShiftOrdersAfter = append(mock.calls.ShiftOrdersAfter, callInfo)
	mock.lockShiftOrdersAfter.Unlock()
	return mock.ShiftOrdersAfterFunc(ctx, presentationID, order)
}

func (mock *slideRepoMock) ShiftOrdersAfterCalls() []struct {
	Ctx            context.Context
	PresentationID uuid.UUID
	Order          int
} {
	var calls []struct {
		Ctx            context.Context
		PresentationID uuid.UUID
		Order          int
	}
	mock.lockShiftOrdersAfter.RLock()
	calls = mock.calls.ShiftOrdersAfter
	mock.lockShiftOrdersAfter.RUnlock()
	return calls
}

func (mock *slideRepoMock) Delete(ctx context.Context, presentationID uuid.UUID, slideID uuid.UUID) (int, error) {
	if mock.DeleteFunc == nil {
		panic("slideRepoMock.DeleteFunc: method is nil but slideRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		PresentationID uuid.UUID
		SlideID        uuid.UUID
	}{Ctx: ctx, PresentationID: presentationID, SlideID: slideID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, presentationID, slideID)
}

func (mock *slideRepoMock) DeleteCalls() []struct {
	Ctx            context.Context
	PresentationID uuid.UUID
	SlideID        uuid.UUID
} {
	var calls []struct {
		Ctx            context.Context
		PresentationID uuid.UUID
		SlideID        uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type presentationRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, presentationID uuid.UUID) (*domain.Presentation, error)

	TouchFunc func(ctx context.Context, userID uuid.UUID, presentationID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx            context.Context
			UserID         uuid.UUID
			PresentationID uuid.UUID
		}
		Touch []struct {
			Ctx            context.Context
			UserID         uuid.UUID
			PresentationID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockTouch   sync.RWMutex
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

func (mock *presentationRepoMock) Touch(ctx context.Context, userID uuid.UUID, presentationID uuid.UUID) error {
	if mock.TouchFunc == nil {
		panic("presentationRepoMock.TouchFunc: method is nil but presentationRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		UserID         uuid.UUID
		PresentationID uuid.UUID
	}{Ctx: ctx, UserID: userID, PresentationID: presentationID}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, userID, presentationID)
}

func (mock *presentationRepoMock) TouchCalls() []struct {
	Ctx            context.Context
	UserID         uuid.UUID
	PresentationID uuid.UUID
} {
	var calls []struct {
		Ctx            context.Context
		UserID         uuid.UUID
		PresentationID uuid.UUID
	}
	mock.lockTouch.RLock()
	calls = mock.calls.Touch
	mock.lockTouch.RUnlock()
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
