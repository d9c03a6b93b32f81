package evidence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
)

var _ evidenceRepo = &evidenceRepoMock{}

type evidenceRepoMock struct {
	CreateFunc     func(ctx context.Context, item *domain.EvidenceItem) (*domain.EvidenceItem, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.EvidenceItem, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, item *domain.EvidenceItem) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	ListByCaseFunc func(ctx context.Context, caseID uuid.UUID) ([]domain.EvidenceSnapshot, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item *domain.EvidenceItem
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Item *domain.EvidenceItem
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByCase []struct {
			Ctx    context.Context
			CaseID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockListByCase sync.RWMutex
}

func (mock *evidenceRepoMock) Create(ctx context.Context, item *domain.EvidenceItem) (*domain.EvidenceItem, error) {
	if mock.CreateFunc == nil {
		panic("evidenceRepoMock.CreateFunc: method is nil but evidenceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.EvidenceItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *evidenceRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.EvidenceItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *evidenceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.EvidenceItem, error) {
	if mock.GetByIDFunc == nil {
		panic("evidenceRepoMock.GetByIDFunc: method is nil but evidenceRepo.GetByID was just called")
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

func (mock *evidenceRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *evidenceRepoMock) Update(ctx context.Context, id uuid.UUID, item *domain.EvidenceItem) error {
	if mock.UpdateFunc == nil {
		panic("evidenceRepoMock.UpdateFunc: method is nil but evidenceRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Item *domain.EvidenceItem
	}{Ctx: ctx, ID: id, Item: item}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, item)
}

func (mock *evidenceRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Item *domain.EvidenceItem
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *evidenceRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("evidenceRepoMock.DeleteFunc: method is nil but evidenceRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *evidenceRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *evidenceRepoMock) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.EvidenceSnapshot, error) {
	if mock.ListByCaseFunc == nil {
		panic("evidenceRepoMock.ListByCaseFunc: method is nil but evidenceRepo.ListByCase was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}{Ctx: ctx, CaseID: caseID}
	mock.lockListByCase.Lock()
	mock.calls.ListByCase = append(mock.calls.ListByCase, callInfo)
	mock.lockListByCase.Unlock()
	return mock.ListByCaseFunc(ctx, caseID)
}

func (mock *evidenceRepoMock) ListByCaseCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
} {
	mock.lockListByCase.RLock()
	calls := mock.calls.ListByCase
	mock.lockListByCase.RUnlock()
	return calls
}
