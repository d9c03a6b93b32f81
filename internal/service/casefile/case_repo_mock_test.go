package casefile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
)

var _ caseRepo = &caseRepoMock{}

type caseRepoMock struct {
	CreateFunc      func(ctx context.Context, c *domain.Case) (*domain.Case, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	GetSnapshotFunc func(ctx context.Context, id uuid.UUID) (*domain.CaseSnapshot, error)
	ListFunc        func(ctx context.Context, filter domain.CaseFilter) ([]domain.CaseSnapshot, error)
	UpdateStateFunc func(ctx context.Context, id uuid.UUID, from, to domain.CaseState) (bool, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Case
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetSnapshot []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.CaseFilter
		}
		UpdateState []struct {
			Ctx  context.Context
			ID   uuid.UUID
			From domain.CaseState
			To   domain.CaseState
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockGetSnapshot sync.RWMutex
	lockList        sync.RWMutex
	lockUpdateState sync.RWMutex
}

func (mock *caseRepoMock) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	if mock.CreateFunc == nil {
		panic("caseRepoMock.CreateFunc: method is nil but caseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Case
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *caseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Case
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *caseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	if mock.GetByIDFunc == nil {
		panic("caseRepoMock.GetByIDFunc: method is nil but caseRepo.GetByID was just called")
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

func (mock *caseRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *caseRepoMock) GetSnapshot(ctx context.Context, id uuid.UUID) (*domain.CaseSnapshot, error) {
	if mock.GetSnapshotFunc == nil {
		panic("caseRepoMock.GetSnapshotFunc: method is nil but caseRepo.GetSnapshot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetSnapshot.Lock()
	mock.calls.GetSnapshot = append(mock.calls.GetSnapshot, callInfo)
	mock.lockGetSnapshot.Unlock()
	return mock.GetSnapshotFunc(ctx, id)
}

func (mock *caseRepoMock) GetSnapshotCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetSnapshot.RLock()
	calls := mock.calls.GetSnapshot
	mock.lockGetSnapshot.RUnlock()
	return calls
}

func (mock *caseRepoMock) List(ctx context.Context, filter domain.CaseFilter) ([]domain.CaseSnapshot, error) {
	if mock.ListFunc == nil {
		panic("caseRepoMock.ListFunc: method is nil but caseRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CaseFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *caseRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.CaseFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *caseRepoMock) UpdateState(ctx context.Context, id uuid.UUID, from, to domain.CaseState) (bool, error) {
	if mock.UpdateStateFunc == nil {
		panic("caseRepoMock.UpdateStateFunc: method is nil but caseRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		From domain.CaseState
		To   domain.CaseState
	}{Ctx: ctx, ID: id, From: from, To: to}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, id, from, to)
}

func (mock *caseRepoMock) UpdateStateCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	From domain.CaseState
	To   domain.CaseState
} {
	mock.lockUpdateState.RLock()
	calls := mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}
