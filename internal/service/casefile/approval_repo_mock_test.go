package casefile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
)

var _ approvalRepo = &approvalRepoMock{}

type approvalRepoMock struct {
	CreateFunc     func(ctx context.Context, a *domain.Approval) (*domain.Approval, error)
	ListByCaseFunc func(ctx context.Context, caseID uuid.UUID) ([]domain.ApprovalSnapshot, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Approval
		}
		ListByCase []struct {
			Ctx    context.Context
			CaseID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockListByCase sync.RWMutex
}

func (mock *approvalRepoMock) Create(ctx context.Context, a *domain.Approval) (*domain.Approval, error) {
	if mock.CreateFunc == nil {
		panic("approvalRepoMock.CreateFunc: method is nil but approvalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Approval
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *approvalRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Approval
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *approvalRepoMock) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.ApprovalSnapshot, error) {
	if mock.ListByCaseFunc == nil {
		panic("approvalRepoMock.ListByCaseFunc: method is nil but approvalRepo.ListByCase was just called")
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

func (mock *approvalRepoMock) ListByCaseCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
} {
	mock.lockListByCase.RLock()
	calls := mock.calls.ListByCase
	mock.lockListByCase.RUnlock()
	return calls
}
