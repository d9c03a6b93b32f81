package report

import (
	"context"
	"sync"

	"github.com/dicri/casetrack-backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	StatsFunc            func(ctx context.Context) (*domain.Stats, error)
	CasesByStateFunc     func(ctx context.Context, period domain.ReportPeriod) ([]domain.StateBreakdownRow, error)
	ApprovalOutcomesFunc func(ctx context.Context, period domain.ReportPeriod) ([]domain.OutcomeBreakdownRow, error)

	calls struct {
		Stats []struct {
			Ctx context.Context
		}
		CasesByState []struct {
			Ctx    context.Context
			Period domain.ReportPeriod
		}
		ApprovalOutcomes []struct {
			Ctx    context.Context
			Period domain.ReportPeriod
		}
	}
	lockStats            sync.RWMutex
	lockCasesByState     sync.RWMutex
	lockApprovalOutcomes sync.RWMutex
}

func (mock *reportRepoMock) Stats(ctx context.Context) (*domain.Stats, error) {
	if mock.StatsFunc == nil {
		panic("reportRepoMock.StatsFunc: method is nil but reportRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *reportRepoMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *reportRepoMock) CasesByState(ctx context.Context, period domain.ReportPeriod) ([]domain.StateBreakdownRow, error) {
	if mock.CasesByStateFunc == nil {
		panic("reportRepoMock.CasesByStateFunc: method is nil but reportRepo.CasesByState was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Period domain.ReportPeriod
	}{Ctx: ctx, Period: period}
	mock.lockCasesByState.Lock()
	mock.calls.CasesByState = append(mock.calls.CasesByState, callInfo)
	mock.lockCasesByState.Unlock()
	return mock.CasesByStateFunc(ctx, period)
}

func (mock *reportRepoMock) CasesByStateCalls() []struct {
	Ctx    context.Context
	Period domain.ReportPeriod
} {
	mock.lockCasesByState.RLock()
	calls := mock.calls.CasesByState
	mock.lockCasesByState.RUnlock()
	return calls
}

func (mock *reportRepoMock) ApprovalOutcomes(ctx context.Context, period domain.ReportPeriod) ([]domain.OutcomeBreakdownRow, error) {
	if mock.ApprovalOutcomesFunc == nil {
		panic("reportRepoMock.ApprovalOutcomesFunc: method is nil but reportRepo.ApprovalOutcomes was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Period domain.ReportPeriod
	}{Ctx: ctx, Period: period}
	mock.lockApprovalOutcomes.Lock()
	mock.calls.ApprovalOutcomes = append(mock.calls.ApprovalOutcomes, callInfo)
	mock.lockApprovalOutcomes.Unlock()
	return mock.ApprovalOutcomesFunc(ctx, period)
}

func (mock *reportRepoMock) ApprovalOutcomesCalls() []struct {
	Ctx    context.Context
	Period domain.ReportPeriod
} {
	mock.lockApprovalOutcomes.RLock()
	calls := mock.calls.ApprovalOutcomes
	mock.lockApprovalOutcomes.RUnlock()
	return calls
}
