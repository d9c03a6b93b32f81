package domain

import "time"

// Stats holds the global counters shown on the dashboard.
type Stats struct {
	TotalCases        int
	TotalEvidence     int
	TotalTechnicians  int
	TotalCoordinators int
	CasesApproved     int
	CasesRejected     int
	CasesInReview     int
}

// StateBreakdownRow is one row of the cases-by-state report.
type StateBreakdownRow struct {
	StateLabel  string
	StateColor  string
	Cases       int
	Technicians int
}

// OutcomeBreakdownRow is one row of the approvals/rejections report.
// AvgReviewHours measures decision time from case registration.
type OutcomeBreakdownRow struct {
	Outcome        string
	Total          int
	Coordinators   int
	AvgReviewHours float64
}

// ReportPeriod bounds a report to an optional date range.
type ReportPeriod struct {
	From *time.Time
	To   *time.Time
}
