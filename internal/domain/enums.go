package domain

// CaseState represents the lifecycle state of a case.
type CaseState string

const (
	CaseStateRegistering CaseState = "REGISTERING"
	CaseStateInReview    CaseState = "IN_REVIEW"
	CaseStateApproved    CaseState = "APPROVED"
	CaseStateRejected    CaseState = "REJECTED"
)

func (s CaseState) String() string { return string(s) }

func (s CaseState) IsValid() bool {
	switch s {
	case CaseStateRegistering, CaseStateInReview, CaseStateApproved, CaseStateRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the state ends the current review cycle.
func (s CaseState) IsTerminal() bool {
	return s == CaseStateApproved || s == CaseStateRejected
}

// transitions is the closed set of permitted lifecycle transitions.
// REJECTED → REGISTERING is the rework path: a rejected case may be
// reopened by a coordinator so the technician can amend it.
var transitions = map[CaseState][]CaseState{
	CaseStateRegistering: {CaseStateInReview},
	CaseStateInReview:    {CaseStateApproved, CaseStateRejected},
	CaseStateRejected:    {CaseStateRegistering},
}

// CanTransitionTo reports whether the transition s → target is permitted.
func (s CaseState) CanTransitionTo(target CaseState) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Role represents the authorization level of a user. The names match the
// role catalog rows seeded by the migrations and are embedded verbatim in
// access tokens.
type Role string

const (
	RoleTechnician    Role = "Técnico"
	RoleCoordinator   Role = "Coordinador"
	RoleAdministrator Role = "Administrador"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleTechnician, RoleCoordinator, RoleAdministrator:
		return true
	}
	return false
}

// Operation identifies a role-gated operation.
type Operation string

const (
	OpCaseCreate      Operation = "case.create"
	OpCaseSubmit      Operation = "case.submit"
	OpCaseDecide      Operation = "case.decide"
	OpCaseSetState    Operation = "case.set_state"
	OpEvidenceWrite   Operation = "evidence.write"
	OpReportBreakdown Operation = "report.breakdown"
)

// permissions is the static role → operation table. Reads that every
// authenticated user may perform are not listed; they are gated by the
// auth middleware alone.
var permissions = map[Operation][]Role{
	OpCaseCreate:      {RoleTechnician, RoleCoordinator, RoleAdministrator},
	OpCaseSubmit:      {RoleTechnician, RoleCoordinator, RoleAdministrator},
	OpCaseDecide:      {RoleCoordinator, RoleAdministrator},
	OpCaseSetState:    {RoleCoordinator, RoleAdministrator},
	OpEvidenceWrite:   {RoleTechnician, RoleCoordinator, RoleAdministrator},
	OpReportBreakdown: {RoleCoordinator, RoleAdministrator},
}

// Can reports whether the role is permitted to perform the operation.
func (r Role) Can(op Operation) bool {
	for _, allowed := range permissions[op] {
		if r == allowed {
			return true
		}
	}
	return false
}
