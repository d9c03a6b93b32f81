package rest

import (
	"net/http"

	"github.com/dicri/casetrack-backend/internal/domain"
	"github.com/dicri/casetrack-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers served by the router.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Cases    *CaseHandler
	Evidence *EvidenceHandler
	Approval *ApprovalHandler
	Report   *ReportHandler
}

// NewRouter builds the application mux. Route-level authorization follows
// the static permission table; listing routes only require authentication.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.Handle("GET /api/auth/profile", authed(h.Auth.Profile))

	mux.Handle("POST /api/expedientes", gated(domain.OpCaseCreate, h.Cases.Create))
	mux.Handle("GET /api/expedientes", authed(h.Cases.List))
	mux.Handle("GET /api/expedientes/{id}", authed(h.Cases.Get))
	mux.Handle("PUT /api/expedientes/{id}/enviar-revision", gated(domain.OpCaseSubmit, h.Cases.SubmitForReview))
	mux.Handle("PUT /api/expedientes/{id}/estado", gated(domain.OpCaseSetState, h.Cases.SetState))
	mux.Handle("GET /api/expedientes/{id}/indicios", authed(h.Evidence.ListByCase))

	mux.Handle("POST /api/indicios", gated(domain.OpEvidenceWrite, h.Evidence.Create))
	mux.Handle("PUT /api/indicios/{id}", gated(domain.OpEvidenceWrite, h.Evidence.Update))
	mux.Handle("DELETE /api/indicios/{id}", gated(domain.OpEvidenceWrite, h.Evidence.Delete))
	mux.Handle("GET /api/indicios/expediente/{id}", authed(h.Evidence.ListByCase))

	mux.Handle("POST /api/aprobaciones", gated(domain.OpCaseDecide, h.Approval.Create))
	mux.Handle("POST /api/aprobaciones/aprobar/{id}", gated(domain.OpCaseDecide, h.Approval.Approve))
	mux.Handle("POST /api/aprobaciones/rechazar/{id}", gated(domain.OpCaseDecide, h.Approval.Reject))
	mux.Handle("GET /api/aprobaciones/expediente/{id}", authed(h.Approval.ListByCase))

	mux.Handle("GET /api/reportes/estadisticas", authed(h.Report.Stats))
	mux.Handle("GET /api/reportes/expedientes-estado", gated(domain.OpReportBreakdown, h.Report.CasesByState))
	mux.Handle("GET /api/reportes/aprobaciones-rechazos", gated(domain.OpReportBreakdown, h.Report.ApprovalOutcomes))

	return mux
}

func authed(h http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(h)
}

func gated(op domain.Operation, h http.HandlerFunc) http.Handler {
	return middleware.Require(op)(h)
}
