package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
	"github.com/dicri/casetrack-backend/internal/service/casefile"
)

// approvalService defines the minimal interface needed by ApprovalHandler.
type approvalService interface {
	Decide(ctx context.Context, caseID uuid.UUID, input casefile.DecideInput) (*domain.Approval, error)
	ListApprovals(ctx context.Context, caseID uuid.UUID) ([]domain.ApprovalSnapshot, error)
}

// ApprovalHandler serves the aprobaciones REST endpoints.
type ApprovalHandler struct {
	svc approvalService
	log *slog.Logger
}

// NewApprovalHandler creates an ApprovalHandler.
func NewApprovalHandler(svc approvalService, logger *slog.Logger) *ApprovalHandler {
	return &ApprovalHandler{svc: svc, log: logger.With("handler", "aprobaciones")}
}

type decideRequest struct {
	CaseID        string  `json:"id_expediente"`
	Approved      *bool   `json:"aprobado"`
	Justification *string `json:"justificacion"`
}

type justificationRequest struct {
	Justification *string `json:"justificacion"`
}

type approvalResponse struct {
	ID              string  `json:"id"`
	CaseID          string  `json:"id_expediente"`
	CoordinatorID   string  `json:"id_coordinador"`
	CoordinatorName string  `json:"coordinador,omitempty"`
	Approved        bool    `json:"aprobado"`
	Justification   *string `json:"justificacion"`
	DecidedAt       string  `json:"fecha_decision"`
}

// Create handles POST /api/aprobaciones.
func (h *ApprovalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if req.CaseID == "" || req.Approved == nil {
		writeError(w, http.StatusBadRequest, "Faltan campos requeridos")
		return
	}
	caseID, err := uuid.Parse(req.CaseID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Identificador de expediente inválido")
		return
	}

	h.decide(w, r, caseID, casefile.DecideInput{
		Approved:      *req.Approved,
		Justification: req.Justification,
	})
}

// Approve handles POST /api/aprobaciones/aprobar/{id}.
func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathID(w, r)
	if !ok {
		return
	}

	req := decodeJustification(r)
	h.decide(w, r, caseID, casefile.DecideInput{
		Approved:      true,
		Justification: req.Justification,
	})
}

// Reject handles POST /api/aprobaciones/rechazar/{id}.
func (h *ApprovalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathID(w, r)
	if !ok {
		return
	}

	req := decodeJustification(r)
	h.decide(w, r, caseID, casefile.DecideInput{
		Approved:      false,
		Justification: req.Justification,
	})
}

// ListByCase handles GET /api/aprobaciones/expediente/{id}.
func (h *ApprovalHandler) ListByCase(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathID(w, r)
	if !ok {
		return
	}

	approvals, err := h.svc.ListApprovals(r.Context(), caseID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]approvalResponse, 0, len(approvals))
	for i := range approvals {
		out = append(out, toApprovalResponse(&approvals[i].Approval, approvals[i].CoordinatorName))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ApprovalHandler) decide(w http.ResponseWriter, r *http.Request, caseID uuid.UUID, input casefile.DecideInput) {
	approval, err := h.svc.Decide(r.Context(), caseID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	message := "Expediente aprobado exitosamente"
	if !approval.Approved {
		message = "Expediente rechazado exitosamente"
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    message,
		"aprobacion": toApprovalResponse(approval, ""),
	})
}

// decodeJustification tolerates an empty body; the decision services treat
// an absent justification the same as a null one.
func decodeJustification(r *http.Request) justificationRequest {
	var req justificationRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	return req
}

func toApprovalResponse(a *domain.Approval, coordinatorName string) approvalResponse {
	return approvalResponse{
		ID:              a.ID.String(),
		CaseID:          a.CaseID.String(),
		CoordinatorID:   a.CoordinatorID.String(),
		CoordinatorName: coordinatorName,
		Approved:        a.Approved,
		Justification:   a.Justification,
		DecidedAt:       a.DecidedAt.Format(time.RFC3339),
	}
}
