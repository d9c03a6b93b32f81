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

// caseService defines the minimal interface needed by CaseHandler.
type caseService interface {
	CreateCase(ctx context.Context, input casefile.CreateCaseInput) (*domain.Case, error)
	SubmitForReview(ctx context.Context, caseID uuid.UUID) (*domain.CaseSnapshot, error)
	SetState(ctx context.Context, caseID uuid.UUID, target domain.CaseState) (*domain.CaseSnapshot, error)
	GetCase(ctx context.Context, caseID uuid.UUID) (*domain.CaseSnapshot, error)
	ListCases(ctx context.Context, filter domain.CaseFilter) ([]domain.CaseSnapshot, error)
}

// CaseHandler serves the expedientes REST endpoints.
type CaseHandler struct {
	svc caseService
	log *slog.Logger
}

// NewCaseHandler creates a CaseHandler.
func NewCaseHandler(svc caseService, logger *slog.Logger) *CaseHandler {
	return &CaseHandler{svc: svc, log: logger.With("handler", "expedientes")}
}

type createCaseRequest struct {
	CaseNumber       string  `json:"numero_expediente"`
	Title            string  `json:"titulo"`
	Description      *string `json:"descripcion"`
	IncidentAt       string  `json:"fecha_incidente"`
	IncidentLocation *string `json:"lugar_incidente"`
}

type setStateRequest struct {
	State string `json:"estado"`
}

type caseResponse struct {
	ID               string    `json:"id"`
	CaseNumber       string    `json:"numero_expediente"`
	Title            string    `json:"titulo"`
	Description      *string   `json:"descripcion"`
	IncidentAt       time.Time `json:"fecha_incidente"`
	IncidentLocation *string   `json:"lugar_incidente"`
	TechnicianID     string    `json:"id_tecnico"`
	TechnicianName   string    `json:"tecnico"`
	State            string    `json:"estado"`
	StateLabel       string    `json:"estado_descripcion"`
	StateColor       string    `json:"color_estado"`
	EvidenceCount    int       `json:"cantidad_indicios"`
	CreatedAt        time.Time `json:"fecha_creacion"`
	UpdatedAt        time.Time `json:"fecha_actualizacion"`
}

// Create handles POST /api/expedientes.
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	input := casefile.CreateCaseInput{
		CaseNumber:       req.CaseNumber,
		Title:            req.Title,
		Description:      req.Description,
		IncidentLocation: req.IncidentLocation,
	}
	if req.IncidentAt != "" {
		incidentAt, err := parseDate(req.IncidentAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Fecha de incidente inválida")
			return
		}
		input.IncidentAt = incidentAt
	}

	created, err := h.svc.CreateCase(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	snapshot, err := h.svc.GetCase(r.Context(), created.ID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Expediente creado exitosamente",
		"expediente": toCaseResponse(snapshot),
	})
}

// List handles GET /api/expedientes.
// Query: estado, fecha_inicio, fecha_fin, id_tecnico — all optional, ANDed.
func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.CaseFilter
	q := r.URL.Query()

	if v := q.Get("estado"); v != "" {
		state := domain.CaseState(v)
		filter.State = &state
	}
	if v := q.Get("fecha_inicio"); v != "" {
		from, err := parseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Fecha de inicio inválida")
			return
		}
		filter.From = &from
	}
	if v := q.Get("fecha_fin"); v != "" {
		to, err := parseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Fecha de fin inválida")
			return
		}
		filter.To = &to
	}
	if v := q.Get("id_tecnico"); v != "" {
		techID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Identificador de técnico inválido")
			return
		}
		filter.TechnicianID = &techID
	}

	cases, err := h.svc.ListCases(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]caseResponse, 0, len(cases))
	for i := range cases {
		out = append(out, toCaseResponse(&cases[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/expedientes/{id}.
func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	snapshot, err := h.svc.GetCase(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseResponse(snapshot))
}

// SubmitForReview handles PUT /api/expedientes/{id}/enviar-revision.
func (h *CaseHandler) SubmitForReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	snapshot, err := h.svc.SubmitForReview(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Expediente enviado a revisión exitosamente",
		"expediente": toCaseResponse(snapshot),
	})
}

// SetState handles PUT /api/expedientes/{id}/estado.
func (h *CaseHandler) SetState(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req setStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if req.State == "" {
		writeError(w, http.StatusBadRequest, "El estado es requerido")
		return
	}

	snapshot, err := h.svc.SetState(r.Context(), id, domain.CaseState(req.State))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Estado actualizado exitosamente",
		"expediente": toCaseResponse(snapshot),
	})
}

func toCaseResponse(s *domain.CaseSnapshot) caseResponse {
	return caseResponse{
		ID:               s.ID.String(),
		CaseNumber:       s.CaseNumber,
		Title:            s.Title,
		Description:      s.Description,
		IncidentAt:       s.IncidentAt,
		IncidentLocation: s.IncidentLocation,
		TechnicianID:     s.TechnicianID.String(),
		TechnicianName:   s.TechnicianName,
		State:            string(s.State),
		StateLabel:       s.StateLabel,
		StateColor:       s.StateColor,
		EvidenceCount:    s.EvidenceCount,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
