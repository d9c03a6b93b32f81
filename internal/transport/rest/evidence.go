package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
	"github.com/dicri/casetrack-backend/internal/service/evidence"
)

// evidenceService defines the minimal interface needed by EvidenceHandler.
type evidenceService interface {
	Add(ctx context.Context, input evidence.AddInput) (*domain.EvidenceItem, error)
	Update(ctx context.Context, itemID uuid.UUID, input evidence.UpdateInput) (*domain.EvidenceItem, error)
	Remove(ctx context.Context, itemID uuid.UUID) error
	ListForCase(ctx context.Context, caseID uuid.UUID) ([]domain.EvidenceSnapshot, error)
}

// EvidenceHandler serves the indicios REST endpoints.
type EvidenceHandler struct {
	svc evidenceService
	log *slog.Logger
}

// NewEvidenceHandler creates an EvidenceHandler.
func NewEvidenceHandler(svc evidenceService, logger *slog.Logger) *EvidenceHandler {
	return &EvidenceHandler{svc: svc, log: logger.With("handler", "indicios")}
}

type createEvidenceRequest struct {
	CaseID        string  `json:"id_expediente"`
	ItemNumber    string  `json:"numero_indicio"`
	ObjectName    string  `json:"nombre_objeto"`
	Description   *string `json:"descripcion"`
	Color         *string `json:"color"`
	Size          *string `json:"tamano"`
	Weight        *string `json:"peso"`
	FoundLocation *string `json:"ubicacion_encontrado"`
	Notes         *string `json:"observaciones"`
}

type updateEvidenceRequest struct {
	ObjectName    string  `json:"nombre_objeto"`
	Description   *string `json:"descripcion"`
	Color         *string `json:"color"`
	Size          *string `json:"tamano"`
	Weight        *string `json:"peso"`
	FoundLocation *string `json:"ubicacion_encontrado"`
	Notes         *string `json:"observaciones"`
}

type evidenceResponse struct {
	ID             string    `json:"id"`
	CaseID         string    `json:"id_expediente"`
	ItemNumber     string    `json:"numero_indicio"`
	ObjectName     string    `json:"nombre_objeto"`
	Description    *string   `json:"descripcion"`
	Color          *string   `json:"color"`
	Size           *string   `json:"tamano"`
	Weight         *string   `json:"peso"`
	FoundLocation  *string   `json:"ubicacion_encontrado"`
	Notes          *string   `json:"observaciones"`
	TechnicianID   string    `json:"id_tecnico"`
	TechnicianName string    `json:"tecnico,omitempty"`
	CreatedAt      time.Time `json:"fecha_creacion"`
	UpdatedAt      time.Time `json:"fecha_actualizacion"`
}

// Create handles POST /api/indicios.
func (h *EvidenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	input := evidence.AddInput{
		ItemNumber:    req.ItemNumber,
		ObjectName:    req.ObjectName,
		Description:   req.Description,
		Color:         req.Color,
		Size:          req.Size,
		Weight:        req.Weight,
		FoundLocation: req.FoundLocation,
		Notes:         req.Notes,
	}
	if req.CaseID != "" {
		caseID, err := uuid.Parse(req.CaseID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Identificador de expediente inválido")
			return
		}
		input.CaseID = caseID
	}

	item, err := h.svc.Add(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Indicio creado exitosamente",
		"indicio": toEvidenceResponse(item, ""),
	})
}

// Update handles PUT /api/indicios/{id}.
func (h *EvidenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	item, err := h.svc.Update(r.Context(), id, evidence.UpdateInput{
		ObjectName:    req.ObjectName,
		Description:   req.Description,
		Color:         req.Color,
		Size:          req.Size,
		Weight:        req.Weight,
		FoundLocation: req.FoundLocation,
		Notes:         req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Indicio actualizado exitosamente",
		"indicio": toEvidenceResponse(item, ""),
	})
}

// Delete handles DELETE /api/indicios/{id}.
func (h *EvidenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Remove(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Indicio eliminado exitosamente",
	})
}

// ListByCase handles GET /api/indicios/expediente/{id} and
// GET /api/expedientes/{id}/indicios.
func (h *EvidenceHandler) ListByCase(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathID(w, r)
	if !ok {
		return
	}

	items, err := h.svc.ListForCase(r.Context(), caseID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]evidenceResponse, 0, len(items))
	for i := range items {
		out = append(out, toEvidenceResponse(&items[i].EvidenceItem, items[i].TechnicianName))
	}
	writeJSON(w, http.StatusOK, out)
}

func toEvidenceResponse(item *domain.EvidenceItem, technicianName string) evidenceResponse {
	return evidenceResponse{
		ID:             item.ID.String(),
		CaseID:         item.CaseID.String(),
		ItemNumber:     item.ItemNumber,
		ObjectName:     item.ObjectName,
		Description:    item.Description,
		Color:          item.Color,
		Size:           item.Size,
		Weight:         item.Weight,
		FoundLocation:  item.FoundLocation,
		Notes:          item.Notes,
		TechnicianID:   item.TechnicianID.String(),
		TechnicianName: technicianName,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}
