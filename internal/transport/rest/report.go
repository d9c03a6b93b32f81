package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dicri/casetrack-backend/internal/domain"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	CasesByState(ctx context.Context, period domain.ReportPeriod) ([]domain.StateBreakdownRow, error)
	ApprovalOutcomes(ctx context.Context, period domain.ReportPeriod) ([]domain.OutcomeBreakdownRow, error)
}

// ReportHandler serves the reportes REST endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "reportes")}
}

type statsResponse struct {
	TotalCases        int `json:"total_expedientes"`
	TotalEvidence     int `json:"total_indicios"`
	TotalTechnicians  int `json:"total_tecnicos"`
	TotalCoordinators int `json:"total_coordinadores"`
	CasesApproved     int `json:"expedientes_aprobados"`
	CasesRejected     int `json:"expedientes_rechazados"`
	CasesInReview     int `json:"expedientes_en_revision"`
}

type stateBreakdownResponse struct {
	StateLabel  string `json:"estado"`
	StateColor  string `json:"color"`
	Cases       int    `json:"cantidad_expedientes"`
	Technicians int    `json:"cantidad_tecnicos"`
}

type outcomeBreakdownResponse struct {
	Outcome        string  `json:"resultado"`
	Total          int     `json:"total"`
	Coordinators   int     `json:"cantidad_coordinadores"`
	AvgReviewHours float64 `json:"promedio_horas_revision"`
}

// Stats handles GET /api/reportes/estadisticas.
func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalCases:        stats.TotalCases,
		TotalEvidence:     stats.TotalEvidence,
		TotalTechnicians:  stats.TotalTechnicians,
		TotalCoordinators: stats.TotalCoordinators,
		CasesApproved:     stats.CasesApproved,
		CasesRejected:     stats.CasesRejected,
		CasesInReview:     stats.CasesInReview,
	})
}

// CasesByState handles GET /api/reportes/expedientes-estado.
func (h *ReportHandler) CasesByState(w http.ResponseWriter, r *http.Request) {
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	rows, err := h.svc.CasesByState(r.Context(), period)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]stateBreakdownResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, stateBreakdownResponse{
			StateLabel:  row.StateLabel,
			StateColor:  row.StateColor,
			Cases:       row.Cases,
			Technicians: row.Technicians,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ApprovalOutcomes handles GET /api/reportes/aprobaciones-rechazos.
func (h *ReportHandler) ApprovalOutcomes(w http.ResponseWriter, r *http.Request) {
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	rows, err := h.svc.ApprovalOutcomes(r.Context(), period)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]outcomeBreakdownResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, outcomeBreakdownResponse{
			Outcome:        row.Outcome,
			Total:          row.Total,
			Coordinators:   row.Coordinators,
			AvgReviewHours: row.AvgReviewHours,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ReportHandler) period(w http.ResponseWriter, r *http.Request) (domain.ReportPeriod, bool) {
	var period domain.ReportPeriod
	q := r.URL.Query()

	if v := q.Get("fecha_inicio"); v != "" {
		from, err := parseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Fecha de inicio inválida")
			return period, false
		}
		period.From = &from
	}
	if v := q.Get("fecha_fin"); v != "" {
		to, err := parseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Fecha de fin inválida")
			return period, false
		}
		period.To = &to
	}
	return period, true
}
