package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

type fieldErrorResponse struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// handleError translates domain errors into the JSON error contract shared
// by all handlers. Unrecognized errors are logged and masked as 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		details := make([]fieldErrorResponse, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			details = append(details, fieldErrorResponse{Campo: fe.Field, Mensaje: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":    "Faltan campos requeridos o son inválidos",
			"detalles": details,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInactiveUser):
		writeError(w, http.StatusUnauthorized, "Usuario inactivo")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Permisos insuficientes")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "No encontrado")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "Ya existe un registro con esos datos")
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusConflict, "El estado del expediente no permite esta operación")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
	}
}

// parseDate accepts RFC3339 timestamps and plain dates (2006-01-02).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// pathID parses the {id} path segment as a UUID, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return uuid.Nil, false
	}
	return id, true
}
