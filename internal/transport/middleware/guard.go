package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/dicri/casetrack-backend/internal/domain"
	"github.com/dicri/casetrack-backend/pkg/ctxutil"
)

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeJSONError(w, http.StatusUnauthorized, "no autenticado")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Require gates a route on the static role permission table: anonymous
// requests get 401, authenticated users whose role lacks the operation get 403.
func Require(op domain.Operation) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := ctxutil.RoleFromCtx(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "no autenticado")
				return
			}
			if !domain.Role(role).Can(op) {
				writeJSONError(w, http.StatusForbidden, "permisos insuficientes")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
