//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/dicri/casetrack-backend/internal/adapter/postgres"
	approvalrepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/approval"
	casefilerepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/casefile"
	evidencerepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/evidence"
	reportrepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/report"
	"github.com/dicri/casetrack-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/user"
	authpkg "github.com/dicri/casetrack-backend/internal/auth"
	"github.com/dicri/casetrack-backend/internal/config"
	authsvc "github.com/dicri/casetrack-backend/internal/service/auth"
	"github.com/dicri/casetrack-backend/internal/service/casefile"
	evidencesvc "github.com/dicri/casetrack-backend/internal/service/evidence"
	reportsvc "github.com/dicri/casetrack-backend/internal/service/report"
	"github.com/dicri/casetrack-backend/internal/transport/middleware"
	"github.com/dicri/casetrack-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	userRepo := userrepo.New(pool)
	caseRepo := casefilerepo.New(pool)
	evidenceRepo := evidencerepo.New(pool)
	approvalRepo := approvalrepo.New(pool)
	reportRepo := reportrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   time.Hour,
		PasswordHashCost: 4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, userRepo, jwtMgr, authCfg)
	caseService := casefile.NewService(logger, caseRepo, approvalRepo, txm)
	evidenceService := evidencesvc.NewService(logger, evidenceRepo, caseRepo)
	reportService := reportsvc.NewService(logger, reportRepo)

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, "test-version"),
		Auth:     rest.NewAuthHandler(authService, logger),
		Cases:    rest.NewCaseHandler(caseService, logger),
		Evidence: rest.NewEvidenceHandler(evidenceService, logger),
		Approval: rest.NewApprovalHandler(caseService, logger),
		Report:   rest.NewReportHandler(reportService, logger),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// restRequest sends a JSON request and returns the raw response.
func (ts *testServer) restRequest(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes and closes a JSON response body.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// decodeList decodes and closes a JSON array response body.
func decodeList(t *testing.T, resp *http.Response) []any {
	t.Helper()
	defer resp.Body.Close()

	var body []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

var userSeq atomic.Int64

// registerAndLogin creates a user with the given role through the public
// API and returns a bearer token for it.
func registerAndLogin(t *testing.T, ts *testServer, role string) string {
	t.Helper()

	n := userSeq.Add(1)
	username := fmt.Sprintf("e2e_user_%d_%d", time.Now().UnixNano(), n)
	password := "password123"

	resp := ts.restRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"nombre":   "Usuario",
		"apellido": "Prueba",
		"email":    username + "@dicri.gob",
		"username": username,
		"password": password,
		"rol":      role,
	})
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register: %v", body)

	return login(t, ts, username, password)
}

// login authenticates and returns the bearer token.
func login(t *testing.T, ts *testServer, username, password string) string {
	t.Helper()

	resp := ts.restRequest(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode, "login: %v", body)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in login response")
	return token
}

// createCase registers a new case through the API and returns its ID.
func createCase(t *testing.T, ts *testServer, token string) string {
	t.Helper()

	n := userSeq.Add(1)
	resp := ts.restRequest(t, http.MethodPost, "/api/expedientes", token, map[string]any{
		"numero_expediente": fmt.Sprintf("EXP-E2E-%d-%d", time.Now().UnixNano(), n),
		"titulo":            "Expediente de prueba",
		"fecha_incidente":   "2025-03-14",
	})
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create case: %v", body)

	expediente, ok := body["expediente"].(map[string]any)
	require.True(t, ok, "expected expediente object")
	id, ok := expediente["id"].(string)
	require.True(t, ok, "expected expediente id")
	return id
}

// addEvidence registers an evidence item in the given case.
func addEvidence(t *testing.T, ts *testServer, token, caseID, itemNumber string) *http.Response {
	t.Helper()

	return ts.restRequest(t, http.MethodPost, "/api/indicios", token, map[string]any{
		"id_expediente":  caseID,
		"numero_indicio": itemNumber,
		"nombre_objeto":  "Casquillo 9mm",
	})
}
