//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/element-hunter/backend/internal/adapter/postgres"
	folderrepo "github.com/element-hunter/backend/internal/adapter/postgres/folder"
	scanrepo "github.com/element-hunter/backend/internal/adapter/postgres/scan"
	"github.com/element-hunter/backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/element-hunter/backend/internal/adapter/postgres/token"
	userrepo "github.com/element-hunter/backend/internal/adapter/postgres/user"
	authpkg "github.com/element-hunter/backend/internal/auth"
	"github.com/element-hunter/backend/internal/config"
	authsvc "github.com/element-hunter/backend/internal/service/auth"
	foldersvc "github.com/element-hunter/backend/internal/service/folder"
	scansvc "github.com/element-hunter/backend/internal/service/scan"
	"github.com/element-hunter/backend/internal/transport/middleware"
	"github.com/element-hunter/backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	userRepo := userrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)
	scanRepo := scanrepo.New(pool)
	folderRepo := folderrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtMgr := authpkg.NewJWTManager(jwtSecret, "test-issuer", 15*time.Minute)

	// 5. Services. MinCost keeps bcrypt fast in tests.
	authService := authsvc.NewService(logger, userRepo, tokenRepo, jwtMgr, config.AuthConfig{
		JWTSecret:       jwtSecret,
		JWTIssuer:       "test-issuer",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 720 * time.Hour,
		BcryptCost:      bcrypt.MinCost,
	})

	scanService := scansvc.NewService(logger, scanRepo, folderRepo, config.ScanConfig{
		MaxPayloadBytes:  1 << 20,
		DefaultListLimit: 50,
		MaxListLimit:     200,
	})

	folderService := foldersvc.NewService(logger, folderRepo, scanRepo, txm)

	// 6. Handlers.
	authHandler := rest.NewAuthHandler(authService, logger)
	scanHandler := rest.NewScanHandler(scanService, logger)
	folderHandler := rest.NewFolderHandler(folderService, logger)
	healthHandler := rest.NewHealthHandler(pool, "test-version")

	// 7. Mux.
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)

	mux.HandleFunc("GET /api/me", authHandler.Me)
	mux.HandleFunc("POST /api/me/token", authHandler.RotateAPIToken)

	mux.HandleFunc("POST /api/seo", scanHandler.Ingest)
	mux.HandleFunc("GET /api/seo", scanHandler.ListFull)
	mux.HandleFunc("GET /api/seo/scans", scanHandler.List)
	mux.HandleFunc("GET /api/seo/scans/{id}", scanHandler.Get)

	mux.HandleFunc("GET /api/seo/folders", folderHandler.List)
	mux.HandleFunc("POST /api/seo/folders", folderHandler.Create)
	mux.HandleFunc("DELETE /api/seo/folders/{folderId}", folderHandler.Delete)
	mux.HandleFunc("POST /api/seo/folders/add-scan", folderHandler.AddScans)
	mux.HandleFunc("POST /api/seo/folders/remove-scan", folderHandler.RemoveScan)

	// 8. Middleware chain (rate limiting is off in tests).
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type,X-Api-Token",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
		middleware.APIToken(authService),
	)(mux)

	// 9. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// restRequest makes a REST request with an optional Bearer token and JSON body.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// apiTokenRequest makes a REST request authenticated via the X-Api-Token
// header, the way the browser extension does.
func apiTokenRequest(t *testing.T, ts *testServer, method, path, apiToken string, body any) *http.Response {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Token", apiToken)

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes a JSON response body into a map and closes it.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// decodeList decodes a JSON array response body and closes it.
func decodeList(t *testing.T, resp *http.Response) []any {
	t.Helper()
	defer resp.Body.Close()

	var body []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ---------------------------------------------------------------------------
// registerTestUser registers a fresh user through the REST API and returns
// the access token, the API token, and the user ID.
// ---------------------------------------------------------------------------

func registerTestUser(t *testing.T, ts *testServer) (accessToken, apiToken string, userID uuid.UUID) {
	t.Helper()

	suffix := uuid.New().String()[:8]
	resp := restRequest(t, ts, "POST", "/auth/register", "", map[string]string{
		"email":    fmt.Sprintf("test-%s@example.com", suffix),
		"name":     "Test User " + suffix,
		"password": "securepassword123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)

	accessToken, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken string")

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object")

	apiToken, ok = user["apiToken"].(string)
	require.True(t, ok, "expected apiToken string")

	userID, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err)

	return accessToken, apiToken, userID
}

// ingestScan posts one scan payload for the given access token and returns
// the created scan's ID.
func ingestScan(t *testing.T, ts *testServer, token, url string, payload map[string]any) uuid.UUID {
	t.Helper()

	body := map[string]any{"url": url}
	for k, v := range payload {
		body[k] = v
	}

	resp := restRequest(t, ts, "POST", "/api/seo", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody(t, resp)
	id, err := uuid.Parse(created["id"].(string))
	require.NoError(t, err)
	return id
}

// createFolder creates a folder and returns its ID.
func createFolder(t *testing.T, ts *testServer, token, name string) uuid.UUID {
	t.Helper()

	resp := restRequest(t, ts, "POST", "/api/seo/folders", token, map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody(t, resp)
	id, err := uuid.Parse(created["id"].(string))
	require.NoError(t, err)
	return id
}
