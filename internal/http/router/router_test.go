package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/passcode/internal/app"
	"github.com/dropDatabas3/passcode/internal/config"
	"github.com/dropDatabas3/passcode/internal/store/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "dev"
	cfg.Server.CORSAllowedOrigins = []string{"*"}
	cfg.JWT.Secret = "router-test-secret"
	cfg.JWT.AccessTTL = "1h"
	cfg.Log.Level = "error"

	container := app.New(cfg, memory.New())
	srv := httptest.NewServer(New(container, nil))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token, body string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

type authBody struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
}

func register(t *testing.T, srv *httptest.Server, username, email, password string) authBody {
	t.Helper()
	status, b := doJSON(t, srv, http.MethodPost, "/api/auth/register", "",
		`{"username":"`+username+`","email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusCreated, status, "register: %s", b)

	var out authBody
	require.NoError(t, json.Unmarshal(b, &out))
	require.True(t, out.Success)
	require.NotEmpty(t, out.Token)
	return out
}

func TestFullFlow(t *testing.T) {
	srv := newTestServer(t)

	// alta
	alice := register(t, srv, "alice", "alice@example.com", "s3cretpass")
	assert.Equal(t, "alice", alice.User.Username)

	// login por email
	status, b := doJSON(t, srv, http.MethodPost, "/api/auth/login", "",
		`{"identifier":"alice@example.com","password":"s3cretpass"}`)
	require.Equal(t, http.StatusOK, status, "login: %s", b)
	var login authBody
	require.NoError(t, json.Unmarshal(b, &login))
	token := login.Token

	// perfil
	status, b = doJSON(t, srv, http.MethodGet, "/api/auth/me", token, "")
	require.Equal(t, http.StatusOK, status)
	var me authBody
	require.NoError(t, json.Unmarshal(b, &me))
	assert.Equal(t, alice.User.ID, me.User.ID)

	// crear credencial
	status, b = doJSON(t, srv, http.MethodPost, "/api/credentials", token,
		`{"site":"github","link":"https://github.com","username":"alice","secret":"hunter2"}`)
	require.Equal(t, http.StatusCreated, status, "create: %s", b)
	var created struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(b, &created))
	require.NotEmpty(t, created.ID)

	// listar: array pelado con un elemento
	status, b = doJSON(t, srv, http.MethodGet, "/api/credentials", token, "")
	require.Equal(t, http.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(b, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "github", list[0]["site"])
	// el secreto viaja tal cual (el cifrado en reposo queda para el cliente)
	assert.Equal(t, "hunter2", list[0]["secret"])

	// otro usuario no ve ni puede borrar
	bob := register(t, srv, "bob", "bob@example.com", "otr0passw")
	status, b = doJSON(t, srv, http.MethodGet, "/api/credentials", bob.Token, "")
	require.Equal(t, http.StatusOK, status)
	var bobList []map[string]any
	require.NoError(t, json.Unmarshal(b, &bobList))
	assert.Empty(t, bobList)

	status, foreign := doJSON(t, srv, http.MethodDelete, "/api/credentials/"+created.ID, bob.Token, "")
	assert.Equal(t, http.StatusNotFound, status)
	statusMissing, missing := doJSON(t, srv, http.MethodDelete, "/api/credentials/"+created.ID+"x", bob.Token, "")
	assert.Equal(t, http.StatusNotFound, statusMissing)
	// ajeno e inexistente: mismo status y mismo cuerpo
	assert.JSONEq(t, string(missing), string(foreign))

	// el dueño borra
	status, b = doJSON(t, srv, http.MethodDelete, "/api/credentials/"+created.ID, token, "")
	require.Equal(t, http.StatusOK, status, "delete: %s", b)

	status, _ = doJSON(t, srv, http.MethodDelete, "/api/credentials/"+created.ID, token, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "alice", "alice@example.com", "s3cretpass")

	statusGhost, bodyGhost := doJSON(t, srv, http.MethodPost, "/api/auth/login", "",
		`{"identifier":"ghost","password":"whatever1"}`)
	statusWrong, bodyWrong := doJSON(t, srv, http.MethodPost, "/api/auth/login", "",
		`{"identifier":"alice","password":"wrongpass"}`)

	assert.Equal(t, http.StatusUnauthorized, statusGhost)
	assert.Equal(t, http.StatusUnauthorized, statusWrong)
	assert.JSONEq(t, string(bodyGhost), string(bodyWrong))
}

func TestRegisterConflictsAnd400s(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "alice", "alice@example.com", "s3cretpass")

	// username tomado
	status, _ := doJSON(t, srv, http.MethodPost, "/api/auth/register", "",
		`{"username":"alice","email":"otra@example.com","password":"s3cretpass"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	// email tomado
	status, _ = doJSON(t, srv, http.MethodPost, "/api/auth/register", "",
		`{"username":"alice2","email":"alice@example.com","password":"s3cretpass"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	// sin email ni phone
	status, _ = doJSON(t, srv, http.MethodPost, "/api/auth/register", "",
		`{"username":"carol","password":"s3cretpass"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	// JSON roto
	status, _ = doJSON(t, srv, http.MethodPost, "/api/auth/register", "", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, status)
}

// Un username corto o con espacios se registra igual, y una credencial sin
// site también entra: el contrato no impone forma al contenido.
func TestPermissiveInputs(t *testing.T) {
	srv := newTestServer(t)

	ab := register(t, srv, "ab", "ab@example.com", "pw1")
	assert.Equal(t, "ab", ab.User.Username)

	status, b := doJSON(t, srv, http.MethodPost, "/api/credentials", ab.Token,
		`{"secret":"s3cr3t"}`)
	require.Equal(t, http.StatusCreated, status, "create: %s", b)
	var created struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(b, &created))
	assert.NotEmpty(t, created.ID)
}

func TestAuthStatuses(t *testing.T) {
	srv := newTestServer(t)

	// sin token: 401
	status, _ := doJSON(t, srv, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = doJSON(t, srv, http.MethodGet, "/api/credentials", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	// token inválido: 403
	status, _ = doJSON(t, srv, http.MethodGet, "/api/auth/me", "no-es-un-jwt", "")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, _ := doJSON(t, srv, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, srv, http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestUnknownRouteIs404(t *testing.T) {
	srv := newTestServer(t)
	status, _ := doJSON(t, srv, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, status)
}
