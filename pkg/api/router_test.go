package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authgate/pkg/api"
	"github.com/dmitrymomot/authgate/pkg/auth"
	"github.com/dmitrymomot/authgate/pkg/clientip"
	"github.com/dmitrymomot/authgate/pkg/environment"
	"github.com/dmitrymomot/authgate/pkg/httpserver"
	"github.com/dmitrymomot/authgate/pkg/jwt"
	"github.com/dmitrymomot/authgate/pkg/logger"
	"github.com/dmitrymomot/authgate/pkg/requestid"
	"github.com/dmitrymomot/authgate/pkg/userstore"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type app struct {
	router http.Handler
	server *httptest.Server
	store  *userstore.Memory
	clock  *clock
	logs   *bytes.Buffer
}

func newApp(t *testing.T, env environment.Environment, ready ...httpserver.Check) *app {
	t.Helper()

	c := &clock{now: time.Now()}
	logs := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(logs),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)

	tokens, err := jwt.New(jwt.Config{SigningKey: "test-secret", Lifetime: jwt.Lifetime(time.Hour)}, jwt.WithClock(c.Now))
	require.NoError(t, err)

	store := userstore.NewMemory()
	eh := api.NewErrorHandler(log, env)
	svc := auth.NewService(store, tokens, auth.WithBcryptCost(bcrypt.MinCost), auth.WithLogger(log))

	if len(ready) == 0 {
		ready = []httpserver.Check{store.Ping}
	}
	router := api.NewRouter(api.Deps{
		Auth:         auth.NewHandler(svc),
		Gate:         auth.NewGate(tokens, store, eh, auth.WithGateLogger(log)),
		ErrorHandler: eh,
		Logger:       log,
		Ready:        ready,
		ClientIP:     clientip.New(clientip.DefaultHeaders...),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &app{router: router, server: srv, store: store, clock: c, logs: logs}
}

func (a *app) do(t *testing.T, method, path, body string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func (a *app) signup(t *testing.T, email, password string) string {
	t.Helper()

	resp, body := a.do(t, http.MethodPost, "/signup", `{"email":"`+email+`","password":"`+password+`"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var out auth.TokenResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestScenario_SignupThenProtectedRoute(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	token := a.signup(t, "a@b.com", "secret123")

	resp, body := a.do(t, http.MethodGet, "/api/me", "", bearer(token))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var identity map[string]any
	require.NoError(t, json.Unmarshal(body, &identity))
	assert.Equal(t, "a@b.com", identity["email"])
	assert.NotEmpty(t, identity["id"])
	assert.NotContains(t, identity, "password")
	assert.NotContains(t, identity, "secret")
	assert.NotContains(t, string(body), "$2a$")
}

func TestScenario_Signin(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	a.signup(t, "a@b.com", "secret123")

	resp, body := a.do(t, http.MethodPost, "/signin", `{"email":"a@b.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out auth.TokenResponse
	require.NoError(t, json.Unmarshal(body, &out))

	resp, _ = a.do(t, http.MethodGet, "/api/me", "", bearer(out.Token))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestScenario_SigninFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	a.signup(t, "a@b.com", "secret123")

	wrongResp, wrongBody := a.do(t, http.MethodPost, "/signin", `{"email":"a@b.com","password":"nope"}`, nil)
	unknownResp, unknownBody := a.do(t, http.MethodPost, "/signin", `{"email":"x@b.com","password":"secret123"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongResp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownResp.StatusCode)
	assert.JSONEq(t, `{"message":"Invalid email and password combination"}`, string(wrongBody))
	assert.Equal(t, string(wrongBody), string(unknownBody))
}

func TestScenario_MissingCredentials(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)

	bodies := []string{
		`{"email":"","password":""}`,
		`{"email":"a@b.com"}`,
		`{"password":"secret123"}`,
		`{}`,
		"",
	}
	for _, path := range []string{"/signup", "/signin"} {
		for _, body := range bodies {
			resp, got := a.do(t, http.MethodPost, path, body, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%s %q", path, body)
			assert.JSONEq(t, `{"message":"need email and password"}`, string(got), "%s %q", path, body)
		}
	}

	_, err := a.store.FindByEmail(context.Background(), "a@b.com")
	assert.ErrorIs(t, err, auth.ErrUserNotFound, "signup must not create users without a password")
}

func TestScenario_DuplicateSignup(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	a.signup(t, "a@b.com", "secret123")

	resp, body := a.do(t, http.MethodPost, "/signup", `{"email":"a@b.com","password":"other"}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"validation error: email: already registered","status":400}}`, string(body))
}

func TestScenario_MalformedBody(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	resp, body := a.do(t, http.MethodPost, "/signup", `{"email":`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out map[string]map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.EqualValues(t, 400, out["error"]["status"])
}

func TestScenario_NotFound(t *testing.T) {
	t.Parallel()

	t.Run("production", func(t *testing.T) {
		t.Parallel()

		a := newApp(t, environment.Production)
		resp, body := a.do(t, http.MethodGet, "/nope", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":{"message":"Not Found","status":404}}`, string(body))
	})

	t.Run("development", func(t *testing.T) {
		t.Parallel()

		a := newApp(t, environment.Development)
		resp, body := a.do(t, http.MethodGet, "/nope", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var out map[string]map[string]any
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, "Not Found", out["error"]["message"])
		assert.EqualValues(t, 404, out["error"]["status"])
		assert.NotEmpty(t, out["error"]["stack"])
	})
}

func TestScenario_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	resp, body := a.do(t, http.MethodGet, "/signin", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"Method Not Allowed","status":405}}`, string(body))
}

func TestScenario_GateRejectsWithEmptyBody(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	token := a.signup(t, "a@b.com", "secret123")

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "missing header"},
		{name: "token without scheme", headers: map[string]string{"Authorization": token}},
		{name: "other scheme", headers: map[string]string{"Authorization": "Token " + token}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := a.do(t, http.MethodGet, "/api/me", "", tt.headers)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Empty(t, body)
		})
	}
}

func TestScenario_DeletedUser(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	token := a.signup(t, "a@b.com", "secret123")

	account, err := a.store.FindByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NoError(t, a.store.Delete(context.Background(), account.ID))

	resp, body := a.do(t, http.MethodGet, "/api/me", "", bearer(token))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, body)
}

func TestScenario_InvalidTokensGoThroughNormalizer(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	token := a.signup(t, "a@b.com", "secret123")

	tampered := []byte(token)
	last := len(tampered) - 2
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	resp, body := a.do(t, http.MethodGet, "/api/me", "", bearer(string(tampered)))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"invalid signature","status":401}}`, string(body))

	resp, body = a.do(t, http.MethodGet, "/api/me", "", bearer("not.a.token"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), `"status":401`)

	a.clock.Advance(time.Hour + time.Second)
	resp, body = a.do(t, http.MethodGet, "/api/me", "", bearer(token))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"token is expired","status":401}}`, string(body))
}

func TestScenario_Health(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	resp, body := a.do(t, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ALIVE", string(body))

	resp, body = a.do(t, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "READY", string(body))

	down := newApp(t, environment.Production, func(context.Context) error { return errors.New("store down") })
	resp, body = down.do(t, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "NOT_READY", string(body))
}

func TestScenario_RequestIDAndAccessLog(t *testing.T) {
	t.Parallel()

	a := newApp(t, environment.Production)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set(requestid.Header, "trace-123")
	req.Header.Set("X-Forwarded-For", "198.51.100.23, 10.0.0.1")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(requestid.Header))
	logs := a.logs.String()
	assert.Contains(t, logs, `"msg":"http request"`)
	assert.Contains(t, logs, `"request_id":"trace-123"`)
	assert.Contains(t, logs, `"status_code":404`)
	assert.Contains(t, logs, `"client_ip":"198.51.100.23"`)

	var errorRecords int
	for line := range strings.SplitSeq(strings.TrimSpace(logs), "\n") {
		if !strings.Contains(line, `"msg":"request error"`) {
			continue
		}
		errorRecords++
		assert.Equal(t, 1, strings.Count(line, `"request_id"`), "each key once per record: %s", line)
	}
	assert.Equal(t, 1, errorRecords)
}
