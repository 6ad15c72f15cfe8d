package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/config"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/middleware"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/repository"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/services"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/session"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserStore backs the auth endpoints in tests without a database.
type memUserStore struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byID: map[int64]*model.User{}}
}

func (m *memUserStore) Create(ctx context.Context, u *model.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	cp := *u
	cp.ID = m.seq
	m.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memUserStore) find(match func(*model.User) bool) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return m.find(func(u *model.User) bool { return u.ID == id })
}

func (m *memUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.find(func(u *model.User) bool { return u.Username == username })
}

func (m *memUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.find(func(u *model.User) bool { return u.Email == email })
}

func (m *memUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := m.GetByUsername(ctx, username)
	return err == nil, nil
}

func (m *memUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *memUserStore) SetVerified(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Verified = true
	return nil
}

func (m *memUserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := &config.Config{AppEnv: "test", AppURL: "http://localhost:8080"}
	users := newMemUserStore()
	sessions := session.NewMemoryStore()
	authSvc := services.NewAuthService(users, token.NewIssuer("test-secret"), nil, nil, cfg.AppURL)

	e := echo.New()
	api := e.Group("/api")
	api.Use(middleware.SessionAuth(sessions, users))
	registerAuthRoutes(api, authSvc, sessions, cfg)
	return e
}

func doJSON(e *echo.Echo, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookies(t *testing.T, rec *httptest.ResponseRecorder) []*http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	cookies := res.Cookies()
	require.NotEmpty(t, cookies, "expected a session cookie")
	return cookies
}

const aliceJSON = `{"username":"alice","email":"alice@x.com","password":"password123","role":"student","first_name":"Alice","last_name":"M"}`

func TestRegisterLoginFlow(t *testing.T) {
	e := newTestServer(t)

	// register establishes a session
	rec := doJSON(e, http.MethodPost, "/api/register", aliceJSON, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "alice", created.Username)
	assert.NotContains(t, rec.Body.String(), "password", "response must not leak the digest")

	cookies := sessionCookies(t, rec)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// the session cookie resolves to alice
	rec = doJSON(e, http.MethodGet, "/api/user", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var me model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, created.ID, me.ID)

	// re-registering the username with a different email is rejected
	dup := strings.Replace(aliceJSON, "alice@x.com", "other@x.com", 1)
	rec = doJSON(e, http.MethodPost, "/api/register", dup, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already exists")

	// wrong password
	rec = doJSON(e, http.MethodPost, "/api/login", `{"username":"alice","password":"wrongpass"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// correct password
	rec = doJSON(e, http.MethodPost, "/api/login", `{"username":"alice","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sessionCookies(t, rec)
}

func TestLogoutDestroysSession(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/register", aliceJSON, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookies := sessionCookies(t, rec)

	rec = doJSON(e, http.MethodPost, "/api/logout", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	// old cookie no longer authenticates
	rec = doJSON(e, http.MethodGet, "/api/user", "", cookies)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserEndpointWithoutSession(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestForgotPasswordConstantResponse(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/register", aliceJSON, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	known := doJSON(e, http.MethodPost, "/api/forgot-password", `{"email":"alice@x.com"}`, nil)
	unknown := doJSON(e, http.MethodPost, "/api/forgot-password", `{"email":"nobody@x.com"}`, nil)

	assert.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String(),
		"existing and missing accounts must be indistinguishable")
}

func TestVerifyAndResetEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/register", aliceJSON, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/verify-email", `{"token":"garbage"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/reset-password", `{"token":"garbage","new_password":"whatever123"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
