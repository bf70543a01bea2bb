package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/models"
	"bizpulse-api/src/internal/session"
	"bizpulse-api/src/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSessionService struct {
	createFn  func(ctx context.Context, exchangeID string) (*session.Created, error)
	destroyed []string
}

func (m *mockSessionService) CreateSession(ctx context.Context, exchangeID string) (*session.Created, error) {
	return m.createFn(ctx, exchangeID)
}

func (m *mockSessionService) ResolveSession(ctx context.Context, token string) (*user.User, error) {
	return nil, models.ErrUnauthenticated
}

func (m *mockSessionService) DestroySession(ctx context.Context, token string) {
	m.destroyed = append(m.destroyed, token)
}

func (m *mockSessionService) TTL() time.Duration { return session.DefaultTTL }

func testConfig() *config.Configuration {
	return &config.Configuration{
		App: config.Application{Timeout: 5},
		Security: config.SecuritySettings{
			SessionCookieName:  "session_token",
			SecureCookie:       true,
			ExposeSessionError: true,
		},
	}
}

func newRouter(svc session.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(testConfig(), svc)
	router.POST("/api/auth/session", h.CreateSession)
	router.POST("/api/auth/logout", h.Logout)
	return router
}

func postSession(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateSession_SetsCookieAndReturnsUser(t *testing.T) {
	provider := &models.ProviderSessionData{ID: "u1", Email: "a@b.com", Name: "A", SessionToken: "tok-1"}
	svc := &mockSessionService{createFn: func(ctx context.Context, exchangeID string) (*session.Created, error) {
		assert.Equal(t, "ex-1", exchangeID)
		return &session.Created{
			User:     &user.User{ID: "u1"},
			Provider: provider,
			Session:  &models.Session{UserID: "u1", SessionToken: "tok-1"},
		}, nil
	}}

	w := postSession(newRouter(svc), `{"session_token":"ex-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "a@b.com", resp.User.Email)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_token", cookies[0].Name)
	assert.Equal(t, "tok-1", cookies[0].Value)
	assert.Equal(t, 604800, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
}

func TestCreateSession_IgnoresPostedIdentity(t *testing.T) {
	provider := &models.ProviderSessionData{ID: "u1", Email: "a@b.com", Name: "A", SessionToken: "tok-1"}
	svc := &mockSessionService{createFn: func(ctx context.Context, exchangeID string) (*session.Created, error) {
		return &session.Created{User: &user.User{ID: "u1"}, Provider: provider, Session: &models.Session{SessionToken: "tok-1"}}, nil
	}}

	w := postSession(newRouter(svc), `{"id":"intruder","email":"x@evil.test","name":"X","picture":null,"session_token":"ex-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "a@b.com", resp.User.Email)
}

func TestCreateSession_SessionIDAlias(t *testing.T) {
	var got string
	svc := &mockSessionService{createFn: func(ctx context.Context, exchangeID string) (*session.Created, error) {
		got = exchangeID
		return nil, models.ErrUpstreamAuth
	}}

	postSession(newRouter(svc), `{"session_id":"ex-9"}`)
	assert.Equal(t, "ex-9", got)
}

func TestCreateSession_ErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"missing id", fmt.Errorf("%w: exchange id is required", models.ErrInvalidParams), http.StatusBadRequest, "session_token is required"},
		{"upstream", fmt.Errorf("%w: status 401", models.ErrUpstreamAuth), http.StatusBadRequest, "Invalid session ID"},
		{"internal", errors.New("mongo exploded"), http.StatusInternalServerError, "mongo exploded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockSessionService{createFn: func(ctx context.Context, exchangeID string) (*session.Created, error) {
				return nil, tc.err
			}}

			w := postSession(newRouter(svc), `{"session_token":"ex-1"}`)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestCreateSession_MalformedBody(t *testing.T) {
	svc := &mockSessionService{createFn: func(ctx context.Context, exchangeID string) (*session.Created, error) {
		t.Fatal("service must not be called")
		return nil, nil
	}}

	w := postSession(newRouter(svc), `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout(t *testing.T) {
	svc := &mockSessionService{}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "tok-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, []string{"tok-1"}, svc.destroyed)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_token", cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestLogout_WithoutSessionStillSucceeds(t *testing.T) {
	svc := &mockSessionService{}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{""}, svc.destroyed)
}

func TestLogout_BearerHeader(t *testing.T) {
	svc := &mockSessionService{}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-2")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{"tok-2"}, svc.destroyed)
}
