package login

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/middleware"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAuth struct {
	result *starliner.LoginResult
	err    error
}

func (f *fakeAuth) Login(context.Context, starliner.LoginRequest) (*starliner.LoginResult, error) {
	return f.result, f.err
}

func do(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &buf)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	h := NewHandler(&fakeAuth{result: &starliner.LoginResult{
		Token: "tok-123",
		User:  starliner.AdminUser{ID: "u1", Email: "admin@example.com", Name: "Admin"},
	}}, nopLogger{})

	rec := do(t, h, LoginRequest{Email: "admin@example.com", Password: "secret123"})

	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Success bool          `json:"success"`
		Data    LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "tok-123", env.Data.Token)

	// Токен должен уйти и в cookie
	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.AdminTokenCookie {
			found = true
			assert.Equal(t, "tok-123", c.Value)
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "admin_token cookie not set")
}

func TestHandle_BadCredentials(t *testing.T) {
	h := NewHandler(&fakeAuth{err: starliner.ErrUnauthorized}, nopLogger{})

	rec := do(t, h, LoginRequest{Email: "admin@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, msgLoginFailed, env.Message)
}

func TestHandle_MissingCredentials(t *testing.T) {
	h := NewHandler(&fakeAuth{}, nopLogger{})

	rec := do(t, h, LoginRequest{Email: "admin@example.com"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
