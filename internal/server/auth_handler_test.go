package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-portfolio/internal/types"
)

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{"missing email", map[string]string{"password": "password123"}},
		{"invalid email", map[string]string{"email": "invalid-email", "password": "password123"}},
		{"password too short", map[string]string{"email": "test@example.com", "password": "short"}},
		{"missing password", map[string]string{"email": "test@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestServer(t)

			w := doJSON(t, s, http.MethodPost, "/auth/register", "", tt.reqBody)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_RegisterLoginRoundTrip(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "jane@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "jane@example.com", registered.User.Email)

	w = doJSON(t, s, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var loggedIn types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	// The issued token must pass validation.
	claims, err := s.jwtService.ValidateToken(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	s, _, _ := newTestServer(t)

	body := map[string]string{"email": "jane@example.com", "password": "password123"}
	w := doJSON(t, s, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodPost, "/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	s, _, _ := newTestServer(t)

	doJSON(t, s, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "jane@example.com",
		"password": "password123",
	})

	w := doJSON(t, s, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestAuthHandler_Login_UnknownEmailSameError(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	w := doJSON(t, s, http.MethodPut, "/auth/password", token, map[string]string{
		"current_password": "password123",
		"new_password":     "even-more-secret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Password updated successfully")
}

func TestAuthHandler_UpdatePassword_WrongCurrent(t *testing.T) {
	s, _, _ := newTestServer(t)
	_, token := authToken(t, s)

	w := doJSON(t, s, http.MethodPut, "/auth/password", token, map[string]string{
		"current_password": "not-the-password",
		"new_password":     "even-more-secret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "current password is incorrect")
}
