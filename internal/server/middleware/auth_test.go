package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	userID string
	err    error
	got    string
}

type stubClaims struct {
	userID string
}

func (c *stubClaims) GetUserID() string { return c.userID }

func (v *stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	v.got = tokenString
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{userID: v.userID}, nil
}

func runAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotUserID string
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserID(r)
		require.NoError(t, err)
		gotUserID = userID
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/portfolios", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w, gotUserID
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	v := &stubValidator{userID: "user-123"}

	w, userID := runAuth(t, v, "Bearer some-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "some-token", v.got)
}

func TestAuthMiddlewareCaseInsensitiveBearer(t *testing.T) {
	w, userID := runAuth(t, &stubValidator{userID: "user-123"}, "bearer some-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", userID)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w, _ := runAuth(t, &stubValidator{userID: "user-123"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	for _, header := range []string{"some-token", "Basic abc123", "Bearer", "Bearer a b"} {
		w, _ := runAuth(t, &stubValidator{userID: "user-123"}, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	w, _ := runAuth(t, &stubValidator{err: fmt.Errorf("expired")}, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/portfolios", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}

func TestWithUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/portfolios", nil)
	req = req.WithContext(WithUserID(req.Context(), "user-123"))

	userID, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}
