package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTokenValidator accepts a fixed set of tokens.
type testTokenValidator struct {
	validTokens map[string]uuid.UUID
}

func newTestTokenValidator() *testTokenValidator {
	return &testTokenValidator{validTokens: make(map[string]uuid.UUID)}
}

func (v *testTokenValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}
	userID, ok := v.validTokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return testClaims(userID), nil
}

type testClaims uuid.UUID

func (c testClaims) GetUserID() uuid.UUID {
	return uuid.UUID(c)
}

func serve(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()
	called := false
	var seen uuid.UUID
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, err := GetUserID(r)
		require.NoError(t, err)
		seen = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/ats/score", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w, called, seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	validator := newTestTokenValidator()
	userID := uuid.New()
	validator.validTokens["valid-test-token-123"] = userID

	for _, header := range []string{"Bearer valid-test-token-123", "bearer valid-test-token-123", "BeArEr  valid-test-token-123"} {
		w, called, seen := serve(t, validator, header)
		assert.True(t, called, header)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, seen)
	}
}

func TestAuthMiddleware_Rejected(t *testing.T) {
	validator := newTestTokenValidator()
	validator.validTokens["good"] = uuid.New()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "missing Bearer prefix", header: "good"},
		{name: "only Bearer", header: "Bearer"},
		{name: "basic scheme", header: "Basic good"},
		{name: "extra fields", header: "Bearer good extra"},
		{name: "unknown token", header: "Bearer not.a.valid.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, called, _ := serve(t, validator, tt.header)
			assert.False(t, called, "handler should not be called")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
			assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
		})
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := BearerToken(req)
	assert.False(t, ok)

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	token, ok := BearerToken(req)
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestGetUserID(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	_, err := GetUserID(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user ID not found")

	withID := req.WithContext(context.WithValue(req.Context(), UserIDKey(), userID))
	got, err := GetUserID(withID)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	wrongType := req.WithContext(context.WithValue(req.Context(), UserIDKey(), "not-a-uuid"))
	got, err = GetUserID(wrongType)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}
