package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestVerifyToken(t *testing.T) {
	tests := []struct {
		name      string
		presented string
		want      error
	}{
		{"valid token", "s3cret", nil},
		{"missing token", "", ErrMissingToken},
		{"wrong token", "nope", ErrInvalidToken},
		{"prefix of secret", "s3cre", ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, VerifyToken(tt.presented, "s3cret"), tt.want)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAuth("s3cret", zap.NewNop().Sugar())(next)

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{"no header", "", http.StatusUnauthorized, `{"detail":"Missing authentication token"}`, false},
		{"wrong token", "bad", http.StatusForbidden, `{"detail":"Invalid authentication token"}`, false},
		{"valid token", "s3cret", http.StatusOK, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodPost, "/upload", nil)
			if tt.token != "" {
				req.Header.Set(AuthHeader, tt.token)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantNext, reached)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRecovererConvertsPanic(t *testing.T) {
	handler := Recoverer(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal server error","detail":"boom"}`, w.Body.String())
}
