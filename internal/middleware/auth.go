package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/paimon/gateway/internal/response"
)

// AuthHeader carries the client's credential token.
const AuthHeader = "X-Auth-Token"

// ErrMissingToken is returned when no credential token was presented.
var ErrMissingToken = errors.New("missing authentication token")

// ErrInvalidToken is returned when the presented token does not match the secret.
var ErrInvalidToken = errors.New("invalid authentication token")

// VerifyToken compares a presented token against the configured secret.
// The comparison is constant-time so the secret cannot be probed byte by byte.
func VerifyToken(presented, secret string) error {
	if presented == "" {
		return ErrMissingToken
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

// RequireAuth returns middleware that validates the X-Auth-Token header
// against the configured secret before passing the request on.
func RequireAuth(secret string, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := VerifyToken(r.Header.Get(AuthHeader), secret)
			switch {
			case errors.Is(err, ErrMissingToken):
				log.Warnw("missing authentication token", "path", r.URL.Path)
				response.Unauthorized(w, "Missing authentication token")
				return
			case errors.Is(err, ErrInvalidToken):
				log.Warnw("invalid authentication token", "path", r.URL.Path)
				response.Forbidden(w, "Invalid authentication token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
