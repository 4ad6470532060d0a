package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/paimon/gateway/internal/response"
)

// Recoverer converts a downstream panic into the generic 500 body instead of
// killing the connection. The stack goes to the log, only the message to the client.
func Recoverer(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Errorw("unhandled panic",
						"path", r.URL.Path,
						"panic", rec,
						zap.Stack("stack"),
					)
					response.InternalError(w, fmt.Sprintf("%v", rec))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
