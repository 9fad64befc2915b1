package controller

import (
	"net/http"

	"go.uber.org/zap"

	"relay/pkg/logger"
)

// WithRecovery converts downstream panics into a 500 response and an error
// log instead of tearing down the connection.
func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				logger.Error(r.Context(), "panic in handler",
					zap.Any("panic", p),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"))
				http.Error(w, `{"status":"error"}`, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
