package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/TongAlan/val-api/internal/logging"
)

// Recover answers 500 when next panics and logs the panic with its stack.
func Recover(baseLogger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger := logging.FromContext(r.Context(), baseLogger)
			logging.Error(logger, "handler panic", nil, "panic", rec, "stack", string(debug.Stack()))

			body := map[string]string{"error": "internal server error"}
			if reqID := RequestIDFromContext(r.Context()); reqID != "" {
				body["requestId"] = reqID
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}
