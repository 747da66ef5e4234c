package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/timemachine-studios/timemachine-proxy/pkg/logger"
)

// RequestID stamps each request with a process-local sequence number so log
// lines from one request can be correlated.
func RequestID(next http.Handler) http.Handler {
	var seq atomic.Int64
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.ContextWithRequestID(r.Context(), seq.Add(1))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
