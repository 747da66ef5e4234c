package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/timemachine-studios/timemachine-proxy/pkg/logger"
)

// The endpoint is called cross-origin from the SPA, so every reply carries
// the CORS header set, error replies included.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
}

type JSONResponseWriter struct{}

func (j *JSONResponseWriter) WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	j.writeHeaders(w)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding success response", logger.Err(err))
	}
}

func (j *JSONResponseWriter) WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	j.writeHeaders(w)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		slog.Error("encoding error response", logger.Err(err))
	}
}

// WriteRateLimitResponse writes the typed 429 body the client distinguishes
// from generic failure.
func (j *JSONResponseWriter) WriteRateLimitResponse(w http.ResponseWriter) {
	j.writeHeaders(w)
	w.WriteHeader(http.StatusTooManyRequests)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Rate limit exceeded", Type: "rateLimit"}); err != nil {
		slog.Error("encoding rate limit response", logger.Err(err))
	}
}

// WriteEmptyResponse writes a bodyless reply with the CORS headers, used for
// preflight requests.
func (j *JSONResponseWriter) WriteEmptyResponse(w http.ResponseWriter, statusCode int) {
	j.writeHeaders(w)
	w.WriteHeader(statusCode)
}

func (j *JSONResponseWriter) writeHeaders(w http.ResponseWriter) {
	for key, value := range corsHeaders {
		w.Header().Set(key, value)
	}
	w.Header().Set("Content-Type", "application/json")
}

type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}
