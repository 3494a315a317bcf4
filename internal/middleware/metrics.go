package middleware

import (
	"net/http"
	"time"
)

// RequestRecorder records completed HTTP requests
type RequestRecorder interface {
	RecordRequest(method string, statusCode int, duration time.Duration)
}

// MetricsMiddleware records request counts and latency for every request
func MetricsMiddleware(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			recorder.RecordRequest(r.Method, ww.statusCode, time.Since(start))
		})
	}
}
