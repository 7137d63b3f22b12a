package middleware

import (
	"net/http"
	"time"
)

// RequestObserver recebe a duração e o status de cada requisição
type RequestObserver interface {
	ObserveRequest(method string, status int, duration time.Duration)
}

// MetricsMiddleware registra cada requisição no observer
func MetricsMiddleware(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			observer.ObserveRequest(r.Method, lrw.statusCode, time.Since(startTime))
		})
	}
}
