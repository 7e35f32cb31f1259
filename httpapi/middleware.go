package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

const (
	metricHTTPRequestsTotal   = "bookstore_http_requests_total"
	metricHTTPRequestDuration = "bookstore_http_request_duration_seconds"

	logMsgRequestCompleted = "http request completed"

	logAttrMethod     = "method"
	logAttrRoute      = "route"
	logAttrStatus     = "status"
	logAttrDurationMS = "duration_ms"

	unmatchedRoute = "unmatched"
)

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// instrument wraps next with request logging and metrics.
// Without a logger and a metrics collector next is returned as-is.
func (r *Router) instrument(next http.Handler) http.Handler {
	if r.logger == nil && r.contextualLogger == nil && r.metricsCollector == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		duration := time.Since(start)
		route := req.Pattern
		if route == "" {
			route = unmatchedRoute
		}

		labels := map[string]string{
			logAttrMethod: req.Method,
			logAttrRoute:  route,
			logAttrStatus: strconv.Itoa(rec.status),
		}

		bookstore.IncrementCounter(req.Context(), r.metricsCollector, metricHTTPRequestsTotal, labels)
		bookstore.RecordDuration(req.Context(), r.metricsCollector, metricHTTPRequestDuration, duration, labels)

		args := []any{
			logAttrMethod, req.Method,
			logAttrRoute, route,
			logAttrStatus, rec.status,
			logAttrDurationMS, bookstore.DurationToMilliseconds(duration),
		}

		if r.logger != nil {
			r.logger.Info(logMsgRequestCompleted, args...)
		}

		if r.contextualLogger != nil {
			r.contextualLogger.InfoContext(req.Context(), logMsgRequestCompleted, args...)
		}
	})
}
