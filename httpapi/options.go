package httpapi

import (
	"errors"
	"os"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

// Option defines a functional option for configuring Router.
type Option func(*Router) error

// WithLogger sets the logger for the Router.
// Every request is logged at Info level with method, route, status and duration.
func WithLogger(logger bookstore.Logger) Option {
	return func(r *Router) error {
		if logger == nil {
			return bookstore.ErrNilObservabilityDependency
		}

		r.logger = logger

		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Router.
// Request logs then carry the trace context of the request, if any.
func WithContextualLogger(logger bookstore.ContextualLogger) Option {
	return func(r *Router) error {
		if logger == nil {
			return bookstore.ErrNilObservabilityDependency
		}

		r.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the Router.
//
// Metrics:
//   - bookstore_http_requests_total: counter labeled with method, route and status
//   - bookstore_http_request_duration_seconds: histogram labeled with method, route and status
func WithMetrics(collector bookstore.MetricsCollector) Option {
	return func(r *Router) error {
		if collector == nil {
			return bookstore.ErrNilObservabilityDependency
		}

		r.metricsCollector = collector

		return nil
	}
}

// WithStaticDir serves index.html from dir on "/" and the files of dir below "/static/".
func WithStaticDir(dir string) Option {
	return func(r *Router) error {
		info, err := os.Stat(dir)
		if err != nil {
			return errors.Join(ErrInvalidStaticDir, err)
		}

		if !info.IsDir() {
			return ErrInvalidStaticDir
		}

		r.staticDir = dir

		return nil
	}
}
