package memengine

import (
	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

// Option defines a functional option for configuring BookStore.
type Option func(*BookStore) error

// WithDuplicateIDPolicy sets how the BookStore treats a write that would repeat an existing id.
// The default is bookstore.AllowDuplicateIDs.
func WithDuplicateIDPolicy(policy bookstore.DuplicateIDPolicy) Option {
	return func(s *BookStore) error {
		if !policy.IsValid() {
			return bookstore.ErrInvalidDuplicateIDPolicy
		}

		s.duplicateIDPolicy = policy

		return nil
	}
}

// WithInitialBooks seeds the BookStore with the given books, in the given order.
// The books are inserted as-is, without applying the duplicate id policy.
func WithInitialBooks(books ...bookstore.Book) Option {
	return func(s *BookStore) error {
		s.books = append(s.books, books...)
		return nil
	}
}

// WithLogger sets the logger for the BookStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: the configured duplicate id policy at construction time
// Info level: completed and rejected operations with book ids, counts and durations.
func WithLogger(logger bookstore.Logger) Option {
	return func(s *BookStore) error {
		if logger == nil {
			return bookstore.ErrNilObservabilityDependency
		}

		s.logger = logger

		return nil
	}
}

// WithContextualLogger sets the contextual logger for the BookStore.
// It receives the same messages as the plain logger, with the operation's context attached
// so that trace and span ids can be correlated when tracing is enabled.
func WithContextualLogger(logger bookstore.ContextualLogger) Option {
	return func(s *BookStore) error {
		if logger == nil {
			return bookstore.ErrNilObservabilityDependency
		}

		s.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the BookStore.
// The collector will receive operation durations, operation and error counts,
// and the number of stored books after each write.
func WithMetrics(collector bookstore.MetricsCollector) Option {
	return func(s *BookStore) error {
		if collector == nil {
			return bookstore.ErrNilObservabilityDependency
		}

		s.metricsCollector = collector

		return nil
	}
}

// WithTracing sets the tracing collector for the BookStore.
// One span is started per operation and finished with its outcome.
func WithTracing(collector bookstore.TracingCollector) Option {
	return func(s *BookStore) error {
		if collector == nil {
			return bookstore.ErrNilObservabilityDependency
		}

		s.tracingCollector = collector

		return nil
	}
}
