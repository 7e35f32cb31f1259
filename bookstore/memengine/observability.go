package memengine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

const (
	metricOperationDuration = "bookstore_operation_duration_seconds"
	metricOperationsTotal   = "bookstore_operations_total"
	metricErrorsTotal       = "bookstore_errors_total"
	metricBooksStored       = "bookstore_books_stored"
	metricBooksListed       = "bookstore_books_listed"
	spanNamePrefix          = "bookstore."
	spanAttrOperation       = "operation"
	spanAttrBookID          = "book_id"
	spanAttrBookCount       = "book_count"
	spanAttrErrorType       = "error_type"
	spanAttrDurationMS      = "duration_ms"
	labelStatus             = "status"
	statusSuccess           = "success"
	statusError             = "error"
)

// operationObserver bundles tracing, metrics and logging for a single store operation.
// It is created before the critical section and finished after it, never while mu is held.
type operationObserver struct {
	s         *BookStore
	ctx       context.Context
	operation string
	bookID    uuid.UUID
	span      bookstore.SpanContext
	start     time.Time
}

// startOperation starts the tracing span for an operation and captures its start time.
// Pass uuid.Nil for operations that are not about a single book.
func (s *BookStore) startOperation(ctx context.Context, operation string, bookID uuid.UUID) *operationObserver {
	observer := &operationObserver{
		s:         s,
		ctx:       ctx,
		operation: operation,
		bookID:    bookID,
		start:     time.Now(),
	}

	if s.tracingCollector != nil {
		spanAttrs := map[string]string{spanAttrOperation: operation}
		if bookID != uuid.Nil {
			spanAttrs[spanAttrBookID] = bookID.String()
		}

		observer.ctx, observer.span = s.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, spanAttrs)
	}

	return observer
}

// finishSuccess completes the span, records duration and counter metrics, and logs the operation.
func (o *operationObserver) finishSuccess(logArgs ...any) {
	duration := time.Since(o.start)

	o.finishSpan(statusSuccess, duration, nil)
	o.recordMetrics(statusSuccess, duration)
	o.log(logMsgOperation+o.operation+logMsgCompleted, duration, logArgs...)
}

// finishError completes the span with the error type, records error metrics, and logs the rejection.
// NotFound and duplicate outcomes are expected business results, so they are logged at info level.
func (o *operationObserver) finishError(errorType string, err error, logArgs ...any) {
	duration := time.Since(o.start)

	o.finishSpan(statusError, duration, map[string]string{spanAttrErrorType: errorType})
	o.recordMetrics(statusError, duration)

	bookstore.IncrementCounter(o.ctx, o.s.metricsCollector, metricErrorsTotal, map[string]string{
		spanAttrOperation: o.operation,
		spanAttrErrorType: errorType,
	})

	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, logArgs...)
	o.log(logMsgOperation+o.operation+logMsgRejected, duration, allArgs...)
}

// recordStored records the number of stored books after a successful write.
func (o *operationObserver) recordStored(bookCount bookstore.BookCountInt) {
	bookstore.RecordValue(o.ctx, o.s.metricsCollector, metricBooksStored, float64(bookCount), map[string]string{
		spanAttrOperation: o.operation,
	})

	if o.span != nil {
		o.span.AddAttribute(spanAttrBookCount, fmt.Sprintf("%d", bookCount))
	}
}

// recordListed records how many books a List call returned.
func (o *operationObserver) recordListed(bookCount bookstore.BookCountInt) {
	bookstore.RecordValue(o.ctx, o.s.metricsCollector, metricBooksListed, float64(bookCount), map[string]string{
		spanAttrOperation: o.operation,
	})

	if o.span != nil {
		o.span.AddAttribute(spanAttrBookCount, fmt.Sprintf("%d", bookCount))
	}
}

func (o *operationObserver) finishSpan(status string, duration time.Duration, attrs map[string]string) {
	if o.span == nil || o.s.tracingCollector == nil {
		return
	}

	o.span.SetStatus(status)
	o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", bookstore.DurationToMilliseconds(duration)))

	o.s.tracingCollector.FinishSpan(o.span, status, attrs)
}

func (o *operationObserver) recordMetrics(status string, duration time.Duration) {
	labels := map[string]string{
		spanAttrOperation: o.operation,
		labelStatus:       status,
	}

	bookstore.RecordDuration(o.ctx, o.s.metricsCollector, metricOperationDuration, duration, labels)
	bookstore.IncrementCounter(o.ctx, o.s.metricsCollector, metricOperationsTotal, labels)
}

// log writes the message to the plain and the contextual logger, whichever are configured.
func (o *operationObserver) log(msg string, duration time.Duration, args ...any) {
	if o.s.logger == nil && o.s.contextualLogger == nil {
		return
	}

	allArgs := make([]any, 0, len(args)+4)
	if o.bookID != uuid.Nil {
		allArgs = append(allArgs, logAttrBookID, o.bookID.String())
	}
	allArgs = append(allArgs, args...)
	allArgs = append(allArgs, logAttrDurationMS, bookstore.DurationToMilliseconds(duration))

	if o.s.logger != nil {
		o.s.logger.Info(msg, allArgs...)
	}

	if o.s.contextualLogger != nil {
		o.s.contextualLogger.InfoContext(o.ctx, msg, allArgs...)
	}
}
