package memengine_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
	"github.com/AntonStoeckl/bookstore-go/bookstore/memengine"
	"github.com/AntonStoeckl/bookstore-go/bookstore/oteladapters"
	. "github.com/AntonStoeckl/bookstore-go/testutil/helper" //nolint:revive
)

func Test_Observability_WithLogger_LogsCompletedOperations(t *testing.T) {
	// setup
	ctx := context.Background()
	logHandler := NewLogHandlerSpy(false)
	store := newStore(t, memengine.WithLogger(slog.New(logHandler)))
	book := FixtureBook(GivenUniqueID(t))
	logHandler.Reset()

	// act
	require.NoError(t, store.Insert(ctx, book))
	_ = store.List(ctx)

	// assert
	assert.Equal(t, 2, logHandler.GetRecordCount())
	assert.True(t,
		logHandler.HasInfoLogWithMessage("bookstore operation: insert completed").
			WithAttr("book_id", book.ID.String()).
			WithKey("book_count").
			WithDurationMS().
			Assert(), "insert should be logged with book id, count and duration",
	)
	assert.True(t,
		logHandler.HasInfoLogWithMessage("bookstore operation: list completed").
			WithKey("book_count").
			WithDurationMS().
			Assert(), "list should be logged with count and duration",
	)
}

func Test_Observability_WithLogger_LogsRejectedOperationsAtInfo(t *testing.T) {
	// setup
	ctx := context.Background()
	logHandler := NewLogHandlerSpy(false)
	store := newStore(t, memengine.WithLogger(slog.New(logHandler)))
	missingID := GivenUniqueID(t)

	// act
	_, err := store.Get(ctx, missingID)

	// assert
	assert.ErrorIs(t, err, bookstore.ErrBookNotFound)
	assert.True(t,
		logHandler.HasInfoLogWithMessage("bookstore operation: get rejected").
			WithAttr("error", bookstore.ErrBookNotFound.Error()).
			WithAttr("book_id", missingID.String()).
			Assert(), "not found should be logged as a rejected operation",
	)
	assert.False(t, logHandler.HasErrorLogWithMessage("bookstore operation: get rejected").Assert())
}

func Test_Observability_WithLogger_LogsPolicyOnCreation(t *testing.T) {
	logHandler := NewLogHandlerSpy(false)

	_ = newStore(t,
		memengine.WithLogger(slog.New(logHandler)),
		memengine.WithDuplicateIDPolicy(bookstore.RejectDuplicateIDs),
	)

	assert.True(t,
		logHandler.HasDebugLogWithMessage("bookstore created").
			WithAttr("duplicate_id_policy", "reject").
			Assert(),
	)
}

func Test_Observability_WithContextualLogger(t *testing.T) {
	// setup
	ctx := context.Background()
	logHandler := NewLogHandlerSpy(false)
	store := newStore(t, memengine.WithContextualLogger(slog.New(logHandler)))
	book := FixtureBook(GivenUniqueID(t))

	// act
	require.NoError(t, store.Insert(ctx, book))
	require.NoError(t, store.Delete(ctx, book.ID))

	// assert
	assert.True(t,
		logHandler.HasInfoLogWithMessage("bookstore operation: delete completed").
			WithAttr("removed_count", "1").
			WithAttr("book_count", "0").
			Assert(),
	)
}

func Test_Observability_WithMetrics_RecordsOperations(t *testing.T) {
	// setup
	ctx := context.Background()
	metrics := NewMetricsCollectorSpy()
	store := newStore(t, memengine.WithMetrics(metrics))
	books := FixtureBooks(2)

	// act
	for _, book := range books {
		require.NoError(t, store.Insert(ctx, book))
	}
	_, getErr := store.Get(ctx, GivenUniqueID(t))

	// assert
	assert.ErrorIs(t, getErr, bookstore.ErrBookNotFound)
	assert.True(t, metrics.HasDurationRecord("bookstore_operation_duration_seconds",
		map[string]string{"operation": "insert", "status": "success"}))
	assert.Equal(t, 2, metrics.CountCounterRecords("bookstore_operations_total",
		map[string]string{"operation": "insert", "status": "success"}))
	assert.Equal(t, 1, metrics.CountCounterRecords("bookstore_operations_total",
		map[string]string{"operation": "get", "status": "error"}))
	assert.Equal(t, 1, metrics.CountCounterRecords("bookstore_errors_total",
		map[string]string{"operation": "get", "error_type": "not_found"}))

	stored, ok := metrics.LastValue("bookstore_books_stored")
	assert.True(t, ok)
	assert.InDelta(t, 2.0, stored, 0.0001)
}

func Test_Observability_WithTracing_StartsAndFinishesSpans(t *testing.T) {
	// setup
	ctx := context.Background()
	tracing := NewTracingCollectorSpy()
	id := GivenUniqueID(t)
	store := newStore(t,
		memengine.WithTracing(tracing),
		memengine.WithDuplicateIDPolicy(bookstore.RejectDuplicateIDs),
		memengine.WithInitialBooks(FixtureBook(id)),
	)

	// act
	insertErr := store.Insert(ctx, FixtureBook(id))
	_ = store.List(ctx)

	// assert
	assert.ErrorIs(t, insertErr, bookstore.ErrDuplicateBookID)

	insertSpan, found := tracing.FindSpan("bookstore.insert")
	require.True(t, found)
	assert.True(t, insertSpan.Finished)
	assert.Equal(t, "error", insertSpan.Status)
	assert.Equal(t, "insert", insertSpan.StartAttributes["operation"])
	assert.Equal(t, id.String(), insertSpan.StartAttributes["book_id"])
	assert.Equal(t, "duplicate_id", insertSpan.EndAttributes["error_type"])

	listSpan, found := tracing.FindSpan("bookstore.list")
	require.True(t, found)
	assert.Equal(t, "success", listSpan.Status)
	assert.Equal(t, "1", listSpan.SpanContext.GetAttributes()["book_count"])
	assert.NotContains(t, listSpan.StartAttributes, "book_id")
}

func Test_Observability_ContextualLogsCarryTheOperationSpan(t *testing.T) {
	// setup
	ctx := context.Background()
	exporter := tracetest.NewInMemoryExporter()
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tracerProvider.Shutdown(ctx) }()

	logger := NewContextualLoggerSpy()
	store := newStore(t,
		memengine.WithTracing(oteladapters.NewTracingCollector(tracerProvider.Tracer("test"))),
		memengine.WithContextualLogger(logger),
	)

	// act
	require.NoError(t, store.Insert(ctx, FixtureBook(GivenUniqueID(t))))

	// assert
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "bookstore.insert", spans[0].Name)

	record, found := logger.FindRecord("bookstore operation: insert completed")
	require.True(t, found)
	assert.Equal(t, spans[0].SpanContext.SpanID(), trace.SpanContextFromContext(record.Context).SpanID(),
		"the log record should be correlated with the insert span")
}
