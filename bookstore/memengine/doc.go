// Package memengine provides an in-memory implementation of a book record store.
//
// The BookStore keeps all books in one ordered slice guarded by a single mutex.
// Every operation takes the lock for the whole collection, performs a bounded
// scan or mutation, and releases it again, so concurrent callers are totally ordered.
// Logging, metrics and tracing run after the lock is released.
//
// Nothing is persisted: the collection lives exactly as long as the BookStore value.
//
// Usage examples:
//
//	// Basic usage
//	store, _ := memengine.NewBookStore()
//
//	// With uniqueness enforcement and operational logging
//	store, _ := memengine.NewBookStore(
//		memengine.WithDuplicateIDPolicy(bookstore.RejectDuplicateIDs),
//		memengine.WithLogger(slog.Default()),
//	)
//
//	// With OpenTelemetry
//	store, _ := memengine.NewBookStore(
//		memengine.WithMetrics(oteladapters.NewMetricsCollector(meter)),
//		memengine.WithTracing(oteladapters.NewTracingCollector(tracer)),
//		memengine.WithContextualLogger(oteladapters.NewSlogBridgeLogger("bookstore")),
//	)
//
//	_ = store.Insert(ctx, book)
//	books := store.List(ctx)
package memengine
