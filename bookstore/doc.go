// Package bookstore provides the core types shared by book record store implementations.
//
// It defines the Book record, the sentinel errors that reach the request boundary,
// the DuplicateIDPolicy that controls how a store treats repeated ids,
// and the dependency-free observability interfaces (Logger, ContextualLogger,
// MetricsCollector, TracingCollector) that engines report through.
//
// Key types:
//   - Book: a single record identified by a UUID
//   - Books: an ordered collection of Book values
//   - DuplicateIDPolicy: AllowDuplicateIDs or RejectDuplicateIDs
//
// Common usage pattern:
//
//	store, _ := memengine.NewBookStore(
//		memengine.WithDuplicateIDPolicy(bookstore.RejectDuplicateIDs),
//	)
//
//	book := bookstore.BuildBook(uuid.New(), "Learning Domain-Driven Design", "Vlad Khononov")
//	if err := store.Insert(ctx, book); err != nil {
//		// handle error
//	}
//
//	found, err := store.Get(ctx, book.ID)
//	if errors.Is(err, bookstore.ErrBookNotFound) {
//		// handle missing book
//	}
package bookstore
