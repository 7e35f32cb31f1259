package memengine

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

const (
	logMsgOperation     = "bookstore operation: "
	logMsgCompleted     = " completed"
	logMsgRejected      = " rejected"
	logMsgStoreCreated  = "bookstore created"
	logAttrError        = "error"
	logAttrBookID       = "book_id"
	logAttrNewBookID    = "new_book_id"
	logAttrBookCount    = "book_count"
	logAttrRemoved      = "removed_count"
	logAttrDurationMS   = "duration_ms"
	logAttrPolicy       = "duplicate_id_policy"
	operationList       = "list"
	operationGet        = "get"
	operationInsert     = "insert"
	operationReplace    = "replace"
	operationDelete     = "delete"
	errorTypeNotFound   = "not_found"
	errorTypeDuplicate  = "duplicate_id"
	notFoundIndex       = -1
	noDuplicateConflict = false
)

// BookStore is the authoritative in-memory collection of books.
//
// All five operations acquire mu for their whole duration, so they are serialized and never
// observe a partially applied effect of one another. The zero value is not usable, use NewBookStore.
type BookStore struct {
	mu                sync.Mutex
	books             bookstore.Books
	duplicateIDPolicy bookstore.DuplicateIDPolicy
	logger            bookstore.Logger
	contextualLogger  bookstore.ContextualLogger
	metricsCollector  bookstore.MetricsCollector
	tracingCollector  bookstore.TracingCollector
}

// NewBookStore creates a new, empty BookStore with optional configuration.
func NewBookStore(options ...Option) (*BookStore, error) {
	s := &BookStore{
		books:             make(bookstore.Books, 0),
		duplicateIDPolicy: bookstore.AllowDuplicateIDs,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	if s.logger != nil {
		s.logger.Debug(logMsgStoreCreated, logAttrPolicy, s.duplicateIDPolicy.String(), logAttrBookCount, len(s.books))
	}

	return s, nil
}

// List returns a copy of every stored book in insertion order. It never fails.
func (s *BookStore) List(ctx context.Context) bookstore.Books {
	observer := s.startOperation(ctx, operationList, uuid.Nil)

	books := s.snapshot()

	observer.recordListed(len(books))
	observer.finishSuccess(logAttrBookCount, len(books))

	return books
}

// Get returns a copy of the first book with the given id, or bookstore.ErrBookNotFound.
func (s *BookStore) Get(ctx context.Context, id uuid.UUID) (bookstore.Book, error) {
	observer := s.startOperation(ctx, operationGet, id)

	book, found := s.findFirst(id)
	if !found {
		observer.finishError(errorTypeNotFound, bookstore.ErrBookNotFound)
		return bookstore.Book{}, bookstore.ErrBookNotFound
	}

	observer.finishSuccess()

	return book, nil
}

// Insert appends the book to the collection.
//
// With bookstore.AllowDuplicateIDs it always succeeds, even if the id is already taken.
// With bookstore.RejectDuplicateIDs it returns bookstore.ErrDuplicateBookID in that case.
func (s *BookStore) Insert(ctx context.Context, book bookstore.Book) error {
	observer := s.startOperation(ctx, operationInsert, book.ID)

	bookCount, duplicate := s.appendBook(book)
	if duplicate {
		observer.finishError(errorTypeDuplicate, bookstore.ErrDuplicateBookID)
		return bookstore.ErrDuplicateBookID
	}

	observer.recordStored(bookCount)
	observer.finishSuccess(logAttrBookCount, bookCount)

	return nil
}

// Replace overwrites every field of the first book with the given id with the fields of newBook,
// including the id itself, which may differ from the lookup id.
//
// It returns bookstore.ErrBookNotFound if no book has the given id. With bookstore.RejectDuplicateIDs
// it returns bookstore.ErrDuplicateBookID if newBook's id is held by a different stored book.
func (s *BookStore) Replace(ctx context.Context, id uuid.UUID, newBook bookstore.Book) error {
	observer := s.startOperation(ctx, operationReplace, id)

	found, duplicate := s.replaceBook(id, newBook)

	switch {
	case !found:
		observer.finishError(errorTypeNotFound, bookstore.ErrBookNotFound)
		return bookstore.ErrBookNotFound

	case duplicate:
		observer.finishError(errorTypeDuplicate, bookstore.ErrDuplicateBookID, logAttrNewBookID, newBook.ID.String())
		return bookstore.ErrDuplicateBookID
	}

	observer.finishSuccess(logAttrNewBookID, newBook.ID.String())

	return nil
}

// Delete removes every book with the given id, or returns bookstore.ErrBookNotFound if there is none.
func (s *BookStore) Delete(ctx context.Context, id uuid.UUID) error {
	observer := s.startOperation(ctx, operationDelete, id)

	removed, bookCount := s.removeBooks(id)
	if removed == 0 {
		observer.finishError(errorTypeNotFound, bookstore.ErrBookNotFound)
		return bookstore.ErrBookNotFound
	}

	observer.recordStored(bookCount)
	observer.finishSuccess(logAttrRemoved, removed, logAttrBookCount, bookCount)

	return nil
}

// Len returns the number of stored books.
func (s *BookStore) Len(_ context.Context) bookstore.BookCountInt {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.books)
}

// DuplicateIDPolicy returns the policy the BookStore was configured with.
func (s *BookStore) DuplicateIDPolicy() bookstore.DuplicateIDPolicy {
	return s.duplicateIDPolicy
}

func (s *BookStore) snapshot() bookstore.Books {
	s.mu.Lock()
	defer s.mu.Unlock()

	return bookstore.CloneBooks(s.books)
}

func (s *BookStore) findFirst(id uuid.UUID) (bookstore.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == notFoundIndex {
		return bookstore.Book{}, false
	}

	return s.books[idx], true
}

func (s *BookStore) appendBook(book bookstore.Book) (bookstore.BookCountInt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.duplicateIDPolicy == bookstore.RejectDuplicateIDs && s.indexOf(book.ID) != notFoundIndex {
		return len(s.books), true
	}

	s.books = append(s.books, book)

	return len(s.books), noDuplicateConflict
}

func (s *BookStore) replaceBook(id uuid.UUID, newBook bookstore.Book) (found bool, duplicate bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == notFoundIndex {
		return false, noDuplicateConflict
	}

	if s.duplicateIDPolicy == bookstore.RejectDuplicateIDs && newBook.ID != id {
		if s.indexOf(newBook.ID) != notFoundIndex {
			return true, true
		}
	}

	s.books[idx] = newBook

	return true, noDuplicateConflict
}

func (s *BookStore) removeBooks(id uuid.UUID) (removed int, remaining bookstore.BookCountInt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.books)
	s.books = slices.DeleteFunc(s.books, func(b bookstore.Book) bool {
		return b.HasID(id)
	})

	return before - len(s.books), len(s.books)
}

// indexOf must be called with mu held.
func (s *BookStore) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.books, func(b bookstore.Book) bool {
		return b.HasID(id)
	})
}
