package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

// BookStore is the set of store operations the Router depends on.
// memengine.BookStore implements it.
type BookStore interface {
	List(ctx context.Context) bookstore.Books
	Get(ctx context.Context, id uuid.UUID) (bookstore.Book, error)
	Insert(ctx context.Context, book bookstore.Book) error
	Replace(ctx context.Context, id uuid.UUID, newBook bookstore.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Router is an http.Handler serving the book routes.
type Router struct {
	store            BookStore
	handler          http.Handler
	staticDir        string
	logger           bookstore.Logger
	contextualLogger bookstore.ContextualLogger
	metricsCollector bookstore.MetricsCollector
}

// NewRouter creates a Router on top of the given store.
func NewRouter(store BookStore, options ...Option) (*Router, error) {
	if store == nil {
		return nil, ErrNilBookStore
	}

	router := &Router{store: store}

	for _, option := range options {
		if err := option(router); err != nil {
			return nil, err
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /books", router.handleListBooks)
	mux.HandleFunc("POST /books", router.handleCreateBook)
	mux.HandleFunc("GET /books/{id}", router.handleGetBook)
	mux.HandleFunc("PUT /books/{id}", router.handleReplaceBook)
	mux.HandleFunc("DELETE /books/{id}", router.handleDeleteBook)
	mux.HandleFunc("GET /healthz", handleHealth)

	if router.staticDir != "" {
		router.registerStatic(mux)
	}

	router.handler = router.instrument(mux)

	return router, nil
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}
