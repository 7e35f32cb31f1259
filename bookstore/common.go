package bookstore

import (
	"errors"
)

var ErrBookNotFound = errors.New("book not found")
var ErrDuplicateBookID = errors.New("a book with this id already exists")
var ErrInvalidDuplicateIDPolicy = errors.New("invalid duplicate id policy supplied")
var ErrNilObservabilityDependency = errors.New("observability dependency must not be nil")

// BookCountInt is a type alias for int, representing the number of books held by a store.
type BookCountInt = int
