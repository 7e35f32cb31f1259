package bookstore

import (
	"github.com/google/uuid"
)

// Books is an alias type for a slice of Book.
type Books = []Book

// Book is the single record type held by a book store.
//
// It only holds scalar values, so copying a Book by value yields an independent record.
// Stores hand out copies, never references into their own collection.
type Book struct {
	ID     uuid.UUID
	Title  string
	Author string
}

// BuildBook is a factory method for Book.
func BuildBook(id uuid.UUID, title string, author string) Book {
	return Book{
		ID:     id,
		Title:  title,
		Author: author,
	}
}

// HasID reports whether the book is identified by the given id.
func (b Book) HasID(id uuid.UUID) bool {
	return b.ID == id
}

// CloneBooks returns an independent copy of books. The result is never nil.
func CloneBooks(books Books) Books {
	cloned := make(Books, len(books))
	copy(cloned, books)

	return cloned
}
