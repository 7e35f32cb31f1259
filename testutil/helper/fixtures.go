package helper

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

// GivenUniqueID returns a fresh random book id.
func GivenUniqueID(t testing.TB) uuid.UUID {
	t.Helper()

	return uuid.New()
}

// FixtureBook builds a book with the given id and fixed title and author.
func FixtureBook(id uuid.UUID) bookstore.Book {
	return bookstore.BuildBook(id, "Learning Domain-Driven Design", "Vlad Khononov")
}

// FixtureBooks builds n books with distinct ids and numbered titles and authors.
func FixtureBooks(n int) bookstore.Books {
	books := make(bookstore.Books, 0, n)
	for i := 1; i <= n; i++ {
		books = append(books, bookstore.BuildBook(
			uuid.New(),
			fmt.Sprintf("Title %d", i),
			fmt.Sprintf("Author %d", i),
		))
	}

	return books
}

// SequentialID returns a deterministic uuid for the integer n, useful for "ids 1..100" style tests.
func SequentialID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}
