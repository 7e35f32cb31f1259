package httpapi

import (
	"errors"
	"net/http"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

var ErrMalformedBook = errors.New("malformed book payload")
var ErrInvalidBookID = errors.New("invalid book id")
var ErrNilBookStore = errors.New("book store must not be nil")
var ErrInvalidStaticDir = errors.New("static dir must be an existing directory")

// statusFor maps an error from decoding or from the store to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMalformedBook), errors.Is(err, ErrInvalidBookID):
		return http.StatusBadRequest
	case errors.Is(err, bookstore.ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, bookstore.ErrDuplicateBookID):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
