package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

const maxBookPayloadBytes = 1 << 20

const contentTypeHeader = "Content-Type"
const contentTypeJSON = "application/json"

// bookPayload uses pointers so that absent and null fields can be told apart from empty strings.
type bookPayload struct {
	ID     *string `json:"id"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
}

type bookResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// decodeBook reads a single book payload from the request body.
// Every failure is reported as ErrMalformedBook, joined with its cause.
func decodeBook(w http.ResponseWriter, r *http.Request) (bookstore.Book, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBookPayloadBytes))
	if err != nil {
		return bookstore.Book{}, errors.Join(ErrMalformedBook, err)
	}

	if len(body) == 0 {
		return bookstore.Book{}, errors.Join(ErrMalformedBook, errors.New("empty body"))
	}

	var payload bookPayload
	if err = jsoniter.ConfigFastest.Unmarshal(body, &payload); err != nil {
		return bookstore.Book{}, errors.Join(ErrMalformedBook, err)
	}

	if payload.ID == nil || payload.Title == nil || payload.Author == nil {
		return bookstore.Book{}, errors.Join(ErrMalformedBook, errors.New("id, title and author are required"))
	}

	id, err := uuid.Parse(*payload.ID)
	if err != nil {
		return bookstore.Book{}, errors.Join(ErrMalformedBook, err)
	}

	return bookstore.BuildBook(id, *payload.Title, *payload.Author), nil
}

func parseBookID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidBookID, err)
	}

	return id, nil
}

func toBookResponse(book bookstore.Book) bookResponse {
	return bookResponse{
		ID:     book.ID.String(),
		Title:  book.Title,
		Author: book.Author,
	}
}

// toBookResponses never returns nil, so an empty store is encoded as [] and not as null.
func toBookResponses(books bookstore.Books) []bookResponse {
	responses := make([]bookResponse, 0, len(books))
	for _, book := range books {
		responses = append(responses, toBookResponse(book))
	}

	return responses
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := jsoniter.ConfigFastest.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
