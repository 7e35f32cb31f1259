package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

func Test_decodeBook_ValidPayload(t *testing.T) {
	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/books",
		strings.NewReader(`{"author":"Vlad Khononov","title":"Learning Domain-Driven Design","id":"`+id.String()+`"}`))

	book, err := decodeBook(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, bookstore.BuildBook(id, "Learning Domain-Driven Design", "Vlad Khononov"), book)
}

func Test_statusFor(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{errors.Join(ErrMalformedBook, errors.New("cause")), http.StatusBadRequest},
		{errors.Join(ErrInvalidBookID, errors.New("cause")), http.StatusBadRequest},
		{bookstore.ErrBookNotFound, http.StatusNotFound},
		{bookstore.ErrDuplicateBookID, http.StatusConflict},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.expected, statusFor(tc.err))
		})
	}
}

func Test_toBookResponses_NeverNil(t *testing.T) {
	assert.NotNil(t, toBookResponses(nil))
}
