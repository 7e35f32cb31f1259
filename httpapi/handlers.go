package httpapi

import (
	"fmt"
	"net/http"
)

func (r *Router) handleListBooks(w http.ResponseWriter, req *http.Request) {
	books := r.store.List(req.Context())

	writeJSON(w, http.StatusOK, toBookResponses(books))
}

func (r *Router) handleCreateBook(w http.ResponseWriter, req *http.Request) {
	book, err := decodeBook(w, req)
	if err != nil {
		r.writeFailure(w, err)
		return
	}

	if err = r.store.Insert(req.Context(), book); err != nil {
		r.writeFailure(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (r *Router) handleGetBook(w http.ResponseWriter, req *http.Request) {
	id, err := parseBookID(req)
	if err != nil {
		r.writeFailure(w, err)
		return
	}

	book, err := r.store.Get(req.Context(), id)
	if err != nil {
		r.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

// handleReplaceBook validates the path id before reading the body.
func (r *Router) handleReplaceBook(w http.ResponseWriter, req *http.Request) {
	id, err := parseBookID(req)
	if err != nil {
		r.writeFailure(w, err)
		return
	}

	book, err := decodeBook(w, req)
	if err != nil {
		r.writeFailure(w, err)
		return
	}

	if err = r.store.Replace(req.Context(), id, book); err != nil {
		r.writeFailure(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (r *Router) handleDeleteBook(w http.ResponseWriter, req *http.Request) {
	id, err := parseBookID(req)
	if err != nil {
		r.writeFailure(w, err)
		return
	}

	if err = r.store.Delete(req.Context(), id); err != nil {
		r.writeFailure(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintln(w, "ok")
}

// writeFailure answers 404 without a body and every other failure with a JSON error body.
func (r *Router) writeFailure(w http.ResponseWriter, err error) {
	status := statusFor(err)

	switch status {
	case http.StatusNotFound:
		w.WriteHeader(status)
	case http.StatusInternalServerError:
		writeError(w, status, http.StatusText(status))
	default:
		writeError(w, status, err.Error())
	}
}
