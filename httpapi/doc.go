// Package httpapi exposes a book store over HTTP with JSON payloads.
//
// Routes:
//
//	GET    /books       list all books, 200
//	POST   /books       create a book, 201
//	GET    /books/{id}  fetch one book, 200 or 404
//	PUT    /books/{id}  replace one book, 200 or 404
//	DELETE /books/{id}  delete a book, 204 or 404
//	GET    /healthz     liveness, 200
//
// With WithStaticDir, "/" serves index.html from that directory and "/static/" serves its files.
//
// A book payload is a JSON object with the string fields "id", "title" and "author".
// All three are required, and "id" must be a UUID. Malformed payloads and invalid path ids
// are answered with 400 and a {"error": "..."} body. A 404 carries no body.
//
// Usage:
//
//	store, _ := memengine.NewBookStore()
//	router, err := httpapi.NewRouter(store, httpapi.WithLogger(slog.Default()))
//	if err != nil {
//		return err
//	}
//	_ = http.ListenAndServe(":3000", router)
package httpapi
