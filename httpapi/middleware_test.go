package httpapi_test

import (
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/bookstore-go/bookstore/memengine"
	"github.com/AntonStoeckl/bookstore-go/httpapi"
	. "github.com/AntonStoeckl/bookstore-go/testutil/helper" //nolint:revive
)

func Test_Middleware_WithLogger_LogsEveryRequest(t *testing.T) {
	// setup
	logHandler := NewLogHandlerSpy(false)
	server := newServer(t, nil, httpapi.WithLogger(slog.New(logHandler)))
	id := GivenUniqueID(t)

	// act
	do(t, server, http.MethodPost, "/books", bookBody(t, id, "T", "A"))
	do(t, server, http.MethodGet, "/books/"+GivenUniqueID(t).String(), "")

	// assert
	assert.True(t,
		logHandler.HasInfoLogWithMessage("http request completed").
			WithAttr("method", "POST").
			WithAttr("route", "POST /books").
			WithAttr("status", "201").
			WithDurationMS().
			Assert(), "create should be logged with route and status",
	)
	assert.True(t,
		logHandler.HasInfoLogWithMessage("http request completed").
			WithAttr("route", "GET /books/{id}").
			WithAttr("status", "404").
			Assert(), "not found should be logged with the route pattern, not the raw path",
	)
}

func Test_Middleware_WithContextualLogger(t *testing.T) {
	logHandler := NewLogHandlerSpy(false)
	server := newServer(t, nil, httpapi.WithContextualLogger(slog.New(logHandler)))

	do(t, server, http.MethodPatch, "/books", "")

	assert.True(t,
		logHandler.HasInfoLogWithMessage("http request completed").
			WithAttr("route", "unmatched").
			WithAttr("status", "405").
			Assert(),
	)
}

func Test_Middleware_WithMetrics_RecordsRequests(t *testing.T) {
	// setup
	metrics := NewMetricsCollectorSpy()
	server := newServer(t, nil, httpapi.WithMetrics(metrics))
	books := FixtureBooks(3)

	// act
	var wg sync.WaitGroup
	for _, book := range books {
		wg.Add(1)
		go func(body string) {
			defer wg.Done()
			do(t, server, http.MethodPost, "/books", body)
		}(bookBody(t, book.ID, book.Title, book.Author))
	}
	wg.Wait()
	do(t, server, http.MethodDelete, "/books/"+GivenUniqueID(t).String(), "")

	// assert
	created := map[string]string{"method": "POST", "route": "POST /books", "status": "201"}
	assert.Equal(t, 3, metrics.CountCounterRecords("bookstore_http_requests_total", created))
	assert.True(t, metrics.HasDurationRecord("bookstore_http_request_duration_seconds", created))
	assert.Equal(t, 1, metrics.CountCounterRecords("bookstore_http_requests_total",
		map[string]string{"method": "DELETE", "route": "DELETE /books/{id}", "status": "404"}))
}

func Test_Middleware_StoreAndRouterShareTheMetricsCollector(t *testing.T) {
	metrics := NewMetricsCollectorSpy()
	server := newServer(t,
		[]memengine.Option{memengine.WithMetrics(metrics)},
		httpapi.WithMetrics(metrics),
	)

	do(t, server, http.MethodGet, "/books", "")

	assert.Equal(t, 1, metrics.CountCounterRecords("bookstore_operations_total",
		map[string]string{"operation": "list", "status": "success"}))
	assert.Equal(t, 1, metrics.CountCounterRecords("bookstore_http_requests_total",
		map[string]string{"route": "GET /books", "status": "200"}))
}
