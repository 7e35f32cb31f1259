package bookstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/bookstore-go/bookstore"
)

func Test_BuildBook(t *testing.T) {
	id := uuid.New()

	book := bookstore.BuildBook(id, "Learning Domain-Driven Design", "Vlad Khononov")

	assert.Equal(t, id, book.ID)
	assert.Equal(t, "Learning Domain-Driven Design", book.Title)
	assert.Equal(t, "Vlad Khononov", book.Author)
	assert.True(t, book.HasID(id))
	assert.False(t, book.HasID(uuid.New()))
}

func Test_CloneBooks_ReturnsIndependentCopy(t *testing.T) {
	// arrange
	original := bookstore.Books{
		bookstore.BuildBook(uuid.New(), "A", "B"),
		bookstore.BuildBook(uuid.New(), "C", "D"),
	}

	// act
	cloned := bookstore.CloneBooks(original)
	cloned[0].Title = "changed"

	// assert
	assert.Len(t, cloned, 2)
	assert.Equal(t, "A", original[0].Title, "mutating the clone must not touch the original")
}

func Test_CloneBooks_NilInputYieldsEmptySlice(t *testing.T) {
	cloned := bookstore.CloneBooks(nil)

	assert.NotNil(t, cloned)
	assert.Empty(t, cloned)
}

func Test_DuplicateIDPolicy(t *testing.T) {
	testCases := []struct {
		policy   bookstore.DuplicateIDPolicy
		valid    bool
		asString string
	}{
		{bookstore.AllowDuplicateIDs, true, "allow"},
		{bookstore.RejectDuplicateIDs, true, "reject"},
		{bookstore.DuplicateIDPolicy(42), false, "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.asString, func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.policy.IsValid())
			assert.Equal(t, tc.asString, tc.policy.String())
		})
	}
}

func Test_DurationToMilliseconds(t *testing.T) {
	assert.InDelta(t, 1.5, bookstore.DurationToMilliseconds(1500*time.Microsecond), 0.0001)
	assert.InDelta(t, 0.0, bookstore.DurationToMilliseconds(0), 0.0001)
}

type plainCollector struct {
	counters int
}

func (c *plainCollector) RecordDuration(string, time.Duration, map[string]string) {}
func (c *plainCollector) IncrementCounter(string, map[string]string)              { c.counters++ }
func (c *plainCollector) RecordValue(string, float64, map[string]string)          {}

type contextualCollector struct {
	plainCollector
	contextCounters int
}

func (c *contextualCollector) RecordDurationContext(context.Context, string, time.Duration, map[string]string) {
}

func (c *contextualCollector) IncrementCounterContext(context.Context, string, map[string]string) {
	c.contextCounters++
}

func (c *contextualCollector) RecordValueContext(context.Context, string, float64, map[string]string) {
}

func Test_IncrementCounter_PrefersContextualCollector(t *testing.T) {
	// setup
	ctx := context.Background()
	plain := &plainCollector{}
	contextual := &contextualCollector{}

	// act
	bookstore.IncrementCounter(ctx, plain, "m", nil)
	bookstore.IncrementCounter(ctx, contextual, "m", nil)
	bookstore.IncrementCounter(ctx, nil, "m", nil)

	// assert
	assert.Equal(t, 1, plain.counters)
	assert.Equal(t, 0, contextual.counters)
	assert.Equal(t, 1, contextual.contextCounters)
}
