package summary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webbooks/internal/platform/middleware"
	"github.com/taibuivan/webbooks/internal/platform/session"
)

func fixed(n int) Counter {
	return func(context.Context) (int, error) { return n, nil }
}

func newTestService(counters Counters) *Service {
	return NewService(counters, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var sampleCounters = Counters{
	Books:              fixed(4),
	Instances:          fixed(9),
	AvailableInstances: fixed(3),
	Authors:            fixed(2),
}

/*
TestService_Index_CountsVisits verifies the counter reported on consecutive
visits from the same session.
*/
func TestService_Index_CountsVisits(t *testing.T) {
	ctx := context.Background()
	service := newTestService(sampleCounters)
	visitor := session.NewHandle("0195f3a2-7c41-7d2e-9a10-5b7c3e8f1a20", session.NewMemoryStore())

	first, err := service.Index(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, 1, first.NumVisits)

	stored, err := visitor.Int(ctx, VisitsKey, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	second, err := service.Index(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, 2, second.NumVisits)

	assert.Equal(t, &Index{
		NumBooks:              4,
		NumInstances:          9,
		NumInstancesAvailable: 3,
		NumAuthors:            2,
		NumVisits:             2,
	}, second)
}

func TestService_Index_ResumesStoredCount(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	visitor := session.NewHandle("visitor", store)
	require.NoError(t, visitor.SetInt(ctx, VisitsKey, 2))

	index, err := newTestService(sampleCounters).Index(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, 2, index.NumVisits)

	stored, err := visitor.Int(ctx, VisitsKey, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, stored)
}

func TestService_Index_CounterFailure(t *testing.T) {
	counters := sampleCounters
	counters.Authors = func(context.Context) (int, error) { return 0, errors.New("connection reset") }

	visitor := session.NewHandle("visitor", session.NewMemoryStore())
	_, err := newTestService(counters).Index(context.Background(), visitor)
	require.Error(t, err)

	// A failed page view is not counted
	stored, err := visitor.Int(context.Background(), VisitsKey, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
}

func TestHandler_Index(t *testing.T) {
	store := session.NewMemoryStore()
	router := middleware.Session(store, false, 3600)(NewHandler(newTestService(sampleCounters)).Routes())

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), `"num_visits":1`)

	cookies := first.Result().Cookies()
	require.Len(t, cookies, 1)

	again := httptest.NewRequest(http.MethodGet, "/", nil)
	again.AddCookie(cookies[0])
	second := httptest.NewRecorder()
	router.ServeHTTP(second, again)

	assert.Contains(t, second.Body.String(), `"num_visits":2`)
	assert.Contains(t, second.Body.String(), `"num_instances_available":3`)
}

func TestHandler_IndexWithoutSession(t *testing.T) {
	router := NewHandler(newTestService(sampleCounters)).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
