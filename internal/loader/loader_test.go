package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/todosearch/internal/model"
)

const samplePayload = `[
  {"userId": 1, "id": 1, "title": "Buy milk", "completed": false},
  {"userId": 1, "id": 2, "title": "Buy eggs", "completed": true}
]`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := NewWithHTTPClient(srv.Client())
	c.http.Transport = rewriteTransport{base: srv}
	return c
}

func TestFetchTodos_Success(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery, "no query parameters are sent")
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload))
	})

	items, err := c.FetchTodos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []model.TodoItem{
		{UserID: 1, ID: 1, Title: "Buy milk"},
		{UserID: 1, ID: 2, Title: "Buy eggs", Completed: true},
	}, items)
}

func TestFetchTodos_Non200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.FetchTodos(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Contains(t, err.Error(), "503")
}

func TestFetchTodos_MalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "title": "Buy milk"`))
	})

	_, err := c.FetchTodos(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "parsing response", fe.Op)
}

func TestFetchTodos_SchemaViolation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "title": "Buy milk", "completed": "no"}]`))
	})

	_, err := c.FetchTodos(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "validating response", fe.Op)
	assert.Contains(t, fe.Err.Error(), "/0/completed")
}

func TestFetchTodos_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := New(20 * time.Millisecond)
	c.http.Transport = rewriteTransport{base: srv}

	_, err := c.FetchTodos(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchTodos_TooLarge(t *testing.T) {
	big := `[{"id": 1, "title": "` + strings.Repeat("x", MaxBodySize) + `", "completed": false}]`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(big))
	})

	_, err := c.FetchTodos(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestDecode_EmptyList(t *testing.T) {
	items, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestDecode_NotAnArray(t *testing.T) {
	_, err := Decode([]byte(`{"id": 1}`))
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestDecode_MissingTitle(t *testing.T) {
	_, err := Decode([]byte(`[{"id": 1, "completed": true}]`))
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &FetchError{Op: "requesting todos", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Equal(t, "fetch failed: requesting todos: connection refused", err.Error())
}

// rewriteTransport redirects all requests to the test server, preserving the path.
type rewriteTransport struct {
	base *httptest.Server
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = "http"
	req.URL.Host = strings.TrimPrefix(t.base.URL, "http://")
	return http.DefaultTransport.RoundTrip(req)
}
