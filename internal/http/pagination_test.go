package http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// pagedServer serves a fixed sequence of pages, linking each page to the
// next with a Link header.
func pagedServer(t *testing.T, calls *atomic.Int64, pages ...string) *httptest.Server {
	t.Helper()
	var server *httptest.Server
	server = httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		calls.Add(1)
		page := 0
		if p := r.URL.Query().Get("page"); p != "" {
			fmt.Sscanf(p, "%d", &page)
		}
		require.Less(t, page, len(pages))
		if page < len(pages)-1 {
			w.Header().Set("Link", fmt.Sprintf(`<%s/?page=%d>; rel="next"`, server.URL, page+1))
		}
		_, _ = w.Write([]byte(pages[page]))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchAll(t *testing.T) {
	t.Parallel()

	t.Run("accumulates pages in order", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := pagedServer(t, &calls, `[{"id": 1}, {"id": 2}]`, `[{"id": 3}]`, `[{"id": 4}]`)

		client := NewClient(nil)
		items, err := client.FetchAll(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Len(t, items, 4)
		assert.JSONEq(t, `{"id": 1}`, string(items[0]))
		assert.JSONEq(t, `{"id": 4}`, string(items[3]))
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("empty intermediate page does not stop the walk", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := pagedServer(t, &calls, `[{"id": 1}]`, `[]`, `[{"id": 3}]`)

		client := NewClient(nil)
		items, err := client.FetchAll(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("limit is checked between fetches", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := pagedServer(t, &calls, `[{"id": 1}, {"id": 2}]`, `[{"id": 3}]`, `[{"id": 4}]`)

		client := NewClient(nil)
		items, err := client.FetchAll(context.Background(), server.URL, url.Values{"limit": []string{"2"}})
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("limit may be exceeded by part of a page", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := pagedServer(t, &calls, `[{"id": 1}]`, `[{"id": 2}, {"id": 3}]`)

		client := NewClient(nil)
		items, err := client.FetchAll(context.Background(), server.URL, url.Values{"limit": []string{"2"}})
		require.NoError(t, err)
		assert.Len(t, items, 3)
		assert.EqualValues(t, 2, calls.Load())
	})
}

func TestPages(t *testing.T) {
	t.Parallel()

	t.Run("yields items lazily one page at a time", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := pagedServer(t, &calls, `[{"id": 1}, {"id": 2}]`, `[{"id": 3}]`)

		client := NewClient(nil)
		next := client.Pages(context.Background(), server.URL, nil)

		item, err := next()
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": 1}`, string(item))
		item, err = next()
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": 2}`, string(item))
		assert.EqualValues(t, 1, calls.Load(), "second page should not be fetched yet")

		item, err = next()
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": 3}`, string(item))
		assert.EqualValues(t, 2, calls.Load())

		_, err = next()
		assert.ErrorIs(t, err, evergreen.ErrNoMoreItems)
	})

	t.Run("defaults the page size when no params given", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			assert.Equal(t, "100", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(nil)
		next := client.Pages(context.Background(), server.URL, nil)
		_, err := next()
		assert.ErrorIs(t, err, evergreen.ErrNoMoreItems)
	})

	t.Run("stops for good on an empty page", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := pagedServer(t, &calls, `[]`, `[{"id": 1}]`)

		client := NewClient(nil)
		next := client.Pages(context.Background(), server.URL, nil)

		_, err := next()
		assert.ErrorIs(t, err, evergreen.ErrNoMoreItems)
		_, err = next()
		assert.ErrorIs(t, err, evergreen.ErrNoMoreItems)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("stops after a page without a next link", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := pagedServer(t, &calls, `[{"id": 1}]`)

		client := NewClient(nil)
		next := client.Pages(context.Background(), server.URL, nil)

		_, err := next()
		require.NoError(t, err)
		_, err = next()
		assert.ErrorIs(t, err, evergreen.ErrNoMoreItems)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": "boom"}`))
		}))
		defer server.Close()

		client := NewClient(nil)
		next := client.Pages(context.Background(), server.URL, nil)

		_, err := next()
		var apiErr *evergreen.APIError
		require.ErrorAs(t, err, &apiErr)
	})
}

func TestDatePages(t *testing.T) {
	t.Parallel()

	t.Run("advances start_at to the normalized last create_time", func(t *testing.T) {
		t.Parallel()

		var starts []string
		var calls atomic.Int64
		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			calls.Add(1)
			starts = append(starts, r.URL.Query().Get("start_at"))
			switch calls.Load() {
			case 1:
				_, _ = w.Write([]byte(`[
					{"id": "a", "create_time": "2020-05-01T12:00:00.123Z"},
					{"id": "b", "create_time": "2020-05-01T11:30:00.456Z"}
				]`))
			default:
				_, _ = w.Write([]byte(`[]`))
			}
		}))
		defer server.Close()

		client := NewClient(nil)
		next := client.DatePages(context.Background(), server.URL, nil)

		for i := 0; i < 2; i++ {
			_, err := next()
			require.NoError(t, err)
		}
		_, err := next()
		assert.ErrorIs(t, err, evergreen.ErrNoMoreItems)

		require.Len(t, starts, 2)
		assert.Empty(t, starts[0])
		assert.Equal(t, "2020-05-01T11:30:00.456Z", starts[1])
		assert.EqualValues(t, 2, calls.Load())
	})

	t.Run("stops for good on an empty page", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(nil)
		next := client.DatePages(context.Background(), server.URL, nil)

		_, err := next()
		assert.ErrorIs(t, err, evergreen.ErrNoMoreItems)
		_, err = next()
		assert.ErrorIs(t, err, evergreen.ErrNoMoreItems)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("does not mutate the caller's params", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			calls.Add(1)
			if calls.Load() == 1 {
				_, _ = w.Write([]byte(`[{"id": "a", "create_time": "2020-05-01T12:00:00.000Z"}]`))
				return
			}
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		params := url.Values{"limit": []string{"1"}}
		client := NewClient(nil)
		next := client.DatePages(context.Background(), server.URL, params)

		_, err := next()
		require.NoError(t, err)
		_, err = next()
		require.ErrorIs(t, err, evergreen.ErrNoMoreItems)
		assert.Empty(t, params.Get("start_at"))
	})
}

func TestNextLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "single next link",
			header: `<https://evergreen.example.com/versions?start=5>; rel="next"`,
			want:   "https://evergreen.example.com/versions?start=5",
		},
		{
			name:   "next among other relations",
			header: `<https://e.example.com/p?start=1>; rel="prev", <https://e.example.com/p?start=9>; rel="next"`,
			want:   "https://e.example.com/p?start=9",
		},
		{
			name:   "no next relation",
			header: `<https://e.example.com/p?start=1>; rel="prev"`,
			want:   "",
		},
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			header := nethttp.Header{}
			if test.header != "" {
				header.Set("Link", test.header)
			}
			assert.Equal(t, test.want, nextLink(header))
		})
	}
}

func TestLimitFrom(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, limitFrom(nil))
	assert.Equal(t, 0, limitFrom(url.Values{"limit": []string{"nope"}}))
	assert.Equal(t, 25, limitFrom(url.Values{"limit": []string{"25"}}))
}

func TestPagesEmptyMiddleVersusFetchAll(t *testing.T) {
	t.Parallel()

	// The lazy iterator treats an empty page as the end of the sequence
	// even when a next link is present; the eager accumulator keeps
	// walking. Both behaviors are load-bearing.
	var calls atomic.Int64
	server := pagedServer(t, &calls, `[{"id": 1}]`, `[]`, `[{"id": 3}]`)

	client := NewClient(nil)
	next := client.Pages(context.Background(), server.URL, nil)

	_, err := next()
	require.NoError(t, err)
	_, err = next()
	require.True(t, errors.Is(err, evergreen.ErrNoMoreItems))
	assert.EqualValues(t, 2, calls.Load())
}
