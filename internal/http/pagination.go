package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// DefaultPageLimit is the page size requested by lazy iteration when the
// caller supplies no parameters.
const DefaultPageLimit = 100

// FetchAll eagerly accumulates every page of a Link-paginated endpoint, in
// order. A "limit" query parameter is advisory: the accumulated count is
// checked between page fetches, so the result may exceed the limit by up
// to one page. Empty intermediate pages do not stop the walk; only a
// missing next link does.
func (c *Client) FetchAll(ctx context.Context, rawURL string, params url.Values) ([]json.RawMessage, error) {
	resp, err := c.Get(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}

	limit := limitFrom(params)
	for next := resp.NextLink(); next != ""; next = resp.NextLink() {
		if limit > 0 && len(items) >= limit {
			break
		}
		if resp, err = c.Get(ctx, next, nil); err != nil {
			return nil, err
		}
		var page []json.RawMessage
		if err := json.Unmarshal(resp.Body, &page); err != nil {
			return nil, fmt.Errorf("decoding page: %w", err)
		}
		if len(page) > 0 {
			items = append(items, page...)
		}
	}
	return items, nil
}

// Pages lazily yields the items of a Link-paginated endpoint, one page in
// flight at a time. Iteration stops at the first empty page or when a page
// arrives without a next link. Nil params default to limit=100.
//
// The returned function yields one raw item per call and
// evergreen.ErrNoMoreItems at the end of the sequence; it plugs directly
// into evergreen.NewIterator.
func (c *Client) Pages(ctx context.Context, rawURL string, params url.Values) func() (json.RawMessage, error) {
	if params == nil {
		params = url.Values{"limit": []string{strconv.Itoa(DefaultPageLimit)}}
	}
	var (
		page []json.RawMessage
		idx  int
		next = rawURL
		done bool
	)
	return func() (json.RawMessage, error) {
		for {
			if idx < len(page) {
				item := page[idx]
				idx++
				return item, nil
			}
			if done || next == "" {
				return nil, evergreen.ErrNoMoreItems
			}
			resp, err := c.Get(ctx, next, params)
			if err != nil {
				done = true
				return nil, err
			}
			page = nil
			if err := json.Unmarshal(resp.Body, &page); err != nil {
				done = true
				return nil, fmt.Errorf("decoding page: %w", err)
			}
			idx = 0
			if len(page) == 0 {
				done = true
				return nil, evergreen.ErrNoMoreItems
			}
			next = resp.NextLink()
		}
	}
}

// DatePages lazily yields the items of a date-cursor endpoint. After each
// non-empty page the "start_at" parameter advances to the create_time of
// the page's last item, normalized back into the server's input format.
// Iteration stops at the first empty page. The server returns items in
// descending create_time order; a cursor that failed to advance would loop,
// so a page whose last item carries no create_time ends the walk.
func (c *Client) DatePages(ctx context.Context, rawURL string, params url.Values) func() (json.RawMessage, error) {
	cursor := url.Values{}
	for key, values := range params {
		cursor[key] = append([]string(nil), values...)
	}
	if params == nil {
		cursor.Set("limit", strconv.Itoa(DefaultPageLimit))
	}
	var (
		page []json.RawMessage
		idx  int
		done bool
	)
	return func() (json.RawMessage, error) {
		for {
			if idx < len(page) {
				item := page[idx]
				idx++
				return item, nil
			}
			if done {
				return nil, evergreen.ErrNoMoreItems
			}
			resp, err := c.Get(ctx, rawURL, cursor)
			if err != nil {
				done = true
				return nil, err
			}
			page = nil
			if err := json.Unmarshal(resp.Body, &page); err != nil {
				done = true
				return nil, fmt.Errorf("decoding page: %w", err)
			}
			idx = 0
			if len(page) == 0 {
				done = true
				return nil, evergreen.ErrNoMoreItems
			}
			var stamp struct {
				CreateTime string `json:"create_time"`
			}
			if err := json.Unmarshal(page[len(page)-1], &stamp); err != nil || stamp.CreateTime == "" {
				done = true
			} else {
				cursor.Set("start_at", evergreen.NormalizeTime(stamp.CreateTime))
			}
		}
	}
}

func limitFrom(params url.Values) int {
	limit, err := strconv.Atoi(params.Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}
