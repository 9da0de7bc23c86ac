// Package http wraps a single pooled net/http client with the Evergreen
// API's conventions: static auth headers, per-request timeouts, duration
// logging, error classification, Link-header pagination, and line
// streaming for logs.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

const (
	defaultUserAgent = "evergreen-go (Go client)"

	// Calls slower than this are logged at info instead of debug.
	slowCallThreshold = 10 * time.Second

	// Error bodies are bounded when streaming; classification only needs
	// the leading JSON object.
	maxErrorBodyBytes = 64 * 1024
)

// Request is one API call.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Body   any
}

// Response is the decoded-enough result of a successful call.
type Response struct {
	StatusCode int
	Header     nethttp.Header
	Body       []byte
}

// NextLink returns the URL of the next page from the response's Link
// header, or "" when there is none.
func (r *Response) NextLink() string {
	return nextLink(r.Header)
}

// Client issues requests against an Evergreen deployment. A zero timeout
// means calls wait indefinitely. Client is safe for sequential reuse; it
// holds no per-call state.
type Client struct {
	httpClient *nethttp.Client
	auth       *evergreen.Auth
	userAgent  string
	timeout    time.Duration
	logger     zerolog.Logger
	debug      bool
	retry      *RetryPolicy
}

// NewClient builds a transport client. Credentials may be nil for
// unauthenticated access.
func NewClient(auth *evergreen.Auth, opts ...Option) *Client {
	c := &Client{
		httpClient: &nethttp.Client{},
		auth:       auth,
		userAgent:  defaultUserAgent,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes a request, retrying transient failures when a retry policy
// is configured.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.retry != nil {
		return c.doWithRetry(ctx, req)
	}
	return c.do(ctx, req)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, URL: rawURL, Query: params})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, rawURL string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, URL: rawURL, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, rawURL string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, URL: rawURL, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, rawURL string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, URL: rawURL, Body: body})
}

func (c *Client) do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
		httpReq = httpReq.WithContext(ctx)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		c.logCall(req.Method, httpReq.URL, duration, 0)
		return nil, &evergreen.ConnectionError{URL: httpReq.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	c.logCall(req.Method, httpReq.URL, duration, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &evergreen.ConnectionError{URL: httpReq.URL.String(), Err: err}
	}
	if c.debug {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Int("bytes", len(body)).
			Str("url", httpReq.URL.Redacted()).
			Msg("api response")
	}

	if err := classifyResponse(resp.StatusCode, body); err != nil {
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// Stream issues a GET request and hands back the response body as a lazy
// line stream. The client timeout does not apply; long log streams are
// expected to outlive it. Closing the stream releases the request.
func (c *Client) Stream(ctx context.Context, rawURL string, params url.Values) (*evergreen.LogStream, error) {
	httpReq, err := c.buildRequest(ctx, &Request{Method: nethttp.MethodGet, URL: rawURL, Query: params})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	httpReq = httpReq.WithContext(ctx)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		cancel()
		c.logCall(httpReq.Method, httpReq.URL, duration, 0)
		return nil, &evergreen.ConnectionError{URL: httpReq.URL.String(), Err: err}
	}

	c.logCall(httpReq.Method, httpReq.URL, duration, resp.StatusCode)

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		resp.Body.Close()
		cancel()
		return nil, classifyResponse(resp.StatusCode, body)
	}
	return evergreen.NewLogStream(resp.Body, cancel), nil
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*nethttp.Request, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing URL %q: %v", evergreen.ErrInvalidArguments, req.URL, err)
	}
	if len(req.Query) > 0 {
		q := u.Query()
		for key, values := range req.Query {
			for _, value := range values {
				q.Add(key, value)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.auth != nil {
		httpReq.Header.Set("Api-User", c.auth.Username)
		httpReq.Header.Set("Api-Key", c.auth.APIKey)
	}
	return httpReq, nil
}

func (c *Client) logCall(method string, u *url.URL, duration time.Duration, status int) {
	event := c.logger.Debug()
	if duration > slowCallThreshold {
		event = c.logger.Info()
	}
	event.
		Str("method", method).
		Str("url", u.Redacted()).
		Dur("duration", duration).
		Int("status", status).
		Msg("api call")
}

// classifyResponse turns a failure status into a typed error. A JSON body
// with an "error" field becomes an APIError carrying the server's message
// verbatim; everything else at or above 400 becomes a bare HTTPError.
func classifyResponse(status int, body []byte) error {
	if status < 400 {
		return nil
	}
	var envelope struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return &evergreen.APIError{Message: *envelope.Error, StatusCode: status}
	}
	return &evergreen.HTTPError{StatusCode: status}
}
