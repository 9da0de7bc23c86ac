package http

import (
	nethttp "net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a transport client.
type Option func(*Client)

// WithTimeout bounds each individual call. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithLogger directs request logs to the given logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables response logging at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetry enables retries of transient failures.
func WithRetry(policy *RetryPolicy) Option {
	return func(c *Client) {
		c.retry = policy
	}
}

// WithHTTPClient swaps the underlying net/http client, e.g. to share a
// transport with connection limits.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}
