package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// RetrieveTaskLog fetches a complete log by its URL.
func (c *Client) RetrieveTaskLog(ctx context.Context, logURL string, raw bool) (string, error) {
	params := url.Values{}
	if raw {
		params.Set("text", "true")
	}
	resp, err := c.http.Get(ctx, logURL, params)
	if err != nil {
		return "", fmt.Errorf("retrieving log: %w", err)
	}
	return string(resp.Body), nil
}

// StreamLog fetches a log lazily, line by line.
func (c *Client) StreamLog(ctx context.Context, logURL string) (*evergreen.LogStream, error) {
	params := url.Values{"text": []string{"true"}}
	stream, err := c.http.Stream(ctx, logURL, params)
	if err != nil {
		return nil, fmt.Errorf("streaming log: %w", err)
	}
	return stream, nil
}
