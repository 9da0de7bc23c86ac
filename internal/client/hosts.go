package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// AllHosts returns hosts, optionally restricted to one status.
func (c *Client) AllHosts(ctx context.Context, status string) ([]*evergreen.Host, error) {
	params := url.Values{}
	if status != "" {
		params.Set("status", status)
	}
	hosts, err := fetchList[evergreen.Host](ctx, c, c.restURL("/hosts"), params)
	if err != nil {
		return nil, fmt.Errorf("getting hosts: %w", err)
	}
	for _, host := range hosts {
		host.Bind(c)
	}
	return hosts, nil
}
