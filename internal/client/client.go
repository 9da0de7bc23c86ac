// Package client implements the evergreen.Client facade over the shared
// transport, with the API surface split into per-resource files.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	evghttp "github.com/evergreen-ci/evergreen-go/internal/http"
	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// Client is the concrete API facade. Every resource group shares one
// transport client and its connection pool.
type Client struct {
	http      *evghttp.Client
	apiServer string
}

var _ evergreen.Client = (*Client)(nil)

// New builds a facade from a configuration. Additional transport options
// are applied after those derived from the config, so callers can layer
// retry policies on top.
func New(cfg *evergreen.Config, opts ...evghttp.Option) (*Client, error) {
	if cfg == nil || strings.TrimSpace(cfg.APIServer) == "" {
		return nil, evergreen.ErrAPIServerRequired
	}

	transportOpts := []evghttp.Option{
		evghttp.WithTimeout(cfg.Timeout),
		evghttp.WithUserAgent(cfg.UserAgent),
		evghttp.WithDebug(cfg.Debug),
	}
	if cfg.Logger != nil {
		transportOpts = append(transportOpts, evghttp.WithLogger(*cfg.Logger))
	}
	transportOpts = append(transportOpts, opts...)

	return &Client{
		http:      evghttp.NewClient(cfg.Auth, transportOpts...),
		apiServer: normalizeServer(cfg.APIServer),
	}, nil
}

// normalizeServer accepts bare hosts and trailing slashes so config file
// values work unedited.
func normalizeServer(server string) string {
	server = strings.TrimSuffix(strings.TrimSpace(server), "/")
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "https://" + server
	}
	return server
}

// restURL points at the v2 REST API.
func (c *Client) restURL(endpoint string) string {
	return c.apiServer + "/rest/v2" + endpoint
}

// pluginURL points at the plugin JSON endpoints.
func (c *Client) pluginURL(endpoint string) string {
	return c.apiServer + "/plugin/json" + endpoint
}

// oldURL points at a pre-v2 endpoint.
func (c *Client) oldURL(endpoint string) string {
	return c.apiServer + "/" + endpoint
}

// decodeBody unmarshals a response body with uniform error wrapping.
func decodeBody(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// fetchOne gets a single JSON object.
func fetchOne[T any](ctx context.Context, c *Client, rawURL string, params url.Values) (*T, error) {
	resp, err := c.http.Get(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return out, nil
}

// fetchList eagerly follows pagination links and decodes every item.
func fetchList[T any](ctx context.Context, c *Client, rawURL string, params url.Values) ([]*T, error) {
	raw, err := c.http.FetchAll(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	items := make([]*T, 0, len(raw))
	for _, data := range raw {
		item := new(T)
		if err := json.Unmarshal(data, item); err != nil {
			return nil, fmt.Errorf("decoding item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}
