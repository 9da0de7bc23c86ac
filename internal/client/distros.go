package client

import (
	"context"
	"fmt"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// AllDistros returns every distro known to the server.
func (c *Client) AllDistros(ctx context.Context) ([]*evergreen.Distro, error) {
	distros, err := fetchList[evergreen.Distro](ctx, c, c.restURL("/distros"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting distros: %w", err)
	}
	return distros, nil
}
