package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// BuildByID returns a single build.
func (c *Client) BuildByID(ctx context.Context, buildID string) (*evergreen.Build, error) {
	build, err := fetchOne[evergreen.Build](ctx, c, c.restURL("/builds/"+buildID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting build %s: %w", buildID, err)
	}
	return build.Bind(c), nil
}

// TasksByBuild returns the tasks of a build.
func (c *Client) TasksByBuild(ctx context.Context, buildID string, fetchAllExecutions bool) ([]*evergreen.Task, error) {
	params := url.Values{}
	if fetchAllExecutions {
		params.Set("fetch_all_executions", "1")
	}
	tasks, err := fetchList[evergreen.Task](ctx, c, c.restURL("/builds/"+buildID+"/tasks"), params)
	if err != nil {
		return nil, fmt.Errorf("getting tasks for build %s: %w", buildID, err)
	}
	for _, task := range tasks {
		task.Bind(c)
	}
	return tasks, nil
}
