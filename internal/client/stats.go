package client

import (
	"context"
	"fmt"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// TestStatsByProject returns aggregated historical test results.
func (c *Client) TestStatsByProject(ctx context.Context, projectID string, filter *evergreen.StatsFilter) ([]*evergreen.TestStats, error) {
	if filter == nil {
		filter = &evergreen.StatsFilter{}
	}
	stats, err := fetchList[evergreen.TestStats](ctx, c, c.restURL("/projects/"+projectID+"/test_stats"), filter.Values())
	if err != nil {
		return nil, fmt.Errorf("getting test stats for %s: %w", projectID, err)
	}
	return stats, nil
}

// TaskStatsByProject returns aggregated historical task results. Filtering
// by test is not supported by the endpoint.
func (c *Client) TaskStatsByProject(ctx context.Context, projectID string, filter *evergreen.StatsFilter) ([]*evergreen.TaskStats, error) {
	if filter == nil {
		filter = &evergreen.StatsFilter{}
	}
	if err := filter.ValidateForTasks(); err != nil {
		return nil, err
	}
	stats, err := fetchList[evergreen.TaskStats](ctx, c, c.restURL("/projects/"+projectID+"/task_stats"), filter.Values())
	if err != nil {
		return nil, fmt.Errorf("getting task stats for %s: %w", projectID, err)
	}
	return stats, nil
}

// TaskReliabilityByProject returns task success-rate scores.
func (c *Client) TaskReliabilityByProject(ctx context.Context, projectID string, filter *evergreen.StatsFilter) ([]*evergreen.TaskReliability, error) {
	if filter == nil {
		filter = &evergreen.StatsFilter{}
	}
	if err := filter.ValidateForTasks(); err != nil {
		return nil, err
	}
	scores, err := fetchList[evergreen.TaskReliability](ctx, c, c.restURL("/projects/"+projectID+"/task_reliability"), filter.Values())
	if err != nil {
		return nil, fmt.Errorf("getting task reliability for %s: %w", projectID, err)
	}
	return scores, nil
}
