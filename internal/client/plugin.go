package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// PerformanceResultsByTask returns the performance results a task reported.
func (c *Client) PerformanceResultsByTask(ctx context.Context, taskID string) (*evergreen.PerformanceData, error) {
	data, err := fetchOne[evergreen.PerformanceData](ctx, c, c.pluginURL("/task/"+taskID+"/perf"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting performance results for task %s: %w", taskID, err)
	}
	return data, nil
}

// PerformanceResultsByTaskName returns performance results for every
// execution of a named task.
func (c *Client) PerformanceResultsByTaskName(ctx context.Context, taskID, taskName string) ([]*evergreen.PerformanceData, error) {
	rawURL := c.oldURL("api/2/task/" + taskID + "/json/history/" + taskName + "/perf")
	results, err := fetchList[evergreen.PerformanceData](ctx, c, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("getting performance history for task %s: %w", taskName, err)
	}
	return results, nil
}

// JSONByTask returns the raw document a task attached under jsonKey. The
// plugin endpoints do not paginate, so the body comes back in one piece.
func (c *Client) JSONByTask(ctx context.Context, taskID, jsonKey string) (json.RawMessage, error) {
	resp, err := c.http.Get(ctx, c.pluginURL("/task/"+taskID+"/"+jsonKey), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s json for task %s: %w", jsonKey, taskID, err)
	}
	return json.RawMessage(resp.Body), nil
}

// JSONHistoryForTask returns the jsonKey documents of the task's mainline
// history.
func (c *Client) JSONHistoryForTask(ctx context.Context, taskID, taskName, jsonKey string) ([]json.RawMessage, error) {
	rawURL := c.oldURL("api/2/task/" + taskID + "/json/history/" + taskName + "/" + jsonKey)
	history, err := c.http.FetchAll(ctx, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s json history for task %s: %w", jsonKey, taskName, err)
	}
	return history, nil
}

// ManifestForRevision returns the module manifest of a mainline revision.
func (c *Client) ManifestForRevision(ctx context.Context, projectID, revision string) (*evergreen.Manifest, error) {
	rawURL := c.oldURL("plugin/manifest/get/" + projectID + "/" + revision)
	manifest, err := fetchOne[evergreen.Manifest](ctx, c, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("getting manifest for revision %s: %w", revision, err)
	}
	return manifest, nil
}
