package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// TaskByID returns a single task.
func (c *Client) TaskByID(ctx context.Context, taskID string, fetchAllExecutions bool) (*evergreen.Task, error) {
	params := url.Values{}
	if fetchAllExecutions {
		params.Set("fetch_all_executions", "true")
	}
	task, err := fetchOne[evergreen.Task](ctx, c, c.restURL("/tasks/"+taskID), params)
	if err != nil {
		return nil, fmt.Errorf("getting task %s: %w", taskID, err)
	}
	return task.Bind(c), nil
}

// TasksByProject returns a project's tasks, optionally restricted to the
// given statuses.
func (c *Client) TasksByProject(ctx context.Context, projectID string, statuses []string) ([]*evergreen.Task, error) {
	params := url.Values{}
	for _, status := range statuses {
		params.Add("status", status)
	}
	tasks, err := fetchList[evergreen.Task](ctx, c, c.restURL("/projects/"+projectID+"/versions/tasks"), params)
	if err != nil {
		return nil, fmt.Errorf("getting tasks for project %s: %w", projectID, err)
	}
	for _, task := range tasks {
		task.Bind(c)
	}
	return tasks, nil
}

// TasksByProjectAndCommit returns the mainline tasks created for a commit.
func (c *Client) TasksByProjectAndCommit(ctx context.Context, projectID, commitHash string, params url.Values) ([]*evergreen.Task, error) {
	rawURL := c.restURL("/projects/" + projectID + "/revisions/" + commitHash + "/tasks")
	resp, err := c.http.Get(ctx, rawURL, params)
	if err != nil {
		return nil, fmt.Errorf("getting tasks for commit %s: %w", commitHash, err)
	}
	var tasks []*evergreen.Task
	if err := decodeBody(resp.Body, &tasks); err != nil {
		return nil, fmt.Errorf("getting tasks for commit %s: %w", commitHash, err)
	}
	for _, task := range tasks {
		task.Bind(c)
	}
	return tasks, nil
}

// ConfigureTask updates a task's activation state and priority. Nil fields
// are left untouched.
func (c *Client) ConfigureTask(ctx context.Context, taskID string, activated *bool, priority *int64) error {
	body := map[string]any{}
	if activated != nil {
		body["activated"] = *activated
	}
	if priority != nil {
		body["priority"] = *priority
	}
	if _, err := c.http.Patch(ctx, c.restURL("/tasks/"+taskID), body); err != nil {
		return fmt.Errorf("configuring task %s: %w", taskID, err)
	}
	return nil
}

// RestartTask restarts a completed task.
func (c *Client) RestartTask(ctx context.Context, taskID string) error {
	if _, err := c.http.Post(ctx, c.restURL("/tasks/"+taskID+"/restart"), nil); err != nil {
		return fmt.Errorf("restarting task %s: %w", taskID, err)
	}
	return nil
}

// AbortTask aborts a dispatched task.
func (c *Client) AbortTask(ctx context.Context, taskID string) error {
	if _, err := c.http.Post(ctx, c.restURL("/tasks/"+taskID+"/abort"), nil); err != nil {
		return fmt.Errorf("aborting task %s: %w", taskID, err)
	}
	return nil
}

// ManifestForTask returns the module manifest of the task's version.
func (c *Client) ManifestForTask(ctx context.Context, taskID string) (*evergreen.Manifest, error) {
	manifest, err := fetchOne[evergreen.Manifest](ctx, c, c.restURL("/tasks/"+taskID+"/manifest"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting manifest for task %s: %w", taskID, err)
	}
	return manifest, nil
}

// TaskAnnotations returns the annotations of a task. execution and
// fetchAllExecutions are mutually exclusive.
func (c *Client) TaskAnnotations(ctx context.Context, taskID string, execution *int, fetchAllExecutions bool) ([]*evergreen.TaskAnnotation, error) {
	if execution != nil && fetchAllExecutions {
		return nil, fmt.Errorf("%w: execution and fetch-all-executions are mutually exclusive", evergreen.ErrInvalidArguments)
	}
	params := url.Values{}
	if execution != nil {
		params.Set("execution", strconv.Itoa(*execution))
	}
	if fetchAllExecutions {
		params.Set("fetch_all_executions", "true")
	}
	resp, err := c.http.Get(ctx, c.restURL("/tasks/"+taskID+"/annotations"), params)
	if err != nil {
		return nil, fmt.Errorf("getting annotations for task %s: %w", taskID, err)
	}
	// The endpoint returns a JSON null when the task has no annotations.
	var annotations []*evergreen.TaskAnnotation
	if err := decodeBody(resp.Body, &annotations); err != nil {
		return nil, fmt.Errorf("getting annotations for task %s: %w", taskID, err)
	}
	return annotations, nil
}

// AnnotateTask updates a task's annotation.
func (c *Client) AnnotateTask(ctx context.Context, taskID string, req *evergreen.AnnotationRequest) error {
	if req == nil {
		req = &evergreen.AnnotationRequest{}
	}
	body := map[string]any{"task_id": taskID}
	if req.Execution != nil {
		body["task_execution"] = *req.Execution
	}
	if req.Message != "" {
		body["note"] = map[string]string{"message": req.Message}
	}
	if len(req.Issues) > 0 {
		body["issues"] = req.Issues
	}
	if len(req.SuspectedIssues) > 0 {
		body["suspected_issues"] = req.SuspectedIssues
	}
	if len(req.Metadata) > 0 {
		body["metadata"] = req.Metadata
	}
	if _, err := c.http.Put(ctx, c.restURL("/tasks/"+taskID+"/annotation"), body); err != nil {
		return fmt.Errorf("annotating task %s: %w", taskID, err)
	}
	return nil
}
