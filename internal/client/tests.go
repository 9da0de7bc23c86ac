package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// TestsByTask returns the test results of a task.
func (c *Client) TestsByTask(ctx context.Context, taskID string, status string, execution *int) ([]*evergreen.Test, error) {
	params := url.Values{}
	if status != "" {
		params.Set("status", status)
	}
	if execution != nil {
		params.Set("execution", strconv.Itoa(*execution))
	}
	tests, err := fetchList[evergreen.Test](ctx, c, c.restURL("/tasks/"+taskID+"/tests"), params)
	if err != nil {
		return nil, fmt.Errorf("getting tests for task %s: %w", taskID, err)
	}
	for _, test := range tests {
		test.Bind(c)
	}
	return tests, nil
}

// SingleTestByTaskAndTestFile returns the result matching one test file in
// a task.
func (c *Client) SingleTestByTaskAndTestFile(ctx context.Context, taskID, testFile string) (*evergreen.Test, error) {
	params := url.Values{"test_name": []string{testFile}}
	test, err := fetchOne[evergreen.Test](ctx, c, c.restURL("/tasks/"+taskID+"/tests"), params)
	if err != nil {
		return nil, fmt.Errorf("getting test %s for task %s: %w", testFile, taskID, err)
	}
	return test.Bind(c), nil
}
