package evergreen

import (
	"context"
	"fmt"
	"time"
)

// TestLogs locates the logs of a single test result.
type TestLogs struct {
	URL     string `json:"url"`
	LineNum int    `json:"line_num"`
	URLRaw  string `json:"url_raw"`
	LogID   string `json:"log_id"`
}

// Test is one test result reported by a task.
type Test struct {
	TaskID    string     `json:"task_id"`
	Status    string     `json:"status"`
	TestFile  string     `json:"test_file"`
	ExitCode  int        `json:"exit_code"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Logs      TestLogs   `json:"logs"`

	api Client
}

// Bind attaches the API handle used by the traversal helpers.
func (t *Test) Bind(api Client) *Test {
	t.api = api
	return t
}

// StreamLog streams this test's raw log line by line. Tests without a raw
// log URL yield an error before any network call.
func (t *Test) StreamLog(ctx context.Context) (*LogStream, error) {
	if t.Logs.URLRaw == "" {
		return nil, fmt.Errorf("%w: test %s has no raw log", ErrInvalidArguments, t.TestFile)
	}
	return t.api.StreamLog(ctx, t.Logs.URLRaw)
}
