package evergreen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Task statuses and failure types reported by the server.
const (
	TaskStatusSuccess      = "success"
	TaskStatusUndispatched = "undispatched"
	TaskFailureTypeSystem  = "system"
)

// StatusScore ranks a task outcome for sorting and aggregation.
type StatusScore int

const (
	StatusScoreSuccess StatusScore = iota + 1
	StatusScoreFailure
	StatusScoreFailureSystem
	StatusScoreFailureTimeout
	StatusScoreUndispatched
)

// Artifact is a file a task attached to its results.
type Artifact struct {
	Name           string `json:"name"`
	URL            string `json:"url"`
	Visibility     string `json:"visibility"`
	IgnoreForFetch bool   `json:"ignore_for_fetch"`
}

// StatusDetails carries failure metadata for a completed task.
type StatusDetails struct {
	Status      string `json:"status"`
	Type        string `json:"type"`
	Description string `json:"desc"`
	TimedOut    bool   `json:"timed_out"`
}

// TaskDependency is one entry of a task's depends_on list. The server
// emits either a bare task ID string or an object with id and status.
type TaskDependency struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UnmarshalJSON accepts both wire shapes of a dependency.
func (d *TaskDependency) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &d.ID)
	}
	type alias TaskDependency
	return json.Unmarshal(data, (*alias)(d))
}

// Task is one unit of work scheduled by Evergreen.
type Task struct {
	Activated          bool              `json:"activated"`
	ActivatedBy        string            `json:"activated_by"`
	Artifacts          []Artifact        `json:"artifacts"`
	BuildID            string            `json:"build_id"`
	BuildVariant       string            `json:"build_variant"`
	CreateTime         time.Time         `json:"create_time"`
	DependsOn          []TaskDependency  `json:"depends_on"`
	DispatchTime       *time.Time        `json:"dispatch_time"`
	DisplayName        string            `json:"display_name"`
	DisplayOnly        bool              `json:"display_only"`
	DistroID           string            `json:"distro_id"`
	EstWaitToStartMS   int64             `json:"est_wait_to_start_ms"`
	Execution          int               `json:"execution"`
	ExecutionTasks     []string          `json:"execution_tasks"`
	ExpectedDurationMS int64             `json:"expected_duration_ms"`
	FinishTime         *time.Time        `json:"finish_time"`
	GenerateTask       bool              `json:"generate_task"`
	GeneratedBy        string            `json:"generated_by"`
	HostID             string            `json:"host_id"`
	IngestTime         *time.Time        `json:"ingest_time"`
	Logs               map[string]string `json:"logs"`
	Mainline           bool              `json:"mainline"`
	Order              int               `json:"order"`
	PreviousExecutions []Task            `json:"previous_executions"`
	ProjectID          string            `json:"project_id"`
	Priority           int64             `json:"priority"`
	Restarts           int               `json:"restarts"`
	Revision           string            `json:"revision"`
	ScheduledTime      *time.Time        `json:"scheduled_time"`
	StartTime          *time.Time        `json:"start_time"`
	Status             string            `json:"status"`
	StatusDetails      StatusDetails     `json:"status_details"`
	TaskGroup          string            `json:"task_group"`
	TaskGroupMaxHosts  int               `json:"task_group_max_hosts"`
	TaskID             string            `json:"task_id"`
	TimeTakenMS        int64             `json:"time_taken_ms"`
	VersionID          string            `json:"version_id"`

	api Client
}

// Bind attaches the API handle used by the traversal helpers. Previous
// executions are bound along with the task.
func (t *Task) Bind(api Client) *Task {
	t.api = api
	for i := range t.PreviousExecutions {
		t.PreviousExecutions[i].api = api
	}
	return t
}

// RetrieveLog fetches the complete contents of the named log ("task",
// "agent", "system" or "all"). An unknown log name yields an empty string.
func (t *Task) RetrieveLog(ctx context.Context, logName string, raw bool) (string, error) {
	logURL, ok := t.Logs[logName]
	if !ok || logURL == "" {
		return "", nil
	}
	return t.api.RetrieveTaskLog(ctx, logURL, raw)
}

// StreamLog streams the named log line by line. An unknown log name yields
// an error before any network call.
func (t *Task) StreamLog(ctx context.Context, logName string) (*LogStream, error) {
	logURL, ok := t.Logs[logName]
	if !ok || logURL == "" {
		return nil, fmt.Errorf("%w: task %s has no log %q", ErrInvalidArguments, t.TaskID, logName)
	}
	return t.api.StreamLog(ctx, logURL)
}

// GetStatusScore ranks this task's outcome.
func (t *Task) GetStatusScore() StatusScore {
	switch {
	case t.IsSuccess():
		return StatusScoreSuccess
	case t.IsUndispatched():
		return StatusScoreUndispatched
	case t.IsTimeout():
		return StatusScoreFailureTimeout
	case t.IsSystemFailure():
		return StatusScoreFailureSystem
	default:
		return StatusScoreFailure
	}
}

// GetExecution returns the task data for the given execution index, or nil
// when that execution is not part of this task's fetched data.
func (t *Task) GetExecution(execution int) *Task {
	if t.Execution == execution {
		return t
	}
	for i := range t.PreviousExecutions {
		if t.PreviousExecutions[i].Execution == execution {
			return &t.PreviousExecutions[i]
		}
	}
	return nil
}

// GetExecutionOrSelf returns the given execution when present, and the
// task itself otherwise.
func (t *Task) GetExecutionOrSelf(execution int) *Task {
	if exec := t.GetExecution(execution); exec != nil {
		return exec
	}
	return t
}

// WaitTime is the time from ingestion until the task started running, or
// zero when either timestamp is missing.
func (t *Task) WaitTime() time.Duration {
	if t.StartTime != nil && t.IngestTime != nil {
		return t.StartTime.Sub(*t.IngestTime)
	}
	return 0
}

// WaitTimeOnceUnblocked is the time from scheduling (dependencies
// unblocked) until the task started running, or zero when either timestamp
// is missing.
func (t *Task) WaitTimeOnceUnblocked() time.Duration {
	if t.StartTime != nil && t.ScheduledTime != nil {
		return t.StartTime.Sub(*t.ScheduledTime)
	}
	return 0
}

// IsSuccess reports whether the task succeeded.
func (t *Task) IsSuccess() bool {
	return t.Status == TaskStatusSuccess
}

// IsUndispatched reports whether the task was never dispatched.
func (t *Task) IsUndispatched() bool {
	return t.Status == TaskStatusUndispatched
}

// IsSystemFailure reports whether the task failed for infrastructure
// reasons rather than test failures.
func (t *Task) IsSystemFailure() bool {
	return !t.IsSuccess() && t.StatusDetails.Type == TaskFailureTypeSystem
}

// IsTimeout reports whether the task failed by timing out.
func (t *Task) IsTimeout() bool {
	return !t.IsSuccess() && t.StatusDetails.TimedOut
}

// IsActive reports whether the task is scheduled or running.
func (t *Task) IsActive() bool {
	return t.ScheduledTime != nil && t.FinishTime == nil
}

// GetTests fetches the test results of this task's execution. A nil
// execution defaults to this task's own execution index.
func (t *Task) GetTests(ctx context.Context, status string, execution *int) ([]*Test, error) {
	if execution == nil {
		execution = &t.Execution
	}
	return t.api.TestsByTask(ctx, t.TaskID, status, execution)
}

// GetExecutionTasks fetches the execution tasks of a display task, each
// resolved to this task's execution index. It returns nil for regular
// tasks.
func (t *Task) GetExecutionTasks(ctx context.Context, filter func(*Task) bool) ([]*Task, error) {
	if !t.DisplayOnly {
		return nil, nil
	}
	tasks := make([]*Task, 0, len(t.ExecutionTasks))
	for _, taskID := range t.ExecutionTasks {
		task, err := t.api.TaskByID(ctx, taskID, true)
		if err != nil {
			return nil, fmt.Errorf("getting execution task %s: %w", taskID, err)
		}
		task = task.GetExecutionOrSelf(t.Execution)
		if filter == nil || filter(task) {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// GetManifest fetches the module manifest of this task's version.
func (t *Task) GetManifest(ctx context.Context) (*Manifest, error) {
	return t.api.ManifestForTask(ctx, t.TaskID)
}

// GetAnnotations fetches the annotations of this task's execution.
func (t *Task) GetAnnotations(ctx context.Context) ([]*TaskAnnotation, error) {
	return t.api.TaskAnnotations(ctx, t.TaskID, &t.Execution, false)
}

// Annotate updates this task's annotation.
func (t *Task) Annotate(ctx context.Context, req *AnnotationRequest) error {
	if req == nil {
		req = &AnnotationRequest{}
	}
	if req.Execution == nil {
		req.Execution = &t.Execution
	}
	return t.api.AnnotateTask(ctx, t.TaskID, req)
}
