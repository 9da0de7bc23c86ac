package evergreen

import (
	"context"
	"time"
)

// Build statuses reported by the server.
const (
	BuildStatusSuccess = "success"
	BuildStatusFailed  = "failed"
	BuildStatusCreated = "created"
)

// StatusCounts summarizes the task statuses inside a build.
type StatusCounts struct {
	Succeeded    int `json:"succeeded"`
	Failed       int `json:"failed"`
	Started      int `json:"started"`
	Undispatched int `json:"undispatched"`
	Inactive     int `json:"inactivate"`
	Dispatched   int `json:"dispatched"`
	TimedOut     int `json:"timed_out"`
}

// Build is one build variant of a version.
type Build struct {
	ID                  string       `json:"_id"`
	ProjectID           string       `json:"project_id"`
	CreateTime          *time.Time   `json:"create_time"`
	StartTime           *time.Time   `json:"start_time"`
	FinishTime          *time.Time   `json:"finish_time"`
	Version             string       `json:"version"`
	Branch              string       `json:"branch"`
	GitHash             string       `json:"git_hash"`
	BuildVariant        string       `json:"build_variant"`
	Status              string       `json:"status"`
	Activated           bool         `json:"activated"`
	ActivatedBy         string       `json:"activated_by"`
	ActivatedTime       *time.Time   `json:"activated_time"`
	Order               int          `json:"order"`
	Tasks               []string     `json:"tasks"`
	TimeTakenMS         int64        `json:"time_taken_ms"`
	DisplayName         string       `json:"display_name"`
	PredictedMakespanMS int64        `json:"predicted_makespan_ms"`
	ActualMakespanMS    int64        `json:"actual_makespan_ms"`
	Origin              string       `json:"origin"`
	StatusCounts        StatusCounts `json:"status_counts"`

	api Client
}

// Bind attaches the API handle used by the traversal helpers.
func (b *Build) Bind(api Client) *Build {
	b.api = api
	return b
}

// GetTasks fetches every task in this build.
func (b *Build) GetTasks(ctx context.Context, fetchAllExecutions bool) ([]*Task, error) {
	return b.api.TasksByBuild(ctx, b.ID, fetchAllExecutions)
}

// GetVersion fetches the version this build belongs to.
func (b *Build) GetVersion(ctx context.Context) (*Version, error) {
	return b.api.VersionByID(ctx, b.Version)
}

// IsCompleted reports whether the build finished running its tasks.
func (b *Build) IsCompleted() bool {
	return b.Status == BuildStatusSuccess || b.Status == BuildStatusFailed
}
