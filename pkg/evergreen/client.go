package evergreen

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// DistrosAPI covers the distro endpoints.
type DistrosAPI interface {
	// AllDistros returns every distro known to the server.
	AllDistros(ctx context.Context) ([]*Distro, error)
}

// HostsAPI covers the host endpoints.
type HostsAPI interface {
	// AllHosts returns hosts, optionally restricted to a status such as
	// "running". An empty status returns all hosts.
	AllHosts(ctx context.Context, status string) ([]*Host, error)
}

// ProjectsAPI covers the project endpoints.
type ProjectsAPI interface {
	// AllProjects returns every tracked project. A non-nil filter keeps
	// only projects it returns true for.
	AllProjects(ctx context.Context, filter func(*Project) bool) ([]*Project, error)

	// ProjectByID returns a single project.
	ProjectByID(ctx context.Context, projectID string) (*Project, error)

	// RecentVersionsByProject returns the most recent versions of a
	// project grouped by build variant. params may carry server options
	// such as limit.
	RecentVersionsByProject(ctx context.Context, projectID string, params url.Values) (*RecentVersions, error)

	// CommitQueueForProject returns the project's current commit queue.
	CommitQueueForProject(ctx context.Context, projectID string) (*CommitQueue, error)
}

// VersionsAPI covers the version endpoints.
type VersionsAPI interface {
	// VersionByID returns a single version.
	VersionByID(ctx context.Context, versionID string) (*Version, error)

	// VersionsByProject lazily iterates a project's versions, newest
	// first. An empty requester defaults to mainline commits.
	VersionsByProject(ctx context.Context, projectID string, requester Requester) *Iterator[Version]

	// VersionsByProjectTimeWindow iterates versions whose create time
	// falls in [after, before).
	VersionsByProjectTimeWindow(ctx context.Context, projectID string, before, after time.Time, requester Requester) *Iterator[Version]

	// BuildsByVersion returns the builds belonging to a version.
	BuildsByVersion(ctx context.Context, versionID string, params url.Values) ([]*Build, error)

	// AliasForVersion resolves a patch alias against a version,
	// returning the variant/task pairs it expands to.
	AliasForVersion(ctx context.Context, versionID, alias string, includeDeps bool) ([]*VariantAlias, error)
}

// PatchesAPI covers the patch endpoints.
type PatchesAPI interface {
	// PatchByID returns a single patch.
	PatchByID(ctx context.Context, patchID string, params url.Values) (*Patch, error)

	// PatchesByProject lazily iterates a project's patches by create
	// time, newest first.
	PatchesByProject(ctx context.Context, projectID string, params url.Values) *Iterator[Patch]

	// PatchesByProjectTimeWindow iterates patches whose create time
	// falls in [after, before).
	PatchesByProjectTimeWindow(ctx context.Context, projectID string, before, after time.Time, params url.Values) *Iterator[Patch]

	// PatchesByUser lazily iterates a user's patches.
	PatchesByUser(ctx context.Context, userID string, params url.Values) *Iterator[Patch]

	// ConfigurePatch schedules the given variant/task combinations on an
	// existing patch and optionally updates its description.
	ConfigurePatch(ctx context.Context, patchID string, variants []VariantsTasks, description string) error
}

// BuildsAPI covers the build endpoints.
type BuildsAPI interface {
	// BuildByID returns a single build.
	BuildByID(ctx context.Context, buildID string) (*Build, error)

	// TasksByBuild returns the tasks of a build. fetchAllExecutions
	// includes data for earlier executions of each task.
	TasksByBuild(ctx context.Context, buildID string, fetchAllExecutions bool) ([]*Task, error)
}

// TasksAPI covers the task endpoints.
type TasksAPI interface {
	// TaskByID returns a single task.
	TaskByID(ctx context.Context, taskID string, fetchAllExecutions bool) (*Task, error)

	// TasksByProject returns the project's tasks, optionally restricted
	// to the given statuses.
	TasksByProject(ctx context.Context, projectID string, statuses []string) ([]*Task, error)

	// TasksByProjectAndCommit returns the mainline tasks created for a
	// commit.
	TasksByProjectAndCommit(ctx context.Context, projectID, commitHash string, params url.Values) ([]*Task, error)

	// ConfigureTask changes a task's activation state and priority. Nil
	// fields are left untouched.
	ConfigureTask(ctx context.Context, taskID string, activated *bool, priority *int64) error

	// RestartTask restarts a completed task.
	RestartTask(ctx context.Context, taskID string) error

	// AbortTask aborts a dispatched task.
	AbortTask(ctx context.Context, taskID string) error

	// ManifestForTask returns the module manifest of the task's version.
	ManifestForTask(ctx context.Context, taskID string) (*Manifest, error)

	// TaskAnnotations returns the annotations of a task. execution and
	// fetchAllExecutions are mutually exclusive; passing both is an
	// ErrInvalidArguments failure before any network call.
	TaskAnnotations(ctx context.Context, taskID string, execution *int, fetchAllExecutions bool) ([]*TaskAnnotation, error)

	// AnnotateTask updates a task's annotation.
	AnnotateTask(ctx context.Context, taskID string, req *AnnotationRequest) error
}

// TestsAPI covers the test endpoints.
type TestsAPI interface {
	// TestsByTask returns the test results of a task, optionally
	// restricted by status and execution.
	TestsByTask(ctx context.Context, taskID string, status string, execution *int) ([]*Test, error)

	// SingleTestByTaskAndTestFile returns the result matching one test
	// file in a task.
	SingleTestByTaskAndTestFile(ctx context.Context, taskID, testFile string) (*Test, error)
}

// StatsAPI covers the project statistics endpoints.
type StatsAPI interface {
	// TestStatsByProject returns aggregated historical test results.
	TestStatsByProject(ctx context.Context, projectID string, filter *StatsFilter) ([]*TestStats, error)

	// TaskStatsByProject returns aggregated historical task results. A
	// tests filter is invalid here and fails with ErrInvalidArguments.
	TaskStatsByProject(ctx context.Context, projectID string, filter *StatsFilter) ([]*TaskStats, error)

	// TaskReliabilityByProject returns task success-rate scores. As with
	// task stats, a tests filter is invalid.
	TaskReliabilityByProject(ctx context.Context, projectID string, filter *StatsFilter) ([]*TaskReliability, error)
}

// PluginAPI covers the old-style plugin endpoints that predate the v2 REST
// API.
type PluginAPI interface {
	// PerformanceResultsByTask returns the performance results a task
	// reported.
	PerformanceResultsByTask(ctx context.Context, taskID string) (*PerformanceData, error)

	// PerformanceResultsByTaskName returns performance results for every
	// execution of a named task.
	PerformanceResultsByTaskName(ctx context.Context, taskID, taskName string) ([]*PerformanceData, error)

	// JSONByTask returns the raw document a task attached under jsonKey.
	JSONByTask(ctx context.Context, taskID, jsonKey string) (json.RawMessage, error)

	// JSONHistoryForTask returns the jsonKey documents of the task's
	// mainline history.
	JSONHistoryForTask(ctx context.Context, taskID, taskName, jsonKey string) ([]json.RawMessage, error)

	// ManifestForRevision returns the module manifest of a mainline
	// revision.
	ManifestForRevision(ctx context.Context, projectID, revision string) (*Manifest, error)
}

// LogsAPI covers task log retrieval.
type LogsAPI interface {
	// RetrieveTaskLog fetches a complete log by its URL. raw asks the
	// server for the unformatted variant.
	RetrieveTaskLog(ctx context.Context, logURL string, raw bool) (string, error)

	// StreamLog fetches a log lazily, line by line. The caller must
	// close the returned stream.
	StreamLog(ctx context.Context, logURL string) (*LogStream, error)
}

// Client is the full Evergreen API surface.
type Client interface {
	DistrosAPI
	HostsAPI
	ProjectsAPI
	VersionsAPI
	PatchesAPI
	BuildsAPI
	TasksAPI
	TestsAPI
	StatsAPI
	PluginAPI
	LogsAPI
}

// CachedClient is a Client that memoizes immutable single-object lookups
// (builds and versions) in a bounded LRU cache.
type CachedClient interface {
	Client

	// ClearCaches empties every cache table.
	ClearCaches()
}
