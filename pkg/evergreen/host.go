package evergreen

import (
	"context"
	"time"
)

// HostDistro identifies the distro a host runs.
type HostDistro struct {
	DistroID string `json:"distro_id"`
	Provider string `json:"provider"`
	ImageID  string `json:"image_id"`
}

// RunningTask is the task currently dispatched to a host, if any.
type RunningTask struct {
	TaskID       string     `json:"task_id"`
	Name         string     `json:"name"`
	DispatchTime *time.Time `json:"dispatch_time"`
	VersionID    string     `json:"version_id"`
	BuildID      string     `json:"build_id"`
}

// Host is one machine in the Evergreen host pool.
type Host struct {
	HostID      string      `json:"host_id"`
	HostURL     string      `json:"host_url"`
	Provisioned bool        `json:"provisioned"`
	StartedBy   string      `json:"started_by"`
	HostType    string      `json:"host_type"`
	User        string      `json:"user"`
	Status      string      `json:"status"`
	UserHost    bool        `json:"user_host"`
	Distro      HostDistro  `json:"distro"`
	RunningTask RunningTask `json:"running_task"`

	api Client
}

// Bind attaches the API handle used by the traversal helpers.
func (h *Host) Bind(api Client) *Host {
	h.api = api
	return h
}

// GetBuild fetches the build of the task running on this host, or nil when
// the host is idle.
func (h *Host) GetBuild(ctx context.Context) (*Build, error) {
	if h.RunningTask.BuildID == "" {
		return nil, nil
	}
	return h.api.BuildByID(ctx, h.RunningTask.BuildID)
}

// GetVersion fetches the version of the task running on this host, or nil
// when the host is idle.
func (h *Host) GetVersion(ctx context.Context) (*Version, error) {
	if h.RunningTask.VersionID == "" {
		return nil, nil
	}
	return h.api.VersionByID(ctx, h.RunningTask.VersionID)
}
