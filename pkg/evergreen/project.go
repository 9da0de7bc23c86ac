package evergreen

import "context"

// ProjectCommitQueue is the commit queue configuration of a project.
type ProjectCommitQueue struct {
	Enabled     bool   `json:"enabled"`
	MergeMethod string `json:"merge_method"`
	PatchType   string `json:"patch_type"`
}

// Project is one tracked repository branch.
type Project struct {
	BatchTime           int                `json:"batch_time"`
	BranchName          string             `json:"branch_name"`
	DisplayName         string             `json:"display_name"`
	Enabled             bool               `json:"enabled"`
	Identifier          string             `json:"identifier"`
	OwnerName           string             `json:"owner_name"`
	Private             bool               `json:"private"`
	RemotePath          string             `json:"remote_path"`
	RepoName            string             `json:"repo_name"`
	Tracked             bool               `json:"tracked"`
	DeactivatedPrevious bool               `json:"deactivated_previous"`
	Admins              []string           `json:"admins"`
	TracksPushEvents    bool               `json:"tracks_push_events"`
	PRTestingEnabled    bool               `json:"pr_testing_enabled"`
	CommitQueue         ProjectCommitQueue `json:"commit_queue"`

	api Client
}

// Bind attaches the API handle used by the traversal helpers.
func (p *Project) Bind(api Client) *Project {
	p.api = api
	return p
}

// MostRecentVersion fetches the newest version of this project.
func (p *Project) MostRecentVersion(ctx context.Context) (*Version, error) {
	return p.api.VersionsByProject(ctx, p.Identifier, "").Next()
}
