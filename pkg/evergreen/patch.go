package evergreen

import (
	"context"
	"time"
)

// GithubPatchData describes the pull request behind a GitHub patch.
type GithubPatchData struct {
	PRNumber  int    `json:"pr_number"`
	BaseOwner string `json:"base_owner"`
	BaseRepo  string `json:"base_repo"`
	HeadOwner string `json:"head_owner"`
	HeadRepo  string `json:"head_repo"`
	HeadHash  string `json:"head_hash"`
	Author    string `json:"author"`
}

// VariantsTasks is the set of tasks selected on one build variant.
type VariantsTasks struct {
	Name  string   `json:"name"`
	Tasks []string `json:"tasks"`
}

// Patch is a user-submitted change set evaluated outside the mainline.
type Patch struct {
	PatchID         string          `json:"patch_id"`
	Description     string          `json:"description"`
	ProjectID       string          `json:"project_id"`
	Branch          string          `json:"branch"`
	GitHash         string          `json:"git_hash"`
	PatchNumber     int             `json:"patch_number"`
	Author          string          `json:"author"`
	Version         string          `json:"version"`
	Status          string          `json:"status"`
	CreateTime      time.Time       `json:"create_time"`
	StartTime       *time.Time      `json:"start_time"`
	FinishTime      *time.Time      `json:"finish_time"`
	Builds          []string        `json:"builds"`
	Tasks           []string        `json:"tasks"`
	Activated       bool            `json:"activated"`
	Alias           string          `json:"alias"`
	VariantsTasks   []VariantsTasks `json:"variants_tasks"`
	GithubPatchData GithubPatchData `json:"github_patch_data"`

	api Client
}

// Bind attaches the API handle used by the traversal helpers.
func (p *Patch) Bind(api Client) *Patch {
	p.api = api
	return p
}

// TaskListForVariant returns the tasks selected on the named variant, or
// nil when the variant is not part of the patch.
func (p *Patch) TaskListForVariant(variant string) []string {
	for _, vt := range p.VariantsTasks {
		if vt.Name == variant {
			return vt.Tasks
		}
	}
	return nil
}

// GetVersion fetches the version created for this patch.
func (p *Patch) GetVersion(ctx context.Context) (*Version, error) {
	return p.api.VersionByID(ctx, p.Version)
}
