package evergreen

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Requester identifies what kind of request created a version.
type Requester string

const (
	RequesterPatch             Requester = "patch_request"
	RequesterGitter            Requester = "gitter_request"
	RequesterGithubPullRequest Requester = "github_pull_request"
	RequesterMergeTest         Requester = "merge_test"
	RequesterAdHoc             Requester = "ad_hoc"
	RequesterTrigger           Requester = "trigger_request"
	RequesterUnknown           Requester = "unknown"
)

// EvgValue is the form the version endpoints expect as a requester filter.
func (r Requester) EvgValue() string {
	return string(r)
}

// StatsValue is the form the stats endpoints expect. Requesters with no
// stats equivalent render as the empty string.
func (r Requester) StatsValue() string {
	switch r {
	case RequesterPatch, RequesterGithubPullRequest:
		return "patch"
	case RequesterGitter:
		return "mainline"
	case RequesterAdHoc:
		return "adhoc"
	case RequesterTrigger:
		return "trigger"
	default:
		return ""
	}
}

// IsPatch reports whether the requester corresponds to a patch build.
func (r Requester) IsPatch() bool {
	switch r {
	case RequesterPatch, RequesterGithubPullRequest, RequesterMergeTest:
		return true
	default:
		return false
	}
}

// Version statuses reported by the server.
const (
	VersionStatusSuccess = "success"
	VersionStatusFailed  = "failed"
	VersionStatusCreated = "created"
)

// BuildVariantStatus pairs a build variant with the build created for it.
type BuildVariantStatus struct {
	BuildVariant string `json:"build_variant"`
	BuildID      string `json:"build_id"`
}

// Version is one commit (or patch) as evaluated by Evergreen.
type Version struct {
	VersionID           string               `json:"version_id"`
	CreateTime          time.Time            `json:"create_time"`
	StartTime           *time.Time           `json:"start_time"`
	FinishTime          *time.Time           `json:"finish_time"`
	Revision            string               `json:"revision"`
	Order               int                  `json:"order"`
	Project             string               `json:"project"`
	Author              string               `json:"author"`
	AuthorEmail         string               `json:"author_email"`
	Message             string               `json:"message"`
	Status              string               `json:"status"`
	Repo                string               `json:"repo"`
	Branch              string               `json:"branch"`
	Ignored             bool                 `json:"ignored"`
	Requester           Requester            `json:"requester"`
	BuildVariantsStatus []BuildVariantStatus `json:"build_variants_status"`

	api Client
}

// Bind attaches the API handle used by the traversal helpers. It is called
// by the client after decoding and returns the version for chaining.
func (v *Version) Bind(api Client) *Version {
	v.api = api
	return v
}

// BuildVariantsMap maps each build variant name to its build ID.
func (v *Version) BuildVariantsMap() map[string]string {
	m := make(map[string]string, len(v.BuildVariantsStatus))
	for _, bvs := range v.BuildVariantsStatus {
		m[bvs.BuildVariant] = bvs.BuildID
	}
	return m
}

// BuildByVariant fetches the build created for the named variant.
func (v *Version) BuildByVariant(ctx context.Context, buildVariant string) (*Build, error) {
	buildID, ok := v.BuildVariantsMap()[buildVariant]
	if !ok {
		return nil, fmt.Errorf("%w: version %s has no variant %q", ErrInvalidArguments, v.VersionID, buildVariant)
	}
	return v.api.BuildByID(ctx, buildID)
}

// Builds fetches every build belonging to this version.
func (v *Version) Builds(ctx context.Context) ([]*Build, error) {
	return v.api.BuildsByVersion(ctx, v.VersionID, nil)
}

// GetManifest fetches the module manifest for this version's revision.
func (v *Version) GetManifest(ctx context.Context) (*Manifest, error) {
	return v.api.ManifestForRevision(ctx, v.Project, v.Revision)
}

// GetPatch fetches the patch behind this version, or nil for mainline
// versions.
func (v *Version) GetPatch(ctx context.Context) (*Patch, error) {
	if !v.IsPatch() {
		return nil, nil
	}
	return v.api.PatchByID(ctx, v.VersionID, nil)
}

// IsPatch reports whether this version came from a patch build rather than
// a tracked commit.
func (v *Version) IsPatch() bool {
	if v.Requester != "" && v.Requester != RequesterUnknown {
		return v.Requester.IsPatch()
	}
	return !strings.HasPrefix(v.VersionID, strings.ReplaceAll(v.Project, "-", "_"))
}

// IsCompleted reports whether the version finished running its tasks.
func (v *Version) IsCompleted() bool {
	return v.Status == VersionStatusSuccess || v.Status == VersionStatusFailed
}
