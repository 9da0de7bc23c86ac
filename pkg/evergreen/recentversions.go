package evergreen

import "time"

// RecentVersion is a version row of the recent-versions endpoint. Unlike
// Version it carries no API handle; the endpoint returns denormalized
// display data.
type RecentVersion struct {
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
	BuildVariantsStatus []BuildVariantStatus `json:"build_variants_status"`
	Requester           string               `json:"requester"`
	Errors              []string             `json:"errors"`
}

// RecentBuild is a build row of the recent-versions endpoint.
type RecentBuild struct {
	ID                  string       `json:"_id"`
	ProjectID           string       `json:"project_id"`
	CreateTime          *time.Time   `json:"create_time"`
	StartTime           *time.Time   `json:"start_time"`
	FinishTime          *time.Time   `json:"finish_time"`
	Version             string       `json:"version"`
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
}

// VersionRow groups recent versions, rolled up when inactive.
type VersionRow struct {
	RolledUp bool            `json:"rolled_up"`
	Versions []RecentVersion `json:"versions"`
}

// BuildRow maps version IDs to the build of one variant.
type BuildRow struct {
	BuildVariant string                 `json:"build_variant"`
	Builds       map[string]RecentBuild `json:"builds"`
}

// RecentVersions is the response of the recent-versions endpoint.
type RecentVersions struct {
	Rows          map[string]BuildRow `json:"rows"`
	BuildVariants []string            `json:"build_variants"`
	Versions      []VersionRow        `json:"versions"`
}

// GetVersions flattens the version rows into a single list.
func (rv *RecentVersions) GetVersions() []RecentVersion {
	var versions []RecentVersion
	for _, row := range rv.Versions {
		versions = append(versions, row.Versions...)
	}
	return versions
}
