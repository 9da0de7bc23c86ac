package evergreen

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// StatsFilter describes a query against the project statistics endpoints
// (test stats, task stats, task reliability). Zero-valued fields are
// omitted from the rendered query.
type StatsFilter struct {
	// AfterDate and BeforeDate bound the reporting window. AfterDate is
	// required by the server; BeforeDate defaults server-side to today.
	AfterDate  time.Time
	BeforeDate time.Time

	// GroupNumDays groups results into buckets of this many days.
	GroupNumDays int

	// Requesters restricts results to versions created by the given
	// requesters.
	Requesters []Requester

	// Tests, Tasks, Variants and Distros restrict results to the named
	// entities. Tests is only valid for the test-stats endpoint.
	Tests    []string
	Tasks    []string
	Variants []string
	Distros  []string

	// GroupBy and Sort control result grouping and ordering.
	GroupBy string
	Sort    string
}

// Values renders the filter as URL query parameters. List-valued fields
// become repeated parameters.
func (f *StatsFilter) Values() url.Values {
	params := url.Values{}
	if !f.AfterDate.IsZero() {
		params.Set("after_date", FormatDate(f.AfterDate))
	}
	if !f.BeforeDate.IsZero() {
		params.Set("before_date", FormatDate(f.BeforeDate))
	}
	if f.GroupNumDays > 0 {
		params.Set("group_num_days", strconv.Itoa(f.GroupNumDays))
	}
	for _, r := range f.Requesters {
		params.Add("requesters", r.StatsValue())
	}
	for _, t := range f.Tests {
		params.Add("tests", t)
	}
	for _, t := range f.Tasks {
		params.Add("tasks", t)
	}
	for _, v := range f.Variants {
		params.Add("variants", v)
	}
	for _, d := range f.Distros {
		params.Add("distros", d)
	}
	if f.GroupBy != "" {
		params.Set("group_by", f.GroupBy)
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
	}
	return params
}

// ValidateForTasks rejects filter fields the task-level endpoints cannot
// serve.
func (f *StatsFilter) ValidateForTasks() error {
	if len(f.Tests) > 0 {
		return fmt.Errorf("%w: tests filter is not valid for task-level statistics", ErrInvalidArguments)
	}
	return nil
}

// AnnotationRequest carries the fields of a task annotation update.
type AnnotationRequest struct {
	// Execution selects the task execution to annotate; nil means the
	// latest execution.
	Execution *int

	// Message replaces the annotation note.
	Message string

	// Issues and SuspectedIssues replace the corresponding issue lists.
	Issues          []IssueLinkRequest
	SuspectedIssues []IssueLinkRequest

	// Metadata is free-form structured data attached to the annotation.
	Metadata map[string]any
}

// IssueLinkRequest is one issue reference in an annotation update.
type IssueLinkRequest struct {
	URL      string `json:"url"`
	IssueKey string `json:"issue_key,omitempty"`
}
