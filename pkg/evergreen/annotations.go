package evergreen

import "time"

// Source records where an annotation entry came from.
type Source struct {
	Author    string    `json:"author"`
	Time      time.Time `json:"time"`
	Requester string    `json:"requester"`
}

// IssueLink is one issue attached to a task annotation.
type IssueLink struct {
	URL      string `json:"url"`
	IssueKey string `json:"issue_key"`
	Source   Source `json:"source"`
}

// Note is the free-form message of a task annotation.
type Note struct {
	Message string `json:"message"`
	Source  Source `json:"source"`
}

// TaskAnnotation is failure metadata attached to one task execution.
type TaskAnnotation struct {
	TaskID          string         `json:"task_id"`
	TaskExecution   int            `json:"task_execution"`
	Issues          []IssueLink    `json:"issues"`
	SuspectedIssues []IssueLink    `json:"suspected_issues"`
	Note            *Note          `json:"note"`
	Metadata        map[string]any `json:"metadata"`
}
