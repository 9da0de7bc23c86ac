package evergreen

import "encoding/json"

// CommitQueueItem is one queued change waiting to merge.
type CommitQueueItem struct {
	Issue   string          `json:"issue"`
	Modules json.RawMessage `json:"modules"`
}

// CommitQueue is the merge queue of a project.
type CommitQueue struct {
	QueueID string            `json:"queue_id"`
	Queue   []CommitQueueItem `json:"queue"`
}

// DisplayTaskAlias is a display task matched by a patch alias.
type DisplayTaskAlias struct {
	Name           string   `json:"Name"`
	ExecutionTasks []string `json:"ExecutionTasks"`
}

// VariantAlias is the expansion of a patch alias on one build variant.
type VariantAlias struct {
	Variant      string             `json:"Variant"`
	Tasks        []string           `json:"Tasks"`
	DisplayTasks []DisplayTaskAlias `json:"DisplayTasks"`
}
