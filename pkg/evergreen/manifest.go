package evergreen

// ManifestModule pins one module of a version to a revision.
type ManifestModule struct {
	Branch   string `json:"branch"`
	Repo     string `json:"repo"`
	Revision string `json:"revision"`
	Owner    string `json:"owner"`
	URL      string `json:"url"`
}

// Manifest records the module revisions a version was built against.
type Manifest struct {
	ID       string                    `json:"id"`
	Revision string                    `json:"revision"`
	Project  string                    `json:"project"`
	Branch   string                    `json:"branch"`
	Modules  map[string]ManifestModule `json:"modules"`
}
