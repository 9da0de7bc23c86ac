package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// AllProjects returns every tracked project, optionally filtered.
func (c *Client) AllProjects(ctx context.Context, filter func(*evergreen.Project) bool) ([]*evergreen.Project, error) {
	projects, err := fetchList[evergreen.Project](ctx, c, c.restURL("/projects"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting projects: %w", err)
	}
	kept := make([]*evergreen.Project, 0, len(projects))
	for _, project := range projects {
		if filter != nil && !filter(project) {
			continue
		}
		kept = append(kept, project.Bind(c))
	}
	return kept, nil
}

// ProjectByID returns a single project.
func (c *Client) ProjectByID(ctx context.Context, projectID string) (*evergreen.Project, error) {
	project, err := fetchOne[evergreen.Project](ctx, c, c.restURL("/projects/"+projectID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project %s: %w", projectID, err)
	}
	return project.Bind(c), nil
}

// RecentVersionsByProject returns a project's recent versions grouped by
// build variant.
func (c *Client) RecentVersionsByProject(ctx context.Context, projectID string, params url.Values) (*evergreen.RecentVersions, error) {
	recent, err := fetchOne[evergreen.RecentVersions](ctx, c, c.restURL("/projects/"+projectID+"/recent_versions"), params)
	if err != nil {
		return nil, fmt.Errorf("getting recent versions for %s: %w", projectID, err)
	}
	return recent, nil
}

// CommitQueueForProject returns the project's current commit queue.
func (c *Client) CommitQueueForProject(ctx context.Context, projectID string) (*evergreen.CommitQueue, error) {
	queue, err := fetchOne[evergreen.CommitQueue](ctx, c, c.restURL("/commit_queue/"+projectID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting commit queue for %s: %w", projectID, err)
	}
	return queue, nil
}
