package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// PatchByID returns a single patch.
func (c *Client) PatchByID(ctx context.Context, patchID string, params url.Values) (*evergreen.Patch, error) {
	patch, err := fetchOne[evergreen.Patch](ctx, c, c.restURL("/patches/"+patchID), params)
	if err != nil {
		return nil, fmt.Errorf("getting patch %s: %w", patchID, err)
	}
	return patch.Bind(c), nil
}

// PatchesByProject lazily iterates a project's patches by create time,
// newest first.
func (c *Client) PatchesByProject(ctx context.Context, projectID string, params url.Values) *evergreen.Iterator[evergreen.Patch] {
	next := c.http.DatePages(ctx, c.restURL("/projects/"+projectID+"/patches"), params)
	return evergreen.NewIterator(next, func(p *evergreen.Patch) { p.Bind(c) })
}

// PatchesByProjectTimeWindow iterates patches whose create time falls in
// [after, before).
func (c *Client) PatchesByProjectTimeWindow(ctx context.Context, projectID string, before, after time.Time, params url.Values) *evergreen.Iterator[evergreen.Patch] {
	return c.PatchesByProject(ctx, projectID, params).
		TimeWindow(after, before, func(p *evergreen.Patch) time.Time { return p.CreateTime })
}

// PatchesByUser lazily iterates a user's patches.
func (c *Client) PatchesByUser(ctx context.Context, userID string, params url.Values) *evergreen.Iterator[evergreen.Patch] {
	next := c.http.Pages(ctx, c.restURL("/users/"+userID+"/patches"), params)
	return evergreen.NewIterator(next, func(p *evergreen.Patch) { p.Bind(c) })
}

// ConfigurePatch schedules variant/task combinations on an existing patch.
func (c *Client) ConfigurePatch(ctx context.Context, patchID string, variants []evergreen.VariantsTasks, description string) error {
	type variantSelection struct {
		ID    string   `json:"id"`
		Tasks []string `json:"tasks"`
	}
	body := map[string]any{}
	if len(variants) > 0 {
		selections := make([]variantSelection, 0, len(variants))
		for _, vt := range variants {
			selections = append(selections, variantSelection{ID: vt.Name, Tasks: vt.Tasks})
		}
		body["variants"] = selections
	}
	if description != "" {
		body["description"] = description
	}
	if _, err := c.http.Post(ctx, c.restURL("/patches/"+patchID+"/configure"), body); err != nil {
		return fmt.Errorf("configuring patch %s: %w", patchID, err)
	}
	return nil
}
