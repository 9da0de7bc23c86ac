package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// VersionByID returns a single version.
func (c *Client) VersionByID(ctx context.Context, versionID string) (*evergreen.Version, error) {
	version, err := fetchOne[evergreen.Version](ctx, c, c.restURL("/versions/"+versionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting version %s: %w", versionID, err)
	}
	return version.Bind(c), nil
}

// VersionsByProject lazily iterates a project's versions, newest first.
func (c *Client) VersionsByProject(ctx context.Context, projectID string, requester evergreen.Requester) *evergreen.Iterator[evergreen.Version] {
	if requester == "" {
		requester = evergreen.RequesterGitter
	}
	params := url.Values{"requester": []string{requester.EvgValue()}}
	next := c.http.Pages(ctx, c.restURL("/projects/"+projectID+"/versions"), params)
	return evergreen.NewIterator(next, func(v *evergreen.Version) { v.Bind(c) })
}

// VersionsByProjectTimeWindow iterates versions whose create time falls in
// [after, before).
func (c *Client) VersionsByProjectTimeWindow(ctx context.Context, projectID string, before, after time.Time, requester evergreen.Requester) *evergreen.Iterator[evergreen.Version] {
	return c.VersionsByProject(ctx, projectID, requester).
		TimeWindow(after, before, func(v *evergreen.Version) time.Time { return v.CreateTime })
}

// BuildsByVersion returns the builds belonging to a version.
func (c *Client) BuildsByVersion(ctx context.Context, versionID string, params url.Values) ([]*evergreen.Build, error) {
	builds, err := fetchList[evergreen.Build](ctx, c, c.restURL("/versions/"+versionID+"/builds"), params)
	if err != nil {
		return nil, fmt.Errorf("getting builds for version %s: %w", versionID, err)
	}
	for _, build := range builds {
		build.Bind(c)
	}
	return builds, nil
}

// AliasForVersion resolves a patch alias against a version.
func (c *Client) AliasForVersion(ctx context.Context, versionID, alias string, includeDeps bool) ([]*evergreen.VariantAlias, error) {
	params := url.Values{
		"version": []string{versionID},
		"alias":   []string{alias},
	}
	if includeDeps {
		params.Set("include_deps", "true")
	}
	aliases, err := fetchList[evergreen.VariantAlias](ctx, c, c.restURL("/projects/test_alias"), params)
	if err != nil {
		return nil, fmt.Errorf("getting alias %s for version %s: %w", alias, versionID, err)
	}
	return aliases, nil
}
