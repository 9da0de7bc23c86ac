package client

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// cacheSize bounds each cache table. Builds and versions are immutable
// once their tasks finish, so a plain LRU with no TTL is enough.
const cacheSize = 5000

// CachedClient memoizes single-object build and version lookups. The LRU
// tables lock internally, so the caches themselves tolerate concurrent
// callers.
type CachedClient struct {
	*Client
	builds   *lru.Cache[string, *evergreen.Build]
	versions *lru.Cache[string, *evergreen.Version]
}

var _ evergreen.CachedClient = (*CachedClient)(nil)

// NewCached wraps a facade with memoization.
func NewCached(base *Client) (*CachedClient, error) {
	builds, err := lru.New[string, *evergreen.Build](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating build cache: %w", err)
	}
	versions, err := lru.New[string, *evergreen.Version](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating version cache: %w", err)
	}
	return &CachedClient{Client: base, builds: builds, versions: versions}, nil
}

// BuildByID returns the cached build when present. Cached objects are
// re-bound to the caching client so their traversals hit the cache too.
func (c *CachedClient) BuildByID(ctx context.Context, buildID string) (*evergreen.Build, error) {
	if build, ok := c.builds.Get(buildID); ok {
		return build, nil
	}
	build, err := c.Client.BuildByID(ctx, buildID)
	if err != nil {
		return nil, err
	}
	build.Bind(c)
	c.builds.Add(buildID, build)
	return build, nil
}

// VersionByID returns the cached version when present.
func (c *CachedClient) VersionByID(ctx context.Context, versionID string) (*evergreen.Version, error) {
	if version, ok := c.versions.Get(versionID); ok {
		return version, nil
	}
	version, err := c.Client.VersionByID(ctx, versionID)
	if err != nil {
		return nil, err
	}
	version.Bind(c)
	c.versions.Add(versionID, version)
	return version, nil
}

// ClearCaches empties every cache table.
func (c *CachedClient) ClearCaches() {
	c.builds.Purge()
	c.versions.Purge()
}
