// Package evgclient constructs Evergreen API clients. The returned values
// implement the interfaces in pkg/evergreen; the wire-level details live
// in internal packages.
package evgclient

import (
	internalclient "github.com/evergreen-ci/evergreen-go/internal/client"
	evghttp "github.com/evergreen-ci/evergreen-go/internal/http"
	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// New creates a client that reports every failure to the caller without
// retrying.
func New(cfg *evergreen.Config) (evergreen.Client, error) {
	return internalclient.New(cfg)
}

// NewRetrying creates a client that retries transient failures (server
// errors, bare HTTP failures, connection failures) up to three attempts
// with exponential backoff, returning the final failure unchanged.
func NewRetrying(cfg *evergreen.Config) (evergreen.Client, error) {
	return internalclient.New(cfg, evghttp.WithRetry(evghttp.DefaultRetryPolicy()))
}

// NewCached creates a client that memoizes build and version lookups in a
// bounded LRU cache.
func NewCached(cfg *evergreen.Config) (evergreen.CachedClient, error) {
	base, err := internalclient.New(cfg)
	if err != nil {
		return nil, err
	}
	return internalclient.NewCached(base)
}

// NewFromConfigFile builds a retrying client from an Evergreen
// configuration file. An empty path reads ~/.evergreen.yml.
func NewFromConfigFile(path string) (evergreen.Client, error) {
	if path == "" {
		var err error
		if path, err = evergreen.DefaultConfigPath(); err != nil {
			return nil, err
		}
	}
	fileConfig, err := evergreen.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	cfg := fileConfig.ClientConfig()
	cfg.Timeout = evergreen.DefaultTimeout
	return NewRetrying(cfg)
}
