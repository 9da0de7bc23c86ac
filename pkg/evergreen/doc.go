// Package evergreen defines the public API surface for the Evergreen
// CI/CD platform client: the Client interface, configuration, domain
// models, error taxonomy, and lazy iteration over paginated endpoints.
//
// # Getting a client
//
// Clients are constructed by the evgclient package:
//
//	client, err := evgclient.New(&evergreen.Config{
//		APIServer: "https://evergreen.mongodb.com",
//		Auth:      &evergreen.Auth{Username: "me", APIKey: "secret"},
//	})
//
// NewRetrying wraps every call with bounded retries of transient
// failures, and NewCached memoizes build and version lookups in an LRU
// cache.
//
// # Lazy iteration
//
// Endpoints that can return unbounded result sets (versions, patches)
// return an Iterator. Pages are fetched one at a time as the iterator is
// drained, so stopping early is cheap:
//
//	versions := client.VersionsByProject(ctx, "my-project", "")
//	for versions.HasNext() {
//		v, err := versions.Next()
//		...
//	}
//
// # Errors
//
// Failures are classified into three types: APIError when the server
// reported a message, HTTPError for other failure statuses, and
// ConnectionError when no response arrived at all. Argument validation
// problems are reported as ErrInvalidArguments before any network call.
package evergreen
