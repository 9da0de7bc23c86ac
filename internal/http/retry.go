package http

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

const (
	// DefaultMaxAttempts bounds the total number of tries, not just the
	// re-tries.
	DefaultMaxAttempts = 3

	// DefaultRetryWaitMin and DefaultRetryWaitMax bound the exponential
	// backoff between attempts.
	DefaultRetryWaitMin = 2 * time.Second
	DefaultRetryWaitMax = 5 * time.Second
)

// RetryPolicy controls how transient failures are retried.
type RetryPolicy struct {
	MaxAttempts int
	WaitMin     time.Duration
	WaitMax     time.Duration
}

// DefaultRetryPolicy is the policy of the retrying client.
func DefaultRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		WaitMin:     DefaultRetryWaitMin,
		WaitMax:     DefaultRetryWaitMax,
	}
}

// doWithRetry re-attempts transient failures (server errors, bare HTTP
// failures, transport failures) up to the policy's attempt budget. The
// final failure is returned unchanged; non-retryable errors propagate on
// the first attempt.
func (c *Client) doWithRetry(ctx context.Context, req *Request) (*Response, error) {
	policy := c.retry
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = policy.WaitMin
	expo.MaxInterval = policy.WaitMax
	expo.Multiplier = 2

	var resp *Response
	operation := func() error {
		r, err := c.do(ctx, req)
		if err != nil {
			if ctx.Err() != nil || !evergreen.IsRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		resp = r
		return nil
	}

	strategy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(attempts-1)), ctx)
	if err := backoff.Retry(operation, strategy); err != nil {
		return nil, err
	}
	return resp, nil
}
