package db

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgconn"
)

const maxRetries = 3

// withRetry re-runs op for transient connection-class failures only.
// pgconn.SafeToRetry guarantees the server never saw the statement, so a
// retry cannot double-apply a write.
func withRetry(ctx context.Context, op func() error) error {
	wrapped := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !pgconn.SafeToRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
	return backoff.Retry(wrapped, backoff.WithContext(policy, ctx))
}
