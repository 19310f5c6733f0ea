// Package httputil fetches remote style files.
//
// # Overview
//
//   - [Client]: plain-text GET with status classification
//   - [Retry]: bounded retry with exponential backoff
//
// A style fetch is a single blocking request. By default [Client] makes
// exactly one attempt and propagates the failure; callers that want
// retries raise the attempt count with [WithAttempts]. Only transient
// failures (connection errors, 5xx responses) are retried, wrapped in
// [RetryableError]; a 404 becomes [ErrNotFound] immediately.
//
// Usage:
//
//	c := httputil.NewClient()
//	text, err := c.GetText(ctx, url)
//	if errors.Is(err, httputil.ErrNotFound) {
//	    // the style file is gone
//	}
package httputil
