package youtube

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Concurrency bounds for batch lookups
const (
	DefaultConcurrency = 5
	MaxConcurrency     = 20
)

// BatchResult contains the results of a batch lookup, in input order.
type BatchResult struct {
	Requested int
	Responses []Response
	Failed    []LookupError
}

// LookupError records one failed lookup of a batch.
type LookupError struct {
	ID    string
	Index int
	Err   error
}

// Error implements the error interface
func (e LookupError) Error() string {
	return fmt.Sprintf("lookup of %s failed: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error
func (e LookupError) Unwrap() error {
	return e.Err
}

// GetByIDs looks up many videos concurrently, one request per ID. The staged
// parameters are consumed once and shared read-only by every lookup.
// Responses[i] is nil when ids[i] failed. A validation failure is returned
// as the error and no request is sent.
func (c *Client) GetByIDs(ctx context.Context, ids []string, concurrency int) (BatchResult, error) {
	result := BatchResult{
		Requested: len(ids),
		Responses: make([]Response, len(ids)),
	}

	base := c.snapshot()
	if err := base.Validate(); err != nil {
		requestsTotal.WithLabelValues(ResourceVideos, KindValidation.String()).Inc()
		return result, err
	}
	if len(ids) == 0 {
		return result, nil
	}

	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	concurrency = min(concurrency, MaxConcurrency)

	var g errgroup.Group
	g.SetLimit(concurrency)

	errs := make([]error, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			q := base.Clone()
			q.AddPart(videoParts...)
			q.AddParam(paramPart, q.PartList())
			q.AddParam("id", id)

			resp, err := c.request(ctx, ResourceVideos, q.URL(c.baseURL, ResourceVideos))
			if err != nil {
				errs[i] = err
				return nil // Don't stop on individual errors
			}
			result.Responses[i] = resp
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			result.Failed = append(result.Failed, LookupError{ID: ids[i], Index: i, Err: err})
		}
	}

	c.logger.Debug().
		Int("requested", result.Requested).
		Int("failed", len(result.Failed)).
		Msg("Batch video lookup finished")

	return result, nil
}
