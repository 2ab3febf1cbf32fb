package apod

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result pairs a requested date with what upstream returned for it.
type Result struct {
	Date    time.Time
	Picture *Picture
	Err     error
}

func (r Result) Outcome() Outcome {
	return OutcomeOf(r.Err)
}

// FetchAll fetches every date concurrently. The returned slice is in the
// same order as dates regardless of the order responses arrive in. A failed
// fetch is recorded in its Result and does not cancel the others.
func FetchAll(ctx context.Context, f Fetcher, dates []time.Time) []Result {
	results := make([]Result, len(dates))

	var g errgroup.Group
	for i, d := range dates {
		g.Go(func() error {
			pic, err := f.Fetch(ctx, d)
			results[i] = Result{Date: d, Picture: pic, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
