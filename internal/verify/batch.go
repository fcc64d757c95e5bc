package verify

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/evomoney/evomoney/internal/category"
)

// Batch runs the full law suite over many categories concurrently.
// Categories are immutable, so the checks share nothing mutable; the
// results are index-aligned with the input.
func Batch(ctx context.Context, cats []*category.Category) ([][]Result, error) {
	results := make([][]Result, len(cats))

	g, ctx := errgroup.WithContext(ctx)
	for i, cat := range cats {
		i, cat := i, cat
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = LawSuite(cat)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
