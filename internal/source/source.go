// Package source loads shape records from the /shapes collection, from
// files, or from several of those joined together.
package source

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"shape-canvas/internal/shape"
)

// ErrStatus is returned when the shape server answers with a non-2xx code.
var ErrStatus = errors.New("unexpected response status")

// Source returns a list of shape records.
type Source interface {
	Shapes(ctx context.Context) ([]shape.Record, error)
}

// Publisher stores a record so later fetches include it.
type Publisher interface {
	Add(ctx context.Context, rec shape.Record) error
}

// Func adapts a function to Source.
type Func func(ctx context.Context) ([]shape.Record, error)

func (f Func) Shapes(ctx context.Context) ([]shape.Record, error) { return f(ctx) }

// Join fetches every source concurrently and concatenates the lists in the
// order the sources were given. The first error cancels the others.
func Join(sources ...Source) Source {
	return Func(func(ctx context.Context) ([]shape.Record, error) {
		lists := make([][]shape.Record, len(sources))
		g, ctx := errgroup.WithContext(ctx)
		for i, src := range sources {
			g.Go(func() error {
				recs, err := src.Shapes(ctx)
				if err != nil {
					return err
				}
				lists[i] = recs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		var n int
		for _, l := range lists {
			n += len(l)
		}
		out := make([]shape.Record, 0, n)
		for _, l := range lists {
			out = append(out, l...)
		}
		return out, nil
	})
}
