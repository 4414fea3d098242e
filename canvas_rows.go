package trtc

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RowFunc processes row y of a canvas. row aliases the canvas buffer and
// is owned by the caller of RowFunc for the duration of the call.
type RowFunc func(y int, row []Color) error

// band is a half-open range of rows [y0, y1).
type band struct {
	y0, y1 int
}

// splitRows partitions height rows into at most n contiguous, disjoint
// bands. The first height%n bands get one extra row.
func splitRows(height, n int) []band {
	if height <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > height {
		n = height
	}
	per, rem := height/n, height%n

	bands := make([]band, 0, n)
	y := 0
	for i := 0; i < n; i++ {
		count := per
		if i < rem {
			count++
		}
		bands = append(bands, band{y0: y, y1: y + count})
		y += count
	}
	return bands
}

// ForEachRow calls fn for every row of the canvas. Rows are split into
// at most workers contiguous bands, one goroutine per band, so no two
// goroutines ever touch the same pixel. If workers is 0 or negative,
// GOMAXPROCS is used.
//
// The first error returned by fn, or the cancellation of ctx, stops the
// remaining rows and is returned. Rows already processed keep their
// writes.
func (c *Canvas) ForEachRow(ctx context.Context, workers int, fn RowFunc) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bands := splitRows(c.height, workers)
	if len(bands) == 0 {
		return ctx.Err()
	}
	Logger().Debug("trtc: rows partitioned", "height", c.height, "bands", len(bands))

	g, ctx := errgroup.WithContext(ctx)
	for _, b := range bands {
		g.Go(func() error {
			for y := b.y0; y < b.y1; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(y, c.Row(y)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
