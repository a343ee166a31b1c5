package scene

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"vista/internal/core"
)

const defaultRowsPerTask = 4

// Evaluator renders whole frames by splitting them into row bands evaluated
// concurrently. Bands write disjoint parts of the frame so no locking is
// needed.
type Evaluator struct {
	Compositor  Compositor
	Workers     int
	RowsPerTask int
}

// NewEvaluator returns an Evaluator using n workers, or one per CPU when n
// is not positive.
func NewEvaluator(n int) *Evaluator {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return &Evaluator{Workers: n, RowsPerTask: defaultRowsPerTask}
}

// Render fills frame with the image described by p. p.Size is replaced by
// the frame's size. Cancelling ctx stops new bands from starting; bands
// already running finish.
func (e *Evaluator) Render(ctx context.Context, p Params, frame *core.Frame) error {
	p.Size = frame.Size()
	p = p.Sanitize()

	rows := e.RowsPerTask
	if rows <= 0 {
		rows = defaultRowsPerTask
	}
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y0 := 0; y0 < frame.H; y0 += rows {
		if gctx.Err() != nil {
			break
		}
		y1 := min(y0+rows, frame.H)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for y := y0; y < y1; y++ {
				for x := 0; x < frame.W; x++ {
					c := e.Compositor.Pixel(p, x, y)
					frame.SetRGB(x, y, c[0], c[1], c[2])
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
