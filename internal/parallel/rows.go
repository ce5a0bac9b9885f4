package parallel

import (
	"context"
	"sync/atomic"
)

// bandsPerWorker controls how finely rows are split. More bands than
// workers lets stealing even out uneven rows.
const bandsPerWorker = 4

// BandSize returns the number of rows per band used for rows rows on the
// given number of workers.
func BandSize(rows, workers int) int {
	if workers < 1 {
		workers = 1
	}
	return max(1, (rows+workers*bandsPerWorker-1)/(workers*bandsPerWorker))
}

// ForRows calls fn once for every row in [0, rows), splitting the rows into
// contiguous bands executed on the pool. A nil pool or a pool with a single
// worker runs every row on the calling goroutine in order.
//
// The context is checked before each row. Once it is done no further rows
// start, and ForRows returns ctx.Err() after the rows already running have
// finished. A cancellation that arrives after the last row has started is
// not reported.
func ForRows(ctx context.Context, p *WorkerPool, rows int, fn func(y int)) error {
	if rows <= 0 {
		return ctx.Err()
	}

	if p == nil || p.Workers() == 1 {
		for y := range rows {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(y)
		}
		return nil
	}

	var skipped atomic.Bool
	band := BandSize(rows, p.Workers())
	tasks := make([]func(), 0, (rows+band-1)/band)
	for y0 := 0; y0 < rows; y0 += band {
		y1 := min(y0+band, rows)
		tasks = append(tasks, func() {
			for y := y0; y < y1; y++ {
				if ctx.Err() != nil {
					skipped.Store(true)
					return
				}
				fn(y)
			}
		})
	}

	p.ExecuteAll(tasks)
	if skipped.Load() {
		return ctx.Err()
	}
	return nil
}
