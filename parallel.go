package seamcarving

import (
	"runtime"
	"sync"

	"github.com/FergusonShuai/seam-carving/utils"
)

// minParallelPixels is the image area below which fanning the work out to
// multiple goroutines costs more than it saves.
const minParallelPixels = 1 << 16

// parallelRows splits [0, rows) into contiguous chunks and runs fn on each
// chunk from its own goroutine, blocking until every chunk is done. Small
// workloads run on the calling goroutine instead. The chunks never overlap,
// so fn may write to per-row data without synchronization.
func parallelRows(rows, pixels int, fn func(y0, y1 int)) {
	workers := runtime.NumCPU()
	if pixels < minParallelPixels || workers < 2 || rows < workers {
		fn(0, rows)
		return
	}

	chunk := (rows + workers - 1) / workers
	var wg sync.WaitGroup

	for y0 := 0; y0 < rows; y0 += chunk {
		y1 := utils.Min(y0+chunk, rows)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
