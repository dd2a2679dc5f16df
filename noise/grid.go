package noise

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvalGrid samples a field over a w by h grid with the given coordinate
// step, evaluating rows in parallel. Fields are pure and re-entrant, so
// no coordination beyond the row split is needed. The result is indexed
// [row][col], i.e. grid[y][x] = f(x*step, y*step).
func EvalGrid(f Field, w, h int, step float64) [][]float64 {
	if w < 1 || h < 1 {
		return nil
	}
	grid := make([][]float64, h)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < h; y++ {
		g.Go(func() error {
			row := make([]float64, w)
			fy := float64(y) * step
			for x := 0; x < w; x++ {
				row[x] = f(float64(x)*step, fy)
			}
			grid[y] = row
			return nil
		})
	}
	// Row workers never return errors; Wait is for completion only.
	_ = g.Wait()
	return grid
}
