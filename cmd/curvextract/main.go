// Command curvextract demonstrates a minimum-cost curve extraction over a
// small synthetic 2D grid: a 12x12 plane with a high-cost ridge down the
// middle, start and end points on either side, and a mix of data, length
// and curvature penalties. It prints the resulting polyline and cost.
//
// This is a demo entry point, not a production host runtime: marshalling
// imagery from disk or a network request is out of scope here, same as the
// rest of this module.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/curvextractlog"
	"github.com/kvoxel/curvextract/grid"
	"github.com/kvoxel/curvextract/segment"
)

func main() {
	shape := grid.Shape{M: 12, N: 12, O: 1}

	vol := costfn.Volume{Shape: shape, Data: make([]float64, shape.NumCells())}
	for i := range vol.Data {
		vol.Data[i] = 1
	}
	for y := 0; y < shape.N; y++ {
		vol.Data[shape.Sub2Ind(6, y, 0)] = 25 // ridge down the middle
	}

	mesh := grid.NewMeshMap(shape)
	mesh.Set(0, 6, 0, grid.TagStart)
	mesh.Set(11, 6, 0, grid.TagEnd)

	conn := grid.ConnFromRows([][3]int{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
		{1, 1, 0}, {1, -1, 0}, {-1, 1, 0}, {-1, -1, 0},
	})

	settings := costfn.Settings{
		VoxelDimensions:  [3]float64{1, 1, 1},
		LengthPenalty:    1,
		CurvaturePenalty: 0.5,
		CurvaturePower:   2,
		UseAStar:         true,
		Logger:           curvextractlog.NewText(slog.LevelInfo),
	}

	result, err := segment.Run(costfn.LinearInterpolation, vol, mesh, conn, settings, segment.ExtraPoints{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "curvextract:", err)
		os.Exit(1)
	}

	if result.Path == nil {
		fmt.Println("no path found")
		return
	}

	fmt.Printf("cost=%.4f evaluations=%d runtime=%s\n", result.Cost, result.Evaluations, result.RunTime)
	for _, p := range result.Path {
		fmt.Printf("  (%d,%d,%d)\n", p.X, p.Y, p.Z)
	}
}
