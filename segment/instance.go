package segment

import (
	"math"
	"time"

	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/curvextractlog"
	"github.com/kvoxel/curvextract/grid"
	"github.com/kvoxel/curvextract/heuristic"
	"github.com/kvoxel/curvextract/lifted"
	"github.com/kvoxel/curvextract/regcache"
	"github.com/kvoxel/curvextract/search"
)

// Run is the single entry point of "Problem dispatch": it builds the
// cost functors for problemType, lifts the mesh map (plus any extra points)
// into start/end edge-pair sets, searches the lifted graph, and projects the
// result back onto the voxel grid.
func Run(problemType string, data costfn.Volume, mesh grid.MeshMap, conn grid.Connectivity, settings costfn.Settings, extra ExtraPoints) (Result, error) {
	start := time.Now()

	logger := settings.Logger
	if logger == nil {
		logger = curvextractlog.Noop
	}

	if err := mesh.Validate(); err != nil {
		return Result{}, err
	}
	if err := conn.Validate(); err != nil {
		return Result{}, err
	}
	if err := mesh.Shape.Validate(); err != nil {
		return Result{}, err
	}
	if data.Shape != mesh.Shape {
		return Result{}, grid.ErrShapeMismatch
	}

	quad, err := costfn.Build(problemType, data, settings)
	if err != nil {
		return Result{}, err
	}

	liftedStarts, liftedEnds := lifted.LiftSets(mesh, conn, extra.Starts, extra.Ends)
	if len(liftedStarts) == 0 || len(liftedEnds) == 0 {
		logger.Warnf("curvextract: empty start or end set (starts=%d, ends=%d); no path possible", len(liftedStarts), len(liftedEnds))
		return Result{Cost: math.Inf(1), RunTime: time.Since(start)}, nil
	}

	var cache *regcache.Cache
	if regcache.Applicable(quad, settings.LengthPenalty, settings.CurvaturePenalty, settings.TorsionPenalty) {
		cache = regcache.New(conn.K())
		logger.Debugf("curvextract: regularization cache enabled (k=%d)", conn.K())
	} else {
		logger.Debugf("curvextract: regularization cache disabled, at least one term is data-dependent")
	}

	oracle := &lifted.Oracle{
		Shape:  mesh.Shape,
		Conn:   conn,
		Quad:   quad,
		Cache:  cache,
		Starts: liftedStarts,
	}

	var h search.HeuristicFn
	var heuristicEvaluations int64
	if settings.UseAStar && !settings.StoreParents {
		logger.Infof("curvextract: precomputing A* lower bound over %d end edge-pairs", len(liftedEnds))
		endPoints := make([]grid.Point, len(liftedEnds))
		for i, ep := range liftedEnds {
			_, _, p3 := lifted.Points(ep, mesh.Shape, conn)
			endPoints[i] = p3
		}
		bound, err := heuristic.Build(mesh.Shape, conn, quad, endPoints)
		if err != nil {
			return Result{}, err
		}
		heuristicEvaluations = bound.Evaluations()
		superSource := oracle.SuperSource()
		h = func(node int64) float64 {
			if node == superSource {
				return 0
			}
			_, _, p3 := lifted.Points(node, mesh.Shape, conn)
			return bound.At(p3)
		}
	}

	n := lifted.NumEdgePairs(mesh.Shape, conn) + 1
	superSource := oracle.SuperSource()

	needsProjection := settings.StoreVisited || settings.StoreParents || settings.StoreDistances
	opts := search.Options{
		StoreVisited:        needsProjection,
		StoreParents:        settings.StoreParents,
		ComputeAllDistances: settings.StoreDistances,
	}

	res, err := search.Run(n, []int64{superSource}, liftedEnds, oracle.Successors, h, opts)
	if err != nil {
		return Result{}, invariantf("search.Run: %w", err)
	}
	if math.IsInf(res.Cost, 1) {
		logger.Infof("curvextract: no path found after %d evaluations", oracle.Evaluations)
	}

	result := Result{
		Cost:        res.Cost,
		Evaluations: oracle.Evaluations + heuristicEvaluations,
		RunTime:     time.Since(start),
	}
	if res.Path != nil {
		result.Path = projectPath(res.Path, mesh.Shape, conn)
	}
	if needsProjection {
		visitTime, parent, distances := projectArrays(res, superSource, liftedStarts, mesh.Shape, conn, settings.StoreParents, settings.StoreDistances)
		if settings.StoreVisited || settings.StoreParents {
			result.VisitTime = visitTime
		}
		result.Parent = parent
		result.Distances = distances
	}

	return result, nil
}
