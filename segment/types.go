package segment

import (
	"errors"
	"fmt"
	"time"

	"github.com/kvoxel/curvextract/grid"
)

// Sentinel errors for the segment package.
var (
	// ErrNoPath is never returned by Run; a missing path is reported via
	// Result.Cost == math.Inf(1) and Result.Path == nil. Kept for symmetry with the other packages' sentinel-error
	// convention, unused by Run itself.
	ErrNoPath = errors.New("segment: no path")
)

// ErrInvariant wraps an internal consistency violation: it
// signals a bug in this module, not bad caller input, and is always
// returned with a %w-wrapped cause.
type ErrInvariant struct {
	cause error
}

func (e *ErrInvariant) Error() string {
	return fmt.Sprintf("segment: internal invariant violated: %v", e.cause)
}

func (e *ErrInvariant) Unwrap() error {
	return e.cause
}

func invariantf(format string, args ...any) error {
	return &ErrInvariant{cause: fmt.Errorf(format, args...)}
}

// ExtraPoints supplements (or, when the mesh map carries no tags at all,
// entirely supplies) the start and end sets.
type ExtraPoints struct {
	Starts []grid.Point
	Ends   []grid.Point
}

// Result is the outcome of a single Run call.
type Result struct {
	// Cost is the minimum-cost curve's total cost, or +Inf if none exists.
	Cost float64

	// Path is the ordered voxel polyline of the minimum-cost curve, or nil
	// if none exists. len(Path) == (number of lifted transitions) + 2.
	Path []grid.Point

	RunTime time.Duration

	// Evaluations is the successor-oracle invocation count (lifted.Oracle's
	// counter plus, if UseAStar ran, the heuristic precomputation's own).
	Evaluations int64

	// VisitTime[voxel index] is the earliest lifted visit time any edge-pair
	// touching that voxel was settled at, or -1 if never visited
	// (populated when Settings.StoreVisited or StoreParents).
	VisitTime []int32

	// Parent[voxel index] is the voxel index of the predecessor under
	// "first visit wins" conflict resolution, the voxel's own index when it
	// was first reached as the root of a start edge-pair, or -1 (populated
	// when Settings.StoreParents).
	Parent []int32

	// Distances[voxel index] is the settled lifted distance associated with
	// that voxel under first-visit-wins, or +Inf (populated when
	// Settings.StoreDistances).
	Distances []float64
}
