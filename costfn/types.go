package costfn

import (
	"errors"

	"github.com/kvoxel/curvextract/curvextractlog"
	"github.com/kvoxel/curvextract/grid"
)

// Recognized problem-type strings.
const (
	LinearInterpolation = "linear_interpolation"
	Edge                = "edge"
	Geodesic            = "geodesic"
)

// ErrUnknownProblemType is returned by Build for any string outside
// {LinearInterpolation, Edge, Geodesic}. This is a fatal input error.
var ErrUnknownProblemType = errors.New("costfn: unknown problem type")

// Volume is the 3D floating-point image data the data- and geodesic-weighted
// terms read from. Data is row-major, indexed by Shape.Sub2Ind.
type Volume struct {
	Shape grid.Shape
	Data  []float64
}

// At returns the raw sample at an in-bounds integer voxel.
func (v Volume) At(x, y, z int) float64 {
	return v.Data[v.Shape.Sub2Ind(x, y, z)]
}

// AtPoint is At taking a grid.Point.
func (v Volume) AtPoint(p grid.Point) float64 {
	return v.At(p.X, p.Y, p.Z)
}

// clampedAt returns the nearest in-bounds sample for a possibly
// out-of-bounds (but nearly in-bounds) integer coordinate, // "data-term functors ... clamp to the nearest in-bounds sample when
// sampling auxiliary image data during line integration."
func (v Volume) clampedAt(x, y, z int) float64 {
	x = clampInt(x, 0, v.Shape.M-1)
	y = clampInt(y, 0, v.Shape.N-1)
	z = clampInt(z, 0, v.Shape.O-1)
	return v.At(x, y, z)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EdgeResponseFunc computes the "edge" problem type's data cost for a
// directed step p->q. Per spec Design Notes (c), the exact edge-response
// formula used by the host is not captured here; this is the host-supplied
// callback. DefaultEdgeResponse provides a reasonable standalone
// implementation (absolute gradient magnitude between the two samples).
type EdgeResponseFunc func(vol Volume, p, q grid.Point) float64

// DefaultEdgeResponse is used when Settings.EdgeResponse is nil.
func DefaultEdgeResponse(vol Volume, p, q grid.Point) float64 {
	return absFloat(vol.AtPoint(q) - vol.AtPoint(p))
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Settings carries every recognized option of settings table.
type Settings struct {
	VoxelDimensions      [3]float64
	LengthPenalty        float64
	CurvaturePenalty     float64
	CurvaturePower       float64
	TorsionPenalty       float64
	TorsionPower         float64
	UseAStar             bool
	StoreParents         bool
	StoreDistances       bool
	StoreVisited         bool
	// RegularizationRadius is reserved for future tie-break control). It is carried here but read by no component in
	// this module; do not invent semantics for it.
	RegularizationRadius float64
	// EdgeResponse overrides the "edge" problem type's data cost. Nil uses
	// DefaultEdgeResponse.
	EdgeResponse EdgeResponseFunc

	// Logger receives diagnostic messages (cache applicability, A*/Dijkstra
	// selection, no-path results). Nil uses curvextractlog.Noop.
	Logger curvextractlog.Logger
}

// DataCost scores a single directed edge p->q.
type DataCost interface {
	Data(p, q grid.Point) float64
	DataDependent() bool
}

// LengthCost scores a single directed edge p->q.
type LengthCost interface {
	Length(p, q grid.Point) float64
	DataDependent() bool
}

// CurvatureCost scores three consecutive points p,q,r.
type CurvatureCost interface {
	Curvature(p, q, r grid.Point) float64
	DataDependent() bool
}

// TorsionCost scores four consecutive points p,q,r,s.
type TorsionCost interface {
	Torsion(p, q, r, s grid.Point) float64
	DataDependent() bool
}

// Quad bundles one concrete functor of each family, as selected by Build.
type Quad struct {
	Data      DataCost
	Length    LengthCost
	Curvature CurvatureCost
	Torsion   TorsionCost
}

// ApplyWeight implements the numerical policy: a non-positive weight zeros
// the term, otherwise the raw quantity is scaled linearly.
func ApplyWeight(raw, weight float64) float64 {
	if weight <= 0 {
		return 0
	}
	return raw * weight
}

// ApplyPenalty implements the numerical policy for curvature and torsion: a
// non-positive weight zeros the term, otherwise raw is raised to power and
// scaled by weight.
func ApplyPenalty(raw, weight, power float64) float64 {
	if weight <= 0 {
		return 0
	}
	return powFloat(raw, power) * weight
}
