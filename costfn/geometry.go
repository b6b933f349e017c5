package costfn

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kvoxel/curvextract/grid"
)

func powFloat(base, exp float64) float64 {
	return math.Pow(base, exp)
}

// vec3 returns the physical displacement from p to q, scaled by voxel
// dimensions, as a 3-element slice suitable for gonum/floats.
func vec3(p, q grid.Point, vd [3]float64) []float64 {
	return []float64{
		float64(q.X-p.X) * vd[0],
		float64(q.Y-p.Y) * vd[1],
		float64(q.Z-p.Z) * vd[2],
	}
}

func norm3(v []float64) float64 {
	return floats.Norm(v, 2)
}

func cross3(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func unit3(v []float64) []float64 {
	n := norm3(v)
	if n == 0 {
		return []float64{0, 0, 0}
	}
	out := make([]float64, 3)
	copy(out, v)
	floats.Scale(1/n, out)
	return out
}

// RawLength is the unweighted Euclidean length of segment p->q.
func RawLength(p, q grid.Point, vd [3]float64) float64 {
	return norm3(vec3(p, q, vd))
}

// RawCurvature is the unweighted discrete curvature at the middle point of
// p,q,r: the distance between the unit tangents of p->q and q->r, divided
// by the average segment length. It is zero when p,q,r are
// collinear and well-defined (non-degenerate) otherwise.
func RawCurvature(p, q, r grid.Point, vd [3]float64) float64 {
	v1 := vec3(p, q, vd)
	v2 := vec3(q, r, vd)
	l1 := norm3(v1)
	l2 := norm3(v2)
	if l1 == 0 || l2 == 0 {
		return 0
	}
	t1 := unit3(v1)
	t2 := unit3(v2)
	diff := make([]float64, 3)
	floats.SubTo(diff, t2, t1)
	return 2 * norm3(diff) / (l1 + l2)
}

// RawTorsion is the unweighted discrete torsion over p,q,r,s: the distance
// between the two unit binormals (cross products of consecutive segment
// vectors) spanned by the three segments p->q, q->r, r->s, taken up to sign
// so that a flipped binormal counts as no twist. It is zero whenever all
// four points are coplanar, since coplanar segment triples produce parallel
// (or anti-parallel) binormals, in particular on any O=1 grid.
func RawTorsion(p, q, r, s grid.Point, vd [3]float64) float64 {
	v1 := vec3(p, q, vd)
	v2 := vec3(q, r, vd)
	v3 := vec3(r, s, vd)
	b1 := unit3(cross3(v1, v2))
	b2 := unit3(cross3(v2, v3))
	if (b1[0] == 0 && b1[1] == 0 && b1[2] == 0) || (b2[0] == 0 && b2[1] == 0 && b2[2] == 0) {
		return 0
	}
	diff := make([]float64, 3)
	floats.SubTo(diff, b2, b1)
	sum := make([]float64, 3)
	floats.AddTo(sum, b2, b1)
	return math.Min(norm3(diff), norm3(sum))
}
