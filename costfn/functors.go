package costfn

import "github.com/kvoxel/curvextract/grid"

// --- data costs ---

type linearDataCost struct {
	vol Volume
}

func (d linearDataCost) DataDependent() bool { return true }

func (d linearDataCost) Data(p, q grid.Point) float64 {
	scratch := getScratch()
	defer putScratch(scratch)
	return integrateLine(d.vol, p, q, scratch)
}

type edgeDataCost struct {
	vol      Volume
	response EdgeResponseFunc
}

func (d edgeDataCost) DataDependent() bool { return true }

func (d edgeDataCost) Data(p, q grid.Point) float64 {
	return d.response(d.vol, p, q)
}

type zeroDataCost struct{}

func (zeroDataCost) DataDependent() bool         { return false }
func (zeroDataCost) Data(p, q grid.Point) float64 { return 0 }

// --- length costs ---

type euclideanLength struct {
	vd     [3]float64
	weight float64
}

func (l euclideanLength) DataDependent() bool { return false }

func (l euclideanLength) Length(p, q grid.Point) float64 {
	return ApplyWeight(RawLength(p, q, l.vd), l.weight)
}

type geodesicLength struct {
	vol    Volume
	vd     [3]float64
	weight float64
}

func (l geodesicLength) DataDependent() bool { return true }

func (l geodesicLength) Length(p, q grid.Point) float64 {
	raw := RawLength(p, q, l.vd) * averageData(l.vol, p, q)
	return ApplyWeight(raw, l.weight)
}

// --- curvature costs ---

type euclideanCurvature struct {
	vd     [3]float64
	weight float64
	power  float64
}

func (c euclideanCurvature) DataDependent() bool { return false }

func (c euclideanCurvature) Curvature(p, q, r grid.Point) float64 {
	return ApplyPenalty(RawCurvature(p, q, r, c.vd), c.weight, c.power)
}

type geodesicCurvature struct {
	vol    Volume
	vd     [3]float64
	weight float64
	power  float64
}

func (c geodesicCurvature) DataDependent() bool { return true }

func (c geodesicCurvature) Curvature(p, q, r grid.Point) float64 {
	raw := RawCurvature(p, q, r, c.vd) * averageData(c.vol, p, r)
	return ApplyPenalty(raw, c.weight, c.power)
}

// --- torsion costs ---

type euclideanTorsion struct {
	vd     [3]float64
	weight float64
	power  float64
}

func (t euclideanTorsion) DataDependent() bool { return false }

func (t euclideanTorsion) Torsion(p, q, r, s grid.Point) float64 {
	return ApplyPenalty(RawTorsion(p, q, r, s, t.vd), t.weight, t.power)
}

type zeroTorsion struct{}

func (zeroTorsion) DataDependent() bool                     { return false }
func (zeroTorsion) Torsion(p, q, r, s grid.Point) float64 { return 0 }

// Build is the problem-dispatch entry point: it selects the functor
// quadruple for a recognized problem-type string. Any other string is a
// fatal input error (ErrUnknownProblemType).
func Build(problemType string, vol Volume, settings Settings) (Quad, error) {
	vd := settings.VoxelDimensions
	length := euclideanLength{vd: vd, weight: settings.LengthPenalty}
	curvature := euclideanCurvature{vd: vd, weight: settings.CurvaturePenalty, power: settings.CurvaturePower}
	torsion := euclideanTorsion{vd: vd, weight: settings.TorsionPenalty, power: settings.TorsionPower}

	switch problemType {
	case LinearInterpolation:
		return Quad{
			Data:      linearDataCost{vol: vol},
			Length:    length,
			Curvature: curvature,
			Torsion:   torsion,
		}, nil

	case Edge:
		response := settings.EdgeResponse
		if response == nil {
			response = DefaultEdgeResponse
		}
		return Quad{
			Data:      edgeDataCost{vol: vol, response: response},
			Length:    length,
			Curvature: curvature,
			Torsion:   torsion,
		}, nil

	case Geodesic:
		return Quad{
			Data:      zeroDataCost{},
			Length:    geodesicLength{vol: vol, vd: vd, weight: settings.LengthPenalty},
			Curvature: geodesicCurvature{vol: vol, vd: vd, weight: settings.CurvaturePenalty, power: settings.CurvaturePower},
			Torsion:   zeroTorsion{},
		}, nil

	default:
		return Quad{}, ErrUnknownProblemType
	}
}
