// Package costfn implements the four cost-functor families evaluated along a
// curve (data, length, curvature and torsion) and the three named problem
// types that select a concrete quadruple of them: linear_interpolation, edge
// and geodesic.
//
// Every functor exposes a DataDependent method (the "does this term read the
// image volume" capability probe); regcache consults it before caching a
// triple of these terms. Weights (LengthPenalty, CurvaturePenalty,
// TorsionPenalty) are baked into the constructed functor: a weight ≤ 0 makes
// that functor always return 0, regardless of what the raw geometric
// quantity would be. curveinfo re-applies the identical guard via
// ApplyWeight/ApplyPenalty so the two call sites can never drift apart.
package costfn
