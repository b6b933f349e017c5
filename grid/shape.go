package grid

import "errors"

// Sentinel errors for the grid package.
var (
	// ErrBadShape indicates a shape with a non-positive dimension.
	ErrBadShape = errors.New("grid: shape dimensions must be positive")

	// ErrShapeMismatch indicates two grid-shaped arrays disagree on their shape.
	ErrShapeMismatch = errors.New("grid: shape mismatch between grid-shaped inputs")

	// ErrBadConnectivity indicates a connectivity matrix that is not (K,3) or is empty.
	ErrBadConnectivity = errors.New("grid: connectivity must be a non-empty (K,3) integer matrix")

	// ErrReservedTag indicates a mesh-map byte outside the recognized {0,2,3} scheme.
	ErrReservedTag = errors.New("grid: mesh map contains a reserved tag")
)

// Shape is the fixed extent of a 3D voxel grid, (M,N,O).
type Shape struct {
	M, N, O int
}

// NumCells returns the total number of voxels in the shape.
func (s Shape) NumCells() int {
	return s.M * s.N * s.O
}

// Validate reports ErrBadShape if any dimension is non-positive.
func (s Shape) Validate() error {
	if s.M <= 0 || s.N <= 0 || s.O <= 0 {
		return ErrBadShape
	}
	return nil
}

// Point is a voxel point: a triple of (not necessarily nonnegative, pending
// Valid) integer coordinates identifying a cell.
type Point struct {
	X, Y, Z int
}

// Sub2Ind maps (x,y,z) to its linear index: x + M*y + M*N*z. x is the
// fastest-moving axis.
func (s Shape) Sub2Ind(x, y, z int) int {
	return x + s.M*y + s.M*s.N*z
}

// Sub2IndPoint is Sub2Ind taking a Point.
func (s Shape) Sub2IndPoint(p Point) int {
	return s.Sub2Ind(p.X, p.Y, p.Z)
}

// Ind2Sub maps a linear index back to (x,y,z).
func (s Shape) Ind2Sub(i int) (x, y, z int) {
	x = i % s.M
	y = (i / s.M) % s.N
	z = i / (s.M * s.N)
	return
}

// Ind2SubPoint is Ind2Sub returning a Point.
func (s Shape) Ind2SubPoint(i int) Point {
	x, y, z := s.Ind2Sub(i)
	return Point{X: x, Y: y, Z: z}
}

// Valid reports whether (x,y,z) lies within [0,M)x[0,N)x[0,O).
func (s Shape) Valid(x, y, z int) bool {
	return x >= 0 && x < s.M && y >= 0 && y < s.N && z >= 0 && z < s.O
}

// ValidPoint is Valid taking a Point.
func (s Shape) ValidPoint(p Point) bool {
	return s.Valid(p.X, p.Y, p.Z)
}

// Add returns the point translated by an offset.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY, Z: p.Z + o.DZ}
}

// Offset is a single directed connectivity step (Δx,Δy,Δz).
type Offset struct {
	DX, DY, DZ int
}

// Connectivity is the ordered list of offsets defining legal single-step
// moves. K = len(Connectivity) identifies the arity of the discrete
// neighborhood template; edge index e in [0,K) selects Connectivity[e].
type Connectivity []Offset

// K returns the number of connectivity offsets.
func (c Connectivity) K() int {
	return len(c)
}

// Validate reports ErrBadConnectivity if the connectivity is empty.
func (c Connectivity) Validate() error {
	if len(c) == 0 {
		return ErrBadConnectivity
	}
	return nil
}

// ConnFromRows builds a Connectivity from a (K,3) row-major integer matrix,
// the shape a host library typically hands across its marshalling boundary.
func ConnFromRows(rows [][3]int) Connectivity {
	c := make(Connectivity, len(rows))
	for i, r := range rows {
		c[i] = Offset{DX: r[0], DY: r[1], DZ: r[2]}
	}
	return c
}

// MeshMap tags every cell of a Shape as free (0), start (2) or end (3).
// Reserved byte values (anything else) are rejected by Validate.
type MeshMap struct {
	Shape Shape
	Tags  []byte // len == Shape.NumCells()
}

// Mesh-map tag values.
const (
	TagFree  byte = 0
	TagStart byte = 2
	TagEnd   byte = 3
)

// NewMeshMap allocates a MeshMap of the given shape with every cell free.
func NewMeshMap(s Shape) MeshMap {
	return MeshMap{Shape: s, Tags: make([]byte, s.NumCells())}
}

// At returns the tag of voxel (x,y,z).
func (m MeshMap) At(x, y, z int) byte {
	return m.Tags[m.Shape.Sub2Ind(x, y, z)]
}

// Set assigns the tag of voxel (x,y,z).
func (m MeshMap) Set(x, y, z int, tag byte) {
	m.Tags[m.Shape.Sub2Ind(x, y, z)] = tag
}

// Validate checks the mesh map's backing slice matches its declared shape and
// contains only recognized tags.
func (m MeshMap) Validate() error {
	if err := m.Shape.Validate(); err != nil {
		return err
	}
	if len(m.Tags) != m.Shape.NumCells() {
		return ErrShapeMismatch
	}
	for _, t := range m.Tags {
		if t != TagFree && t != TagStart && t != TagEnd {
			return ErrReservedTag
		}
	}
	return nil
}
