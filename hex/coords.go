package hex

// Coordinate math for hexagonal grids, used by both the program hexagon
// and the edge memory grid.
// References:
//   https://www.redblobgames.com/grids/hexagons/

// A direction is one of the six ways an instruction pointer can face.
type direction int

const (
	NW direction = iota
	NE
	E
	SE
	SW
	W
)

// Axial offsets for each hexagonal direction.
var directionOffset = [6]struct {
	dp, dq int
}{
	NW: {0, -1},
	NE: {-1, 0},
	E:  {-1, 1},
	SE: {0, 1},
	SW: {1, 0},
	W:  {1, -1},
}

var directionName = [6]string{
	NW: "NORTH WEST",
	NE: "NORTH EAST",
	E:  "EAST",
	SE: "SOUTH EAST",
	SW: "SOUTH WEST",
	W:  "WEST",
}

func (d direction) String() string {
	return directionName[d]
}

// An axis is one of the three cubic axes. Every hexagon touches one
// memory edge per axis.
type axis int

const (
	X axis = iota
	Y
	Z
)

var axisName = [3]string{
	X: "X",
	Y: "Y",
	Z: "Z",
}

func (a axis) String() string {
	return axisName[a]
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// modulo is the mathematical modulus, non-negative for b > 0 even when
// a is negative.
func modulo(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// hexNumber returns the centered hexagonal number for the given ring
// count: the number of hexes within rings 0..rings-1.
func hexNumber(rings int) int {
	return 3*rings*(rings-1) + 1
}

// ringOf returns the hexagonal distance of axial (p, q) from the origin.
// This is the same as half the manhattan distance in cubic coordinates.
func ringOf(p, q int) int {
	return (abs(p) + abs(q) + abs(-p-q)) / 2
}

// axialToIndex converts axial coordinates to an index for sequentially
// stored rows along the z axis, or -1 when (p, q) falls outside a
// hexagon of the given ring count.
func axialToIndex(p, q, rings int) int {
	y := q
	z := -p - q
	if abs(p)+abs(y)+abs(z) > 2*(rings-1) {
		return -1
	}
	return (3*rings*(rings-1))/2 + y - z*(rings*2-1) + z*(abs(z)+1)/2
}

// axialToMemIndex converts axial coordinates to a radial index: ring 0
// first, then each ring clockwise from its closest corner.
func axialToMemIndex(p, q int) int {
	x := p
	y := q
	z := -p - q
	ring := (abs(x) + abs(y) + abs(z)) / 2
	i := 0
	if ring > 0 {
		i = hexNumber(ring)
	}
	// Clockwise offset from the closest corner of the ring, per sextant.
	if x <= 0 && y < 0 {
		i += ring*0 + abs(x)
	}
	if y >= 0 && z > 0 {
		i += ring*1 + abs(y)
	}
	if z <= 0 && x < 0 {
		i += ring*2 + abs(z)
	}
	if x >= 0 && y > 0 {
		i += ring*3 + abs(x)
	}
	if y <= 0 && z < 0 {
		i += ring*4 + abs(y)
	}
	if z >= 0 && x > 0 {
		i += ring*5 + abs(z)
	}
	return i
}
