package hex

import "math"

// Axial represents axial coordinates (q, r) for flat-top orientation.
type Axial struct {
	Q int
	R int
}

// Cube represents cube coordinates (x, y, z) with x+y+z=0.
type Cube struct {
	X int
	Y int
	Z int
}

// Directions for axial neighbors in flat-top orientation, counter-clockwise
// starting from south-east. Index with the Dir* constants.
var Directions = [6]Axial{
	{+1, 0},  // DirSE
	{+1, -1}, // DirNE
	{0, -1},  // DirN
	{-1, 0},  // DirNW
	{-1, +1}, // DirSW
	{0, +1},  // DirS
}

// Named direction indices into Directions.
const (
	DirSE = iota
	DirNE
	DirN
	DirNW
	DirSW
	DirS
)

// Opposite returns the direction index pointing the other way.
func Opposite(dir int) int { return (dir + 3) % 6 }

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// Neighbor returns the adjacent coordinate in the given direction.
func (a Axial) Neighbor(dir int) Axial { return a.Add(Directions[dir]) }

// Less orders coordinates by (Q, R). Used for canonical intersection and
// edge ordering.
func (a Axial) Less(b Axial) bool {
	if a.Q != b.Q {
		return a.Q < b.Q
	}
	return a.R < b.R
}

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube {
	x := a.Q
	z := a.R
	y := -x - z
	return Cube{X: x, Y: y, Z: z}
}

// ToAxial converts cube to axial.
func (c Cube) ToAxial() Axial { return Axial{Q: c.X, R: c.Z} }

// Distance returns the hex distance between two axial coords.
func Distance(a, b Axial) int {
	return DistanceCube(a.ToCube(), b.ToCube())
}

// DistanceCube returns the hex distance between two cube coords.
func DistanceCube(a, b Cube) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	dz := abs(a.Z - b.Z)
	if dx > dy && dx > dz {
		return dx
	}
	if dy > dz {
		return dy
	}
	return dz
}

// ColRow projects an axial coordinate onto doubled-height offset coordinates
// for flat-top layout: col increases eastward, row increases southward in
// half-hex steps (row is doubled so it stays integral).
func (a Axial) ColRow() (col, row int) {
	return a.Q, 2*a.R + a.Q
}

// AxialToPixel converts axial to pixel coordinates for flat-top layout.
// size is the hex radius (corner to center) in pixels; y grows downward.
func AxialToPixel(a Axial, size float64) (x, y float64) {
	x = size * 1.5 * float64(a.Q)
	y = size * math.Sqrt(3) * (float64(a.R) + float64(a.Q)/2.0)
	return
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
