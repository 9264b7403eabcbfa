package board

import (
	"fmt"
	"math"
	"sort"

	"github.com/gravitas-games/hexboard/hex"
)

// Shape is a finished board footprint: the land grid plus the boundary
// positions chosen to hold ports, clockwise from the top of the board.
type Shape struct {
	Grid      *hex.Grid
	PortSlots []hex.Axial
}

// ShapeBuilder produces a board shape. New scenarios implement this with
// their own Builder call sequence; no inheritance is involved.
type ShapeBuilder interface {
	Build() (*Shape, error)
}

// StandardShape is the 19-hex base board with 9 ports.
type StandardShape struct{}

// Build grows the standard board: a center hex, two surrounding rings, and
// every other boundary position as a port slot.
func (StandardShape) Build() (*Shape, error) {
	b := NewBuilder()
	center := hex.Axial{}
	if err := b.StartHex(center); err != nil {
		return nil, err
	}
	if _, err := b.SurroundHex(center); err != nil {
		return nil, err
	}
	b.SurroundMap()
	ring := clockwiseRing(b.Grid())
	return &Shape{Grid: b.Grid(), PortSlots: everyOther(ring)}, nil
}

// Shape56 is the 30-hex 5/6-player board with 11 ports. UseFrame selects
// the frame edition's port spacing instead of evenly spaced slots; the hex
// footprint and the port count are identical either way.
type Shape56 struct {
	UseFrame bool
}

// framePorts holds the boundary-ring indices used by the frame edition.
var framePorts = []int{1, 4, 6, 7, 9, 11, 13, 14, 16, 19, 21}

// Build grows the extended board: a four-hex core, two surrounding rings,
// then the port slots by the selected spacing rule.
func (s Shape56) Build() (*Shape, error) {
	b := NewBuilder()
	if err := b.StartHex(hex.Axial{}); err != nil {
		return nil, err
	}
	b.GrowMap(hex.DirSE)
	b.GrowMap(hex.DirS)
	b.SurroundMap()
	b.SurroundMap()
	ring := clockwiseRing(b.Grid())
	slots := everyOther(ring)
	if s.UseFrame {
		var err error
		slots, err = pickSlots(ring, framePorts)
		if err != nil {
			return nil, err
		}
	}
	return &Shape{Grid: b.Grid(), PortSlots: slots}, nil
}

// clockwiseRing returns the grid's boundary ring ordered clockwise starting
// from the top of the board, measured around the footprint's centroid.
func clockwiseRing(g *hex.Grid) []hex.Axial {
	var cx, cy float64
	for _, p := range g.Positions() {
		x, y := hex.AxialToPixel(p, 1)
		cx += x
		cy += y
	}
	n := float64(g.Len())
	cx /= n
	cy /= n

	ring := g.Fringe()
	// y grows downward, so atan2(x, y) decreases clockwise from 12 o'clock.
	angle := func(p hex.Axial) float64 {
		x, y := hex.AxialToPixel(p, 1)
		return math.Atan2(x-cx, y-cy)
	}
	sort.SliceStable(ring, func(i, j int) bool { return angle(ring[i]) > angle(ring[j]) })
	return ring
}

// everyOther keeps alternate ring positions, starting with the second.
func everyOther(ring []hex.Axial) []hex.Axial {
	var out []hex.Axial
	for i := 1; i < len(ring); i += 2 {
		out = append(out, ring[i])
	}
	return out
}

// pickSlots selects ring positions by index.
func pickSlots(ring []hex.Axial, indices []int) ([]hex.Axial, error) {
	out := make([]hex.Axial, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(ring) {
			return nil, fmt.Errorf("port slot index %d outside boundary ring of %d", i, len(ring))
		}
		out = append(out, ring[i])
	}
	return out, nil
}
