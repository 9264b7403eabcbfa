// Package board holds the tile-level data model for hex board games:
// terrains, number tokens, ports, the Builder primitives used to assemble
// board shapes, and the symbol tables that configure a concrete edition.
package board

import (
	"fmt"

	"github.com/gravitas-games/hexboard/hex"
)

// Terrain is a tile terrain type.
type Terrain int

const (
	TerrainNone Terrain = iota
	Hills
	Forest
	Mountains
	Fields
	Pasture
	Desert
)

var terrainNames = map[Terrain]string{
	TerrainNone: "none",
	Hills:       "hills",
	Forest:      "forest",
	Mountains:   "mountains",
	Fields:      "fields",
	Pasture:     "pasture",
	Desert:      "desert",
}

func (t Terrain) String() string {
	if s, ok := terrainNames[t]; ok {
		return s
	}
	return fmt.Sprintf("terrain(%d)", int(t))
}

// ParseTerrain converts a terrain name to its value.
func ParseTerrain(s string) (Terrain, error) {
	for t, name := range terrainNames {
		if name == s && t != TerrainNone {
			return t, nil
		}
	}
	return TerrainNone, fmt.Errorf("unknown terrain %q", s)
}

// Produces reports whether the terrain takes a number token.
func (t Terrain) Produces() bool {
	return t != TerrainNone && t != Desert
}

// Resource is the trade good a port deals in.
type Resource int

const (
	Any Resource = iota
	Brick
	Wood
	Ore
	Grain
	Wool
)

var resourceNames = map[Resource]string{
	Any:   "any",
	Brick: "brick",
	Wood:  "wood",
	Ore:   "ore",
	Grain: "grain",
	Wool:  "wool",
}

func (r Resource) String() string {
	if s, ok := resourceNames[r]; ok {
		return s
	}
	return fmt.Sprintf("resource(%d)", int(r))
}

// ParseResource converts a resource name to its value.
func ParseResource(s string) (Resource, error) {
	for r, name := range resourceNames {
		if name == s {
			return r, nil
		}
	}
	return Any, fmt.Errorf("unknown resource %q", s)
}

var terrainResource = map[Terrain]Resource{
	Hills:     Brick,
	Forest:    Wood,
	Mountains: Ore,
	Fields:    Grain,
	Pasture:   Wool,
}

// ResourceFor returns the resource produced by a terrain. Desert produces
// nothing.
func ResourceFor(t Terrain) (Resource, bool) {
	r, ok := terrainResource[t]
	return r, ok
}

// TerrainFor returns the terrain matching a port resource. There is none
// for Any.
func TerrainFor(r Resource) (Terrain, bool) {
	for t, res := range terrainResource {
		if res == r {
			return t, true
		}
	}
	return TerrainNone, false
}

// Pips returns the number of two-dice combinations producing n: 2 and 12
// have one, 6 and 8 have five. 7 is never placed and anything outside 2-12
// yields zero.
func Pips(n int) int {
	if n < 2 || n > 12 || n == 7 {
		return 0
	}
	if n < 7 {
		return n - 1
	}
	return 13 - n
}

// Hex is one board tile: a position, a terrain, and an optional number
// token (0 when the terrain does not produce).
type Hex struct {
	Pos     hex.Axial
	Terrain Terrain
	Number  int
}

// Pips returns the pip count of the tile's number token.
func (h Hex) Pips() int { return Pips(h.Number) }

// Port sits on a boundary position and trades a resource (or Any at 3:1).
// Serves lists the land positions adjacent to the port.
type Port struct {
	Pos      hex.Axial
	Resource Resource
	Serves   []hex.Axial
}

// Ratio returns the port's exchange rate.
func (p Port) Ratio() int {
	if p.Resource == Any {
		return 3
	}
	return 2
}

// Board is a fully populated layout: every land hex carries a terrain,
// every producing hex a number, every port slot a resource. Boards are
// assembled in one pass and never mutated afterwards; validators and
// renderers only read them.
type Board struct {
	Hexes    []Hex
	Ports    []Port
	Attempts int

	grid   *hex.Grid
	inters []hex.Intersection
	byPos  map[hex.Axial]int
}

// Assemble builds a Board over a grid. The hexes must cover exactly the
// grid's positions; inters is the grid's precomputed intersection list
// (computed on demand when nil).
func Assemble(g *hex.Grid, inters []hex.Intersection, hexes []Hex, ports []Port, attempts int) *Board {
	if inters == nil {
		inters = g.Intersections()
	}
	b := &Board{
		Hexes:    hexes,
		Ports:    ports,
		Attempts: attempts,
		grid:     g,
		inters:   inters,
		byPos:    make(map[hex.Axial]int, len(hexes)),
	}
	for i, h := range hexes {
		b.byPos[h.Pos] = i
	}
	return b
}

// Grid returns the board's underlying topology.
func (b *Board) Grid() *hex.Grid { return b.grid }

// HexAt returns the tile at a position.
func (b *Board) HexAt(p hex.Axial) (Hex, bool) {
	i, ok := b.byPos[p]
	if !ok {
		return Hex{}, false
	}
	return b.Hexes[i], true
}

// Neighbors returns the tiles adjacent to a position.
func (b *Board) Neighbors(p hex.Axial) []Hex {
	positions := b.grid.Neighbors(p)
	out := make([]Hex, 0, len(positions))
	for _, n := range positions {
		if h, ok := b.HexAt(n); ok {
			out = append(out, h)
		}
	}
	return out
}

// Intersections returns the board corners where 2-3 tiles meet.
func (b *Board) Intersections() []hex.Intersection { return b.inters }

// IntersectionHexes resolves an intersection to its tiles.
func (b *Board) IntersectionHexes(in hex.Intersection) []Hex {
	out := make([]Hex, 0, len(in))
	for _, p := range in {
		if h, ok := b.HexAt(p); ok {
			out = append(out, h)
		}
	}
	return out
}

// PipSum returns the total pip count of the tiles at an intersection.
func (b *Board) PipSum(in hex.Intersection) int {
	sum := 0
	for _, h := range b.IntersectionHexes(in) {
		sum += h.Pips()
	}
	return sum
}

// ServedHexes resolves a port's serviced land tiles.
func (b *Board) ServedHexes(p Port) []Hex {
	out := make([]Hex, 0, len(p.Serves))
	for _, pos := range p.Serves {
		if h, ok := b.HexAt(pos); ok {
			out = append(out, h)
		}
	}
	return out
}
