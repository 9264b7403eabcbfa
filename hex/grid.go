package hex

import "sort"

// Grid is an insertion-ordered set of axial positions. It carries no game
// semantics; adjacency is pure coordinate arithmetic, so irregular
// boundaries and holes simply yield fewer neighbors.
type Grid struct {
	order []Axial
	cells map[Axial]struct{}
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Axial]struct{})}
}

// Add inserts a position. It reports false if the position was already
// present.
func (g *Grid) Add(p Axial) bool {
	if _, ok := g.cells[p]; ok {
		return false
	}
	g.cells[p] = struct{}{}
	g.order = append(g.order, p)
	return true
}

// Contains reports whether the position is part of the grid.
func (g *Grid) Contains(p Axial) bool {
	_, ok := g.cells[p]
	return ok
}

// Len returns the number of positions in the grid.
func (g *Grid) Len() int { return len(g.order) }

// Positions returns the positions in insertion order.
func (g *Grid) Positions() []Axial {
	out := make([]Axial, len(g.order))
	copy(out, g.order)
	return out
}

// Neighbors returns the in-grid neighbors of p, at most 6, ordered by
// direction index.
func (g *Grid) Neighbors(p Axial) []Axial {
	out := make([]Axial, 0, 6)
	for d := 0; d < 6; d++ {
		n := p.Neighbor(d)
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// NeighborIn returns the in-grid neighbor of p in the given direction.
func (g *Grid) NeighborIn(p Axial, dir int) (Axial, bool) {
	n := p.Neighbor(dir)
	return n, g.Contains(n)
}

// Fringe returns the positions outside the grid that are adjacent to at
// least one grid position, in first-touched order. This is the boundary
// ring used for port placement.
func (g *Grid) Fringe() []Axial {
	seen := make(map[Axial]struct{})
	var out []Axial
	for _, p := range g.order {
		for d := 0; d < 6; d++ {
			n := p.Neighbor(d)
			if g.Contains(n) {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// Edge is an unordered pair of adjacent grid positions, stored with A < B.
type Edge struct {
	A Axial
	B Axial
}

func newEdge(a, b Axial) Edge {
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Edges returns every pair of adjacent in-grid positions, each pair once.
func (g *Grid) Edges() []Edge {
	var out []Edge
	for _, p := range g.order {
		for d := 0; d < 6; d++ {
			n := p.Neighbor(d)
			if g.Contains(n) && p.Less(n) {
				out = append(out, Edge{A: p, B: n})
			}
		}
	}
	return out
}

// EdgesOf returns the edges bounding p, one per in-grid neighbor.
func (g *Grid) EdgesOf(p Axial) []Edge {
	var out []Edge
	for _, n := range g.Neighbors(p) {
		out = append(out, newEdge(p, n))
	}
	return out
}

// Intersection is a corner where 2 or 3 grid positions meet, canonically
// ordered by (Q, R). Corners touching a single grid position are not
// reported.
type Intersection []Axial

// Adjacent reports whether two intersections share an edge, i.e. have two
// positions in common.
func (in Intersection) Adjacent(other Intersection) bool {
	shared := 0
	for _, a := range in {
		for _, b := range other {
			if a == b {
				shared++
			}
		}
	}
	return shared == 2
}

// corner collects the in-grid members of the corner of p between direction
// d and d+1. The two outward neighbors of adjacent directions are themselves
// adjacent, so the members are mutually adjacent.
func (g *Grid) corner(p Axial, d int) Intersection {
	members := Intersection{p}
	if n := p.Neighbor(d); g.Contains(n) {
		members = append(members, n)
	}
	if n := p.Neighbor((d + 1) % 6); g.Contains(n) {
		members = append(members, n)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Less(members[j]) })
	return members
}

// sentinel for the unused slot of two-member intersection keys; never a
// valid board coordinate.
var noHex = Axial{Q: 1 << 30, R: 1 << 30}

func interKey(in Intersection) [3]Axial {
	key := [3]Axial{noHex, noHex, noHex}
	copy(key[:], in)
	return key
}

// Intersections returns every corner shared by at least two grid positions,
// deduplicated, in deterministic order.
func (g *Grid) Intersections() []Intersection {
	seen := make(map[[3]Axial]struct{})
	var out []Intersection
	for _, p := range g.order {
		for d := 0; d < 6; d++ {
			in := g.corner(p, d)
			if len(in) < 2 {
				continue
			}
			key := interKey(in)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, in)
		}
	}
	return out
}

// IntersectionsOf returns the corners of p shared with at least one
// neighbor.
func (g *Grid) IntersectionsOf(p Axial) []Intersection {
	seen := make(map[[3]Axial]struct{})
	var out []Intersection
	for d := 0; d < 6; d++ {
		in := g.corner(p, d)
		if len(in) < 2 {
			continue
		}
		key := interKey(in)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, in)
	}
	return out
}

// Ring returns the axial coordinates at exact distance k from center c,
// starting from direction 4 (south-west) and proceeding around the ring.
// If k==0, returns [c].
func Ring(c Axial, k int) []Axial {
	if k == 0 {
		return []Axial{c}
	}
	res := make([]Axial, 0, 6*k)
	cur := c.Add(Directions[4].Mul(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// Disk returns all axial coordinates at distance <= r from center c.
func Disk(c Axial, r int) []Axial {
	size := 1 + 3*r*(r+1)
	res := make([]Axial, 0, size)
	for q := -r; q <= r; q++ {
		for r2 := max(-r, -q-r); r2 <= min(r, -q+r); r2++ {
			res = append(res, c.Add(Axial{q, r2}))
		}
	}
	return res
}
