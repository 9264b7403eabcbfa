// Package arrange produces the deterministic traversal orders used to map
// value sequences onto board positions. All orders are pure functions of
// the grid topology: the same grid always yields the same order.
package arrange

import (
	"fmt"

	"github.com/gravitas-games/hexboard/hex"
)

// Identity returns the grid positions in insertion order. Shuffle-mode
// placement permutes values over this order.
func Identity(g *hex.Grid) []hex.Axial {
	return g.Positions()
}

// Spiral returns the positions ordered by a counter-clockwise spiral that
// starts at the bottom-most hex and winds inward. Number tokens follow
// this order in the traditional variable setup. An error means the grid is
// a shape the spiral walk cannot cover.
func Spiral(g *hex.Grid) ([]hex.Axial, error) {
	if g.Len() == 0 {
		return nil, nil
	}
	start := descend(g, g.Positions()[0])

	visited := map[hex.Axial]bool{start: true}
	out := []hex.Axial{start}
	heading := hex.DirNE
	for len(out) < g.Len() {
		cur := out[len(out)-1]
		turns := 0
		for {
			target := cur.Neighbor(heading)
			if g.Contains(target) && !visited[target] {
				break
			}
			heading = (heading + 1) % 6
			turns++
			if turns == 6 {
				return nil, fmt.Errorf("spiral dead-ends at (%d,%d) after %d positions", cur.Q, cur.R, len(out))
			}
		}
		next := cur.Neighbor(heading)
		visited[next] = true
		out = append(out, next)
	}
	return out, nil
}

// descend walks from p to the bottom of the board, preferring south, then
// south-east, then south-west.
func descend(g *hex.Grid, p hex.Axial) hex.Axial {
	for {
		moved := false
		for _, d := range []int{hex.DirS, hex.DirSE, hex.DirSW} {
			if n, ok := g.NeighborIn(p, d); ok {
				p = n
				moved = true
				break
			}
		}
		if !moved {
			return p
		}
	}
}

// Columns returns the positions column-major: the center column first, top
// to bottom, then columns alternating rightward and leftward. Terrain
// tiles follow this order. An error means the columns do not cover the
// grid (a shape with holes or disjoint columns).
func Columns(g *hex.Grid) ([]hex.Axial, error) {
	if g.Len() == 0 {
		return nil, nil
	}
	top := ascend(g, g.Positions()[0])

	// Tops of the columns to the right and left of the center column.
	var rights, lefts []hex.Axial
	for p := top; ; {
		n, ok := g.NeighborIn(p, hex.DirSE)
		if !ok {
			break
		}
		rights = append(rights, n)
		p = n
	}
	for p := top; ; {
		n, ok := g.NeighborIn(p, hex.DirSW)
		if !ok {
			break
		}
		lefts = append(lefts, n)
		p = n
	}

	tops := []hex.Axial{top}
	for i := 0; i < len(rights) || i < len(lefts); i++ {
		if i < len(rights) {
			tops = append(tops, rights[i])
		}
		if i < len(lefts) {
			tops = append(tops, lefts[i])
		}
	}

	var out []hex.Axial
	for _, t := range tops {
		out = append(out, t)
		for p := t; ; {
			n, ok := g.NeighborIn(p, hex.DirS)
			if !ok {
				break
			}
			out = append(out, n)
			p = n
		}
	}
	if len(out) != g.Len() {
		return nil, fmt.Errorf("column order covers %d of %d positions", len(out), g.Len())
	}
	return out, nil
}

// ascend walks from p to the top of the board, preferring north, then
// north-east, then north-west.
func ascend(g *hex.Grid, p hex.Axial) hex.Axial {
	for {
		moved := false
		for _, d := range []int{hex.DirN, hex.DirNE, hex.DirNW} {
			if n, ok := g.NeighborIn(p, d); ok {
				p = n
				moved = true
				break
			}
		}
		if !moved {
			return p
		}
	}
}
