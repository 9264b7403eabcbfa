// Package validate provides the structural constraints a generated board
// can be required to satisfy. Each factory returns a named, stateless
// predicate over a completed Board; predicates compose by logical AND.
package validate

import (
	"fmt"

	"github.com/gravitas-games/hexboard/board"
)

// Validator is a predicate over a completed board. Validators never
// mutate the board and never fail to evaluate; a constraint that cannot
// apply to a board simply reports false.
type Validator struct {
	name string
	fn   func(*board.Board) bool
}

// Name returns the validator's display name.
func (v Validator) Name() string { return v.name }

// Check evaluates the validator against a board.
func (v Validator) Check(b *board.Board) bool { return v.fn(b) }

// All evaluates validators in order, short-circuiting on the first
// failure.
func All(b *board.Board, vs ...Validator) bool {
	for _, v := range vs {
		if !v.Check(b) {
			return false
		}
	}
	return true
}

// GoodRock requires at least one mountains tile with a number worth at
// least n pips.
func GoodRock(n int) Validator {
	return Validator{
		name: fmt.Sprintf("good_rock(%d)", n),
		fn: func(b *board.Board) bool {
			for _, h := range b.Hexes {
				if h.Terrain == board.Mountains && h.Pips() >= n {
					return true
				}
			}
			return false
		},
	}
}

// MaxPip requires that no intersection's adjacent tiles sum to more than n
// pips.
func MaxPip(n int) Validator {
	return Validator{
		name: fmt.Sprintf("max_pip(%d)", n),
		fn: func(b *board.Board) bool {
			for _, in := range b.Intersections() {
				if b.PipSum(in) > n {
					return false
				}
			}
			return true
		},
	}
}

// No212 forbids a 2 and a 12 on adjacent tiles.
func No212() Validator {
	return Validator{
		name: "no_2_12",
		fn: func(b *board.Board) bool {
			for _, h := range b.Hexes {
				if h.Number != 2 {
					continue
				}
				for _, adj := range b.Neighbors(h.Pos) {
					if adj.Number == 12 {
						return false
					}
				}
			}
			return true
		},
	}
}

// No68 forbids two adjacent tiles that both carry a five-pip number (6 or
// 8).
func No68() Validator {
	return Validator{
		name: "no_6_8",
		fn: func(b *board.Board) bool {
			for _, h := range b.Hexes {
				if h.Pips() != 5 {
					continue
				}
				for _, adj := range b.Neighbors(h.Pos) {
					if adj.Pips() == 5 {
						return false
					}
				}
			}
			return true
		},
	}
}

// NoDouble68 forbids any single terrain type from holding two five-pip
// numbers.
func NoDouble68() Validator {
	return Validator{
		name: "no_double_6_8",
		fn: func(b *board.Board) bool {
			seen := make(map[board.Terrain]bool)
			for _, h := range b.Hexes {
				if h.Pips() != 5 {
					continue
				}
				if seen[h.Terrain] {
					return false
				}
				seen[h.Terrain] = true
			}
			return true
		},
	}
}

// MaxPortPips requires that no resource port's serviced tiles sum to more
// than n pips of the port's own resource. 3:1 ports are exempt.
func MaxPortPips(n int) Validator {
	return Validator{
		name: fmt.Sprintf("max_port_pips(%d)", n),
		fn: func(b *board.Board) bool {
			for _, p := range b.Ports {
				terr, ok := board.TerrainFor(p.Resource)
				if !ok {
					continue
				}
				pips := 0
				for _, h := range b.ServedHexes(p) {
					if h.Terrain == terr {
						pips += h.Pips()
					}
				}
				if pips > n {
					return false
				}
			}
			return true
		},
	}
}

// NoNumberPairs forbids adjacent tiles carrying the identical number.
func NoNumberPairs() Validator {
	return Validator{
		name: "no_num_pairs",
		fn: func(b *board.Board) bool {
			for _, h := range b.Hexes {
				if h.Number == 0 {
					continue
				}
				for _, adj := range b.Neighbors(h.Pos) {
					if adj.Number == h.Number {
						return false
					}
				}
			}
			return true
		},
	}
}

// NoTerrainPairs forbids adjacent tiles that both have terrain t.
func NoTerrainPairs(t board.Terrain) Validator {
	return Validator{
		name: fmt.Sprintf("no_terr_pairs(%s)", t),
		fn: func(b *board.Board) bool {
			for _, h := range b.Hexes {
				if h.Terrain != t {
					continue
				}
				for _, adj := range b.Neighbors(h.Pos) {
					if adj.Terrain == t {
						return false
					}
				}
			}
			return true
		},
	}
}

// NoTerrainTriples forbids intersections whose surrounding tiles (three
// inland, two on the boundary) all share a terrain.
func NoTerrainTriples() Validator {
	return Validator{
		name: "no_terr_tri",
		fn: func(b *board.Board) bool {
			for _, in := range b.Intersections() {
				hexes := b.IntersectionHexes(in)
				same := true
				for _, h := range hexes[1:] {
					if h.Terrain != hexes[0].Terrain {
						same = false
						break
					}
				}
				if same {
					return false
				}
			}
			return true
		},
	}
}

// Regions requires every tile whose terrain is not excluded to have at
// least one neighbor of the same terrain, forbidding isolated single-tile
// terrain islands. Desert is typically excluded to keep small boards
// satisfiable.
func Regions(exclude ...board.Terrain) Validator {
	excluded := make(map[board.Terrain]bool, len(exclude))
	for _, t := range exclude {
		excluded[t] = true
	}
	return Validator{
		name: "regions",
		fn: func(b *board.Board) bool {
			for _, h := range b.Hexes {
				if excluded[h.Terrain] {
					continue
				}
				paired := false
				for _, adj := range b.Neighbors(h.Pos) {
					if adj.Terrain == h.Terrain {
						paired = true
						break
					}
				}
				if !paired {
					return false
				}
			}
			return true
		},
	}
}
