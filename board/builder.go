package board

import (
	"fmt"

	"github.com/gravitas-games/hexboard/hex"
)

// InvalidGrowthError reports a builder primitive that targeted an occupied
// position or a position with nothing to attach to. It is fatal to the
// construction that raised it.
type InvalidGrowthError struct {
	Pos    hex.Axial
	Reason string
}

func (e *InvalidGrowthError) Error() string {
	return fmt.Sprintf("invalid growth at (%d,%d): %s", e.Pos.Q, e.Pos.R, e.Reason)
}

// Builder assembles a board footprint from grid primitives. It is
// shape-agnostic: concrete shapes (standard, 5/6-player, custom scenarios)
// are sequences of Builder calls.
type Builder struct {
	grid *hex.Grid
}

// NewBuilder returns a builder over an empty grid.
func NewBuilder() *Builder {
	return &Builder{grid: hex.NewGrid()}
}

// Grid returns the footprint built so far.
func (b *Builder) Grid() *hex.Grid { return b.grid }

// StartHex seeds the grid with a hex at p.
func (b *Builder) StartHex(p hex.Axial) error {
	if !b.grid.Add(p) {
		return &InvalidGrowthError{Pos: p, Reason: "position already occupied"}
	}
	return nil
}

// GrowHex adds one hex adjacent to an existing hex in the given direction
// and returns the new position.
func (b *Builder) GrowHex(from hex.Axial, dir int) (hex.Axial, error) {
	if !b.grid.Contains(from) {
		return hex.Axial{}, &InvalidGrowthError{Pos: from, Reason: "no hex to attach to"}
	}
	target := from.Neighbor(dir)
	if !b.grid.Add(target) {
		return hex.Axial{}, &InvalidGrowthError{Pos: target, Reason: "position already occupied"}
	}
	return target, nil
}

// GrowMap grows every existing hex in the given directions, skipping
// positions that are already occupied. It returns the added positions.
func (b *Builder) GrowMap(dirs ...int) []hex.Axial {
	snapshot := b.grid.Positions()
	var added []hex.Axial
	for _, p := range snapshot {
		for _, d := range dirs {
			target := p.Neighbor(d)
			if b.grid.Add(target) {
				added = append(added, target)
			}
		}
	}
	return added
}

// SurroundHex adds hexes on every vacant side of p.
func (b *Builder) SurroundHex(p hex.Axial) ([]hex.Axial, error) {
	if !b.grid.Contains(p) {
		return nil, &InvalidGrowthError{Pos: p, Reason: "no hex to surround"}
	}
	var added []hex.Axial
	for d := 0; d < 6; d++ {
		target := p.Neighbor(d)
		if b.grid.Add(target) {
			added = append(added, target)
		}
	}
	return added, nil
}

// SurroundMap adds a full border of hexes around the current footprint and
// returns the added positions.
func (b *Builder) SurroundMap() []hex.Axial {
	return b.GrowMap(0, 1, 2, 3, 4, 5)
}

// GrowRows lays out a footprint from a row-length rule, e.g. 3,4,5,4,3 for
// the standard board or 4,5,6,6,5,4 for the extended one. Rows are adjacent
// north-south lines laid west to east, vertically staggered so the shape
// tessellates. The rule must describe a connected footprint that does not
// touch anything already built.
func (b *Builder) GrowRows(lengths ...int) error {
	if len(lengths) == 0 {
		return &InvalidGrowthError{Reason: "empty row rule"}
	}
	longest, mid := 0, 0
	for i, l := range lengths {
		if l <= 0 {
			return &InvalidGrowthError{Reason: fmt.Sprintf("row length %d", l)}
		}
		if l > longest {
			longest, mid = l, i
		}
	}
	radius := (longest - 1) / 2
	for i, l := range lengths {
		q := i - mid
		r := -radius
		if q < 0 {
			r -= q
		}
		for step := 0; step < l; step++ {
			p := hex.Axial{Q: q, R: r + step}
			if b.grid.Len() == 0 {
				if err := b.StartHex(p); err != nil {
					return err
				}
				continue
			}
			if b.grid.Contains(p) {
				return &InvalidGrowthError{Pos: p, Reason: "position already occupied"}
			}
			if len(b.grid.Neighbors(p)) == 0 {
				return &InvalidGrowthError{Pos: p, Reason: "no hex to attach to"}
			}
			b.grid.Add(p)
		}
	}
	return nil
}
