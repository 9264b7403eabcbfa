package board

import (
	"errors"
	"testing"

	"github.com/gravitas-games/hexboard/hex"
)

func TestBuilderStartHex(t *testing.T) {
	b := NewBuilder()
	if err := b.StartHex(hex.Axial{}); err != nil {
		t.Fatalf("StartHex: %v", err)
	}
	err := b.StartHex(hex.Axial{})
	var growErr *InvalidGrowthError
	if !errors.As(err, &growErr) {
		t.Fatalf("duplicate StartHex returned %v, want InvalidGrowthError", err)
	}
}

func TestBuilderGrowHex(t *testing.T) {
	b := NewBuilder()
	if err := b.StartHex(hex.Axial{}); err != nil {
		t.Fatalf("StartHex: %v", err)
	}
	p, err := b.GrowHex(hex.Axial{}, hex.DirSE)
	if err != nil {
		t.Fatalf("GrowHex: %v", err)
	}
	if p != (hex.Axial{Q: 1, R: 0}) {
		t.Fatalf("GrowHex placed at %v", p)
	}

	if _, err := b.GrowHex(hex.Axial{Q: 5, R: 5}, hex.DirN); err == nil {
		t.Fatalf("GrowHex from a vacant position succeeded")
	}
	if _, err := b.GrowHex(hex.Axial{}, hex.DirSE); err == nil {
		t.Fatalf("GrowHex onto an occupied position succeeded")
	}
}

func TestBuilderSurroundHex(t *testing.T) {
	b := NewBuilder()
	if err := b.StartHex(hex.Axial{}); err != nil {
		t.Fatalf("StartHex: %v", err)
	}
	added, err := b.SurroundHex(hex.Axial{})
	if err != nil {
		t.Fatalf("SurroundHex: %v", err)
	}
	if len(added) != 6 {
		t.Fatalf("SurroundHex added %d hexes, want 6", len(added))
	}
	// Occupied sides are skipped, not an error.
	added, err = b.SurroundHex(hex.Axial{Q: 1, R: 0})
	if err != nil {
		t.Fatalf("second SurroundHex: %v", err)
	}
	if len(added) != 3 {
		t.Fatalf("second SurroundHex added %d hexes, want 3", len(added))
	}

	if _, err := b.SurroundHex(hex.Axial{Q: 9, R: 9}); err == nil {
		t.Fatalf("SurroundHex of a vacant position succeeded")
	}
}

func TestBuilderSurroundMap(t *testing.T) {
	b := NewBuilder()
	if err := b.StartHex(hex.Axial{}); err != nil {
		t.Fatalf("StartHex: %v", err)
	}
	b.SurroundMap()
	if b.Grid().Len() != 7 {
		t.Fatalf("one ring grew to %d hexes, want 7", b.Grid().Len())
	}
	b.SurroundMap()
	if b.Grid().Len() != 19 {
		t.Fatalf("two rings grew to %d hexes, want 19", b.Grid().Len())
	}
}

func TestBuilderGrowMap(t *testing.T) {
	b := NewBuilder()
	if err := b.StartHex(hex.Axial{}); err != nil {
		t.Fatalf("StartHex: %v", err)
	}
	added := b.GrowMap(hex.DirSE)
	if len(added) != 1 || added[0] != (hex.Axial{Q: 1, R: 0}) {
		t.Fatalf("GrowMap(SE) added %v", added)
	}
	// Growing south doubles the two-hex strip.
	added = b.GrowMap(hex.DirS)
	if len(added) != 2 {
		t.Fatalf("GrowMap(S) added %d hexes, want 2", len(added))
	}
	if b.Grid().Len() != 4 {
		t.Fatalf("grid has %d hexes, want 4", b.Grid().Len())
	}
}

func TestGrowRowsStandardFootprint(t *testing.T) {
	rows := NewBuilder()
	if err := rows.GrowRows(3, 4, 5, 4, 3); err != nil {
		t.Fatalf("GrowRows: %v", err)
	}
	want := hex.Disk(hex.Axial{}, 2)
	if rows.Grid().Len() != len(want) {
		t.Fatalf("row rule built %d hexes, want %d", rows.Grid().Len(), len(want))
	}
	for _, p := range want {
		if !rows.Grid().Contains(p) {
			t.Fatalf("row rule is missing %v", p)
		}
	}
}

func TestGrowRowsExtendedFootprint(t *testing.T) {
	rows := NewBuilder()
	if err := rows.GrowRows(4, 5, 6, 6, 5, 4); err != nil {
		t.Fatalf("GrowRows: %v", err)
	}
	shape, err := Shape56{}.Build()
	if err != nil {
		t.Fatalf("Shape56: %v", err)
	}
	if rows.Grid().Len() != shape.Grid.Len() {
		t.Fatalf("row rule built %d hexes, shape has %d", rows.Grid().Len(), shape.Grid.Len())
	}
	for _, p := range shape.Grid.Positions() {
		if !rows.Grid().Contains(p) {
			t.Fatalf("row rule is missing %v", p)
		}
	}
}

func TestGrowRowsRejectsBadRules(t *testing.T) {
	if err := NewBuilder().GrowRows(); err == nil {
		t.Fatalf("empty rule succeeded")
	}
	if err := NewBuilder().GrowRows(3, 0, 3); err == nil {
		t.Fatalf("zero-length row succeeded")
	}
	b := NewBuilder()
	if err := b.StartHex(hex.Axial{}); err != nil {
		t.Fatalf("StartHex: %v", err)
	}
	if err := b.GrowRows(3, 4, 3); err == nil {
		t.Fatalf("row rule over an occupied grid succeeded")
	}
}
