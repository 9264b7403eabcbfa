package validate

import (
	"testing"

	"github.com/gravitas-games/hexboard/board"
	"github.com/gravitas-games/hexboard/hex"
)

// assemble builds a board over exactly the given hexes.
func assemble(t *testing.T, hexes []board.Hex, ports ...board.Port) *board.Board {
	t.Helper()
	g := hex.NewGrid()
	for _, h := range hexes {
		if !g.Add(h.Pos) {
			t.Fatalf("duplicate position %v", h.Pos)
		}
	}
	return board.Assemble(g, nil, hexes, ports, 1)
}

// triangle is three mutually adjacent positions sharing one corner.
var triangle = []hex.Axial{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 0, R: 1}}

func TestGoodRock(t *testing.T) {
	b := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Mountains, Number: 6},
		{Pos: triangle[1], Terrain: board.Hills, Number: 10},
		{Pos: triangle[2], Terrain: board.Fields, Number: 4},
	})
	if !GoodRock(4).Check(b) {
		t.Fatalf("good_rock(4) rejected a 6 on mountains")
	}
	if !GoodRock(5).Check(b) {
		t.Fatalf("good_rock(5) rejected a 6 on mountains")
	}
	if GoodRock(6).Check(b) {
		t.Fatalf("good_rock(6) accepted: no number is worth 6 pips")
	}

	noRock := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Hills, Number: 6},
	})
	if GoodRock(1).Check(noRock) {
		t.Fatalf("good_rock accepted a board without mountains")
	}
}

func TestMaxPip(t *testing.T) {
	b := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Fields, Number: 6},
		{Pos: triangle[1], Terrain: board.Pasture, Number: 8},
		{Pos: triangle[2], Terrain: board.Forest, Number: 5},
	})
	// The shared corner sums 5+5+4 pips.
	if MaxPip(13).Check(b) {
		t.Fatalf("max_pip(13) accepted a 14-pip corner")
	}
	if !MaxPip(14).Check(b) {
		t.Fatalf("max_pip(14) rejected a 14-pip corner")
	}
}

func TestNo212(t *testing.T) {
	bad := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Fields, Number: 2},
		{Pos: triangle[1], Terrain: board.Pasture, Number: 12},
	})
	if No212().Check(bad) {
		t.Fatalf("no_2_12 accepted adjacent 2 and 12")
	}
	good := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Fields, Number: 2},
		{Pos: triangle[1], Terrain: board.Pasture, Number: 11},
	})
	if !No212().Check(good) {
		t.Fatalf("no_2_12 rejected 2 next to 11")
	}
}

func TestNo68(t *testing.T) {
	bad := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Fields, Number: 6},
		{Pos: triangle[1], Terrain: board.Pasture, Number: 8},
	})
	if No68().Check(bad) {
		t.Fatalf("no_6_8 accepted adjacent 6 and 8")
	}
	alsoBad := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Fields, Number: 6},
		{Pos: triangle[1], Terrain: board.Pasture, Number: 6},
	})
	if No68().Check(alsoBad) {
		t.Fatalf("no_6_8 accepted adjacent 6 and 6")
	}
	good := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Fields, Number: 6},
		{Pos: triangle[1], Terrain: board.Pasture, Number: 5},
	})
	if !No68().Check(good) {
		t.Fatalf("no_6_8 rejected 6 next to 5")
	}
}

func TestNoDouble68(t *testing.T) {
	// The two five-pip numbers land on the same terrain, far apart.
	bad := assemble(t, []board.Hex{
		{Pos: hex.Axial{Q: 0, R: 0}, Terrain: board.Forest, Number: 6},
		{Pos: hex.Axial{Q: 1, R: 0}, Terrain: board.Hills, Number: 4},
		{Pos: hex.Axial{Q: 2, R: 0}, Terrain: board.Forest, Number: 8},
	})
	if NoDouble68().Check(bad) {
		t.Fatalf("no_double_6_8 accepted two five-pip forests")
	}
	good := assemble(t, []board.Hex{
		{Pos: hex.Axial{Q: 0, R: 0}, Terrain: board.Forest, Number: 6},
		{Pos: hex.Axial{Q: 1, R: 0}, Terrain: board.Hills, Number: 8},
	})
	if !NoDouble68().Check(good) {
		t.Fatalf("no_double_6_8 rejected five-pip numbers on distinct terrains")
	}
}

func TestMaxPortPips(t *testing.T) {
	hexes := []board.Hex{
		{Pos: triangle[0], Terrain: board.Pasture, Number: 6},
		{Pos: triangle[1], Terrain: board.Fields, Number: 4},
	}
	woolPort := board.Port{
		Pos:      hex.Axial{Q: -1, R: 0},
		Resource: board.Wool,
		Serves:   []hex.Axial{triangle[0], triangle[1]},
	}
	b := assemble(t, hexes, woolPort)
	// The wool port sees 5 pips of pasture.
	if MaxPortPips(4).Check(b) {
		t.Fatalf("max_port_pips(4) accepted a 5-pip wool port")
	}
	if !MaxPortPips(5).Check(b) {
		t.Fatalf("max_port_pips(5) rejected a 5-pip wool port")
	}

	// 3:1 ports are exempt no matter what they serve.
	anyPort := woolPort
	anyPort.Resource = board.Any
	exempt := assemble(t, hexes, anyPort)
	if !MaxPortPips(0).Check(exempt) {
		t.Fatalf("max_port_pips restricted a 3:1 port")
	}
}

func TestNoNumberPairs(t *testing.T) {
	bad := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Fields, Number: 9},
		{Pos: triangle[1], Terrain: board.Pasture, Number: 9},
	})
	if NoNumberPairs().Check(bad) {
		t.Fatalf("no_num_pairs accepted adjacent nines")
	}
	// Unnumbered tiles never pair.
	deserts := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Desert},
		{Pos: triangle[1], Terrain: board.Desert},
	})
	if !NoNumberPairs().Check(deserts) {
		t.Fatalf("no_num_pairs rejected adjacent unnumbered tiles")
	}
}

func TestNoTerrainPairs(t *testing.T) {
	b := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Forest, Number: 9},
		{Pos: triangle[1], Terrain: board.Forest, Number: 4},
		{Pos: triangle[2], Terrain: board.Hills, Number: 5},
	})
	if NoTerrainPairs(board.Forest).Check(b) {
		t.Fatalf("no_terr_pairs(forest) accepted adjacent forests")
	}
	// Only the named terrain is constrained.
	if !NoTerrainPairs(board.Hills).Check(b) {
		t.Fatalf("no_terr_pairs(hills) rejected a single hills tile")
	}
}

func TestNoTerrainTriples(t *testing.T) {
	bad := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Pasture, Number: 9},
		{Pos: triangle[1], Terrain: board.Pasture, Number: 4},
		{Pos: triangle[2], Terrain: board.Pasture, Number: 5},
	})
	if NoTerrainTriples().Check(bad) {
		t.Fatalf("no_terr_tri accepted an all-pasture corner")
	}

	// Boundary corners with two same-terrain tiles count too.
	pair := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Forest, Number: 9},
		{Pos: triangle[1], Terrain: board.Forest, Number: 4},
	})
	if NoTerrainTriples().Check(pair) {
		t.Fatalf("no_terr_tri accepted an all-forest boundary corner")
	}

	good := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Pasture, Number: 9},
		{Pos: triangle[1], Terrain: board.Forest, Number: 4},
		{Pos: triangle[2], Terrain: board.Hills, Number: 5},
	})
	if !NoTerrainTriples().Check(good) {
		t.Fatalf("no_terr_tri rejected a mixed corner")
	}
}

func TestRegions(t *testing.T) {
	good := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Hills, Number: 9},
		{Pos: triangle[1], Terrain: board.Hills, Number: 4},
		{Pos: triangle[2], Terrain: board.Desert},
	})
	if !Regions(board.Desert).Check(good) {
		t.Fatalf("regions rejected paired hills with desert excluded")
	}
	if Regions().Check(good) {
		t.Fatalf("regions accepted an isolated desert with nothing excluded")
	}

	bad := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Hills, Number: 9},
		{Pos: triangle[1], Terrain: board.Forest, Number: 4},
	})
	if Regions().Check(bad) {
		t.Fatalf("regions accepted isolated single-tile terrains")
	}
}

func TestAll(t *testing.T) {
	b := assemble(t, []board.Hex{
		{Pos: triangle[0], Terrain: board.Mountains, Number: 6},
		{Pos: triangle[1], Terrain: board.Hills, Number: 5},
	})
	if !All(b, GoodRock(4), No68()) {
		t.Fatalf("All rejected a conforming board")
	}
	if All(b, GoodRock(4), No212(), GoodRock(6)) {
		t.Fatalf("All accepted a board failing one validator")
	}
}
