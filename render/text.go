// Package render draws a completed board as text. It consumes only the
// Board's read surface and is not part of the generation core.
package render

import (
	"fmt"
	"strings"

	"github.com/gravitas-games/hexboard/board"
	"github.com/gravitas-games/hexboard/hex"
)

const (
	cellWidth  = 7
	cellHeight = 2 // text rows per half-hex row
)

var terrainLabels = map[board.Terrain]string{
	board.Hills:     "HILLS",
	board.Forest:    "FRST",
	board.Mountains: "MNTN",
	board.Fields:    "FIELD",
	board.Pasture:   "PSTR",
	board.Desert:    "DSRT",
}

var resourceLabels = map[board.Resource]string{
	board.Any:   "ANY",
	board.Brick: "BRICK",
	board.Wood:  "WOOD",
	board.Ore:   "ORE",
	board.Grain: "GRAIN",
	board.Wool:  "WOOL",
}

// Text renders the board as an ASCII map: one drawn cell per land hex with
// its terrain and number, and a small label at each port position with the
// port's resource and exchange rate.
func Text(b *board.Board) string {
	minC, minR, maxC, maxR := bounds(b)
	width := (maxC-minC+1)*cellWidth + 2
	height := (maxR-minR)*cellHeight + 5
	grid := make([][]byte, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", width))
	}

	for _, h := range b.Hexes {
		x, y := origin(h.Pos, minC, minR)
		blit(grid, x, y, hexBlock(h))
	}
	for _, p := range b.Ports {
		x, y := origin(p.Pos, minC, minR)
		blit(grid, x, y, portBlock(p))
	}

	lines := make([]string, 0, len(grid))
	for _, row := range grid {
		lines = append(lines, strings.TrimRight(string(row), " "))
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func bounds(b *board.Board) (minC, minR, maxC, maxR int) {
	first := true
	visit := func(p hex.Axial) {
		c, r := p.ColRow()
		if first {
			minC, maxC, minR, maxR = c, c, r, r
			first = false
			return
		}
		if c < minC {
			minC = c
		}
		if c > maxC {
			maxC = c
		}
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
	}
	for _, h := range b.Hexes {
		visit(h.Pos)
	}
	for _, p := range b.Ports {
		visit(p.Pos)
	}
	return
}

func origin(p hex.Axial, minC, minR int) (x, y int) {
	c, r := p.ColRow()
	return (c - minC) * cellWidth, (r - minR) * cellHeight
}

func hexBlock(h board.Hex) []string {
	label := terrainLabels[h.Terrain]
	num := ""
	if h.Number != 0 {
		num = fmt.Sprintf("%d", h.Number)
	}
	return []string{
		`  _____`,
		` /     \`,
		fmt.Sprintf("/ %s \\", center(label, 5)),
		fmt.Sprintf("\\ %s /", center(num, 5)),
		` \_____/`,
	}
}

func portBlock(p board.Port) []string {
	return []string{
		``,
		``,
		"  " + center(resourceLabels[p.Resource], 5),
		fmt.Sprintf("   %d:1", p.Ratio()),
	}
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}

// blit copies the non-space characters of a text block onto the grid.
func blit(grid [][]byte, x, y int, block []string) {
	for dy, row := range block {
		if y+dy < 0 || y+dy >= len(grid) {
			continue
		}
		for dx := 0; dx < len(row); dx++ {
			if row[dx] == ' ' {
				continue
			}
			if x+dx < 0 || x+dx >= len(grid[y+dy]) {
				continue
			}
			grid[y+dy][x+dx] = row[dx]
		}
	}
}
