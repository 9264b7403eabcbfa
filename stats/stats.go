// Package stats analyzes generated boards: production per terrain, terrain
// spread, and intersection pip distributions, individually or aggregated
// over simulated setups.
package stats

import (
	"math"
	"sort"

	"github.com/gravitas-games/hexboard/board"
	"github.com/gravitas-games/hexboard/hex"
	"github.com/gravitas-games/hexboard/layout"
)

// MeanDev returns the mean and population standard deviation of xs.
func MeanDev(xs []float64) (mean, dev float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var variance float64
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))
	return mean, math.Sqrt(variance)
}

// Percentiles returns the deciles of xs, from minimum to maximum.
func Percentiles(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	out := make([]float64, 0, 11)
	for decile := 0; decile <= 10; decile++ {
		i := decile * (len(sorted) - 1) / 10
		out = append(out, sorted[i])
	}
	return out
}

// TerrainProduction is one terrain's share of the board's production.
type TerrainProduction struct {
	Tiles int
	Pips  int
}

// PerTile returns pips of production per tile.
func (tp TerrainProduction) PerTile() float64 {
	if tp.Tiles == 0 {
		return 0
	}
	return float64(tp.Pips) / float64(tp.Tiles)
}

// TerrainPips sums tiles and pips per terrain type.
func TerrainPips(b *board.Board) map[board.Terrain]TerrainProduction {
	out := make(map[board.Terrain]TerrainProduction)
	for _, h := range b.Hexes {
		tp := out[h.Terrain]
		tp.Tiles++
		tp.Pips += h.Pips()
		out[h.Terrain] = tp
	}
	return out
}

// TerrainSpread returns, per terrain with at least two tiles, the mean hex
// distance between pairs of that terrain's tiles.
func TerrainSpread(b *board.Board) map[board.Terrain]float64 {
	tiles := make(map[board.Terrain][]hex.Axial)
	for _, h := range b.Hexes {
		tiles[h.Terrain] = append(tiles[h.Terrain], h.Pos)
	}
	out := make(map[board.Terrain]float64)
	for terr, positions := range tiles {
		total, pairs := 0, 0
		for i := 0; i < len(positions); i++ {
			for j := i + 1; j < len(positions); j++ {
				total += hex.Distance(positions[i], positions[j])
				pairs++
			}
		}
		if pairs > 0 {
			out[terr] = float64(total) / float64(pairs)
		}
	}
	return out
}

// IntersectionPips returns the pip sums of intersections with exactly n
// producing tiles.
func IntersectionPips(b *board.Board, n int) []int {
	var out []int
	for _, in := range b.Intersections() {
		producing, sum := 0, 0
		for _, h := range b.IntersectionHexes(in) {
			if h.Pips() > 0 {
				producing++
				sum += h.Pips()
			}
		}
		if producing == n {
			out = append(out, sum)
		}
	}
	return out
}

// Series aggregates one per-board metric across a sample.
type Series struct {
	Min  float64
	Max  float64
	Mean float64
	Dev  float64
}

func newSeries(xs []float64) Series {
	if len(xs) == 0 {
		return Series{}
	}
	s := Series{Min: xs[0], Max: xs[0]}
	for _, x := range xs {
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
	}
	s.Mean, s.Dev = MeanDev(xs)
	return s
}

// Summary aggregates layout statistics over a sample of generated boards.
type Summary struct {
	Boards       int
	Attempts     Series // attempts needed per board
	TerrainPips  Series // per-tile production across terrains, per board
	TerrainDist  Series // mean pairwise terrain distance, per board
	TriplePips   Series // pip sums of three-producer intersections
}

// Sample generates n boards with the given request and aggregates their
// statistics.
func Sample(g *layout.Generator, req layout.Request, n int) (Summary, error) {
	var attempts, pips, dists, tris []float64
	for i := 0; i < n; i++ {
		b, err := g.Layout(req)
		if err != nil {
			return Summary{}, err
		}
		attempts = append(attempts, float64(b.Attempts))
		for terr, tp := range TerrainPips(b) {
			if terr.Produces() {
				pips = append(pips, tp.PerTile())
			}
		}
		for terr, d := range TerrainSpread(b) {
			if terr.Produces() {
				dists = append(dists, d)
			}
		}
		for _, sum := range IntersectionPips(b, 3) {
			tris = append(tris, float64(sum))
		}
	}
	return Summary{
		Boards:      n,
		Attempts:    newSeries(attempts),
		TerrainPips: newSeries(pips),
		TerrainDist: newSeries(dists),
		TriplePips:  newSeries(tris),
	}, nil
}
