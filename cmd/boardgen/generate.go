package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/hexboard/board"
	"github.com/gravitas-games/hexboard/render"
	"github.com/gravitas-games/hexboard/stats"
)

var (
	generateFlags    layoutFlags
	generateAnalysis bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one board and print it",
	RunE:  runGenerate,
}

func init() {
	generateFlags.register(generateCmd)
	generateCmd.Flags().BoolVar(&generateAnalysis, "analysis", false,
		"print a production analysis of the board")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, err := generateFlags.generator()
	if err != nil {
		return err
	}
	req, err := generateFlags.request()
	if err != nil {
		return err
	}

	b, err := gen.Layout(req)
	if err != nil {
		return err
	}

	fmt.Println(render.Text(b))

	if generateAnalysis {
		printAnalysis(b)
	}
	return nil
}

// printAnalysis reports how the board's production is distributed.
func printAnalysis(b *board.Board) {
	if b.Attempts == 1 {
		fmt.Println("\nIt took one attempt to generate this layout.")
	} else {
		fmt.Printf("\nIt took %d attempts to generate this layout.\n", b.Attempts)
	}

	fmt.Println()
	var perTile []float64
	for _, terr := range []board.Terrain{board.Hills, board.Forest, board.Mountains, board.Fields, board.Pasture} {
		tp := stats.TerrainPips(b)[terr]
		if tp.Tiles == 0 {
			continue
		}
		perTile = append(perTile, tp.PerTile())
		fmt.Printf("%s: %d pips (%.1f / tile)\n", terr, tp.Pips, tp.PerTile())
	}
	_, dev := stats.MeanDev(perTile)
	fmt.Printf("Per-tile production deviation: %.1f\n", dev)

	fmt.Println()
	spread := stats.TerrainSpread(b)
	for _, terr := range []board.Terrain{board.Hills, board.Forest, board.Mountains, board.Fields, board.Pasture} {
		if d, ok := spread[terr]; ok {
			fmt.Printf("%s tiles are %.1f hexes apart on average\n", terr, d)
		}
	}

	fmt.Println()
	tri := stats.IntersectionPips(b, 3)
	var sums []float64
	for _, s := range tri {
		sums = append(sums, float64(s))
	}
	mean, dev := stats.MeanDev(sums)
	fmt.Printf("%d triple-production intersections, mean %.1f pips (deviation %.1f)\n",
		len(tri), mean, dev)
}

func timeSeed() int64 { return time.Now().UnixNano() }
