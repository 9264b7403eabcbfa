package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/hexboard/stats"
)

var (
	sampleFlags layoutFlags
	sampleCount int
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate many boards and summarize their statistics",
	RunE:  runSample,
}

func init() {
	sampleFlags.register(sampleCmd)
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 100, "number of boards to generate")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	if sampleCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", sampleCount)
	}
	gen, err := sampleFlags.generator()
	if err != nil {
		return err
	}
	req, err := sampleFlags.request()
	if err != nil {
		return err
	}

	summary, err := stats.Sample(gen, req, sampleCount)
	if err != nil {
		return err
	}

	fmt.Printf("Sampled %d boards\n\n", summary.Boards)
	printSeries("attempts per board", summary.Attempts)
	printSeries("per-tile production (pips)", summary.TerrainPips)
	printSeries("terrain spread (hexes)", summary.TerrainDist)
	printSeries("triple-intersection pips", summary.TriplePips)
	return nil
}

func printSeries(label string, s stats.Series) {
	fmt.Printf("%-28s min %5.1f  max %5.1f  mean %5.1f  dev %5.1f\n",
		label, s.Min, s.Max, s.Mean, s.Dev)
}
