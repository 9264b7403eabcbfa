package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/hexboard/board"
	"github.com/gravitas-games/hexboard/layout"
	"github.com/gravitas-games/hexboard/place"
	"github.com/gravitas-games/hexboard/validate"
)

var rootCmd = &cobra.Command{
	Use:   "boardgen",
	Short: "Generate hex board game layouts",
	Long: `boardgen lays out terrain tiles, number tokens and ports for
hex-tile board games, optionally retrying randomized placements until the
board satisfies a set of structural constraints.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// layoutFlags are the generation flags shared by generate and sample.
type layoutFlags struct {
	board      string
	useFrame   bool
	terrain    string
	numbers    string
	ports      string
	validators []string
	seed       int64
	attempts   int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.board, "board", "standard", "board shape: standard or 56")
	cmd.Flags().BoolVar(&f.useFrame, "frame", false, "use frame port spacing (5/6-player board only)")
	cmd.Flags().StringVar(&f.terrain, "terrain", "shuffle", "terrain mode: beginner or shuffle")
	cmd.Flags().StringVar(&f.numbers, "numbers", "standard", "number mode: beginner, standard or shuffle")
	cmd.Flags().StringVar(&f.ports, "ports", "shuffle", "port mode: beginner or shuffle")
	cmd.Flags().StringArrayVar(&f.validators, "validator", nil,
		"layout constraint, e.g. no_6_8 or max_pip=11 (repeatable)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 uses a time-based seed)")
	cmd.Flags().IntVar(&f.attempts, "max-attempts", layout.DefaultMaxAttempts, "retry bound for shuffled layouts")
}

// generator builds the layout generator selected by the flags.
func (f *layoutFlags) generator() (*layout.Generator, error) {
	var shape board.ShapeBuilder
	var tables board.Tables
	switch f.board {
	case "standard":
		shape = board.StandardShape{}
		tables = board.Standard()
	case "56":
		shape = board.Shape56{UseFrame: f.useFrame}
		tables = board.FiveSix()
	default:
		return nil, fmt.Errorf("unknown board %q", f.board)
	}

	opts := []layout.Option{layout.WithMaxAttempts(f.attempts)}
	if f.seed != 0 {
		opts = append(opts, layout.WithRand(rand.New(rand.NewSource(f.seed))))
	} else {
		opts = append(opts, layout.WithRand(rand.New(rand.NewSource(timeSeed()))))
	}
	return layout.New(shape, tables, opts...)
}

// request builds the layout request selected by the flags.
func (f *layoutFlags) request() (layout.Request, error) {
	var req layout.Request
	var err error
	if req.Terrain, err = place.ParseMode(f.terrain); err != nil {
		return layout.Request{}, err
	}
	if req.Numbers, err = place.ParseMode(f.numbers); err != nil {
		return layout.Request{}, err
	}
	if req.Ports, err = place.ParseMode(f.ports); err != nil {
		return layout.Request{}, err
	}
	if req.Validators, err = validate.ParseAll(f.validators); err != nil {
		return layout.Request{}, err
	}
	return req, nil
}
