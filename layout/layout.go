// Package layout drives board generation: it runs the placement engine
// for terrain, numbers and ports, evaluates the supplied validators, and
// retries randomized placements up to a bounded attempt count.
package layout

import (
	"fmt"
	"math/rand"

	"github.com/gravitas-games/hexboard/arrange"
	"github.com/gravitas-games/hexboard/board"
	"github.com/gravitas-games/hexboard/hex"
	"github.com/gravitas-games/hexboard/place"
	"github.com/gravitas-games/hexboard/validate"
)

// DefaultMaxAttempts bounds the retry loop. An unsatisfiable validator set
// fails after this many candidates instead of looping forever.
const DefaultMaxAttempts = 10000

// State tracks the orchestrator through one Layout call.
type State int

const (
	// Generating is the working state: candidates are being produced.
	Generating State = iota
	// Done is the success terminal: a conforming board was returned.
	Done
	// Exhausted is the failure terminal: the attempt cap was hit.
	Exhausted
)

// ConfigError reports a configuration the orchestrator refuses to run:
// unusable modes or value bags mismatched to the shape. It is raised
// before the first attempt, never mid-loop.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "layout configuration: " + e.Reason
}

// UnsatisfiableError reports that no candidate satisfied all validators
// within the attempt cap. The last failure is not necessarily
// representative, so only the validator count is named.
type UnsatisfiableError struct {
	Attempts   int
	Validators int
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("no board satisfied %d validators in %d attempts", e.Validators, e.Attempts)
}

// Request selects the arrangement mode per axis and the validators the
// board must satisfy. Terrain and ports support beginner and shuffle;
// numbers additionally support standard.
type Request struct {
	Terrain    place.Mode
	Numbers    place.Mode
	Ports      place.Mode
	Validators []validate.Validator
}

// Deterministic reports whether every axis uses a deterministic mode, in
// which case retrying is pointless and the request is attempted exactly
// once.
func (r Request) Deterministic() bool {
	return r.Terrain.Deterministic() && r.Numbers.Deterministic() && r.Ports.Deterministic()
}

// Generator lays out boards over one shape with one set of tables. The
// traversal orders and intersection list are precomputed once; every
// attempt reuses them.
type Generator struct {
	shape       *board.Shape
	tables      board.Tables
	maxAttempts int
	rng         *rand.Rand

	columns []hex.Axial
	spiral  []hex.Axial
	inters  []hex.Intersection
	serves  [][]hex.Axial

	state State
}

// Option adjusts a Generator.
type Option func(*Generator)

// WithMaxAttempts overrides the retry bound.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) { g.maxAttempts = n }
}

// WithRand injects the random source used by shuffle modes, for
// reproducible generation.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// New builds a generator for a shape and its tables. Shape construction
// failures surface as InvalidGrowthError; table/shape mismatches as
// ConfigError.
func New(sb board.ShapeBuilder, tables board.Tables, opts ...Option) (*Generator, error) {
	shape, err := sb.Build()
	if err != nil {
		return nil, err
	}
	if err := tables.Validate(shape); err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	columns, err := arrange.Columns(shape.Grid)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	spiral, err := arrange.Spiral(shape.Grid)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	serves := make([][]hex.Axial, len(shape.PortSlots))
	for i, slot := range shape.PortSlots {
		serves[i] = shape.Grid.Neighbors(slot)
	}

	g := &Generator{
		shape:       shape,
		tables:      tables,
		maxAttempts: DefaultMaxAttempts,
		rng:         rand.New(rand.NewSource(1)),
		columns:     columns,
		spiral:      spiral,
		inters:      shape.Grid.Intersections(),
		serves:      serves,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Standard returns a generator for the 19-hex base board.
func Standard(opts ...Option) (*Generator, error) {
	return New(board.StandardShape{}, board.Standard(), opts...)
}

// FiveSix returns a generator for the 5/6-player board. useFrame selects
// the frame edition's port spacing.
func FiveSix(useFrame bool, opts ...Option) (*Generator, error) {
	return New(board.Shape56{UseFrame: useFrame}, board.FiveSix(), opts...)
}

// Shape returns the generator's board shape.
func (g *Generator) Shape() *board.Shape { return g.shape }

// State returns the terminal state of the last Layout call.
func (g *Generator) State() State { return g.state }

// Layout produces a board satisfying every validator in the request, or
// fails. Deterministic requests are attempted once; requests with a
// shuffled axis are retried up to the attempt cap. The returned board
// records how many attempts it took.
func (g *Generator) Layout(req Request) (*board.Board, error) {
	if err := g.checkModes(req); err != nil {
		return nil, err
	}

	attempts := g.maxAttempts
	if req.Deterministic() {
		attempts = 1
	}

	g.state = Generating
	for attempt := 1; attempt <= attempts; attempt++ {
		b, err := g.candidate(req, attempt)
		if err != nil {
			return nil, err
		}
		if validate.All(b, req.Validators...) {
			g.state = Done
			return b, nil
		}
	}
	g.state = Exhausted
	return nil, &UnsatisfiableError{Attempts: attempts, Validators: len(req.Validators)}
}

// checkModes rejects mode combinations before the loop starts.
func (g *Generator) checkModes(req Request) error {
	if req.Terrain == place.Standard {
		return &ConfigError{Reason: "terrain mode must be beginner or shuffle"}
	}
	if req.Ports == place.Standard {
		return &ConfigError{Reason: "port mode must be beginner or shuffle"}
	}
	return nil
}

// candidate assembles one fully populated board: terrain down the columns,
// numbers along the spiral skipping deserts, ports around the boundary.
func (g *Generator) candidate(req Request, attempt int) (*board.Board, error) {
	terrBag := g.tables.Terrain
	terrain, err := place.Assign(g.columns, terrBag, req.Terrain, g.rng)
	if err != nil {
		return nil, err
	}

	numBag := g.tables.StandardNumbers
	if req.Numbers == place.Beginner {
		numBag = g.tables.BeginnerNumbers
	}
	producing := make([]hex.Axial, 0, len(numBag))
	for _, p := range g.spiral {
		if terrain[p].Produces() {
			producing = append(producing, p)
		}
	}
	numbers, err := place.Assign(producing, numBag, req.Numbers, g.rng)
	if err != nil {
		return nil, err
	}

	ports, err := place.Assign(g.shape.PortSlots, g.tables.Ports, req.Ports, g.rng)
	if err != nil {
		return nil, err
	}

	hexes := make([]board.Hex, 0, g.shape.Grid.Len())
	for _, p := range g.shape.Grid.Positions() {
		hexes = append(hexes, board.Hex{Pos: p, Terrain: terrain[p], Number: numbers[p]})
	}
	portList := make([]board.Port, 0, len(g.shape.PortSlots))
	for i, slot := range g.shape.PortSlots {
		portList = append(portList, board.Port{Pos: slot, Resource: ports[slot], Serves: g.serves[i]})
	}
	return board.Assemble(g.shape.Grid, g.inters, hexes, portList, attempt), nil
}
