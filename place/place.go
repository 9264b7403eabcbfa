// Package place maps value bags onto ordered board positions according to
// an arrangement mode.
package place

import (
	"fmt"
	"math/rand"

	"github.com/gravitas-games/hexboard/hex"
)

// Mode selects how a value bag is ordered before assignment.
type Mode int

const (
	// Beginner uses the fixed historical reference sequence.
	Beginner Mode = iota
	// Standard uses the deterministic variable-setup sequence.
	Standard
	// Shuffle permutes the bag uniformly using an injected random source.
	Shuffle
)

var modeNames = map[Mode]string{
	Beginner: "beginner",
	Standard: "standard",
	Shuffle:  "shuffle",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Deterministic reports whether the mode always produces the same
// assignment for the same inputs.
func (m Mode) Deterministic() bool { return m != Shuffle }

// ParseMode converts a mode name to its value.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown arrangement mode %q", s)
}

// Assign maps values onto positions in order. Beginner and Standard assign
// the bag as given (the caller selects which fixed sequence to pass);
// Shuffle assigns a uniform permutation of it drawn from rng. The bag size
// must match the position count exactly: every position is assigned and
// every value used.
func Assign[V any](positions []hex.Axial, values []V, mode Mode, rng *rand.Rand) (map[hex.Axial]V, error) {
	if len(positions) != len(values) {
		return nil, fmt.Errorf("%d values for %d positions", len(values), len(positions))
	}
	ordered := values
	if mode == Shuffle {
		ordered = make([]V, len(values))
		copy(ordered, values)
		rng.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}
	out := make(map[hex.Axial]V, len(positions))
	for i, p := range positions {
		out[p] = ordered[i]
	}
	return out, nil
}
