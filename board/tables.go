package board

import "fmt"

// Tables are the symbol tables for one board edition: the bag of terrain
// tiles (in the beginner reference order, which doubles as the shuffle
// bag), the number-token sequences, and the bag of port descriptors. The
// engine treats them purely as configuration.
type Tables struct {
	// Terrain is the beginner terrain sequence; shuffle mode permutes it.
	Terrain []Terrain
	// BeginnerNumbers is the fixed reference number sequence, spiral order.
	BeginnerNumbers []int
	// StandardNumbers is the variable-setup number sequence, spiral order;
	// shuffle mode permutes it.
	StandardNumbers []int
	// Ports is the beginner port sequence, clockwise; shuffle mode
	// permutes it.
	Ports []Resource
}

// Standard returns the tables for the 19-hex base board: 4 fields, 4
// pasture, 4 forest, 3 hills, 3 mountains, 1 desert, 18 number tokens and
// 9 ports.
func Standard() Tables {
	return Tables{
		Terrain: []Terrain{
			Forest, Pasture, Desert, Mountains, Hills,
			Hills, Forest, Fields, Fields,
			Pasture, Hills, Forest, Forest,
			Mountains, Pasture, Pasture,
			Mountains, Fields, Fields,
		},
		BeginnerNumbers: []int{5, 6, 11, 5, 8, 10, 9, 2, 10, 12, 9, 8, 3, 4, 3, 4, 6, 11},
		StandardNumbers: []int{5, 2, 6, 3, 8, 10, 9, 12, 11, 4, 8, 10, 9, 4, 5, 6, 3, 11},
		Ports: []Resource{
			Ore, Any, Wool, Any, Any, Brick, Wood, Any, Grain,
		},
	}
}

// FiveSix returns the tables for the 30-hex 5/6-player board: 28 number
// tokens and 11 ports.
func FiveSix() Tables {
	numbers := []int{
		2, 5, 4, 6, 3, 9, 8, 11, 11, 10, 6, 3, 8, 4,
		8, 10, 11, 12, 10, 5, 4, 9, 5, 9, 12, 3, 2, 6,
	}
	return Tables{
		Terrain: []Terrain{
			Fields, Hills, Fields, Mountains, Mountains, Hills,
			Pasture, Forest, Hills, Fields, Pasture, Mountains,
			Pasture, Mountains, Forest, Forest, Pasture, Fields,
			Hills, Desert, Pasture, Fields, Forest, Hills,
			Desert, Fields, Forest, Pasture, Mountains, Forest,
		},
		BeginnerNumbers: numbers,
		StandardNumbers: numbers,
		Ports: []Resource{
			Any, Any, Brick, Wool, Wood, Any, Grain, Any, Ore, Any, Wool,
		},
	}
}

// producing returns the count of terrain entries that take a number token.
func (t Tables) producing() int {
	n := 0
	for _, terr := range t.Terrain {
		if terr.Produces() {
			n++
		}
	}
	return n
}

// Validate checks the tables against a shape: tile bag size must match the
// land position count, number sequences the producing tile count, and the
// port bag the port slot count. A mismatch is a configuration error caught
// before any layout attempt.
func (t Tables) Validate(s *Shape) error {
	if got, want := len(t.Terrain), s.Grid.Len(); got != want {
		return fmt.Errorf("terrain bag has %d tiles for %d positions", got, want)
	}
	producing := t.producing()
	if got := len(t.BeginnerNumbers); got != producing {
		return fmt.Errorf("beginner number sequence has %d tokens for %d producing tiles", got, producing)
	}
	if got := len(t.StandardNumbers); got != producing {
		return fmt.Errorf("standard number sequence has %d tokens for %d producing tiles", got, producing)
	}
	if got, want := len(t.Ports), len(s.PortSlots); got != want {
		return fmt.Errorf("port bag has %d ports for %d slots", got, want)
	}
	for _, n := range append(append([]int{}, t.BeginnerNumbers...), t.StandardNumbers...) {
		if Pips(n) == 0 {
			return fmt.Errorf("number token %d is not a valid roll", n)
		}
	}
	return nil
}
