package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gravitas-games/hexboard/board"
)

// Parse builds a validator from its textual form, as accepted on the
// command line and in service requests: a factory name, optionally
// followed by "=" and an argument, e.g. "no_6_8", "max_pip=11",
// "no_terr_pairs=forest", "regions=desert".
func Parse(s string) (Validator, error) {
	name, arg := s, ""
	if i := strings.IndexByte(s, '='); i >= 0 {
		name, arg = s[:i], s[i+1:]
	}

	intArg := func(def int) (int, error) {
		if arg == "" {
			return def, nil
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return 0, fmt.Errorf("validator %s: bad argument %q", name, arg)
		}
		return n, nil
	}

	switch name {
	case "good_rock":
		n, err := intArg(4)
		if err != nil {
			return Validator{}, err
		}
		return GoodRock(n), nil
	case "max_pip":
		n, err := intArg(11)
		if err != nil {
			return Validator{}, err
		}
		return MaxPip(n), nil
	case "max_port_pips":
		n, err := intArg(3)
		if err != nil {
			return Validator{}, err
		}
		return MaxPortPips(n), nil
	case "no_2_12":
		return No212(), nil
	case "no_6_8":
		return No68(), nil
	case "no_double_6_8":
		return NoDouble68(), nil
	case "no_num_pairs":
		return NoNumberPairs(), nil
	case "no_terr_pairs":
		t, err := board.ParseTerrain(arg)
		if err != nil {
			return Validator{}, fmt.Errorf("validator %s: %w", name, err)
		}
		return NoTerrainPairs(t), nil
	case "no_terr_tri":
		return NoTerrainTriples(), nil
	case "regions":
		var exclude []board.Terrain
		if arg == "" {
			exclude = []board.Terrain{board.Desert}
		} else {
			for _, part := range strings.Split(arg, ",") {
				t, err := board.ParseTerrain(strings.TrimSpace(part))
				if err != nil {
					return Validator{}, fmt.Errorf("validator %s: %w", name, err)
				}
				exclude = append(exclude, t)
			}
		}
		return Regions(exclude...), nil
	default:
		return Validator{}, fmt.Errorf("unknown validator %q", name)
	}
}

// ParseAll builds a validator list from textual forms.
func ParseAll(specs []string) ([]Validator, error) {
	out := make([]Validator, 0, len(specs))
	for _, s := range specs {
		v, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
