// Package hillclimb finds the fewest steps up a height map of lowercase
// elevation letters, climbing at most one level per step.
package hillclimb

import (
	"fmt"

	aoc "github.com/maisem/aoc2022"
	"tailscale.com/util/deephash"
)

const (
	lowest  = 'a'
	highest = 'z'
)

// noParent marks a tile that was not discovered from another tile.
const noParent = -1

// Tile is one cell of a Map along with the search bookkeeping for it.
type Tile struct {
	Elevation byte
	Visited   bool
	Parent    int // index into Map.Tiles, or -1
}

// Map is a height map flattened in row-major order.
type Map struct {
	Tiles []Tile
	Width int
	Start int
	End   int
}

// Parse builds a Map from one line per row of 'a'..'z', with exactly one 'S'
// (elevation 'a') and one 'E' (elevation 'z').
func Parse(input string) (*Map, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return nil, fmt.Errorf("hillclimb: %w", err)
	}
	size := g.Size()
	m := &Map{
		Tiles: make([]Tile, 0, size.X*size.Y),
		Width: size.X,
		Start: noParent,
		End:   noParent,
	}
	for y, row := range g {
		for x, c := range row {
			idx := len(m.Tiles)
			switch {
			case c == 'S':
				if m.Start != noParent {
					return nil, fmt.Errorf("%w: second 'S' at %d,%d", ErrDuplicateMarker, x, y)
				}
				m.Start, c = idx, lowest
			case c == 'E':
				if m.End != noParent {
					return nil, fmt.Errorf("%w: second 'E' at %d,%d", ErrDuplicateMarker, x, y)
				}
				m.End, c = idx, highest
			case c < lowest || c > highest:
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadElevation, c, x, y)
			}
			m.Tiles = append(m.Tiles, Tile{Elevation: c, Parent: noParent})
		}
	}
	if m.Start == noParent {
		return nil, ErrNoStart
	}
	if m.End == noParent {
		return nil, ErrNoEnd
	}
	return m, nil
}

// Fresh returns a copy of m with no tile visited.
func (m *Map) Fresh() *Map {
	out := *m
	out.Tiles = make([]Tile, len(m.Tiles))
	for i, t := range m.Tiles {
		out.Tiles[i] = Tile{Elevation: t.Elevation, Parent: noParent}
	}
	return &out
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return len(m.Tiles) / m.Width
}

// Pt returns the grid position of the tile at idx.
func (m *Map) Pt(idx int) aoc.Pt {
	return aoc.Pt{X: idx % m.Width, Y: idx / m.Width}
}

// Lowest returns the indexes of all tiles at elevation 'a', including the
// start.
func (m *Map) Lowest() []int {
	var out []int
	for i, t := range m.Tiles {
		if t.Elevation == lowest {
			out = append(out, i)
		}
	}
	return out
}

// Hash returns a hash of the whole map, search state included.
func (m *Map) Hash() deephash.Sum {
	return deephash.Hash(m)
}
