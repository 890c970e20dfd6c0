package hillclimb

import (
	aoc "github.com/maisem/aoc2022"
)

// Render draws path (as returned by FindPath) over a blank map: each step is
// an arrow pointing at the next tile and the end of the path is 'E'.
func (m *Map) Render(path []int) string {
	g := aoc.MakeGrid[byte](m.Width, m.Height())
	for y := range g {
		for x := range g[y] {
			g[y][x] = '.'
		}
	}
	for i := len(path) - 1; i > 0; i-- {
		from, to := m.Pt(path[i]), m.Pt(path[i-1])
		if d, ok := aoc.DirectionTo(from, to); ok {
			g.Set(from, d.String()[0])
		}
	}
	if len(path) > 0 {
		g.Set(m.Pt(path[0]), 'E')
	}
	return g.String()
}
