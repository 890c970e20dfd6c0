package hillclimb

import (
	aoc "github.com/maisem/aoc2022"
)

// Candidates returns the unvisited neighbors of idx that can be stepped to:
// anything lower, level, or one higher. Order is left, right, up, down.
func Candidates(m *Map, idx int) []int {
	w := m.Width
	nbrs := make([]int, 0, 4)
	if idx%w != 0 {
		nbrs = append(nbrs, idx-1)
	}
	if idx%w != w-1 {
		nbrs = append(nbrs, idx+1)
	}
	if idx >= w {
		nbrs = append(nbrs, idx-w)
	}
	if idx+w < len(m.Tiles) {
		nbrs = append(nbrs, idx+w)
	}

	cur := int(m.Tiles[idx].Elevation)
	out := nbrs[:0]
	for _, n := range nbrs {
		t := m.Tiles[n]
		if t.Visited || int(t.Elevation)-cur > 1 {
			continue
		}
		out = append(out, n)
	}
	return out
}

// FindPath runs a breadth-first search on m from start and returns the
// shortest path to end as tile indexes from end back to start, both
// included. It returns nil if end is unreachable.
//
// Tiles are marked visited when queued, so none is dequeued twice. m must be
// fresh; use Map.Fresh to search the same map again.
func FindPath(m *Map, start, end int) []int {
	q := aoc.NewQueue(start)
	m.Tiles[start].Visited = true
	for idx, ok := q.Pop(); ok; idx, ok = q.Pop() {
		if idx == end {
			return m.trace(start, end)
		}
		for _, n := range Candidates(m, idx) {
			m.Tiles[n].Visited = true
			m.Tiles[n].Parent = idx
			q.Push(n)
		}
	}
	return nil
}

func (m *Map) trace(start, end int) []int {
	path := []int{end}
	for idx := end; idx != start; {
		idx = m.Tiles[idx].Parent
		path = append(path, idx)
	}
	return path
}

// Steps returns the number of moves along path, or -1 for an empty path.
func Steps(path []int) int {
	return len(path) - 1
}

// ShortestPath returns the fewest steps from m's start to its end.
func ShortestPath(m *Map) (int, error) {
	f := m.Fresh()
	path := FindPath(f, f.Start, f.End)
	if path == nil {
		return 0, ErrNoPath
	}
	return Steps(path), nil
}

// ShortestFromLowest returns the fewest steps to m's end from any tile at
// elevation 'a'. Each candidate is searched on its own fresh copy of m.
func ShortestFromLowest(m *Map) (int, error) {
	steps := aoc.Parallel(m.Lowest(), func(start int) int {
		f := m.Fresh()
		return Steps(FindPath(f, start, f.End))
	})
	best := -1
	for _, n := range steps {
		if n >= 0 && (best < 0 || n < best) {
			best = n
		}
	}
	if best < 0 {
		return 0, ErrNoPath
	}
	return best, nil
}
