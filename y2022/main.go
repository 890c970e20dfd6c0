package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/hillclimb"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) heightMap() *hillclimb.Map {
	return aoc.MustGet(hillclimb.Parse(string(s.Input())))
}

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() any {
	m := s.heightMap()
	f := m.Fresh()
	path := hillclimb.FindPath(f, f.Start, f.End)
	if path == nil {
		return hillclimb.ErrNoPath
	}
	s.Debugf("path:\n%s", m.Render(path))
	return hillclimb.Steps(path)
}

// want=29
func (s solver) D12p2() any {
	n, err := hillclimb.ShortestFromLowest(s.heightMap())
	if err != nil {
		return err
	}
	return n
}
