package aoc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyGrid is returned by ParseGrid for input without any cells.
	ErrEmptyGrid = errors.New("aoc: grid must have at least one row and one column")
	// ErrNonRectangular is returned by ParseGrid when rows differ in length.
	ErrNonRectangular = errors.New("aoc: all grid rows must have the same length")
)

// Grid is a row-major 2D grid, indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid splits text into lines of bytes. A trailing newline is ignored;
// every row must be as wide as the first.
func ParseGrid(text string) (Grid[byte], error) {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	g := make(Grid[byte], 0, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if y == 0 && len(line) == 0 {
			return nil, ErrEmptyGrid
		}
		if y > 0 && len(line) != len(g[0]) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(line), len(g[0]))
		}
		g = append(g, []byte(line))
	}
	return g, nil
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// String renders a byte or rune grid one row per line.
func (g Grid[T]) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			switch v := any(v).(type) {
			case byte:
				sb.WriteByte(v)
			case rune:
				sb.WriteRune(v)
			default:
				fmt.Fprint(&sb, v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// DirectionTo returns the direction of the step from a to the adjacent
// point b.
func DirectionTo(a, b Pt) (Direction, bool) {
	switch {
	case b.X == a.X && b.Y == a.Y-1:
		return Up, true
	case b.X == a.X+1 && b.Y == a.Y:
		return Right, true
	case b.X == a.X && b.Y == a.Y+1:
		return Down, true
	case b.X == a.X-1 && b.Y == a.Y:
		return Left, true
	}
	return 0, false
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}
