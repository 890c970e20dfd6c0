package aoc

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ForImmediateNeighbors calls f on the four points sharing an edge with p,
// in reading order.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for _, d := range [...]Pt2[T]{{0, -1}, {-1, 0}, {1, 0}, {0, 1}} {
		if !f(Pt2[T]{p.X + d.X, p.Y + d.Y}) {
			return
		}
	}
}

// XDist returns the horizontal distance between a and b.
func (a Pt2[T]) XDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X)
}

// YDist returns the vertical distance between a and b.
func (a Pt2[T]) YDist(b Pt2[T]) T {
	return AbsDiff(a.Y, b.Y)
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return a.XDist(b) + a.YDist(b)
}

// Dist returns the euclidean distance between a and b.
func (a Pt2[T]) Dist(b Pt2[T]) float64 {
	return math.Hypot(float64(a.XDist(b)), float64(a.YDist(b)))
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}
