package aoc

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallel calls f on every element of in using at most GOMAXPROCS
// goroutines. The i'th output is f(in[i]).
func Parallel[I, O any](in []I, f func(I) O) []O {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	out := make([]O, len(in))
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			out[i] = f(v)
			return nil
		})
	}
	g.Wait()
	return out
}

// Fold reduces in to a single value, starting from defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMapFold maps in with f in parallel and folds the results with f2.
func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
