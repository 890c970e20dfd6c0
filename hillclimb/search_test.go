package hillclimb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	m := mustParse(t, sample)
	cases := []struct {
		name string
		idx  int
		want []int
	}{
		{"TopLeftCorner", 0, []int{1, 8}},
		{"TopRightCorner", 7, []int{6, 15}},
		{"SecondRowReachesTopRow", 8, []int{9, 0, 16}},
		{"BottomRow", 33, []int{32, 25}},
		{"TooSteep", 2, []int{1, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Candidates(m, tc.idx))
		})
	}
}

func TestCandidates_ClimbRule(t *testing.T) {
	m := mustParse(t, "Sc\naE\n")
	require.Equal(t, []int{2}, Candidates(m, 0), "cannot climb two levels")
	require.Equal(t, []int{0}, Candidates(m, 1), "can always descend")

	m.Tiles[2].Visited = true
	require.Empty(t, Candidates(m, 0))
}

func TestFindPath(t *testing.T) {
	m := mustParse(t, sample)
	path := FindPath(m, m.Start, m.End)
	require.Equal(t, 31, Steps(path))
	require.Equal(t, m.End, path[0])
	require.Equal(t, m.Start, path[len(path)-1])

	seen := make(map[int]bool)
	for i, idx := range path {
		require.Falsef(t, seen[idx], "tile %d appears twice", idx)
		seen[idx] = true
		if i == 0 {
			continue
		}
		from, to := m.Pt(idx), m.Pt(path[i-1])
		require.Equal(t, 1, from.MDist(to), "steps must be between adjacent tiles")
		require.LessOrEqual(t, int(m.Tiles[path[i-1]].Elevation)-int(m.Tiles[idx].Elevation), 1)
	}
}

func TestFindPath_SameTile(t *testing.T) {
	m := &Map{
		Tiles: []Tile{{Elevation: 'a', Parent: -1}},
		Width: 1,
	}
	path := FindPath(m, 0, 0)
	require.Equal(t, []int{0}, path)
	require.Equal(t, 0, Steps(path))
}

func TestFindPath_Unreachable(t *testing.T) {
	m := mustParse(t, "SbE\n")
	require.Nil(t, FindPath(m, m.Start, m.End))
	require.Equal(t, -1, Steps(nil))
}

func TestShortestPath(t *testing.T) {
	m := mustParse(t, sample)
	before := m.Hash()

	n, err := ShortestPath(m)
	require.NoError(t, err)
	require.Equal(t, 31, n)

	again, err := ShortestPath(m)
	require.NoError(t, err)
	require.Equal(t, n, again)
	require.Equal(t, before, m.Hash(), "ShortestPath must not mutate its input")
}

func TestShortestPath_NoPath(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"TooSteep", "SbE\n"},
		{"WalledIn", "Saaaa\naaccc\naacEc\naaccc\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustParse(t, tc.input)
			_, err := ShortestPath(m)
			require.ErrorIs(t, err, ErrNoPath)
			_, err = ShortestFromLowest(m)
			require.ErrorIs(t, err, ErrNoPath)
		})
	}
}

func TestShortestFromLowest(t *testing.T) {
	m := mustParse(t, sample)
	before := m.Hash()

	n, err := ShortestFromLowest(m)
	require.NoError(t, err)
	require.Equal(t, 29, n)
	require.Equal(t, before, m.Hash(), "ShortestFromLowest must not mutate its input")

	one, err := ShortestPath(m)
	require.NoError(t, err)
	require.LessOrEqual(t, n, one)
}

func TestShortestFromLowest_SkipsUnreachable(t *testing.T) {
	// The 'a' in the bottom-left corner is walled in by 'c' tiles.
	m := mustParse(t, strings.Join([]string{
		"S" + "bcdefghijklmnopqrstuvwxyz",
		strings.Repeat("c", 24) + "yE",
		"a" + strings.Repeat("c", 25),
	}, "\n"))
	n, err := ShortestFromLowest(m)
	require.NoError(t, err)
	p1, err := ShortestPath(m)
	require.NoError(t, err)
	require.Equal(t, 26, p1)
	require.Equal(t, p1, n)
}
