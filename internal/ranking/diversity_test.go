package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xizzxy/NextMove/internal/scoring"
)

func TestUniqueScoresNoDuplicates(t *testing.T) {
	cases := [][]int{
		{80, 80, 80, 80},
		{100, 100, 100},
		{0, 0, 0},
		{55, 54, 55, 53, 55},
		{},
	}

	for _, values := range cases {
		out := UniqueScores(values)
		require.Len(t, out, len(values))

		seen := make(map[int]struct{})
		for _, v := range out {
			_, dup := seen[v]
			require.False(t, dup, "duplicate %d in %v", v, out)
			seen[v] = struct{}{}
			require.GreaterOrEqual(t, v, 0)
			require.LessOrEqual(t, v, 100)
		}
	}
}

func TestUniqueScoresPrefersDecrement(t *testing.T) {
	out := UniqueScores([]int{90, 90, 90})
	assert.Equal(t, []int{90, 89, 88}, out)
}

func TestUniqueScoresZeroFloorWalksUp(t *testing.T) {
	out := UniqueScores([]int{0, 0, 0})
	assert.Equal(t, 0, out[0])
	for _, v := range out[1:] {
		assert.Greater(t, v, 0)
	}
}

func TestUniqueRentsAllowsPairs(t *testing.T) {
	out := UniqueRents([]int{1500, 1500, 1500, 1500})

	count := make(map[int]int)
	for _, rent := range out {
		count[rent]++
		assert.GreaterOrEqual(t, rent, 500)
	}
	for rent, c := range count {
		assert.LessOrEqual(t, c, 2, "rent %d repeated %d times", rent, c)
	}
	// First two keep their original value.
	assert.Equal(t, 1500, out[0])
	assert.Equal(t, 1500, out[1])
}

func TestUniqueRentsRespectsFloor(t *testing.T) {
	out := UniqueRents([]int{400, 500, 500, 500})
	for _, rent := range out {
		assert.GreaterOrEqual(t, rent, 500)
	}
}

func TestUniqueSalaryRangesNoDuplicateStrings(t *testing.T) {
	jit := scoring.NewJitter(11)
	in := []string{
		"$48,000 - $72,000",
		"$48,000 - $72,000",
		"$48,000 - $72,000",
		"$60,000 - $80,000",
	}

	out := UniqueSalaryRanges(in, jit)
	require.Len(t, out, len(in))

	seen := make(map[string]struct{})
	for _, r := range out {
		_, dup := seen[r]
		assert.False(t, dup, "duplicate range %q in %v", r, out)
		seen[r] = struct{}{}
	}
	assert.Equal(t, in[0], out[0], "first occurrence untouched")
}

func TestUniqueSalaryRangesLeavesEmptyAlone(t *testing.T) {
	out := UniqueSalaryRanges([]string{"", "", "competitive", "competitive"}, scoring.NewJitter(3))
	assert.Equal(t, "", out[0])
	assert.Equal(t, "", out[1])
}
