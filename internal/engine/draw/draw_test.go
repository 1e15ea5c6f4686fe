package draw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tcgtools/topdeck/internal/engine/deck"
	"github.com/tcgtools/topdeck/internal/engine/draw"
)

func TestValidVectors_Completeness(t *testing.T) {
	vectors := draw.ValidVectors([]int{2, 2}, 2, [][]string{nil, nil}, nil)
	assert.ElementsMatch(t, [][]int{{0, 2}, {1, 1}, {2, 0}}, vectors,
		"all compositions of 2 draws over [2,2] must appear exactly once")
}

func TestValidVectors_ThresholdFiltering(t *testing.T) {
	vectors := draw.ValidVectors(
		[]int{3, 1}, 2,
		[][]string{{"A"}, {"Brick"}},
		map[string]deck.Threshold{"Brick": {Min: 0, Max: 0}},
	)
	assert.Equal(t, [][]int{{2, 0}}, vectors,
		"a zero-brick threshold must reject every vector that draws the brick")
}

func TestValidVectors_OverdrawIsEmpty(t *testing.T) {
	vectors := draw.ValidVectors([]int{2, 2}, 5, [][]string{nil, nil}, nil)
	assert.Empty(t, vectors, "drawing more than the population must yield no vectors")
}

func TestValidVectors_ZeroDraws(t *testing.T) {
	roleSets := [][]string{{"Starter"}, nil}

	// An empty hand satisfies "at most N" for any N.
	atMost := draw.ValidVectors([]int{3, 2}, 0, roleSets,
		map[string]deck.Threshold{"Starter": {Min: 0, Max: 2}})
	assert.Equal(t, [][]int{{0, 0}}, atMost)

	// An empty hand fails "at least 1".
	atLeast := draw.ValidVectors([]int{3, 2}, 0, roleSets,
		map[string]deck.Threshold{"Starter": {Min: 1, Max: 2}})
	assert.Empty(t, atLeast)
}

// TestValidVectors_MultiRoleCounting verifies that a category tagged
// with two roles contributes its full drawn count to both role sums.
func TestValidVectors_MultiRoleCounting(t *testing.T) {
	vectors := draw.ValidVectors(
		[]int{3}, 3,
		[][]string{{"Starter", "Extender"}},
		map[string]deck.Threshold{
			"Starter":  {Min: 3, Max: 3},
			"Extender": {Min: 3, Max: 3},
		},
	)
	assert.Equal(t, [][]int{{3}}, vectors,
		"3 dual-role cards must count as 3 Starters and 3 Extenders")
}

func TestValidVectors_LastCategoryAssignedDirectly(t *testing.T) {
	// The remainder must exactly fit the final category.
	vectors := draw.ValidVectors([]int{1, 2}, 3, [][]string{nil, nil}, nil)
	require.Len(t, vectors, 1)
	assert.Equal(t, []int{1, 2}, vectors[0])
}

func TestRoleSums(t *testing.T) {
	sums := draw.RoleSums([]int{2, 0, 3}, [][]string{{"A"}, {"A"}, {"A", "B"}})
	assert.Equal(t, map[string]int{"A": 5, "B": 3}, sums)
}

// TestValidVectors_Shape_Property verifies the structural
// postconditions for arbitrary small populations.
func TestValidVectors_Shape_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		population := rapid.SliceOfN(rapid.IntRange(0, 5), 1, 4).Draw(rt, "population")
		total := 0
		for _, p := range population {
			total += p
		}
		draws := rapid.IntRange(0, total).Draw(rt, "draws")
		roleSets := make([][]string, len(population))

		vectors := draw.ValidVectors(population, draws, roleSets, nil)
		require.NotEmpty(rt, vectors, "unconstrained in-range draws always have a composition")

		seen := make(map[string]bool)
		for _, vec := range vectors {
			require.Len(rt, vec, len(population))
			sum := 0
			for i, n := range vec {
				assert.GreaterOrEqual(rt, n, 0)
				assert.LessOrEqual(rt, n, population[i], "vector must respect category population")
				sum += n
			}
			assert.Equal(rt, draws, sum, "vector must sum to the draw count")
			key := ""
			for _, n := range vec {
				key += string(rune('a'+n)) + ","
			}
			assert.False(rt, seen[key], "vectors must be unique")
			seen[key] = true
		}
	})
}
