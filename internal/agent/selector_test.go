package agent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riverside/internal/traits"
)

func flatProfile() traits.Profile {
	return traits.MustNew(traits.FromOrder([traits.NumTraits]int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10}))
}

func TestSelectEmptyCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, "", Select(rng, flatProfile(), 100, nil))
}

func TestSelectAlwaysReturnsACandidate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	candidates := []string{"rest", "explore", "socialize", "work_at_job"}
	for i := 0; i < 500; i++ {
		got := Select(rng, flatProfile(), 50, candidates)
		assert.Contains(t, candidates, got)
	}
}

func TestSelectReproducibleFromSeed(t *testing.T) {
	candidates := []string{"rest", "explore", "socialize", "conduct_research", "enjoy_hobby"}

	run := func(seed int64) []string {
		rng := rand.New(rand.NewSource(seed))
		out := make([]string, 100)
		for i := range out {
			out[i] = Select(rng, flatProfile(), 40, candidates)
		}
		return out
	}

	assert.Equal(t, run(42), run(42))
}

func TestRestWeightGrowsWithFatigue(t *testing.T) {
	p := flatProfile()
	prev := -1.0
	for energy := 100; energy >= 0; energy -= 20 {
		w := weightFor(p, energy, "rest")
		require.Greater(t, w, prev, "rest weight must rise as energy falls (energy=%d)", energy)
		prev = w
	}
	assert.InDelta(t, 1.0, weightFor(p, 100, "rest"), 1e-9)
	assert.InDelta(t, 3.0, weightFor(p, 0, "rest"), 1e-9)
}

func TestCategoryTraitTermsRaiseWeight(t *testing.T) {
	curious := traits.MustNew(traits.Values{Curiosity: 50, Analytical: 50})
	dull := traits.MustNew(traits.Values{Humor: 50, Adaptability: 50})

	assert.Greater(t,
		weightFor(curious, 100, "conduct_research"),
		weightFor(dull, 100, "conduct_research"))
}

func TestUntaggedActionKeepsBaseWeight(t *testing.T) {
	assert.InDelta(t, 1.0, weightFor(flatProfile(), 100, "feed_ducks"), 1e-9)
}

func TestTiredAgentsFavorRest(t *testing.T) {
	candidates := []string{"rest", "explore", "socialize"}
	p := flatProfile()

	count := func(energy int) int {
		rng := rand.New(rand.NewSource(11))
		n := 0
		for i := 0; i < 2000; i++ {
			if Select(rng, p, energy, candidates) == "rest" {
				n++
			}
		}
		return n
	}

	assert.Greater(t, count(5), count(95))
}
