package population

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riverside/internal/agent"
	"riverside/internal/traits"
	"riverside/internal/world"
)

func TestCreateMatchesQuotasExactly(t *testing.T) {
	g := NewGenerator(1)
	g.SetQuotas(map[string]int{"fisherman": 3, "baker": 2})

	agents, err := g.Create(5)
	require.NoError(t, err)
	require.Len(t, agents, 5)

	counts := map[string]int{}
	for _, a := range agents {
		counts[a.Job]++
	}
	assert.Equal(t, map[string]int{"fisherman": 3, "baker": 2}, counts)
}

func TestCreatePadsBeyondQuotaSum(t *testing.T) {
	g := NewGenerator(2)
	g.SetQuotas(map[string]int{"fisherman": 2, "baker": 1})

	agents, err := g.Create(10)
	require.NoError(t, err)
	require.Len(t, agents, 10)

	for _, a := range agents {
		assert.Contains(t, []string{"fisherman", "baker"}, a.Job)
	}
}

func TestCreateProducesValidAgents(t *testing.T) {
	g := NewGenerator(3)
	agents, err := g.Create(100)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, a := range agents {
		require.False(t, seen[a.Name], "duplicate name %s", a.Name)
		seen[a.Name] = true

		sum := 0
		vals := a.Personality.Values()
		for _, v := range []int{vals.Curiosity, vals.Empathy, vals.Confidence, vals.Creativity,
			vals.Analytical, vals.Social, vals.Cautious, vals.Ambitious, vals.Humor, vals.Adaptability} {
			assert.GreaterOrEqual(t, v, 0)
			sum += v
		}
		assert.Equal(t, traits.TargetSum, sum, "%s trait budget", a.Name)

		assert.GreaterOrEqual(t, a.Age, 18)
		assert.LessOrEqual(t, a.Age, 75)
		assert.Equal(t, agent.RoleGeneric, a.Role)
		assert.Equal(t, 100, a.Energy)
		assert.NotEmpty(t, a.Background)
		assert.NotEmpty(t, a.Preferred)
		assert.NotEmpty(t, a.WorkLocation)
		require.NotEmpty(t, a.Routine)
		assert.Equal(t, "work", a.Routine[0].Activity)
		assert.Equal(t, a.WorkLocation, a.Routine[0].Location)
		assert.Equal(t, agent.RoutineHome, a.Routine[len(a.Routine)-1].Location)
	}
}

func TestCreateReproducibleFromSeed(t *testing.T) {
	run := func() []string {
		g := NewGenerator(99)
		agents, err := g.Create(30)
		require.NoError(t, err)
		names := make([]string, len(agents))
		for i, a := range agents {
			names[i] = a.Name
		}
		return names
	}
	assert.Equal(t, run(), run())
}

func TestCreateFailsOnNamePoolExhaustion(t *testing.T) {
	g := NewGenerator(4)
	g.SetNamePools([]string{"Sam"}, []string{"Rivers"})

	agents, err := g.Create(2)
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, maxNameAttempts, genErr.Attempts)
	assert.Equal(t, 1, genErr.Pool)

	// The first agent survives the failure.
	require.Len(t, agents, 1)
	assert.Equal(t, "Sam Rivers", agents[0].Name)
	assert.Len(t, g.Agents(), 1)
}

func TestFindReturnsGeneratedAgent(t *testing.T) {
	g := NewGenerator(5)
	agents, err := g.Create(10)
	require.NoError(t, err)

	assert.Same(t, agents[0], g.Find(agents[0].Name))
	assert.Nil(t, g.Find("No Such Person"))
}

func TestDistributePlacesEveryone(t *testing.T) {
	w := world.New("Riverside Town", time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), 1, &world.MemorySink{})
	g := NewGenerator(6)
	agents, err := g.Create(50)
	require.NoError(t, err)
	for _, a := range agents {
		w.AddAgent(a)
	}

	g.Distribute(w)

	require.NoError(t, w.CheckOccupancy())
	for _, a := range agents {
		assert.True(t, w.HasLocation(a.Location), "%s ended at %q", a.Name, a.Location)
	}

	found := 0
	for _, ev := range w.Events() {
		if ev.Type == "population_distribution" {
			found++
		}
	}
	assert.Equal(t, 1, found)
}

func TestSummaryAggregates(t *testing.T) {
	g := NewGenerator(7)
	g.SetTarget(60)
	_, err := g.Create(60)
	require.NoError(t, err)

	s := g.Summary()
	assert.Equal(t, 60, s.TotalAgents)
	assert.Equal(t, 60, s.Target)
	assert.InDelta(t, 100.0, s.CompletionPct, 0.01)
	assert.Greater(t, s.JobDiversity, 1)

	totalJobs := 0
	for _, n := range s.JobCounts {
		totalJobs += n
	}
	assert.Equal(t, 60, totalJobs)

	totalAges := 0
	for _, n := range s.AgeBuckets {
		totalAges += n
	}
	assert.Equal(t, 60, totalAges)

	avgSum := 0.0
	for _, name := range traits.Order {
		avgSum += s.TraitAverages[name]
	}
	// Per-agent sums are exactly 100; rounding each average to one decimal
	// keeps the total within a hair of it.
	assert.InDelta(t, float64(traits.TargetSum), avgSum, 1.0)
}

func TestPreferredLocationsFollowDominantTrait(t *testing.T) {
	social := traits.MustNew(traits.Values{Social: 60, Curiosity: 40})
	assert.Equal(t, []string{"town_center", "riverside", "marina"}, preferredLocations(social))

	curious := traits.MustNew(traits.Values{Curiosity: 60, Social: 40})
	assert.Equal(t, []string{"research_station", "riverside", "town_center"}, preferredLocations(curious))

	caring := traits.MustNew(traits.Values{Empathy: 60, Humor: 40})
	assert.Equal(t, []string{"hospital", "town_center"}, preferredLocations(caring))
}

func TestWorkLocationFallback(t *testing.T) {
	assert.Equal(t, "riverside", workLocationFor("fisherman"))
	assert.Equal(t, "marina", workLocationFor("boat_captain"))
	assert.Equal(t, "town_center", workLocationFor("accountant"))
}

func TestBackgroundFallback(t *testing.T) {
	assert.Contains(t, backgroundFor("fisherman"), "river")
	assert.Equal(t, "Local resident working as a plumber in the riverside community", backgroundFor("plumber"))
}
