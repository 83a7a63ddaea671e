package agent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riverside/internal/traits"
)

func TestPrincipalProfilesAreValid(t *testing.T) {
	marina := NewResearcher()
	assert.Equal(t, RoleResearcher, marina.Role)
	assert.True(t, marina.Role.Principal())
	require.NotNil(t, marina.Researcher)
	assert.Nil(t, marina.Surgeon)
	assert.Equal(t, "research_station", marina.Location)
	assert.Equal(t, 25, marina.Personality.Get(traits.Curiosity))
	assert.Len(t, marina.Researcher.Projects, 3)

	alex := NewSurgeon()
	assert.Equal(t, RoleSurgeon, alex.Role)
	require.NotNil(t, alex.Surgeon)
	assert.Nil(t, alex.Researcher)
	assert.Equal(t, "hospital", alex.Location)
	assert.Equal(t, 25, alex.Personality.Get(traits.Empathy))
}

func TestCollectWaterSamplesAccumulates(t *testing.T) {
	w := newStubWorld("research_station")
	rng := rand.New(rand.NewSource(2))

	marina := NewResearcher()
	w.place(marina, "research_station")

	marina.ExecuteAction("collect_water_samples", w, rng)
	first := marina.Researcher.SamplesCollected
	assert.GreaterOrEqual(t, first, 1)
	assert.LessOrEqual(t, first, 3)

	marina.ExecuteAction("collect_water_samples", w, rng)
	assert.Greater(t, marina.Researcher.SamplesCollected, first)
	assert.Contains(t, w.logged, "research_activity")
}

func TestAnalyzeSpecimensNeedsSamples(t *testing.T) {
	w := newStubWorld("research_station")
	rng := rand.New(rand.NewSource(2))

	marina := NewResearcher()
	w.place(marina, "research_station")

	// No samples: a silent no-op, never a discovery.
	for i := 0; i < 50; i++ {
		marina.ExecuteAction("analyze_specimens", w, rng)
	}
	assert.Empty(t, marina.Researcher.Discoveries)
	assert.NotContains(t, w.logged, "scientific_discovery")
}

func TestAnalyzeSpecimensCanDiscover(t *testing.T) {
	w := newStubWorld("research_station")
	rng := rand.New(rand.NewSource(2))

	marina := NewResearcher()
	w.place(marina, "research_station")
	marina.Researcher.SamplesCollected = 10

	for i := 0; i < 200; i++ {
		marina.Energy = 100
		marina.ExecuteAction("analyze_specimens", w, rng)
	}

	// ~30% discovery chance per analysis; 200 runs make zero hits
	// astronomically unlikely.
	assert.NotEmpty(t, marina.Researcher.Discoveries)
	assert.Contains(t, w.logged, "scientific_discovery")
	for _, d := range marina.Researcher.Discoveries {
		assert.Contains(t, d, "Unusual ")
	}
}

func TestDiveOnlyAtRiverside(t *testing.T) {
	w := newStubWorld("research_station", "riverside")
	rng := rand.New(rand.NewSource(2))

	marina := NewResearcher()
	w.place(marina, "research_station")

	marina.ExecuteAction("dive_for_samples", w, rng)
	assert.Equal(t, 0, marina.Researcher.SamplesCollected)

	w.Move(marina, "riverside")
	marina.ExecuteAction("dive_for_samples", w, rng)
	assert.GreaterOrEqual(t, marina.Researcher.SamplesCollected, 2)
	assert.LessOrEqual(t, marina.Researcher.SamplesCollected, 5)
}

func TestDocumentFindingsNeedsDiscoveries(t *testing.T) {
	w := newStubWorld("research_station")
	rng := rand.New(rand.NewSource(2))

	marina := NewResearcher()
	w.place(marina, "research_station")

	marina.ExecuteAction("document_findings", w, rng)
	assert.NotContains(t, w.logged, "research_documentation")

	marina.Researcher.Discoveries = []string{"Unusual algae strain"}
	marina.ExecuteAction("document_findings", w, rng)
	assert.Contains(t, w.logged, "research_documentation")
}

func TestPerformSurgeryRecordsCase(t *testing.T) {
	w := newStubWorld("hospital")
	rng := rand.New(rand.NewSource(4))

	alex := NewSurgeon()
	w.place(alex, "hospital")

	alex.ExecuteAction("perform_surgery", w, rng)

	assert.Equal(t, 1, alex.Surgeon.SurgeriesPerformed)
	require.Len(t, alex.Surgeon.Cases, 1)
	c := alex.Surgeon.Cases[0]
	assert.Contains(t, surgeryTypes, c.Type)
	assert.Contains(t, surgeryComplexities, c.Complexity)
	assert.Equal(t, "successful", c.Outcome)
	assert.Contains(t, w.logged, "medical_surgery")
}

func TestExaminePatientsAccumulates(t *testing.T) {
	w := newStubWorld("hospital")
	rng := rand.New(rand.NewSource(4))

	alex := NewSurgeon()
	w.place(alex, "hospital")

	alex.ExecuteAction("examine_patients", w, rng)
	seen := alex.Surgeon.PatientsTreated
	assert.GreaterOrEqual(t, seen, 1)
	assert.LessOrEqual(t, seen, 4)

	alex.ExecuteAction("examine_patients", w, rng)
	assert.Greater(t, alex.Surgeon.PatientsTreated, seen)
}
