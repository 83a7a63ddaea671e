// Package population procedurally generates the background townspeople:
// quota-matched jobs, unique names, budget-allocated personalities, daily
// routines, and aggregate statistics over the live agent set.
package population

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"riverside/internal/agent"
	"riverside/internal/traits"
	"riverside/internal/world"
)

// maxNameAttempts bounds name redraws before generation fails.
const maxNameAttempts = 100

// GenerationError reports name-pool exhaustion. It aborts the one agent
// being created; agents created earlier in the batch stay valid.
type GenerationError struct {
	Attempts int
	Pool     int // distinct first×last combinations available
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("no unique name after %d attempts (pool of %d combinations)", e.Attempts, e.Pool)
}

// Generator is a constraint-driven agent factory. It owns its random
// source so a fixed seed reproduces an identical population.
type Generator struct {
	rng    *rand.Rand
	target int

	quotas     map[string]int
	quotaOrder []string

	firstNames []string
	lastNames  []string

	registry map[string]*agent.Agent
	agents   []*agent.Agent
}

// NewGenerator creates a generator with the default job quotas and name
// pools, targeting the default population of 300.
func NewGenerator(seed int64) *Generator {
	g := &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		target:     300,
		firstNames: firstNames,
		lastNames:  lastNames,
		registry:   make(map[string]*agent.Agent),
	}
	g.SetQuotas(defaultJobQuotas)
	return g
}

// SetQuotas replaces the job-quota table. Iteration order is fixed by
// sorted job name so generation stays deterministic.
func (g *Generator) SetQuotas(quotas map[string]int) {
	g.quotas = make(map[string]int, len(quotas))
	g.quotaOrder = g.quotaOrder[:0]
	for job, n := range quotas {
		g.quotas[job] = n
		g.quotaOrder = append(g.quotaOrder, job)
	}
	sort.Strings(g.quotaOrder)
}

// SetNamePools replaces the first/last name pools (testing knob).
func (g *Generator) SetNamePools(first, last []string) {
	g.firstNames = first
	g.lastNames = last
}

// SetTarget sets the nominal population size used in summaries.
func (g *Generator) SetTarget(n int) {
	g.target = n
}

// Target returns the nominal population size.
func (g *Generator) Target() int {
	return g.target
}

// Agents returns all generated agents in creation order.
func (g *Generator) Agents() []*agent.Agent {
	return append([]*agent.Agent(nil), g.agents...)
}

// Find returns the generated agent with the given name, or nil.
func (g *Generator) Find(name string) *agent.Agent {
	return g.registry[name]
}

// Create generates exactly count agents whose job distribution matches the
// quota table as closely as integer counts allow: the quota entries are
// expanded, padded with uniformly sampled jobs (or truncated after a
// shuffle) to reach count. Names are unique within the population; on
// pool exhaustion Create stops with a *GenerationError, returning the
// agents built so far intact.
func (g *Generator) Create(count int) ([]*agent.Agent, error) {
	jobs := make([]string, 0, count)
	for _, job := range g.quotaOrder {
		for i := 0; i < g.quotas[job]; i++ {
			jobs = append(jobs, job)
		}
	}
	for len(jobs) < count {
		jobs = append(jobs, g.quotaOrder[g.rng.Intn(len(g.quotaOrder))])
	}
	g.rng.Shuffle(len(jobs), func(i, j int) {
		jobs[i], jobs[j] = jobs[j], jobs[i]
	})
	jobs = jobs[:count]

	created := make([]*agent.Agent, 0, count)
	for _, job := range jobs {
		name, err := g.uniqueName()
		if err != nil {
			return created, err
		}
		a := g.newTownsperson(name, job)
		g.registry[name] = a
		g.agents = append(g.agents, a)
		created = append(created, a)
	}
	return created, nil
}

func (g *Generator) uniqueName() (string, error) {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		first := g.firstNames[g.rng.Intn(len(g.firstNames))]
		last := g.lastNames[g.rng.Intn(len(g.lastNames))]
		name := first + " " + last
		if _, taken := g.registry[name]; !taken {
			return name, nil
		}
	}
	return "", &GenerationError{
		Attempts: maxNameAttempts,
		Pool:     len(g.firstNames) * len(g.lastNames),
	}
}

func (g *Generator) newTownsperson(name, job string) *agent.Agent {
	a := agent.New(name, job, g.rollPersonality(), 18+g.rng.Intn(58), backgroundFor(job))
	a.WorkLocation = workLocationFor(job)
	a.Preferred = preferredLocations(a.Personality)
	a.Routine = g.rollRoutine(a.WorkLocation)
	return a
}

// rollPersonality allocates the 100-point budget sequentially: the first
// nine traits in declaration order each draw up to min(remaining, 30), and
// the tenth trait takes whatever is left. The sum invariant always holds;
// the final trait in the order skews high as a consequence, which is the
// documented behavior.
func (g *Generator) rollPersonality() traits.Profile {
	var vals [traits.NumTraits]int
	remaining := traits.TargetSum
	for i := 0; i < traits.NumTraits-1; i++ {
		max := remaining
		if max > 30 {
			max = 30
		}
		points := g.rng.Intn(max + 1)
		vals[i] = points
		remaining -= points
	}
	vals[traits.NumTraits-1] = remaining
	return traits.MustNew(traits.FromOrder(vals))
}

// rollRoutine builds the fixed daily plan: work, lunch, sometimes an
// evening social block, then personal time at home.
func (g *Generator) rollRoutine(workLocation string) []agent.RoutineEntry {
	workHours := 6 + g.rng.Intn(5) // 6–10
	start := 6 + g.rng.Intn(4)     // 6–9

	routine := []agent.RoutineEntry{
		{StartHour: start, Activity: "work", Location: workLocation, Duration: workHours},
		{StartHour: start + workHours/2, Activity: "lunch_break", Location: "town_center", Duration: 1},
	}
	if g.rng.Float64() > 0.7 {
		spots := []string{"town_center", "riverside"}
		routine = append(routine, agent.RoutineEntry{
			StartHour: start + workHours + 1,
			Activity:  "social_time",
			Location:  spots[g.rng.Intn(len(spots))],
			Duration:  2,
		})
	}
	routine = append(routine, agent.RoutineEntry{
		StartHour: start + workHours + 3,
		Activity:  "personal_time",
		Location:  agent.RoutineHome,
		Duration:  3,
	})
	return routine
}

// preferredLocations derives a location preference list from the dominant
// trait (not the job).
func preferredLocations(p traits.Profile) []string {
	switch p.Dominant(1)[0] {
	case traits.Social:
		return []string{"town_center", "riverside", "marina"}
	case traits.Curiosity, traits.Analytical:
		return []string{"research_station", "riverside", "town_center"}
	case traits.Cautious:
		return []string{"town_center", "hospital"}
	case traits.Empathy:
		return []string{"hospital", "town_center"}
	case traits.Creativity:
		return []string{"riverside", "marina", "town_center"}
	default:
		return []string{"riverside", "town_center"}
	}
}

// Distribute moves every generated agent still at the default starting
// location to one of its preferred locations when declared in the world,
// otherwise to a uniformly random declared location. One summary event
// covers the whole batch.
func (g *Generator) Distribute(w *world.World) {
	keys := w.LocationKeys()
	for _, a := range g.agents {
		if a.Location != agent.DefaultLocation {
			continue
		}
		pick := a.Preferred[g.rng.Intn(len(a.Preferred))]
		if !w.HasLocation(pick) {
			pick = keys[g.rng.Intn(len(keys))]
		}
		w.Move(a, pick)
	}
	w.Log("population_distribution",
		fmt.Sprintf("Distributed %d townspeople across the world", len(g.agents)),
		"global",
		fmt.Sprintf("%d townspeople", len(g.agents)))
}

// Summary is the recomputed aggregate view of the generated population.
type Summary struct {
	TotalAgents        int                     `json:"total_agents"`
	Target             int                     `json:"target"`
	CompletionPct      float64                 `json:"completion_pct"`
	JobCounts          map[string]int          `json:"job_counts"`
	JobDiversity       int                     `json:"job_diversity"`
	AgeBuckets         map[string]int          `json:"age_buckets"`
	TraitAverages      map[traits.Name]float64 `json:"trait_averages"`
	LocationSpread     map[string]int          `json:"location_spread"`
	TotalRelationships int                     `json:"total_relationships"`
	AvgRelationships   float64                 `json:"avg_relationships"`
	HighlySocial       int                     `json:"highly_social"`
}

// Summary recomputes aggregate statistics from the live agent set. Pure
// read; safe to call at any time.
func (g *Generator) Summary() Summary {
	s := Summary{
		TotalAgents:    len(g.agents),
		Target:         g.target,
		JobCounts:      make(map[string]int),
		AgeBuckets:     map[string]int{"18-30": 0, "31-45": 0, "46-60": 0, "61-75": 0},
		TraitAverages:  make(map[traits.Name]float64, traits.NumTraits),
		LocationSpread: make(map[string]int),
	}
	if g.target > 0 {
		s.CompletionPct = round1(float64(len(g.agents)) / float64(g.target) * 100)
	}

	traitTotals := make(map[traits.Name]int, traits.NumTraits)
	for _, a := range g.agents {
		s.JobCounts[a.Job]++
		s.LocationSpread[a.Location]++
		s.TotalRelationships += len(a.Relationships)

		switch {
		case a.Age <= 30:
			s.AgeBuckets["18-30"]++
		case a.Age <= 45:
			s.AgeBuckets["31-45"]++
		case a.Age <= 60:
			s.AgeBuckets["46-60"]++
		default:
			s.AgeBuckets["61-75"]++
		}

		for _, name := range traits.Order {
			traitTotals[name] += a.Personality.Get(name)
		}
		if a.Personality.Get(traits.Social) >= 20 {
			s.HighlySocial++
		}
	}

	s.JobDiversity = len(s.JobCounts)
	if n := len(g.agents); n > 0 {
		for _, name := range traits.Order {
			s.TraitAverages[name] = round1(float64(traitTotals[name]) / float64(n))
		}
		s.AvgRelationships = round1(float64(s.TotalRelationships) / float64(n))
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
