// Package world owns the location graph, occupancy sets, the monotonic
// hour clock, and the append-only event log. Placement is mutated only
// here: agents request moves, the world applies them.
package world

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	opensimplex "github.com/ojrac/opensimplex-go"

	"riverside/internal/agent"
)

// BackgroundSampleSize is how many background agents act per step,
// independent of total population. A throughput/fidelity tradeoff:
// unsampled agents keep their prior state untouched.
const BackgroundSampleSize = 50

// Location is one named place agents can occupy.
type Location struct {
	Key         string
	Name        string
	Description string

	occupants []*agent.Agent // insertion order, world-owned
}

// World is the single shared mutable resource of the simulation. Step
// serializes a whole tick under the internal lock; the projections
// (Summary, Events, Locations, Roster, Snapshot, Find) take the read side
// and WithAgent the write side, which is what lets the observation API
// read and chat against a live run. The plain mutators (AddAgent, Move,
// Log, AdvanceTime) are unlocked: they run during setup or inside Step.
type World struct {
	Name  string
	RunID string

	mu         sync.RWMutex
	clock      time.Time
	start      time.Time
	locations  map[string]*Location
	order      []string
	principals []*agent.Agent
	background []*agent.Agent
	events     []Event
	sink       EventSink

	sampleSize int
	weather    Weather
	noise      opensimplex.Noise
}

// New creates a world with the default riverside location set. The sink
// receives every logged event; pass a MemorySink when no durable store is
// wanted. The seed drives the weather field only.
func New(name string, start time.Time, seed int64, sink EventSink) *World {
	w := &World{
		Name:       name,
		RunID:      uuid.NewString(),
		clock:      start,
		start:      start,
		locations:  make(map[string]*Location, len(defaultLocations)),
		sink:       sink,
		sampleSize: BackgroundSampleSize,
		noise:      opensimplex.NewNormalized(seed),
	}
	for _, loc := range defaultLocations {
		l := loc
		w.locations[l.Key] = &l
		w.order = append(w.order, l.Key)
	}
	w.weather = w.weatherAt(start)
	return w
}

// SetSink replaces the event sink. Call before the run starts; earlier
// events stay wherever the previous sink put them.
func (w *World) SetSink(sink EventSink) {
	w.sink = sink
}

// SetSampleSize overrides the background sample size (testing knob).
func (w *World) SetSampleSize(n int) {
	if n >= 0 {
		w.sampleSize = n
	}
}

// Now returns the current simulation clock.
func (w *World) Now() time.Time {
	return w.clock
}

// HasLocation reports whether key names a declared location.
func (w *World) HasLocation(key string) bool {
	_, ok := w.locations[key]
	return ok
}

// LocationKeys returns the declared location keys in fixed order.
func (w *World) LocationKeys() []string {
	return append([]string(nil), w.order...)
}

// LocationName returns the display name for a location key, or the key
// itself when unknown.
func (w *World) LocationName(key string) string {
	if loc, ok := w.locations[key]; ok {
		return loc.Name
	}
	return key
}

// Occupants returns a copy of a location's occupant set in arrival order.
func (w *World) Occupants(key string) []*agent.Agent {
	loc, ok := w.locations[key]
	if !ok {
		return nil
	}
	return append([]*agent.Agent(nil), loc.occupants...)
}

// AddAgent registers an agent and places it at its current location
// (falling back to the default start when the location is unknown).
// Principals and background agents keep separate, stable orderings.
func (w *World) AddAgent(a *agent.Agent) {
	if !w.HasLocation(a.Location) {
		a.Location = agent.DefaultLocation
	}
	loc := w.locations[a.Location]
	loc.occupants = append(loc.occupants, a)

	if a.Role.Principal() {
		w.principals = append(w.principals, a)
	} else {
		w.background = append(w.background, a)
	}

	w.Log("character_added", a.Name+" joined the world", a.Location, a.Name)
}

// Move relocates an agent, keeping the occupancy invariant: afterwards the
// agent sits in exactly one occupant set and that set matches its location
// field. Unknown keys are a silent no-op (logged at debug); nothing is
// mutated on that path.
func (w *World) Move(a *agent.Agent, key string) {
	if !w.HasLocation(key) {
		slog.Debug("move to undeclared location ignored", "agent", a.Name, "location", key)
		return
	}

	for _, loc := range w.locations {
		for i, occ := range loc.occupants {
			if occ == a {
				loc.occupants = append(loc.occupants[:i], loc.occupants[i+1:]...)
				break
			}
		}
	}

	dest := w.locations[key]
	dest.occupants = append(dest.occupants, a)
	a.Location = key

	w.Log("character_movement", a.Name+" moved to "+dest.Name, key, a.Name)
}

// AdvanceTime moves the clock forward by whole hours and logs a
// time_update event. Non-positive increments are ignored; time never moves
// backward.
func (w *World) AdvanceTime(hours int) {
	if hours <= 0 {
		return
	}
	w.clock = w.clock.Add(time.Duration(hours) * time.Hour)
	w.weather = w.weatherAt(w.clock)
	w.Log("time_update", "Time advanced to "+w.clock.Format("2006-01-02 15:04"), "global")
}

// Log appends an event at the current clock time and forwards it to the
// sink. Entries are never mutated or removed, and because the clock only
// moves forward their timestamps are non-decreasing.
func (w *World) Log(eventType, description, location string, participants ...string) {
	ev := Event{
		Time:         w.clock,
		Type:         eventType,
		Description:  description,
		Location:     location,
		Participants: append([]string(nil), participants...),
	}
	w.events = append(w.events, ev)
	if w.sink != nil {
		if err := w.sink.Record(ev); err != nil {
			slog.Warn("event sink record failed", "type", eventType, "error", err)
		}
	}
}

// Events returns a copy of the full event log in append order.
func (w *World) Events() []Event {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Event(nil), w.events...)
}

// Principals returns the principal agents in registration order. The
// pointers stay owned by the simulation; while the engine is stepping,
// read them through Snapshot or Roster instead.
func (w *World) Principals() []*agent.Agent {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]*agent.Agent(nil), w.principals...)
}

// Background returns the background agents in registration order. Same
// ownership caveat as Principals.
func (w *World) Background() []*agent.Agent {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]*agent.Agent(nil), w.background...)
}

// Find returns the agent with the given name, or nil. Same ownership
// caveat as Principals.
func (w *World) Find(name string) *agent.Agent {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.find(name)
}

func (w *World) find(name string) *agent.Agent {
	for _, a := range w.principals {
		if a.Name == name {
			return a
		}
	}
	for _, a := range w.background {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Snapshot projects the named agent's observable state under the read
// lock, so it is safe against a concurrently stepping run.
func (w *World) Snapshot(name string) (agent.Summary, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	a := w.find(name)
	if a == nil {
		return agent.Summary{}, false
	}
	return a.Summary(), true
}

// WithAgent runs fn on the named agent under the write lock, passing the
// current clock, and reports whether the agent exists. fn may mutate the
// agent but must not call back into locking World methods.
func (w *World) WithAgent(name string, fn func(a *agent.Agent, now time.Time)) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	a := w.find(name)
	if a == nil {
		return false
	}
	fn(a, w.clock)
	return true
}

// Step advances one simulation hour: the clock ticks, every principal acts
// in stable order, then a bounded random sample of the background
// population acts or follows its routine. Agents outside the sample are
// untouched this step.
func (w *World) Step(rng *rand.Rand) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.AdvanceTime(1)
	hour := w.clock.Hour()

	for _, a := range w.principals {
		w.takeAction(a, rng)
	}

	sample := w.sampleBackground(rng)
	for _, a := range sample {
		if rng.Float64() < 0.3 {
			w.takeAction(a, rng)
		}
	}
	for _, a := range sample {
		if rng.Float64() < 0.7 {
			a.FollowRoutine(w, hour)
		}
	}
}

func (w *World) takeAction(a *agent.Agent, rng *rand.Rand) {
	candidates := a.PossibleActions()
	if len(candidates) == 0 {
		return
	}
	action := a.SelectAction(rng, candidates)
	a.ExecuteAction(action, w, rng)
}

// sampleBackground picks up to sampleSize background agents without
// replacement, preserving their relative registration order.
func (w *World) sampleBackground(rng *rand.Rand) []*agent.Agent {
	n := len(w.background)
	k := w.sampleSize
	if k >= n {
		return w.background
	}
	idx := rng.Perm(n)[:k]
	picked := make(map[int]bool, k)
	for _, i := range idx {
		picked[i] = true
	}
	sample := make([]*agent.Agent, 0, k)
	for i, a := range w.background {
		if picked[i] {
			sample = append(sample, a)
		}
	}
	return sample
}

// Summary is the world's read-only projection.
type Summary struct {
	Name            string         `json:"name"`
	RunID           string         `json:"run_id"`
	Time            string         `json:"time"`
	Weather         Weather        `json:"weather"`
	TotalPopulation int            `json:"total_population"`
	Principals      int            `json:"principals"`
	Background      int            `json:"background"`
	Occupancy       map[string]int `json:"occupancy"`
	Events          int            `json:"events"`
}

// Summary projects population counts, per-location occupancy, and the
// clock. No side effects.
func (w *World) Summary() Summary {
	w.mu.RLock()
	defer w.mu.RUnlock()

	occ := make(map[string]int, len(w.order))
	for _, key := range w.order {
		occ[key] = len(w.locations[key].occupants)
	}
	return Summary{
		Name:            w.Name,
		RunID:           w.RunID,
		Time:            w.clock.Format("2006-01-02 15:04"),
		Weather:         w.weather,
		TotalPopulation: len(w.principals) + len(w.background),
		Principals:      len(w.principals),
		Background:      len(w.background),
		Occupancy:       occ,
		Events:          len(w.events),
	}
}

// LocationInfo is the per-location projection used by the API.
type LocationInfo struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Occupants   []string `json:"occupants"`
}

// Locations projects every declared location with its occupant names.
func (w *World) Locations() []LocationInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]LocationInfo, 0, len(w.order))
	for _, key := range w.order {
		loc := w.locations[key]
		names := make([]string, 0, len(loc.occupants))
		for _, a := range loc.occupants {
			names = append(names, a.Name)
		}
		out = append(out, LocationInfo{
			Key:         loc.Key,
			Name:        loc.Name,
			Description: loc.Description,
			Occupants:   names,
		})
	}
	return out
}

// AgentInfo is the per-agent roster projection used by the API.
type AgentInfo struct {
	Name     string `json:"name"`
	Job      string `json:"job"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Activity string `json:"activity"`
}

// Roster projects every registered agent in registration order, principals
// and background separately.
func (w *World) Roster() (principals, background []AgentInfo) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	project := func(agents []*agent.Agent) []AgentInfo {
		out := make([]AgentInfo, 0, len(agents))
		for _, a := range agents {
			out = append(out, AgentInfo{
				Name:     a.Name,
				Job:      a.Job,
				Role:     a.Role.String(),
				Location: a.Location,
				Activity: a.Activity,
			})
		}
		return out
	}
	return project(w.principals), project(w.background)
}

// CheckOccupancy verifies the bidirectional occupancy invariant for every
// registered agent. Returns nil when consistent.
func (w *World) CheckOccupancy() error {
	all := make([]*agent.Agent, 0, len(w.principals)+len(w.background))
	all = append(all, w.principals...)
	all = append(all, w.background...)

	for _, a := range all {
		found := 0
		for _, key := range w.order {
			for _, occ := range w.locations[key].occupants {
				if occ == a {
					found++
					if key != a.Location {
						return fmt.Errorf("agent %s in occupant set %q but location field is %q", a.Name, key, a.Location)
					}
				}
			}
		}
		if found != 1 {
			return fmt.Errorf("agent %s present in %d occupant sets, want 1", a.Name, found)
		}
	}
	return nil
}
