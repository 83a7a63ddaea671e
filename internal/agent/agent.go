// Package agent provides the agent state machine: personality-driven
// action selection, bounded memory, relationships, and role variants.
package agent

import (
	"math/rand"
	"time"

	"riverside/internal/traits"
)

// Role tags an agent's specialization. Role-specific state lives in the
// matching variant pointer and exists only when the tag is set.
type Role uint8

const (
	RoleGeneric Role = iota
	RoleResearcher
	RoleSurgeon
)

func (r Role) String() string {
	switch r {
	case RoleResearcher:
		return "researcher"
	case RoleSurgeon:
		return "surgeon"
	default:
		return "generic"
	}
}

// Principal reports whether the role marks one of the named lead characters
// as opposed to a background townsperson.
func (r Role) Principal() bool {
	return r != RoleGeneric
}

// Relationship is a directed social bond to another agent, keyed by name on
// the owning agent.
type Relationship struct {
	Type     string    `json:"type"`
	Strength int       `json:"strength"` // 0–100
	Created  time.Time `json:"created"`
}

// World is the slice of world behavior an agent touches while acting.
// *world.World satisfies it; tests may substitute a lighter fake.
type World interface {
	Now() time.Time
	HasLocation(key string) bool
	LocationKeys() []string
	LocationName(key string) string
	Move(a *Agent, key string)
	Occupants(key string) []*Agent
	Log(eventType, description, location string, participants ...string)
}

// DefaultLocation is where every agent starts before distribution.
const DefaultLocation = "town_center"

// Agent is one inhabitant of the world. All situational mutation funnels
// through ExecuteAction and World.Move; nothing else rewrites placement.
type Agent struct {
	Name        string
	Job         string
	Role        Role
	Age         int
	Background  string
	Personality traits.Profile

	Location string
	Mood     string
	Energy   int // 0–100, clamped on every update
	Activity string

	Relationships map[string]Relationship
	Memory        MemoryLog

	// Role variants, exactly one non-nil for principal roles.
	Researcher *ResearcherState
	Surgeon    *SurgeonState

	// Background-agent scheduling state.
	Routine      []RoutineEntry
	Preferred    []string // preferred location keys, dominant-trait derived
	WorkLocation string
}

// New creates a generic agent with default situational state.
func New(name, job string, p traits.Profile, age int, background string) *Agent {
	return &Agent{
		Name:          name,
		Job:           job,
		Role:          RoleGeneric,
		Age:           age,
		Background:    background,
		Personality:   p,
		Location:      DefaultLocation,
		Mood:          "neutral",
		Energy:        100,
		Activity:      "idle",
		Relationships: make(map[string]Relationship),
		WorkLocation:  DefaultLocation,
	}
}

// AddRelationship records or overwrites a bond to another agent.
func (a *Agent) AddRelationship(name, relType string, strength int, now time.Time) {
	a.Relationships[name] = Relationship{
		Type:     relType,
		Strength: clamp(strength, 0, 100),
		Created:  now,
	}
}

// RememberExperience appends directly to the memory log, bypassing action
// execution. Used to seed externally-sourced experience (conversations).
func (a *Agent) RememberExperience(content string, importance int, now time.Time) {
	a.Memory.Add(content, importance, now)
}

// UpdateMood sets the mood label and records the change as a minor memory.
func (a *Agent) UpdateMood(mood string, now time.Time) {
	a.Mood = mood
	a.Memory.Add("My mood changed to "+mood, 3, now)
}

// SelectAction picks one of the candidate actions by trait-weighted random
// choice using this agent's profile and energy.
func (a *Agent) SelectAction(rng *rand.Rand, candidates []string) string {
	return Select(rng, a.Personality, a.Energy, candidates)
}

func (a *Agent) addEnergy(delta int) {
	a.Energy = clamp(a.Energy+delta, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
