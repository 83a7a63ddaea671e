// Trait-weighted stochastic action selection (roulette wheel).
package agent

import (
	"math/rand"

	"riverside/internal/traits"
)

// Category groups actions that share a trait weighting.
type Category string

const (
	CatInvestigative Category = "investigative"
	CatSocial        Category = "social"
	CatExploratory   Category = "exploratory"
	CatCreative      Category = "creative"
	CatDiligent      Category = "diligent"
	CatRest          Category = "rest"
)

// TraitTerm is one additive weight contribution: trait value × coefficient.
type TraitTerm struct {
	Trait traits.Name
	Coef  float64
}

// CategoryWeights maps a category to the trait terms added to its base
// weight. CatRest is special-cased in weightFor: it scales with energy
// deficit rather than any trait.
var CategoryWeights = map[Category][]TraitTerm{
	CatInvestigative: {{traits.Curiosity, 0.02}, {traits.Analytical, 0.02}},
	CatSocial:        {{traits.Social, 0.02}, {traits.Empathy, 0.02}},
	CatExploratory:   {{traits.Curiosity, 0.02}, {traits.Adaptability, 0.02}},
	CatCreative:      {{traits.Creativity, 0.02}, {traits.Curiosity, 0.01}},
	CatDiligent:      {{traits.Ambitious, 0.02}, {traits.Cautious, 0.01}},
}

// ActionCategories tags known actions. New roles extend this table (and
// CategoryWeights if they need a new category) without touching Select.
// Untagged actions keep the base weight of 1.
var ActionCategories = map[string]Category{
	"rest": CatRest,

	"explore":     CatExploratory,
	"walk_trails": CatExploratory,
	"take_walk":   CatExploratory,

	"socialize":              CatSocial,
	"visit_patients":         CatSocial,
	"chat_with_neighbors":    CatSocial,
	"consult_colleagues":     CatSocial,
	"attend_community_event": CatSocial,
	"help_neighbor":          CatSocial,

	"research":            CatInvestigative,
	"analyze_data":        CatInvestigative,
	"conduct_research":    CatInvestigative,
	"analyze_specimens":   CatInvestigative,
	"collect_samples":     CatInvestigative,
	"use_equipment":       CatInvestigative,
	"study_medical_texts": CatInvestigative,
	"read_local_news":     CatInvestigative,

	"enjoy_hobby":     CatCreative,
	"paint_landscape": CatCreative,

	"work_at_job":        CatDiligent,
	"treat_patients":     CatDiligent,
	"maintain_home":      CatDiligent,
	"emergency_response": CatDiligent,
}

// weightFloor keeps every candidate selectable.
const weightFloor = 0.1

// weightFor computes one action's roulette weight for a profile at a given
// energy level. Base weight 1.0 plus category trait terms; rest grows with
// the energy deficit so tired agents gravitate toward it.
func weightFor(p traits.Profile, energy int, action string) float64 {
	w := 1.0
	switch cat := ActionCategories[action]; cat {
	case CatRest:
		w += float64(100-energy) * 0.02
	default:
		for _, term := range CategoryWeights[cat] {
			w += float64(p.Get(term.Trait)) * term.Coef
		}
	}
	if w < weightFloor {
		w = weightFloor
	}
	return w
}

// Select draws one candidate by cumulative weight walk in candidate order.
// The rng is the only source of nondeterminism; a fixed seed reproduces the
// full selection sequence. Floating-point drift falls back to a uniform
// choice.
func Select(rng *rand.Rand, p traits.Profile, energy int, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	weights := make([]float64, len(candidates))
	total := 0.0
	for i, action := range candidates {
		weights[i] = weightFor(p, energy, action)
		total += weights[i]
	}

	draw := rng.Float64() * total
	cum := 0.0
	for i, action := range candidates {
		cum += weights[i]
		if draw <= cum {
			return action
		}
	}
	return candidates[rng.Intn(len(candidates))]
}
