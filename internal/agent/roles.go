// Principal role variants: the deep sea researcher and the ER surgeon.
// Each is a generic agent plus a role tag selecting an extra action set,
// an effect table, and a state struct carried only under that tag.
package agent

import (
	"fmt"
	"math/rand"
	"time"

	"riverside/internal/traits"
)

// ResearcherState holds counters owned exclusively by the researcher role.
type ResearcherState struct {
	SamplesCollected int      `json:"samples_collected"`
	Discoveries      []string `json:"discoveries"`
	Projects         []string `json:"projects"`
}

// SurgicalCase records one performed procedure.
type SurgicalCase struct {
	Type       string    `json:"type"`
	Complexity string    `json:"complexity"`
	Outcome    string    `json:"outcome"`
	When       time.Time `json:"when"`
}

// SurgeonState holds counters owned exclusively by the surgeon role.
type SurgeonState struct {
	PatientsTreated    int            `json:"patients_treated"`
	SurgeriesPerformed int            `json:"surgeries_performed"`
	Cases              []SurgicalCase `json:"cases"`
}

// NewResearcher creates Dr. Marina Depth, the deep sea researcher principal.
func NewResearcher() *Agent {
	a := New(
		"Dr. Marina Depth",
		"Deep Sea Researcher",
		traits.MustNew(traits.Values{
			Curiosity:  25,
			Empathy:    12,
			Confidence: 15,
			Creativity: 18,
			Analytical: 20,
			Social:     5,
			Cautious:   3,
			Ambitious:  2,
		}),
		35,
		"Marine biologist with 10 years of deep sea exploration experience",
	)
	a.Role = RoleResearcher
	a.Location = "research_station"
	a.WorkLocation = "research_station"
	a.Researcher = &ResearcherState{
		Projects: []string{
			"Bioluminescent organisms in river ecosystems",
			"Impact of water temperature on fish migration patterns",
			"Microplastic contamination in freshwater systems",
		},
	}
	return a
}

// NewSurgeon creates Dr. Alex Healer, the ER surgeon principal.
func NewSurgeon() *Agent {
	a := New(
		"Dr. Alex Healer",
		"ER Surgeon",
		traits.MustNew(traits.Values{
			Curiosity:  10,
			Empathy:    25,
			Confidence: 20,
			Creativity: 8,
			Analytical: 15,
			Social:     12,
			Cautious:   5,
			Ambitious:  3,
			Humor:      2,
		}),
		42,
		"Emergency medicine specialist with 15 years of trauma surgery experience",
	)
	a.Role = RoleSurgeon
	a.Location = "hospital"
	a.WorkLocation = "hospital"
	a.Surgeon = &SurgeonState{}
	return a
}

var researcherActions = []string{
	"collect_water_samples",
	"analyze_specimens",
	"document_findings",
	"calibrate_equipment",
	"plan_dive_expedition",
	"review_research_data",
	"study_water_currents",
	"update_field_notes",
}

var researcherLocationActions = map[string][]string{
	"riverside": {
		"dive_for_samples",
		"test_water_quality",
		"observe_fish_behavior",
	},
	"research_station": {
		"use_laboratory_equipment",
		"process_samples",
		"write_research_report",
	},
}

var surgeonActions = []string{
	"examine_patients",
	"perform_surgery",
	"review_medical_charts",
	"consult_specialists",
	"train_medical_staff",
	"update_patient_records",
	"check_emergency_supplies",
	"research_medical_literature",
}

var surgeonLocationActions = map[string][]string{
	"hospital": {
		"rounds_with_patients",
		"emergency_response_drill",
		"mentor_residents",
	},
	"town_center": {
		"provide_first_aid",
		"health_education_outreach",
		"emergency_response",
	},
}

func (a *Agent) executeResearcher(action string, w World, rng *rand.Rand) {
	st := a.Researcher
	now := w.Now()

	switch action {
	case "collect_water_samples":
		st.SamplesCollected += 1 + rng.Intn(3)
		a.Memory.Add(fmt.Sprintf("Collected water samples. Total samples: %d", st.SamplesCollected), 6, now)
		w.Log("research_activity", a.Name+" collected water samples", a.Location, a.Name)

	case "analyze_specimens":
		// Precondition, not an error: nothing to analyze without samples.
		if st.SamplesCollected == 0 {
			return
		}
		if rng.Float64() > 0.7 {
			strain := specimenKinds[rng.Intn(len(specimenKinds))]
			discovery := "Unusual " + strain + " strain"
			st.Discoveries = append(st.Discoveries, discovery)
			a.Memory.Add("Made exciting discovery: "+discovery+"!", 9, now)
			w.Log("scientific_discovery", a.Name+" discovered: "+discovery, a.Location, a.Name)
		}

	case "dive_for_samples":
		if a.Location != "riverside" {
			return
		}
		st.SamplesCollected += 2 + rng.Intn(4)
		depth := 10 + rng.Intn(21)
		a.Memory.Add(fmt.Sprintf("Dove to %dm depth, collected valuable samples", depth), 7, now)
		w.Log("field_research", a.Name+" conducted deep dive research", a.Location, a.Name)

	case "document_findings":
		if len(st.Discoveries) == 0 {
			return
		}
		a.Memory.Add("Documented recent findings for publication", 8, now)
		w.Log("research_documentation", a.Name+" documented research findings", a.Location, a.Name)
	}
}

var specimenKinds = []string{"algae", "bacteria", "microorganism"}

func (a *Agent) executeSurgeon(action string, w World, rng *rand.Rand) {
	st := a.Surgeon
	now := w.Now()

	switch action {
	case "examine_patients":
		seen := 1 + rng.Intn(4)
		st.PatientsTreated += seen
		a.Memory.Add(fmt.Sprintf("Examined %d patients today", seen), 6, now)
		w.Log("medical_care", fmt.Sprintf("%s examined %d patients", a.Name, seen), a.Location, a.Name)

	case "perform_surgery":
		surgery := surgeryTypes[rng.Intn(len(surgeryTypes))]
		complexity := surgeryComplexities[rng.Intn(len(surgeryComplexities))]
		st.SurgeriesPerformed++
		st.Cases = append(st.Cases, SurgicalCase{
			Type:       surgery,
			Complexity: complexity,
			Outcome:    "successful",
			When:       now,
		})
		a.Memory.Add(fmt.Sprintf("Successfully performed %s %s", complexity, surgery), 9, now)
		w.Log("medical_surgery", a.Name+" performed "+surgery, a.Location, a.Name)

	case "train_medical_staff":
		topic := trainingTopics[rng.Intn(len(trainingTopics))]
		a.Memory.Add("Conducted training session on "+topic, 7, now)
		w.Log("medical_training", a.Name+" trained staff on "+topic, a.Location, a.Name)

	case "emergency_response":
		emergency := emergencyTypes[rng.Intn(len(emergencyTypes))]
		a.Memory.Add("Responded to "+emergency+" emergency", 8, now)
		w.Log("emergency_response", a.Name+" responded to "+emergency, a.Location, a.Name)
	}
}

var surgeryTypes = []string{"appendectomy", "trauma_repair", "cardiac_procedure", "emergency_surgery"}

var surgeryComplexities = []string{"routine", "complex", "critical"}

var trainingTopics = []string{"emergency_protocols", "surgical_techniques", "patient_care", "crisis_management"}

var emergencyTypes = []string{"cardiac_arrest", "severe_trauma", "allergic_reaction", "stroke"}
