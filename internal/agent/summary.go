// Read-only summary projections, the only agent data exposed outward.
package agent

import "riverside/internal/traits"

// Summary is a serializable snapshot of one agent's observable state.
// Role sections are total over the role variant: exactly the section for
// the agent's tag is populated, never probed for.
type Summary struct {
	Name           string        `json:"name"`
	Job            string        `json:"job"`
	Role           string        `json:"role"`
	Age            int           `json:"age"`
	Location       string        `json:"location"`
	Mood           string        `json:"mood"`
	Energy         int           `json:"energy"`
	Activity       string        `json:"activity"`
	DominantTraits []traits.Name `json:"dominant_traits"`
	Relationships  int           `json:"relationships"`
	Memories       int           `json:"memories"`

	Researcher *ResearcherSummary `json:"researcher,omitempty"`
	Surgeon    *SurgeonSummary    `json:"surgeon,omitempty"`
}

// ResearcherSummary projects the researcher variant.
type ResearcherSummary struct {
	ActiveProjects    int      `json:"active_projects"`
	SamplesCollected  int      `json:"samples_collected"`
	DiscoveriesMade   int      `json:"discoveries_made"`
	RecentDiscoveries []string `json:"recent_discoveries"`
}

// SurgeonSummary projects the surgeon variant.
type SurgeonSummary struct {
	PatientsTreated    int            `json:"patients_treated"`
	SurgeriesPerformed int            `json:"surgeries_performed"`
	RecentCases        []SurgicalCase `json:"recent_cases"`
}

// Summary projects the agent's observable state.
func (a *Agent) Summary() Summary {
	s := Summary{
		Name:           a.Name,
		Job:            a.Job,
		Role:           a.Role.String(),
		Age:            a.Age,
		Location:       a.Location,
		Mood:           a.Mood,
		Energy:         a.Energy,
		Activity:       a.Activity,
		DominantTraits: a.Personality.Dominant(3),
		Relationships:  len(a.Relationships),
		Memories:       a.Memory.Len(),
	}

	switch a.Role {
	case RoleResearcher:
		s.Researcher = &ResearcherSummary{
			ActiveProjects:    len(a.Researcher.Projects),
			SamplesCollected:  a.Researcher.SamplesCollected,
			DiscoveriesMade:   len(a.Researcher.Discoveries),
			RecentDiscoveries: lastN(a.Researcher.Discoveries, 3),
		}
	case RoleSurgeon:
		s.Surgeon = &SurgeonSummary{
			PatientsTreated:    a.Surgeon.PatientsTreated,
			SurgeriesPerformed: a.Surgeon.SurgeriesPerformed,
			RecentCases:        lastN(a.Surgeon.Cases, 5),
		}
	}
	return s
}

func lastN[T any](s []T, n int) []T {
	if len(s) <= n {
		return append([]T(nil), s...)
	}
	return append([]T(nil), s[len(s)-n:]...)
}
