package convo

import (
	"fmt"
	"strings"

	"riverside/internal/agent"
	"riverside/internal/traits"
)

const researcherTemplate = `You are Dr. Marina Depth, a passionate Deep Sea Researcher working in Riverside Town.

PERSONALITY TRAITS (your behavior should reflect these):
%s

BACKGROUND:
%s

CURRENT SITUATION:
- Location: %s
- Current Activity: %s
- Energy Level: %d%%
- Mood: %s
- Samples Collected: %d
- Recent Discoveries: %s

RECENT MEMORIES:
%s

RELATIONSHIPS:
%s

INSTRUCTIONS:
- Respond as Dr. Marina Depth in first person
- Reference your personality traits naturally in conversation
- Mention your current research when relevant
- Use scientific terminology appropriately
- Show your curiosity by asking follow-up questions about topics that interest you
- Be analytical in your responses, backing up statements with logic
- Remember and reference previous conversations and experiences
- Stay in character consistently`

const surgeonTemplate = `You are Dr. Alex Healer, a dedicated ER Surgeon working at Riverside General Hospital.

PERSONALITY TRAITS (your behavior should reflect these):
%s

BACKGROUND:
%s

CURRENT SITUATION:
- Location: %s
- Current Activity: %s
- Energy Level: %d%%
- Mood: %s
- Patients Treated: %d
- Surgeries Performed: %d
- Recent Cases: %s

RECENT MEMORIES:
%s

RELATIONSHIPS:
%s

INSTRUCTIONS:
- Respond as Dr. Alex Healer in first person
- Show genuine empathy and concern for others
- Reference your medical experience when relevant
- Use appropriate medical terminology
- Demonstrate confidence in medical discussions
- Ask about others' wellbeing when appropriate
- Share relevant medical insights or health tips
- Remember and reference previous conversations and patients
- Balance professionalism with warmth
- Stay in character consistently`

const townspersonTemplate = `You are %s, a %s in Riverside Town.

PERSONALITY TRAITS: %s
BACKGROUND: %s
CURRENT SITUATION: Location: %s, Activity: %s, Mood: %s
RECENT MEMORIES:
%s

Respond in character, referencing your background and current situation.`

// BuildSystemPrompt renders the role-specific system prompt from the
// agent's live state. Extra context, when non-empty, is appended verbatim.
func BuildSystemPrompt(a *agent.Agent, context string) string {
	var prompt string
	switch a.Role {
	case agent.RoleResearcher:
		prompt = fmt.Sprintf(researcherTemplate,
			traitLines(a.Personality),
			a.Background,
			a.Location, a.Activity, a.Energy, a.Mood,
			researcherSamples(a),
			recentDiscoveries(a),
			recentMemories(a),
			relationshipLines(a),
		)
	case agent.RoleSurgeon:
		patients, surgeries := 0, 0
		if a.Surgeon != nil {
			patients = a.Surgeon.PatientsTreated
			surgeries = a.Surgeon.SurgeriesPerformed
		}
		prompt = fmt.Sprintf(surgeonTemplate,
			traitLines(a.Personality),
			a.Background,
			a.Location, a.Activity, a.Energy, a.Mood,
			patients, surgeries,
			recentCases(a),
			recentMemories(a),
			relationshipLines(a),
		)
	default:
		dominant := make([]string, 0, 3)
		for _, name := range a.Personality.Dominant(3) {
			dominant = append(dominant, string(name))
		}
		prompt = fmt.Sprintf(townspersonTemplate,
			a.Name, a.Job,
			strings.Join(dominant, ", "),
			a.Background,
			a.Location, a.Activity, a.Mood,
			recentMemories(a),
		)
	}

	if context != "" {
		prompt += "\n\nCONVERSATION CONTEXT:\n" + context
	}
	return prompt
}

func traitLines(p traits.Profile) string {
	var b strings.Builder
	for _, name := range traits.Order {
		fmt.Fprintf(&b, "- %s: %d%%\n", strings.ToUpper(string(name)[:1])+string(name)[1:], p.Get(name))
	}
	return strings.TrimRight(b.String(), "\n")
}

func researcherSamples(a *agent.Agent) int {
	if a.Researcher == nil {
		return 0
	}
	return a.Researcher.SamplesCollected
}

func recentDiscoveries(a *agent.Agent) string {
	if a.Researcher == nil || len(a.Researcher.Discoveries) == 0 {
		return "None yet"
	}
	d := a.Researcher.Discoveries
	if len(d) > 3 {
		d = d[len(d)-3:]
	}
	return strings.Join(d, ", ")
}

func recentCases(a *agent.Agent) string {
	if a.Surgeon == nil || len(a.Surgeon.Cases) == 0 {
		return "No recent cases"
	}
	cases := a.Surgeon.Cases
	if len(cases) > 3 {
		cases = cases[len(cases)-3:]
	}
	kinds := make([]string, 0, len(cases))
	for _, c := range cases {
		kinds = append(kinds, c.Type)
	}
	return strings.Join(kinds, ", ")
}

func recentMemories(a *agent.Agent) string {
	recent := a.Memory.Recent(5)
	if len(recent) == 0 {
		return "Just started my day"
	}
	lines := make([]string, 0, len(recent))
	for _, m := range recent {
		lines = append(lines, m.Content)
	}
	return strings.Join(lines, "; ")
}

func relationshipLines(a *agent.Agent) string {
	if len(a.Relationships) == 0 {
		return "No significant relationships yet"
	}
	lines := make([]string, 0, len(a.Relationships))
	for name, rel := range a.Relationships {
		lines = append(lines, fmt.Sprintf("%s (%s)", name, rel.Type))
		if len(lines) == 5 {
			break
		}
	}
	return strings.Join(lines, "; ")
}
