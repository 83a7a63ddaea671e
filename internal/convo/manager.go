package convo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"riverside/internal/agent"
	"riverside/internal/traits"
)

// Topics that bump a conversation memory from routine to notable.
var importantKeywords = []string{
	"discovery", "research", "patient", "surgery", "emergency",
	"breakthrough", "family", "relationship", "problem", "help",
}

const (
	conversationImportance = 5
	notableImportance      = 7
)

// Reply is one completed conversational exchange.
type Reply struct {
	Text        string  `json:"text"`
	Character   string  `json:"character"`
	Job         string  `json:"job"`
	Location    string  `json:"location"`
	Mood        string  `json:"mood"`
	Energy      int     `json:"energy"`
	Temperature float64 `json:"temperature"`
}

// Manager runs conversations between outside observers and agents,
// threading agent state into the prompt and the exchange back into the
// agent's memory.
type Manager struct {
	backend Backend
}

// NewManager wires a chat backend. A nil backend disables conversations.
func NewManager(backend Backend) *Manager {
	return &Manager{backend: backend}
}

// Enabled reports whether a backend is configured.
func (m *Manager) Enabled() bool {
	return m != nil && m.backend != nil
}

// Temperature derives sampling temperature from personality: more
// creative, confident characters speak more loosely. Range 0.3–0.8.
func Temperature(p traits.Profile) float64 {
	return 0.3 + float64(p.Get(traits.Creativity)+p.Get(traits.Confidence))/200
}

// CharacterID is the history key for an agent's conversations.
func CharacterID(a *agent.Agent) string {
	return a.Name + "_" + strings.ReplaceAll(a.Job, " ", "_")
}

// Exchange carries the prompt inputs projected from an agent, so the
// backend call can run without touching agent state.
type Exchange struct {
	CharacterID string
	System      string
	Temperature float64
}

// Prepare projects the prompt inputs from the agent. Callers observing a
// live run hold the world lock around this.
func (m *Manager) Prepare(a *agent.Agent, extra string) Exchange {
	return Exchange{
		CharacterID: CharacterID(a),
		System:      BuildSystemPrompt(a, extra),
		Temperature: Temperature(a.Personality),
	}
}

// Complete sends userInput against a prepared exchange. Only the backend
// is touched, so no agent lock is needed while the model responds.
func (m *Manager) Complete(ctx context.Context, ex Exchange, userInput string) (string, error) {
	if !m.Enabled() {
		return "", fmt.Errorf("conversations disabled: no chat backend")
	}
	return m.backend.Chat(ctx, ex.CharacterID, ex.System, userInput, ex.Temperature)
}

// Commit stores the completed exchange as a memory on the agent and
// builds the reply. Same locking contract as Prepare. The memory
// importance rises when the exchange touches a notable topic.
func (m *Manager) Commit(a *agent.Agent, userInput, text string, now time.Time) Reply {
	m.storeConversationMemory(a, userInput, text, now)
	return Reply{
		Text:        text,
		Character:   a.Name,
		Job:         a.Job,
		Location:    a.Location,
		Mood:        a.Mood,
		Energy:      a.Energy,
		Temperature: Temperature(a.Personality),
	}
}

// Converse runs Prepare, Complete, Commit in sequence for callers that
// own the agent outright. Against a live run, use the three phases with
// World.WithAgent so the lock is not held across the backend call.
func (m *Manager) Converse(ctx context.Context, a *agent.Agent, userInput, extra string, now time.Time) (Reply, error) {
	if !m.Enabled() {
		return Reply{}, fmt.Errorf("conversations disabled: no chat backend")
	}

	text, err := m.Complete(ctx, m.Prepare(a, extra), userInput)
	if err != nil {
		return Reply{}, fmt.Errorf("converse with %s: %w", a.Name, err)
	}
	return m.Commit(a, userInput, text, now), nil
}

func (m *Manager) storeConversationMemory(a *agent.Agent, userInput, reply string, now time.Time) {
	importance := conversationImportance
	combined := strings.ToLower(userInput + " " + reply)
	for _, kw := range importantKeywords {
		if strings.Contains(combined, kw) {
			importance = notableImportance
			break
		}
	}

	topic := userInput
	if runes := []rune(topic); len(runes) > 100 {
		topic = string(runes[:100]) + "..."
	}
	a.RememberExperience("Had conversation about: "+topic, importance, now)
}

// InjectExperience plants a memory directly, bypassing the backend.
func (m *Manager) InjectExperience(a *agent.Agent, experience string, importance int, now time.Time) {
	a.RememberExperience(experience, importance, now)
}
