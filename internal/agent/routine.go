// Deterministic daily routines for background agents.
package agent

// RoutineHome is the sentinel location meaning "stay put, change activity".
const RoutineHome = "home"

// RoutineEntry schedules one activity block in an agent's day.
type RoutineEntry struct {
	StartHour int    `json:"start_hour"` // 0–23
	Activity  string `json:"activity"`
	Location  string `json:"location"` // location key or RoutineHome
	Duration  int    `json:"duration"` // hours
}

// FollowRoutine applies the first routine entry whose start hour equals the
// current hour (first match wins when duplicates exist). Entries targeting
// RoutineHome change only the activity; everything else moves the agent
// through World.Move.
func (a *Agent) FollowRoutine(w World, currentHour int) {
	for _, entry := range a.Routine {
		if entry.StartHour != currentHour {
			continue
		}
		if entry.Location != RoutineHome && w.HasLocation(entry.Location) {
			w.Move(a, entry.Location)
		}
		a.Activity = entry.Activity
		return
	}
}
