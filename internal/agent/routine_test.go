package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowRoutineMovesAndSetsActivity(t *testing.T) {
	w := newStubWorld("town_center", "riverside")

	a := testAgent("Routine Keeper")
	w.place(a, "town_center")
	a.Routine = []RoutineEntry{
		{StartHour: 8, Activity: "work", Location: "riverside", Duration: 8},
		{StartHour: 12, Activity: "lunch_break", Location: "town_center", Duration: 1},
	}

	a.FollowRoutine(w, 8)
	assert.Equal(t, "riverside", a.Location)
	assert.Equal(t, "work", a.Activity)
}

func TestFollowRoutineNoMatchIsNoOp(t *testing.T) {
	w := newStubWorld("town_center")

	a := testAgent("Off Duty")
	w.place(a, "town_center")
	a.Activity = "idle"
	a.Routine = []RoutineEntry{{StartHour: 8, Activity: "work", Location: "town_center", Duration: 8}}

	a.FollowRoutine(w, 3)
	assert.Equal(t, "idle", a.Activity)
}

func TestFollowRoutineFirstMatchWins(t *testing.T) {
	w := newStubWorld("town_center", "riverside", "marina")

	a := testAgent("Double Booked")
	w.place(a, "town_center")
	a.Routine = []RoutineEntry{
		{StartHour: 9, Activity: "work", Location: "riverside", Duration: 4},
		{StartHour: 9, Activity: "social_time", Location: "marina", Duration: 2},
	}

	a.FollowRoutine(w, 9)
	assert.Equal(t, "riverside", a.Location)
	assert.Equal(t, "work", a.Activity)
}

func TestFollowRoutineHomeKeepsLocation(t *testing.T) {
	w := newStubWorld("town_center")

	a := testAgent("Homebody")
	w.place(a, "town_center")
	a.Routine = []RoutineEntry{{StartHour: 21, Activity: "personal_time", Location: RoutineHome, Duration: 3}}

	a.FollowRoutine(w, 21)
	assert.Equal(t, "town_center", a.Location)
	assert.Equal(t, "personal_time", a.Activity)
}

func TestFollowRoutineUnknownLocationKeepsPlacement(t *testing.T) {
	w := newStubWorld("town_center")

	a := testAgent("Lost Commuter")
	w.place(a, "town_center")
	a.Routine = []RoutineEntry{{StartHour: 9, Activity: "work", Location: "old_mill", Duration: 8}}

	a.FollowRoutine(w, 9)
	assert.Equal(t, "town_center", a.Location)
	assert.Equal(t, "work", a.Activity)
}
