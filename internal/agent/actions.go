// Action tables and the single execution control point.
//
// Memory importance per action (range 2–9):
//
//	rest 2, explore 4, work/skill practice 4, socialize/chat 5,
//	community event 6, sample collection 6, deep dive 7, staff training 7,
//	documentation 8, emergency response 8, surgery/discovery 9.
package agent

import (
	"fmt"
	"math/rand"
)

var universalActions = []string{"rest", "explore", "socialize"}

// Location-specific actions available to every role.
var locationActions = map[string][]string{
	"riverside":        {"fish", "walk_trails", "enjoy_nature"},
	"hospital":         {"visit_patients", "consult_colleagues"},
	"research_station": {"conduct_research", "use_equipment"},
}

// Extra actions for background townspeople, independent of job and place.
var townActions = []string{
	"work_at_job",
	"chat_with_neighbors",
	"shop_for_supplies",
	"enjoy_hobby",
	"attend_community_event",
	"help_neighbor",
	"take_walk",
	"read_local_news",
	"maintain_home",
}

// Job-specific actions for background townspeople.
var jobActions = map[string][]string{
	"fisherman":    {"cast_fishing_line", "repair_nets", "sell_fish"},
	"shopkeeper":   {"serve_customers", "restock_inventory", "count_register"},
	"teacher":      {"prepare_lessons", "grade_papers", "tutor_students"},
	"chef":         {"prepare_meals", "shop_for_ingredients", "experiment_recipes"},
	"artist":       {"paint_landscape", "sketch_people", "sell_artwork"},
	"farmer":       {"tend_crops", "feed_animals", "harvest_produce"},
	"mechanic":     {"repair_vehicles", "order_parts", "maintain_tools"},
	"librarian":    {"organize_books", "help_patrons", "read_quietly"},
	"boat_captain": {"check_boat_engine", "navigate_river", "transport_passengers"},
	"gardener":     {"water_plants", "prune_trees", "plant_flowers"},
}

// Location flavor actions for background townspeople.
var townLocationActions = map[string][]string{
	"riverside":        {"watch_sunset", "feed_ducks", "collect_river_stones"},
	"town_center":      {"window_shop", "people_watch", "buy_newspaper"},
	"hospital":         {"visit_doctor", "volunteer_help"},
	"marina":           {"admire_boats", "talk_to_sailors"},
	"research_station": {"ask_about_research", "observe_scientists"},
}

// PossibleActions returns the candidate set for this agent: the universal
// set, role-specific actions, and actions tied to the current location.
// Pure function of (role, job, location); no side effects.
func (a *Agent) PossibleActions() []string {
	actions := make([]string, 0, 24)
	actions = append(actions, universalActions...)
	actions = append(actions, locationActions[a.Location]...)

	switch a.Role {
	case RoleResearcher:
		actions = append(actions, researcherActions...)
		actions = append(actions, researcherLocationActions[a.Location]...)
	case RoleSurgeon:
		actions = append(actions, surgeonActions...)
		actions = append(actions, surgeonLocationActions[a.Location]...)
	default:
		actions = append(actions, townActions...)
		actions = append(actions, jobActions[a.Job]...)
		actions = append(actions, townLocationActions[a.Location]...)
	}
	return actions
}

// ExecuteAction applies an action's effects: activity label, role- and
// location-dependent state changes, a memory record, possible movement via
// World.Move, event logging, and the unconditional energy cost. This is the
// only mutation path for agent behavior.
func (a *Agent) ExecuteAction(action string, w World, rng *rand.Rand) {
	a.Activity = action
	now := w.Now()

	switch action {
	case "rest":
		a.addEnergy(+20)
		a.Memory.Add("I rested and feel more energetic", 2, now)

	case "explore":
		keys := w.LocationKeys()
		others := make([]string, 0, len(keys))
		for _, k := range keys {
			if k != a.Location {
				others = append(others, k)
			}
		}
		if len(others) > 0 {
			dest := others[rng.Intn(len(others))]
			w.Move(a, dest)
			a.Memory.Add("I explored and moved to "+w.LocationName(dest), 4, now)
		}

	case "socialize":
		if partner := a.pickCompanion(w, rng); partner != nil {
			a.Memory.Add("I socialized with "+partner.Name, 5, now)
			if _, known := a.Relationships[partner.Name]; !known {
				a.AddRelationship(partner.Name, "acquaintance", 30, now)
			}
		}
	}

	switch a.Role {
	case RoleResearcher:
		a.executeResearcher(action, w, rng)
	case RoleSurgeon:
		a.executeSurgeon(action, w, rng)
	default:
		a.executeTownsperson(action, w, rng)
	}

	a.addEnergy(-5)
}

// pickCompanion chooses a co-located agent uniformly at random, excluding
// self. Returns nil when the agent is alone.
func (a *Agent) pickCompanion(w World, rng *rand.Rand) *Agent {
	occupants := w.Occupants(a.Location)
	others := make([]*Agent, 0, len(occupants))
	for _, o := range occupants {
		if o != a {
			others = append(others, o)
		}
	}
	if len(others) == 0 {
		return nil
	}
	return others[rng.Intn(len(others))]
}

// executeTownsperson applies background-agent effects for actions that
// carry them; everything else is flavor already covered by the universal
// effects above.
func (a *Agent) executeTownsperson(action string, w World, rng *rand.Rand) {
	now := w.Now()

	switch action {
	case "work_at_job":
		if a.Location != a.WorkLocation {
			w.Move(a, a.WorkLocation)
		}
		a.Activity = "working as " + a.Job
		a.Memory.Add("Completed work duties as "+a.Job, 4, now)

	case "chat_with_neighbors":
		partner := a.pickCompanion(w, rng)
		if partner == nil {
			return
		}
		topic := chatTopics[rng.Intn(len(chatTopics))]
		a.Memory.Add(fmt.Sprintf("Had a nice chat with %s about %s", partner.Name, topic), 5, now)
		if _, known := a.Relationships[partner.Name]; !known {
			a.AddRelationship(partner.Name, "neighbor", 40+rng.Intn(31), now)
		}
		w.Log("social_interaction",
			fmt.Sprintf("%s chatted with %s about %s", a.Name, partner.Name, topic),
			a.Location, a.Name, partner.Name)

	case "attend_community_event":
		event := communityEvents[rng.Intn(len(communityEvents))]
		a.Memory.Add("Attended "+event+" - met some interesting people", 6, now)
		w.Log("community_event", fmt.Sprintf("%s attended %s", a.Name, event), a.Location, a.Name)

	case "cast_fishing_line", "paint_landscape", "tend_crops":
		a.Memory.Add("Practiced "+action+" and improved my skills", 4, now)
		w.Log("skill_development", fmt.Sprintf("%s practiced %s", a.Name, action), a.Location, a.Name)
	}
}

var chatTopics = []string{
	"weather", "local_news", "family", "work", "hobbies",
	"river_conditions", "town_events", "fishing_spots",
}

var communityEvents = []string{
	"town_meeting", "festival", "market_day", "concert",
	"art_show", "book_reading", "fishing_competition",
}
