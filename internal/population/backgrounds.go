package population

import "fmt"

// jobBackgrounds holds hand-written blurbs for the common jobs; everything
// else gets the generic fallback.
var jobBackgrounds = map[string]string{
	"shopkeeper":     "Runs a small family business that has been in the town for generations",
	"teacher":        "Dedicated educator who moved to the riverside town for its peaceful environment",
	"fisherman":      "Local who knows every spot along the river and its seasonal patterns",
	"chef":           "Culinary artist who specializes in fresh river fish and local ingredients",
	"librarian":      "Quiet intellectual who maintains the town's historical records and stories",
	"mechanic":       "Skilled tradesperson who repairs everything from boats to bicycles",
	"artist":         "Creative soul inspired by the natural beauty of the riverside setting",
	"farmer":         "Agricultural worker who grows crops in the fertile riverbank soil",
	"postal_worker":  "Connects the town to the outside world through mail and packages",
	"security_guard": "Protects local businesses and ensures community safety",
	"cafe_owner":     "Social hub creator who knows everyone's coffee preferences and gossip",
	"boat_captain":   "River transportation expert who ferries people and goods",
	"gardener":       "Green thumb who maintains the town's parks and public spaces",
	"carpenter":      "Skilled craftsperson who builds and repairs the town's wooden structures",
	"journalist":     "Local news gatherer who documents the town's daily happenings",
}

func backgroundFor(job string) string {
	if bg, ok := jobBackgrounds[job]; ok {
		return bg
	}
	return fmt.Sprintf("Local resident working as a %s in the riverside community", job)
}
