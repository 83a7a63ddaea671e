package population

// defaultJobQuotas is the town's occupational mix. The quota sum exceeds
// the default target population, so Create truncates after the shuffle;
// relative proportions still hold in expectation.
var defaultJobQuotas = map[string]int{
	"shopkeeper":          15,
	"fisherman":           25,
	"farmer":              20,
	"chef":                8,
	"teacher":             12,
	"mechanic":            10,
	"librarian":           3,
	"artist":              12,
	"postal_worker":       4,
	"security_guard":      6,
	"cafe_owner":          5,
	"boat_captain":        8,
	"gardener":            10,
	"carpenter":           12,
	"journalist":          3,
	"bartender":           8,
	"baker":               6,
	"musician":            8,
	"photographer":        4,
	"delivery_driver":     7,
	"store_clerk":         18,
	"tour_guide":          5,
	"veterinarian":        2,
	"electrician":         6,
	"plumber":             4,
	"taxi_driver":         6,
	"florist":             3,
	"jeweler":             2,
	"tailor":              4,
	"barber":              5,
	"accountant":          3,
	"real_estate_agent":   4,
	"insurance_agent":     3,
	"bank_teller":         4,
	"mailroom_clerk":      3,
	"janitor":             8,
	"receptionist":        6,
	"waitress":            12,
	"cashier":             15,
	"sales_associate":     10,
	"landscaper":          8,
	"construction_worker": 12,
	"handyman":            8,
	"maintenance_worker":  6,
	"dock_worker":         10,
	"warehouse_worker":    8,
}

// workLocations maps jobs to their workplace. Jobs without an entry
// default to town_center.
var workLocations = map[string]string{
	"shopkeeper":     "town_center",
	"teacher":        "town_center",
	"fisherman":      "riverside",
	"chef":           "town_center",
	"librarian":      "town_center",
	"mechanic":       "town_center",
	"artist":         "riverside",
	"farmer":         "riverside",
	"postal_worker":  "town_center",
	"security_guard": "town_center",
	"cafe_owner":     "town_center",
	"boat_captain":   "marina",
	"gardener":       "riverside",
	"carpenter":      "town_center",
	"journalist":     "town_center",
	"dock_worker":    "marina",
	"tour_guide":     "marina",
}

func workLocationFor(job string) string {
	if loc, ok := workLocations[job]; ok {
		return loc
	}
	return "town_center"
}
