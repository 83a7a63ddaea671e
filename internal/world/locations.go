package world

// defaultLocations is the fixed, pre-declared location set of Riverside
// Town. Declaration order is the world's canonical location order.
var defaultLocations = []Location{
	{
		Key:         "riverside",
		Name:        "Riverside Park",
		Description: "A peaceful park along the flowing river with walking trails and benches",
	},
	{
		Key:         "hospital",
		Name:        "Riverside General Hospital",
		Description: "A modern medical facility serving the town's healthcare needs",
	},
	{
		Key:         "research_station",
		Name:        "Aquatic Research Station",
		Description: "A research facility studying marine life and river ecosystems",
	},
	{
		Key:         "town_center",
		Name:        "Town Center",
		Description: "The bustling heart of Riverside Town with shops and cafes",
	},
	{
		Key:         "marina",
		Name:        "Riverside Marina",
		Description: "A dock area with boats and fishing equipment",
	},
}
