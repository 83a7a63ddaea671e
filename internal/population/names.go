package population

// Name pools for generated townspeople. Duplicates inside a pool are
// harmless; uniqueness is enforced on the combined full name.
var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Avery", "Quinn",
	"Sage", "River", "Rowan", "Blake", "Cameron", "Dakota", "Emery", "Finley",
	"Harper", "Hayden", "Jamie", "Kai", "Lane", "Logan", "Parker", "Peyton",
	"Reese", "Skylar", "Sydney", "Adrian", "Ashton", "Bailey", "Charlie",
	"Drew", "Ellis", "Evren", "Gray", "Hunter", "Iris", "Jules", "Kennedy",
	"Lee", "Marlowe", "Nico", "Ocean", "Phoenix", "Rain", "Sam", "Tatum",
	"Val", "Winter", "Zara", "Brook", "Clay", "Eden", "Fox", "Glen",
	"Hope", "Indigo", "Jade", "Knox", "Lake", "Moon", "North", "Onyx",
	"Pine", "Quill", "Reed", "Stone", "Teal", "Uma", "Vale", "Wade",
	"Wren", "York", "Zion", "Ash", "Bay", "Coral", "Dell", "Echo",
	"Fern", "Grove", "Heath", "Isle", "Jasper", "Lark", "Mesa", "Nova",
	"Oak", "Pearl", "Sage", "Terra", "Unity", "Vega", "Wilde", "Zen",
	"Abel", "Beau", "Cove", "Dean", "Eli", "Finn", "Gage", "Hart",
	"Ivan", "Jude", "Knox", "Liam", "Max", "Noah", "Owen", "Paul",
	"Quinn", "Ryan", "Sean", "Troy", "Uma", "Vince", "Will", "Xander",
	"Yael", "Zoe", "Aria", "Beth", "Cora", "Dana", "Eva", "Faith",
	"Grace", "Hana", "Ivy", "Joy", "Kate", "Luna", "Maya", "Nora",
	"Olive", "Piper", "Rose", "Sara", "Tara", "Uma", "Vera", "Willow",
}

var lastNames = []string{
	"Rivers", "Brooks", "Waters", "Banks", "Fisher", "Stone", "Reed",
	"Field", "Grove", "Hill", "Dale", "Vale", "Creek", "Shore", "Bay",
	"Harbor", "Dock", "Bridge", "Ford", "Mill", "Wells", "Springs",
	"Falls", "Rapids", "Current", "Stream", "Flow", "Tide", "Wave",
	"Marsh", "Pond", "Lake", "Ocean", "Sea", "Coast", "Beach", "Cliff",
	"Rock", "Sand", "Pearl", "Shell", "Coral", "Marina", "Port",
	"Anchor", "Sail", "Boat", "Ship", "Float", "Drift", "Wade",
	"Swim", "Dive", "Catch", "Net", "Hook", "Line", "Cast", "Reel",
	"Bass", "Trout", "Pike", "Carp", "Salmon", "Cod", "Sole", "Perch",
	"Willow", "Oak", "Pine", "Birch", "Maple", "Cedar", "Elm", "Ash",
	"Fern", "Moss", "Ivy", "Rose", "Lily", "Daisy", "Violet", "Iris",
	"Garden", "Bloom", "Petal", "Leaf", "Branch", "Root", "Seed",
	"Berry", "Apple", "Cherry", "Plum", "Peach", "Grape", "Orange",
	"Lemon", "Mint", "Sage", "Basil", "Thyme", "Rosemary", "Lavender",
	"Craft", "Smith", "Wright", "Wood", "Clay", "Glass", "Metal",
	"Gold", "Silver", "Copper", "Iron", "Steel", "Bronze", "Brass",
}
