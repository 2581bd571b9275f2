package world

// Command is a handler offered every input line. Implementations decide
// independently whether the line is theirs; a non-matching line must be a
// silent no-op.
type Command interface {
	ShortName() string
	Description() string
	Execute(raw string, tokens []string)
}

// Story is the declarative world record the engine consumes at game
// start. Content packages and the Lua loader both produce it.
type Story struct {
	Name string

	// Locations is the ordered world graph. An empty list is a fatal
	// configuration error at game start.
	Locations []*Location

	// Items is the master catalog. Location ItemCodes and the starting
	// InventoryCodes resolve against it.
	Items []*Item

	// InventoryCodes pre-populates the player's inventory.
	InventoryCodes []string

	// NPCs is the master NPC catalog, resolved by location NPCCodes.
	NPCs []*NPC

	// Commands are story-specific commands kept active in every location.
	Commands []Command

	// StartLocation is the id of the first location.
	StartLocation string
}
