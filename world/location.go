package world

import "strings"

// Exit is a named, directed edge between locations. The destination is a
// location id; it is not validated at construction, so stories can declare
// exits to locations registered later.
type Exit struct {
	Name          string
	DestinationID string

	// OnExit is an available hook for traversal side effects. The
	// navigation path does not currently invoke it; see the engine tests
	// documenting this.
	OnExit func()
}

// NewExit creates an exit edge.
func NewExit(name, destinationID string) *Exit {
	return &Exit{Name: name, DestinationID: destinationID}
}

// Location is a node in the world graph. It owns its exits, its item and
// NPC inventories, and a visit counter maintained by navigation.
type Location struct {
	Entity

	exits  []*Exit
	Items  *Inventory
	NPCs   *Inventory
	Visits int

	// Commands holds locally-scoped commands merged into the active set
	// while the player is here. Stories leave it empty today.
	Commands []Command

	// ItemCodes and NPCCodes are catalog cross-references resolved once
	// at game start.
	ItemCodes []string
	NPCCodes  []string
}

// NewLocation creates a location with empty inventories.
func NewLocation(id string, title, desc Text) *Location {
	return &Location{
		Entity: NewEntity(id, title, desc),
		Items:  NewInventory(),
		NPCs:   NewInventory(),
	}
}

// AddExit appends an exit edge.
func (l *Location) AddExit(e *Exit) {
	if e != nil {
		l.exits = append(l.exits, e)
	}
}

// Exits returns the exit list in declaration order.
func (l *Location) Exits() []*Exit {
	return l.exits
}

// ExitNamed returns the first exit whose name matches case-insensitively,
// or nil.
func (l *Location) ExitNamed(name string) *Exit {
	want := strings.TrimSpace(name)
	for _, e := range l.exits {
		if strings.EqualFold(e.Name, want) {
			return e
		}
	}
	return nil
}
