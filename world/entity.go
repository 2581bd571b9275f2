// Package world holds the entity, location, and inventory data model for
// the adventure engine. Entities carry their own behavior hooks; the
// engine package decides when those hooks fire.
package world

import (
	"github.com/google/uuid"

	"github.com/jon-m/adventure-machine/console"
)

// Text is a display string that is either fixed or computed. Computed text
// is re-evaluated on every read, so descriptions can react to world state.
type Text struct {
	value string
	fn    func() string
}

// Static returns a Text with a fixed value.
func Static(s string) Text {
	return Text{value: s}
}

// Dynamic returns a Text backed by a function.
func Dynamic(fn func() string) Text {
	return Text{fn: fn}
}

// Resolve returns the current value of the text.
func (t Text) Resolve() string {
	if t.fn != nil {
		return t.fn()
	}
	return t.value
}

// Host is the narrow view of the game an entity holds once it has been
// added to a game-bound inventory. It lets entity hooks speak to the
// player without the world package depending on the engine.
type Host interface {
	Display(text string, kind console.Kind)
}

// TickFunc is a per-turn background hook. Returning false unregisters the
// hook; any other outcome keeps it scheduled.
type TickFunc func() bool

// Object is anything that can live in an Inventory.
type Object interface {
	ID() string
	Title() string
	Description() string
	Bind(h Host)
	Tick() TickFunc
}

// Entity is the base for every addressable game object. Concrete kinds
// (Location, Item, NPC) embed it.
type Entity struct {
	id    string
	title Text
	desc  Text
	tick  TickFunc
	host  Host
}

// NewEntity creates an entity. An empty id is replaced with a generated
// one; ids are immutable after construction.
func NewEntity(id string, title, desc Text) Entity {
	if id == "" {
		id = uuid.NewString()
	}
	return Entity{id: id, title: title, desc: desc}
}

// ID returns the entity's stable unique key.
func (e *Entity) ID() string { return e.id }

// Title resolves the entity's current display title.
func (e *Entity) Title() string { return e.title.Resolve() }

// Description resolves the entity's current description.
func (e *Entity) Description() string { return e.desc.Resolve() }

// SetTitle replaces the title text.
func (e *Entity) SetTitle(t Text) { e.title = t }

// SetDescription replaces the description text.
func (e *Entity) SetDescription(t Text) { e.desc = t }

// SetTick installs the entity's background hook.
func (e *Entity) SetTick(fn TickFunc) { e.tick = fn }

// Tick returns the background hook, or nil.
func (e *Entity) Tick() TickFunc { return e.tick }

// Bind attaches the owning game. Called lazily when the entity joins a
// game-bound inventory.
func (e *Entity) Bind(h Host) { e.host = h }

// Host returns the owning game, or nil before binding.
func (e *Entity) Host() Host { return e.host }

// display forwards to the host console if the entity is bound.
func (e *Entity) display(text string, kind console.Kind) {
	if e.host != nil {
		e.host.Display(text, kind)
	}
}
