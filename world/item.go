package world

// Item is an entity the player may use and, when collectable, pick up.
type Item struct {
	Entity

	// Usable is advisory story metadata; dispatch does not gate on it.
	Usable bool

	// OnUse handles "use <item>" and "use <item> on <target>". When nil
	// and the target is an NPC, the NPC's own use reaction is consulted.
	OnUse func(i *Item, target Object)

	collectable bool
}

// NewItem creates an item.
func NewItem(id string, title, desc Text, collectable bool) *Item {
	return &Item{Entity: NewEntity(id, title, desc), collectable: collectable}
}

// NewFixture creates an item that can never be picked up. Fixtures are
// otherwise identical to items.
func NewFixture(id string, title, desc Text) *Item {
	return NewItem(id, title, desc, false)
}

// Collectable reports whether the take command may move this item into
// the player's inventory.
func (i *Item) Collectable() bool { return i.collectable }

// Use applies the item to an optional target. With no use handler the
// call delegates to an NPC target's reaction, and is otherwise a no-op.
func (i *Item) Use(target Object) {
	if i.OnUse != nil {
		i.OnUse(i, target)
		return
	}
	if npc, ok := target.(*NPC); ok {
		npc.Use(i)
	}
}
