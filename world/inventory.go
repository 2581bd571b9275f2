package world

import "strings"

// Inventory is a keyed container of objects, reused for the player's bag,
// location contents, NPC registries, and the master catalogs. Insertion
// order is preserved so name lookups are deterministic.
//
// Remove tombstones a slot instead of deleting the key: lookups after
// removal return nil and iteration skips the slot, but re-adding the same
// id revives it in place. This mirrors the historical container behavior
// and is covered by tests.
type Inventory struct {
	order []string
	slots map[string]Object
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{slots: map[string]Object{}}
}

// Add stores the object under its id. Adding nil is a no-op.
func (inv *Inventory) Add(obj Object) {
	if obj == nil {
		return
	}
	id := obj.ID()
	if _, seen := inv.slots[id]; !seen {
		inv.order = append(inv.order, id)
	}
	inv.slots[id] = obj
}

// Get returns the object with the given id, or nil if absent or removed.
func (inv *Inventory) Get(id string) Object {
	return inv.slots[id]
}

// Remove tombstones the slot for the given id. Unknown ids are ignored.
func (inv *Inventory) Remove(id string) {
	if _, seen := inv.slots[id]; seen {
		inv.slots[id] = nil
	}
}

// FindByName returns the first object whose title equals name after
// trimming, case-insensitively. Returns nil when nothing matches.
func (inv *Inventory) FindByName(name string) Object {
	want := strings.TrimSpace(name)
	for _, id := range inv.order {
		obj := inv.slots[id]
		if obj == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(obj.Title()), want) {
			return obj
		}
	}
	return nil
}

// Objects returns the live objects in insertion order.
func (inv *Inventory) Objects() []Object {
	var out []Object
	for _, id := range inv.order {
		if obj := inv.slots[id]; obj != nil {
			out = append(out, obj)
		}
	}
	return out
}

// Len returns the number of live objects.
func (inv *Inventory) Len() int {
	n := 0
	for _, id := range inv.order {
		if inv.slots[id] != nil {
			n++
		}
	}
	return n
}

// Bind attaches the host to every live object.
func (inv *Inventory) Bind(h Host) {
	for _, obj := range inv.Objects() {
		obj.Bind(h)
	}
}
