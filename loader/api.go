package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI installs the Lua constructors. Location, Item, Fixture, and
// NPC are curried: `Location "kitchen" { ... }`.
func registerAPI(L *lua.LState, coll *collector) {
	// Story { name = "...", start = "...", inventory = {...} }
	L.SetGlobal("Story", L.NewFunction(func(L *lua.LState) int {
		coll.story = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("Location", curried(L, func(id string, tbl *lua.LTable) {
		coll.locations = append(coll.locations, rawDef{id: id, table: tbl})
	}))

	L.SetGlobal("Item", curried(L, func(id string, tbl *lua.LTable) {
		coll.items = append(coll.items, rawDef{id: id, table: tbl})
	}))

	L.SetGlobal("Fixture", curried(L, func(id string, tbl *lua.LTable) {
		coll.fixtures = append(coll.fixtures, rawDef{id: id, table: tbl})
	}))

	L.SetGlobal("NPC", curried(L, func(id string, tbl *lua.LTable) {
		coll.npcs = append(coll.npcs, rawDef{id: id, table: tbl})
	}))
}

// curried wraps a two-step constructor: f("id") returns a function taking
// the definition table.
func curried(L *lua.LState, collect func(id string, tbl *lua.LTable)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			collect(id, L.CheckTable(1))
			return 0
		}))
		return 1
	})
}
