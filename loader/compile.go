package loader

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/jon-m/adventure-machine/console"
	"github.com/jon-m/adventure-machine/world"
)

// compile turns collected Lua tables into a world.Story. Lua functions
// are wrapped as Go closures holding the live VM.
func (l *Loader) compile(coll *collector) (*world.Story, error) {
	story := &world.Story{}

	if coll.story != nil {
		story.Name = strField(coll.story, "name")
		story.StartLocation = strField(coll.story, "start")
		story.InventoryCodes = strList(coll.story, "inventory")
	}

	for _, raw := range coll.items {
		item, err := l.compileItem(raw, false)
		if err != nil {
			return nil, err
		}
		story.Items = append(story.Items, item)
	}
	for _, raw := range coll.fixtures {
		item, err := l.compileItem(raw, true)
		if err != nil {
			return nil, err
		}
		story.Items = append(story.Items, item)
	}
	for _, raw := range coll.npcs {
		npc, err := l.compileNPC(raw)
		if err != nil {
			return nil, err
		}
		story.NPCs = append(story.NPCs, npc)
	}
	for _, raw := range coll.locations {
		loc, err := l.compileLocation(raw)
		if err != nil {
			return nil, err
		}
		story.Locations = append(story.Locations, loc)
	}

	return story, nil
}

func (l *Loader) compileItem(raw rawDef, fixture bool) (*world.Item, error) {
	title, err := l.textField(raw.table, "title", raw.id)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", raw.id, err)
	}
	desc, err := l.textField(raw.table, "description", "")
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", raw.id, err)
	}

	var item *world.Item
	if fixture {
		item = world.NewFixture(raw.id, title, desc)
	} else {
		item = world.NewItem(raw.id, title, desc, boolField(raw.table, "collectable"))
	}
	item.Usable = boolField(raw.table, "usable")

	if fn, ok := raw.table.RawGetString("on_use").(*lua.LFunction); ok {
		item.OnUse = func(i *world.Item, target world.Object) {
			targetTitle := lua.LValue(lua.LNil)
			if target != nil {
				targetTitle = lua.LString(target.Title())
			}
			l.callHook(i.Host(), fn, targetTitle)
		}
	}
	return item, nil
}

func (l *Loader) compileNPC(raw rawDef) (*world.NPC, error) {
	title, err := l.textField(raw.table, "title", raw.id)
	if err != nil {
		return nil, fmt.Errorf("npc %q: %w", raw.id, err)
	}
	desc, err := l.textField(raw.table, "description", "")
	if err != nil {
		return nil, fmt.Errorf("npc %q: %w", raw.id, err)
	}

	npc := world.NewNPC(raw.id, title, desc)

	// topics = { key = "reply", ... } builds a keyword-matching ask
	// reaction. Keys are sorted so matching order is deterministic.
	if topics, ok := raw.table.RawGetString("topics").(*lua.LTable); ok {
		type topic struct{ key, reply string }
		var list []topic
		topics.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				if vs, ok := v.(lua.LString); ok {
					list = append(list, topic{key: string(ks), reply: string(vs)})
				}
			}
		})
		sort.Slice(list, func(i, j int) bool { return list[i].key < list[j].key })

		npc.OnAsk = func(n *world.NPC, _ string) {
			for _, t := range list {
				if n.SpeakingAbout(t.key) {
					display(n.Host(), t.reply, console.Message)
					return
				}
			}
			display(n.Host(), fmt.Sprintf("%s has nothing to say about that.", n.Title()), console.Message)
		}
	}

	if greeting := strField(raw.table, "greeting"); greeting != "" {
		npc.OnTalk = func(n *world.NPC) {
			display(n.Host(), greeting, console.Message)
		}
	}

	if fn, ok := raw.table.RawGetString("on_ask").(*lua.LFunction); ok {
		npc.OnAsk = func(n *world.NPC, topic string) {
			l.callHook(n.Host(), fn, lua.LString(topic))
		}
	}
	if fn, ok := raw.table.RawGetString("on_tell").(*lua.LFunction); ok {
		npc.OnTell = func(n *world.NPC, topic string) {
			l.callHook(n.Host(), fn, lua.LString(topic))
		}
	}
	if fn, ok := raw.table.RawGetString("on_give").(*lua.LFunction); ok {
		npc.OnGive = func(n *world.NPC, item *world.Item) {
			l.callHook(n.Host(), fn, lua.LString(item.Title()))
		}
	}
	if fn, ok := raw.table.RawGetString("on_use").(*lua.LFunction); ok {
		npc.OnUse = func(n *world.NPC, item *world.Item) {
			l.callHook(n.Host(), fn, lua.LString(item.Title()))
		}
	}

	return npc, nil
}

func (l *Loader) compileLocation(raw rawDef) (*world.Location, error) {
	title, err := l.textField(raw.table, "title", raw.id)
	if err != nil {
		return nil, fmt.Errorf("location %q: %w", raw.id, err)
	}
	desc, err := l.textField(raw.table, "description", "")
	if err != nil {
		return nil, fmt.Errorf("location %q: %w", raw.id, err)
	}

	loc := world.NewLocation(raw.id, title, desc)
	loc.ItemCodes = strList(raw.table, "items")
	loc.NPCCodes = strList(raw.table, "npcs")

	// exits = { { name = "South", to = "cellar" }, ... }
	if exits, ok := raw.table.RawGetString("exits").(*lua.LTable); ok {
		n := exits.Len()
		for i := 1; i <= n; i++ {
			entry, ok := exits.RawGetInt(i).(*lua.LTable)
			if !ok {
				return nil, fmt.Errorf("location %q: exit %d is not a table", raw.id, i)
			}
			name := strField(entry, "name")
			to := strField(entry, "to")
			if name == "" || to == "" {
				return nil, fmt.Errorf("location %q: exit %d needs name and to", raw.id, i)
			}
			loc.AddExit(world.NewExit(name, to))
		}
	}

	// tick = function() ... end; returning false unregisters, returning
	// a string prints it.
	if fn, ok := raw.table.RawGetString("tick").(*lua.LFunction); ok {
		loc.SetTick(func() bool {
			ret := l.call(loc.Host(), fn)
			if ret == lua.LFalse {
				return false
			}
			if s, ok := ret.(lua.LString); ok {
				display(loc.Host(), string(s), console.Message)
			}
			return true
		})
	}

	return loc, nil
}

// textField reads a field that is either a string or a zero-argument
// function producing one.
func (l *Loader) textField(tbl *lua.LTable, key, fallback string) (world.Text, error) {
	switch v := tbl.RawGetString(key).(type) {
	case lua.LString:
		return world.Static(string(v)), nil
	case *lua.LFunction:
		return world.Dynamic(func() string {
			if s, ok := l.call(nil, v).(lua.LString); ok {
				return string(s)
			}
			return ""
		}), nil
	case *lua.LNilType:
		return world.Static(fallback), nil
	default:
		return world.Text{}, fmt.Errorf("field %q must be a string or function", key)
	}
}

// call invokes a Lua function with one return value. Runtime errors are
// surfaced on the error channel rather than crashing the turn.
func (l *Loader) call(host world.Host, fn *lua.LFunction, args ...lua.LValue) lua.LValue {
	if err := l.vm.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		display(host, fmt.Sprintf("Story script error: %v", err), console.Error)
		return lua.LNil
	}
	ret := l.vm.Get(-1)
	l.vm.Pop(1)
	return ret
}

// callHook invokes a reaction hook and prints its string result, if any.
func (l *Loader) callHook(host world.Host, fn *lua.LFunction, args ...lua.LValue) {
	if s, ok := l.call(host, fn, args...).(lua.LString); ok {
		display(host, string(s), console.Message)
	}
}

func display(host world.Host, text string, kind console.Kind) {
	if host != nil {
		host.Display(text, kind)
	}
}

func strField(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func boolField(tbl *lua.LTable, key string) bool {
	return tbl.RawGetString(key) == lua.LTrue
}

func strList(tbl *lua.LTable, key string) []string {
	list, ok := tbl.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	n := list.Len()
	for i := 1; i <= n; i++ {
		if s, ok := list.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}
