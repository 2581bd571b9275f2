package engine

import (
	"fmt"
	"strings"

	"github.com/jon-m/adventure-machine/console"
	"github.com/jon-m/adventure-machine/world"
)

// builtinCommands constructs the global command set once per Game. The
// commands are re-bound, never rebuilt, on navigation.
func (g *Game) builtinCommands() []world.Command {
	return []world.Command{
		NewCallbackCommand("help", "help — list available commands", cmdHelp),
		NewCallbackCommand("look", "look — describe your surroundings", cmdLook),
		NewCallbackCommand("inventory", "inventory — list what you are carrying", cmdInventory),
		NewCallbackCommand("go", "go <exit> — move through an exit", cmdGo),
		NewRegexCallbackCommand("examine", "", "examine <thing> — look closely at something", cmdExamine),
		NewRegexCallbackCommand("take", "", "take <item> — pick something up", cmdTake),
		NewRegexCallbackCommand("drop", "", "drop <item> — put something down", cmdDrop),
		NewRegexCallbackCommand("use", "on", "use <item> [on <thing>] — use an item", cmdUse),
		NewRegexCallbackCommand("ask", "about", "ask <npc> about <topic>", cmdAsk),
		NewRegexCallbackCommand("tell", "about", "tell <npc> about <topic>", cmdTell),
		NewRegexCallbackCommand("talk", "", "talk <npc> — strike up a conversation", cmdTalk),
		NewRegexCallbackCommand("give", "to", "give <item> to <npc>", cmdGive),
	}
}

func cmdHelp(g *Game, raw string, tokens []string) {
	for _, cmd := range g.available {
		g.Display(cmd.Description(), console.Command)
	}
}

func cmdLook(g *Game, raw string, tokens []string) {
	if g.Current != nil {
		g.describeLocation(g.Current)
	}
}

func cmdInventory(g *Game, raw string, tokens []string) {
	objs := g.Inventory.Objects()
	if len(objs) == 0 {
		g.Display("You are carrying nothing.", console.Information)
		return
	}
	names := make([]string, 0, len(objs))
	for _, obj := range objs {
		names = append(names, obj.Title())
	}
	g.Display("You are carrying: "+strings.Join(names, ", "), console.Information)
}

func cmdGo(g *Game, raw string, tokens []string) {
	if len(tokens) < 2 {
		g.Display("Go where?", console.Error)
		return
	}
	if g.Current == nil {
		return
	}
	name := tokens[1]
	exit := g.Current.ExitNamed(name)
	if exit == nil {
		g.Display(fmt.Sprintf("%q is not an exit.", name), console.Error)
		return
	}
	// Exit.OnExit is intentionally not fired here; see the navigation
	// tests pinning that behavior.
	g.GoTo(exit.DestinationID)
}

// findItem searches the given inventories in order for an item with the
// given display name.
func findItem(name string, inventories ...*world.Inventory) *world.Item {
	for _, inv := range inventories {
		if obj := inv.FindByName(name); obj != nil {
			if item, ok := obj.(*world.Item); ok {
				return item
			}
		}
	}
	return nil
}

// findNPC searches the given inventories in order for an NPC with the
// given display name.
func findNPC(name string, inventories ...*world.Inventory) *world.NPC {
	for _, inv := range inventories {
		if obj := inv.FindByName(name); obj != nil {
			if npc, ok := obj.(*world.NPC); ok {
				return npc
			}
		}
	}
	return nil
}

func cmdExamine(g *Game, raw, target1, target2 string) {
	if g.Current == nil {
		return
	}
	// Player inventory first, then the location's items, then its NPCs.
	if obj := g.Inventory.FindByName(target1); obj != nil {
		g.Display(obj.Description(), console.Description)
		return
	}
	if obj := g.Current.Items.FindByName(target1); obj != nil {
		g.Display(obj.Description(), console.Description)
		return
	}
	if obj := g.Current.NPCs.FindByName(target1); obj != nil {
		g.Display(obj.Description(), console.Description)
		return
	}
	g.Display(fmt.Sprintf("You don't see %q here.", strings.TrimSpace(target1)), console.Error)
}

func cmdTake(g *Game, raw, target1, target2 string) {
	if g.Current == nil {
		return
	}
	item := findItem(target1, g.Current.Items)
	if item == nil {
		g.Display(fmt.Sprintf("There is no %q here.", strings.TrimSpace(target1)), console.Error)
		return
	}
	if !item.Collectable() {
		g.Display("You cannot take this item.", console.Error)
		return
	}
	g.Current.Items.Remove(item.ID())
	g.Inventory.Add(item)
	g.Display(fmt.Sprintf("You take the %s.", item.Title()), console.Message)
}

func cmdDrop(g *Game, raw, target1, target2 string) {
	if g.Current == nil {
		return
	}
	item := findItem(target1, g.Inventory)
	if item == nil {
		g.Display(fmt.Sprintf("You are not carrying %q.", strings.TrimSpace(target1)), console.Error)
		return
	}
	g.Inventory.Remove(item.ID())
	g.Current.Items.Add(item)
	g.Display(fmt.Sprintf("You drop the %s.", item.Title()), console.Message)
}

func cmdUse(g *Game, raw, target1, target2 string) {
	if g.Current == nil {
		return
	}
	item := findItem(target1, g.Inventory, g.Current.Items)
	if item == nil {
		g.Display(fmt.Sprintf("You don't have %q.", strings.TrimSpace(target1)), console.Error)
		return
	}

	var target world.Object
	if strings.TrimSpace(target2) != "" {
		target = resolveTarget(g, target2)
		if target == nil {
			g.Display(fmt.Sprintf("You don't see %q here.", strings.TrimSpace(target2)), console.Error)
			return
		}
	}
	item.Use(target)
}

// resolveTarget finds a use/give target: the location's NPCs, then its
// items, then the player's inventory.
func resolveTarget(g *Game, name string) world.Object {
	if obj := g.Current.NPCs.FindByName(name); obj != nil {
		return obj
	}
	if obj := g.Current.Items.FindByName(name); obj != nil {
		return obj
	}
	if obj := g.Inventory.FindByName(name); obj != nil {
		return obj
	}
	return nil
}

func cmdAsk(g *Game, raw, target1, target2 string) {
	npc, topic, ok := npcAndTopic(g, target1, target2, "ask")
	if !ok {
		return
	}
	npc.Ask(topic)
}

func cmdTell(g *Game, raw, target1, target2 string) {
	npc, topic, ok := npcAndTopic(g, target1, target2, "tell")
	if !ok {
		return
	}
	npc.Tell(topic)
}

// npcAndTopic resolves the NPC and topic for ask/tell. A missing topic is
// a recoverable error.
func npcAndTopic(g *Game, target1, target2, verb string) (*world.NPC, string, bool) {
	if g.Current == nil {
		return nil, "", false
	}
	if strings.TrimSpace(target2) == "" {
		g.Display(fmt.Sprintf("What do you want to %s about?", verb), console.Error)
		return nil, "", false
	}
	npc := findNPC(target1, g.Current.NPCs)
	if npc == nil {
		g.Display(fmt.Sprintf("There is no one called %q here.", strings.TrimSpace(target1)), console.Error)
		return nil, "", false
	}
	return npc, target2, true
}

func cmdTalk(g *Game, raw, target1, target2 string) {
	if g.Current == nil {
		return
	}
	// Accept both "talk guard" and "talk to guard".
	name := strings.TrimSpace(target1)
	if len(name) > 3 && strings.EqualFold(name[:3], "to ") {
		name = strings.TrimSpace(name[3:])
	}
	npc := findNPC(name, g.Current.NPCs)
	if npc == nil {
		g.Display(fmt.Sprintf("There is no one called %q here.", name), console.Error)
		return
	}
	npc.Talk()
}

func cmdGive(g *Game, raw, target1, target2 string) {
	if g.Current == nil {
		return
	}
	if strings.TrimSpace(target2) == "" {
		g.Display("Give to whom?", console.Error)
		return
	}
	item := findItem(target1, g.Inventory)
	if item == nil {
		g.Display(fmt.Sprintf("You are not carrying %q.", strings.TrimSpace(target1)), console.Error)
		return
	}
	npc := findNPC(target2, g.Current.NPCs)
	if npc == nil {
		g.Display(fmt.Sprintf("There is no one called %q here.", strings.TrimSpace(target2)), console.Error)
		return
	}
	// Whether the item changes hands is the reaction's call.
	npc.Give(item)
}
