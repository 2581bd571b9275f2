// Package engine implements the command-matching and world-state core:
// the Game orchestrator, the two command styles, and the cooperative tick
// scheduler.
package engine

import (
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/jon-m/adventure-machine/console"
	"github.com/jon-m/adventure-machine/engine/parser"
	"github.com/jon-m/adventure-machine/world"
)

// Game owns the world graph, the catalogs, the player inventory, the
// active command set, and the tick scheduler. One Game is constructed per
// session; NewGame is the single initialization entry point.
type Game struct {
	Name      string
	Locations map[string]*world.Location
	Current   *world.Location

	// AvailableItems is the master item catalog, immutable after start.
	AvailableItems *world.Inventory

	// Inventory is the player's bag.
	Inventory *world.Inventory

	// NPCs is the master NPC catalog.
	NPCs *world.Inventory

	builtins      []world.Command
	storyCommands []world.Command
	available     []world.Command

	sched *Scheduler
	out   console.Console
	log   *logrus.Logger
}

// New creates a game wired to the given console. A nil logger disables
// engine logging.
func New(out console.Console, log *logrus.Logger) *Game {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	g := &Game{
		Locations:      map[string]*world.Location{},
		AvailableItems: world.NewInventory(),
		Inventory:      world.NewInventory(),
		NPCs:           world.NewInventory(),
		sched:          NewScheduler(),
		out:            out,
		log:            log,
	}
	g.builtins = g.builtinCommands()
	return g
}

// Display implements world.Host, forwarding to the console.
func (g *Game) Display(text string, kind console.Kind) {
	if g.out != nil {
		g.out.Display(text, kind)
	}
}

// Scheduler returns the tick scheduler for the host front end to pump.
func (g *Game) Scheduler() *Scheduler { return g.sched }

// Commands returns the currently active command set.
func (g *Game) Commands() []world.Command { return g.available }

// NewGame initializes the session from a story record. The only fatal
// configuration error is an empty location list; every other resolution
// failure is reported through the error channel and skipped.
func (g *Game) NewGame(story *world.Story) error {
	if story == nil || len(story.Locations) == 0 {
		err := fmt.Errorf("story %q has no locations", storyName(story))
		g.Display(err.Error(), console.Error)
		return err
	}

	g.log.WithFields(logrus.Fields{
		"story":     story.Name,
		"locations": len(story.Locations),
		"items":     len(story.Items),
		"npcs":      len(story.NPCs),
	}).Debug("starting new game")

	g.Name = story.Name
	g.Locations = map[string]*world.Location{}
	g.AvailableItems = world.NewInventory()
	g.Inventory = world.NewInventory()
	g.NPCs = world.NewInventory()
	g.storyCommands = story.Commands
	g.available = nil
	g.sched.Clear()

	for _, item := range story.Items {
		g.AvailableItems.Add(item)
	}
	g.AvailableItems.Bind(g)

	for _, npc := range story.NPCs {
		g.NPCs.Add(npc)
	}
	g.NPCs.Bind(g)

	// Starting inventory: each code resolves against the catalog; a bad
	// code is reported and skipped, never fatal.
	for _, code := range story.InventoryCodes {
		obj := g.AvailableItems.Get(code)
		if obj == nil {
			g.Display(fmt.Sprintf("Unknown item code %q in starting inventory.", code), console.Error)
			g.log.WithField("code", code).Warn("unresolved starting inventory code")
			continue
		}
		g.Inventory.Add(obj)
	}
	g.Inventory.Bind(g)

	for _, loc := range story.Locations {
		g.attachByCodes(loc)
		g.Locations[loc.ID()] = loc
		loc.Bind(g)
	}

	g.GoTo(story.StartLocation)
	return nil
}

// attachByCodes fills a location's inventories from its catalog
// cross-reference lists.
func (g *Game) attachByCodes(loc *world.Location) {
	for _, code := range loc.ItemCodes {
		obj := g.AvailableItems.Get(code)
		if obj == nil {
			g.Display(fmt.Sprintf("Unknown item code %q in location %q.", code, loc.ID()), console.Error)
			continue
		}
		loc.Items.Add(obj)
	}
	for _, code := range loc.NPCCodes {
		obj := g.NPCs.Get(code)
		if obj == nil {
			g.Display(fmt.Sprintf("Unknown NPC code %q in location %q.", code, loc.ID()), console.Error)
			continue
		}
		loc.NPCs.Add(obj)
	}
}

// ParseCommand offers one input line to every active command, in order,
// with no short-circuit: every command whose matcher accepts the line
// executes. Two commands sharing a name both fire. Kept deliberately; see
// the dispatch tests.
func (g *Game) ParseCommand(raw string) {
	tokens := parser.Tokenize(raw)
	g.log.WithFields(logrus.Fields{"input": raw, "tokens": len(tokens)}).Debug("dispatching")
	for _, cmd := range g.available {
		cmd.Execute(raw, tokens)
	}
}

// GoTo moves the player to the location with the given id. An unknown id
// is reported and leaves all state unchanged. On success the visit counter
// increments, the active command set is rebuilt and re-bound, the location
// is rendered, and the tick scheduler is reset for the new location.
func (g *Game) GoTo(locationID string) {
	loc, ok := g.Locations[locationID]
	if !ok {
		g.Display(fmt.Sprintf("There is no place called %q.", locationID), console.Error)
		g.log.WithField("location", locationID).Warn("navigation to unknown location")
		return
	}

	g.Current = loc
	loc.Visits++

	g.rebuildCommands(loc)
	g.describeLocation(loc)

	g.sched.Clear()
	if tick := loc.Tick(); tick != nil {
		g.sched.Add(tick)
		g.sched.Start()
	}

	g.log.WithFields(logrus.Fields{"location": loc.ID(), "visits": loc.Visits}).Debug("moved")
}

// rebuildCommands replaces the active set with globals + story commands +
// the location's local commands, re-binding each to this game.
func (g *Game) rebuildCommands(loc *world.Location) {
	g.available = nil
	g.available = append(g.available, g.builtins...)
	g.available = append(g.available, g.storyCommands...)
	g.available = append(g.available, loc.Commands...)
	for _, cmd := range g.available {
		if b, ok := cmd.(binder); ok {
			b.Bind(g)
		}
	}
}

// describeLocation renders a location's title, description, exits, items,
// and NPCs through the console.
func (g *Game) describeLocation(loc *world.Location) {
	g.Display(loc.Title(), console.Title)
	g.Display(loc.Description(), console.Description)

	if exits := loc.Exits(); len(exits) > 0 {
		names := make([]string, 0, len(exits))
		for _, e := range exits {
			names = append(names, e.Name)
		}
		g.Display("Exits: "+strings.Join(names, ", "), console.Section)
	}

	if items := loc.Items.Objects(); len(items) > 0 {
		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Title())
		}
		g.Display("You see: "+strings.Join(names, ", "), console.Information)
	}

	if npcs := loc.NPCs.Objects(); len(npcs) > 0 {
		names := make([]string, 0, len(npcs))
		for _, n := range npcs {
			names = append(names, n.Title())
		}
		g.Display("Also here: "+strings.Join(names, ", "), console.Information)
	}
}

// snapshot is the debug dump consumed by the /state meta-command.
type snapshot struct {
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Visits    int      `json:"visits"`
	Inventory []string `json:"inventory"`
	Commands  []string `json:"commands"`
	Ticks     int      `json:"ticks"`
}

// Snapshot serializes the observable session state as indented JSON.
func (g *Game) Snapshot() ([]byte, error) {
	snap := snapshot{
		Name:  g.Name,
		Ticks: g.sched.Len(),
	}
	if g.Current != nil {
		snap.Location = g.Current.ID()
		snap.Visits = g.Current.Visits
	}
	for _, obj := range g.Inventory.Objects() {
		snap.Inventory = append(snap.Inventory, obj.ID())
	}
	for _, cmd := range g.available {
		snap.Commands = append(snap.Commands, cmd.ShortName())
	}
	return gojson.MarshalIndent(snap, "", "  ")
}

func storyName(story *world.Story) string {
	if story == nil {
		return ""
	}
	return story.Name
}
