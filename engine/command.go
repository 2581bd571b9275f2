package engine

import (
	"regexp"
	"strings"

	"github.com/jon-m/adventure-machine/console"
	"github.com/jon-m/adventure-machine/world"
)

// binder is implemented by commands that hold a game back-reference. The
// active command set is re-bound every time it is rebuilt.
type binder interface {
	Bind(g *Game)
}

// CallbackCommand matches when the first whitespace-delimited token of the
// input equals its name, case-insensitively. A non-matching line is a
// silent no-op.
type CallbackCommand struct {
	name        string
	description string
	game        *Game
	callback    func(g *Game, raw string, tokens []string)
}

// NewCallbackCommand creates a plain-callback command.
func NewCallbackCommand(name, description string, cb func(g *Game, raw string, tokens []string)) *CallbackCommand {
	return &CallbackCommand{name: name, description: description, callback: cb}
}

// ShortName returns the command's match name.
func (c *CallbackCommand) ShortName() string { return c.name }

// Description returns the usage text shown by help.
func (c *CallbackCommand) Description() string { return c.description }

// Bind attaches the active game.
func (c *CallbackCommand) Bind(g *Game) { c.game = g }

// Execute runs the callback if the first token matches the name.
func (c *CallbackCommand) Execute(raw string, tokens []string) {
	if len(tokens) == 0 || !strings.EqualFold(tokens[0], c.name) {
		return
	}
	if c.callback != nil {
		c.callback(c.game, raw, tokens)
	}
}

// RegexCallbackCommand matches targeted input of the form
// "<name> <target>" or, with a preposition, "<name> <target1> <prep>
// <target2>". The long form is tried first. A bare name shows the usage
// description instead of invoking the callback.
//
// Capture is greedy: a preposition word appearing inside a target's own
// name splits in the wrong place. Known limitation, kept for fidelity with
// the historical matcher and pinned by tests.
type RegexCallbackCommand struct {
	name        string
	preposition string
	description string
	game        *Game
	short       *regexp.Regexp
	long        *regexp.Regexp
	callback    func(g *Game, raw, target1, target2 string)
}

// NewRegexCallbackCommand creates a targeted command. preposition may be
// empty for single-target commands.
func NewRegexCallbackCommand(name, preposition, description string, cb func(g *Game, raw, target1, target2 string)) *RegexCallbackCommand {
	c := &RegexCallbackCommand{
		name:        name,
		preposition: preposition,
		description: description,
		callback:    cb,
		short:       regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(name) + `\s+(.+)`),
	}
	if preposition != "" {
		c.long = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(name) +
			`\s+(.+)\s+` + regexp.QuoteMeta(preposition) + `\s+(.+)`)
	}
	return c
}

// ShortName returns the command's match name.
func (c *RegexCallbackCommand) ShortName() string { return c.name }

// Description returns the usage text.
func (c *RegexCallbackCommand) Description() string { return c.description }

// Bind attaches the active game.
func (c *RegexCallbackCommand) Bind(g *Game) { c.game = g }

// Execute matches the raw line against the long then short form.
func (c *RegexCallbackCommand) Execute(raw string, tokens []string) {
	line := strings.TrimSpace(raw)
	if len(line) < len(c.name) || !strings.EqualFold(line[:len(c.name)], c.name) {
		return
	}

	if c.long != nil {
		if m := c.long.FindStringSubmatch(line); m != nil {
			c.invoke(raw, m[1], m[2])
			return
		}
	}
	if m := c.short.FindStringSubmatch(line); m != nil {
		c.invoke(raw, m[1], "")
		return
	}

	// Bare command name: show usage rather than erroring.
	if c.game != nil {
		c.game.Display(c.description, console.Command)
	}
}

func (c *RegexCallbackCommand) invoke(raw, target1, target2 string) {
	if c.callback != nil {
		c.callback(c.game, raw, target1, target2)
	}
}

var _ world.Command = (*CallbackCommand)(nil)
var _ world.Command = (*RegexCallbackCommand)(nil)
