// Package cli provides the plain terminal front end: a prompt loop over
// stdin with meta-command dispatch and kind-prefixed output.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jon-m/adventure-machine/console"
	"github.com/jon-m/adventure-machine/engine"
	"github.com/jon-m/adventure-machine/world"
)

// CLI runs a game session on a plain terminal. It is the game's console:
// engine output flows through Display.
type CLI struct {
	In  io.Reader
	Out io.Writer

	game  *engine.Game
	story *world.Story
}

// New creates a CLI session for the given story.
func New(story *world.Story, log *logrus.Logger) *CLI {
	c := &CLI{
		In:    os.Stdin,
		Out:   os.Stdout,
		story: story,
	}
	c.game = engine.New(c, log)
	return c
}

// Game exposes the underlying game, mainly for tests.
func (c *CLI) Game() *engine.Game { return c.game }

// Display implements console.Console with plain-text presentation.
func (c *CLI) Display(text string, kind console.Kind) {
	switch kind {
	case console.Title:
		fmt.Fprintln(c.Out, text)
		fmt.Fprintln(c.Out, strings.Repeat("-", len(text)))
	case console.Error:
		fmt.Fprintln(c.Out, "! "+text)
	case console.Command, console.Subsection:
		fmt.Fprintln(c.Out, "  "+text)
	default:
		fmt.Fprintln(c.Out, text)
	}
}

// Run starts the session and loops: prompt, input, dispatch, one
// scheduler step. Returns when input ends or the player quits.
func (c *CLI) Run() error {
	if err := c.game.NewGame(c.story); err != nil {
		return err
	}

	scanner := bufio.NewScanner(c.In)
	for {
		// One cooperative tick per prompt iteration.
		c.game.Scheduler().Step()

		fmt.Fprint(c.Out, "> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Comment lines, for script playback.
		if strings.HasPrefix(input, "#") {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return nil
			}
			continue
		}

		c.game.ParseCommand(input)
	}
	return scanner.Err()
}

// handleMeta dispatches meta-commands. Returns true on quit.
func (c *CLI) handleMeta(input string) bool {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.printSystem("/quit — exit, /state — dump session state, /help — this text")
		c.printSystem("Type help for game commands.")

	case "/state":
		data, err := c.game.Snapshot()
		if err != nil {
			c.printSystem(fmt.Sprintf("State dump failed: %v", err))
			return false
		}
		fmt.Fprintln(c.Out, string(data))

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help.", input))
	}
	return false
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
