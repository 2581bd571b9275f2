// Adventure-machine runs Lua-defined text adventures in the terminal.
// Usage: adventure [--version] [--plain] [--debug] <story_directory>
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jon-m/adventure-machine/cli"
	"github.com/jon-m/adventure-machine/loader"
	"github.com/jon-m/adventure-machine/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	debug := false
	var storyDir string

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version":
			fmt.Printf("adventure %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--debug":
			debug = true
		default:
			if storyDir == "" {
				storyDir = arg
			}
		}
	}

	if storyDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: adventure [--version] [--plain] [--debug] <story_directory>\n")
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	ldr, err := loader.Load(storyDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading story: %v\n", err)
		os.Exit(1)
	}
	defer ldr.Close()

	if plain {
		if err := cli.New(ldr.Story(), log).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Run(ldr.Story(), log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
