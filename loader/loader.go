// Package loader reads story content from Lua files and compiles it into
// a world.Story. The VM stays alive for the session: dynamic descriptions,
// tick hooks, and NPC reactions written in Lua are bridged as Go closures
// that call back into it.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jon-m/adventure-machine/world"
)

// collector accumulates raw Lua definitions during file execution.
type collector struct {
	story     *lua.LTable
	locations []rawDef
	items     []rawDef
	fixtures  []rawDef
	npcs      []rawDef
}

// rawDef is an id plus its Lua definition table.
type rawDef struct {
	id    string
	table *lua.LTable
}

// Loader owns the live VM and the compiled story.
type Loader struct {
	vm    *lua.LState
	story *world.Story
}

// Load executes all .lua files in dir (story.lua first, rest
// alphabetical), compiles them, and validates references.
func Load(dir string) (*Loader, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading story directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	files = sortedStoryFiles(files)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range files {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			L.Close()
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	ldr := &Loader{vm: L}
	story, err := ldr.compile(coll)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("compiling story data: %w", err)
	}

	if err := validate(story); err != nil {
		L.Close()
		return nil, err
	}

	ldr.story = story
	return ldr, nil
}

// Story returns the compiled story record.
func (l *Loader) Story() *world.Story { return l.story }

// Close shuts down the VM. Lua-backed hooks stop working afterwards.
func (l *Loader) Close() {
	l.vm.Close()
}

// sortedStoryFiles puts story.lua first and sorts the rest alphabetically.
func sortedStoryFiles(files []string) []string {
	sort.Strings(files)
	for i, f := range files {
		if f == "story.lua" {
			return append([]string{f}, append(append([]string{}, files[:i]...), files[i+1:]...)...)
		}
	}
	return files
}

// openSafeLibs opens only the safe subset of the Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that could touch the host system.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	} {
		L.SetGlobal(name, lua.LNil)
	}
}
