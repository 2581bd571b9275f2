package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jon-m/adventure-machine/world"
)

func testStory() *world.Story {
	hall := world.NewLocation("hall", world.Static("Hall"), world.Static("A grand hall."))
	hall.AddExit(world.NewExit("North", "garden"))
	hall.ItemCodes = []string{"key"}

	garden := world.NewLocation("garden", world.Static("Garden"), world.Static("A peaceful garden."))
	garden.AddExit(world.NewExit("South", "hall"))

	return &world.Story{
		Name:      "Test Story",
		Locations: []*world.Location{hall, garden},
		Items: []*world.Item{
			world.NewItem("key", world.Static("Rusty Key"), world.Static("An old key."), true),
		},
		StartLocation: "hall",
	}
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	c := New(testStory(), nil)
	var out bytes.Buffer
	c.In = strings.NewReader(input)
	c.Out = &out
	return c, &out
}

func TestCLI_StartingLocationRendered(t *testing.T) {
	c, out := newTestCLI(t, "/quit\n")
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}

	output := out.String()
	if !strings.Contains(output, "Hall") {
		t.Error("expected starting location title")
	}
	if !strings.Contains(output, "A grand hall.") {
		t.Error("expected starting location description")
	}
}

func TestCLI_BasicGameplay(t *testing.T) {
	c, out := newTestCLI(t, "take rusty key\ngo north\n/quit\n")
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}

	output := out.String()
	if !strings.Contains(output, "You take the Rusty Key.") {
		t.Errorf("take confirmation missing:\n%s", output)
	}
	if !strings.Contains(output, "A peaceful garden.") {
		t.Errorf("navigation output missing:\n%s", output)
	}
}

func TestCLI_ErrorPrefix(t *testing.T) {
	c, out := newTestCLI(t, "go west\n/quit\n")
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `! "west" is not an exit.`) {
		t.Errorf("error lines should carry the error prefix:\n%s", out.String())
	}
}

func TestCLI_StateDump(t *testing.T) {
	c, out := newTestCLI(t, "/state\n/quit\n")
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	output := out.String()
	if !strings.Contains(output, `"location": "hall"`) {
		t.Errorf("state dump missing location:\n%s", output)
	}
}

func TestCLI_CommentsAndBlankLinesSkipped(t *testing.T) {
	c, out := newTestCLI(t, "\n# a script comment\n/quit\n")
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Unknown command") {
		t.Error("comments and blank lines must not be dispatched")
	}
}

func TestCLI_EmptyStoryIsFatal(t *testing.T) {
	c := New(&world.Story{Name: "Empty"}, nil)
	var out bytes.Buffer
	c.In = strings.NewReader("")
	c.Out = &out
	if err := c.Run(); err == nil {
		t.Fatal("expected a fatal error for an empty story")
	}
	if !strings.Contains(out.String(), "!") {
		t.Error("fatal error should be surfaced before exiting")
	}
}
