package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jon-m/adventure-machine/world"
)

func validStory() *world.Story {
	hall := world.NewLocation("hall", world.Static("Hall"), world.Static(""))
	hall.ItemCodes = []string{"key"}
	hall.NPCCodes = []string{"guard"}
	return &world.Story{
		Name:          "Valid",
		Locations:     []*world.Location{hall},
		Items:         []*world.Item{world.NewItem("key", world.Static("Key"), world.Static(""), true)},
		NPCs:          []*world.NPC{world.NewNPC("guard", world.Static("Guard"), world.Static(""))},
		StartLocation: "hall",
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validate(validStory()))
}

func TestValidate_MissingName(t *testing.T) {
	story := validStory()
	story.Name = ""
	err := validate(story)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestValidate_UnknownStart(t *testing.T) {
	story := validStory()
	story.StartLocation = "attic"
	err := validate(story)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `start location "attic"`)
}

func TestValidate_UnknownItemCode(t *testing.T) {
	story := validStory()
	story.Locations[0].ItemCodes = append(story.Locations[0].ItemCodes, "ghost_item")
	err := validate(story)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost_item")
}

func TestValidate_DuplicateLocation(t *testing.T) {
	story := validStory()
	story.Locations = append(story.Locations,
		world.NewLocation("hall", world.Static("Hall Again"), world.Static("")))
	err := validate(story)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate location")
}

// Exit destinations may reference locations that are not defined; the
// engine tolerates dangling destinations, so validation only warns.
func TestValidate_DanglingExitIsWarning(t *testing.T) {
	story := validStory()
	story.Locations[0].AddExit(world.NewExit("North", "nowhere"))

	err := validate(story)
	assert.NoError(t, err)
}

func TestValidate_BadStartingInventoryCode(t *testing.T) {
	story := validStory()
	story.InventoryCodes = []string{"no_such"}
	err := validate(story)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 1)
}
