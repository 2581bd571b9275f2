package loader

import (
	"fmt"
	"strings"

	"github.com/jon-m/adventure-machine/world"
)

// ValidationError collects all validation errors and warnings found in a
// compiled story.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks referential integrity. Exit destinations are allowed to
// dangle (the engine tolerates unreachable-yet destinations), so those
// only warn.
func validate(story *world.Story) error {
	ve := &ValidationError{}

	if story.Name == "" {
		ve.Errors = append(ve.Errors, "Story.name is required")
	}

	if len(story.Locations) == 0 {
		ve.Errors = append(ve.Errors, "story defines no locations")
	}

	locations := map[string]bool{}
	for _, loc := range story.Locations {
		if locations[loc.ID()] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate location id %q", loc.ID()))
		}
		locations[loc.ID()] = true
	}

	if story.StartLocation == "" {
		ve.Errors = append(ve.Errors, "Story.start is required")
	} else if !locations[story.StartLocation] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start location %q not found in defined locations", story.StartLocation))
	}

	items := map[string]bool{}
	for _, item := range story.Items {
		if items[item.ID()] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate item id %q", item.ID()))
		}
		items[item.ID()] = true
	}

	npcs := map[string]bool{}
	for _, npc := range story.NPCs {
		if npcs[npc.ID()] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate NPC id %q", npc.ID()))
		}
		npcs[npc.ID()] = true
	}

	for _, code := range story.InventoryCodes {
		if !items[code] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"starting inventory references unknown item %q", code))
		}
	}

	for _, loc := range story.Locations {
		for _, code := range loc.ItemCodes {
			if !items[code] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"location %q references unknown item %q", loc.ID(), code))
			}
		}
		for _, code := range loc.NPCCodes {
			if !npcs[code] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"location %q references unknown NPC %q", loc.ID(), code))
			}
		}
		for _, exit := range loc.Exits() {
			if !locations[exit.DestinationID] {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"location %q exit %q points to undefined location %q",
					loc.ID(), exit.Name, exit.DestinationID))
			}
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
