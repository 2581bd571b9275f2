package world

import (
	"fmt"
	"strings"

	"github.com/jon-m/adventure-machine/console"
)

// NPC is an entity the player can ask, tell, talk to, give items to, and
// use items on. Each reaction hook falls back to a generic canned reply
// when unset.
type NPC struct {
	Entity

	OnAsk  func(n *NPC, topic string)
	OnTell func(n *NPC, topic string)
	OnTalk func(n *NPC)
	OnGive func(n *NPC, item *Item)
	OnUse  func(n *NPC, item *Item)

	currentTopic string
}

// NewNPC creates an NPC with no custom reactions.
func NewNPC(id string, title, desc Text) *NPC {
	return &NPC{Entity: NewEntity(id, title, desc)}
}

// Ask records the topic as the current topic, then runs the ask reaction.
func (n *NPC) Ask(topic string) {
	n.currentTopic = topic
	if n.OnAsk != nil {
		n.OnAsk(n, topic)
		return
	}
	n.display(fmt.Sprintf("%s has nothing to say about that.", n.Title()), console.Message)
}

// Tell records the topic as the current topic, then runs the tell
// reaction.
func (n *NPC) Tell(topic string) {
	n.currentTopic = topic
	if n.OnTell != nil {
		n.OnTell(n, topic)
		return
	}
	n.display(fmt.Sprintf("%s doesn't seem interested.", n.Title()), console.Message)
}

// Talk runs the talk reaction.
func (n *NPC) Talk() {
	if n.OnTalk != nil {
		n.OnTalk(n)
		return
	}
	n.display(fmt.Sprintf("%s has nothing to say right now.", n.Title()), console.Message)
}

// Give runs the give reaction. Whether the item changes hands is up to
// the reaction; the default reply refuses it.
func (n *NPC) Give(item *Item) {
	if n.OnGive != nil {
		n.OnGive(n, item)
		return
	}
	n.display(fmt.Sprintf("%s doesn't want that.", n.Title()), console.Message)
}

// Use runs the reaction for an item being used on this NPC.
func (n *NPC) Use(item *Item) {
	if n.OnUse != nil {
		n.OnUse(n, item)
		return
	}
	n.display(fmt.Sprintf("That has no effect on %s.", n.Title()), console.Message)
}

// CurrentTopic returns the last topic passed to Ask or Tell.
func (n *NPC) CurrentTopic() string { return n.currentTopic }

// SpeakingAbout reports whether the current topic contains any of the
// given keywords, case-insensitively.
func (n *NPC) SpeakingAbout(keywords ...string) bool {
	topic := strings.ToLower(n.currentTopic)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(topic, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
