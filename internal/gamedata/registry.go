package gamedata

import (
	"errors"
	"fmt"
)

// DialogueRegistry answers "what does this character say now".
type DialogueRegistry struct {
	npcs     []NPCDef
	lines    map[string]string
	merchant string
	credits  CreditsDef
}

// NewDialogueRegistry creates a registry from loaded dialogue. NPCs must be
// ordered by UntilStage and end with a catch-all, so every stage has a
// speaker.
func NewDialogueRegistry(def DialogueDef) (*DialogueRegistry, error) {
	if len(def.NPCs) == 0 {
		return nil, errors.New("no npcs loaded from dialogue.json")
	}
	last := 0
	for i, npc := range def.NPCs {
		if npc.UntilStage == 0 {
			if i != len(def.NPCs)-1 {
				return nil, fmt.Errorf("npc %q matches every stage but is not last", npc.ID)
			}
			continue
		}
		if npc.UntilStage <= last {
			return nil, fmt.Errorf("npc %q: untilStage %d not above %d", npc.ID, npc.UntilStage, last)
		}
		last = npc.UntilStage
	}
	if def.NPCs[len(def.NPCs)-1].UntilStage != 0 {
		return nil, errors.New("dialogue.json: last npc must match every stage")
	}
	return &DialogueRegistry{
		npcs:     def.NPCs,
		lines:    def.Lines,
		merchant: def.Merchant,
		credits:  def.Credits,
	}, nil
}

// LoadDialogueRegistry loads and creates a registry from the embedded dialogue.json.
func LoadDialogueRegistry() (*DialogueRegistry, error) {
	def, err := LoadDialogue()
	if err != nil {
		return nil, err
	}
	return NewDialogueRegistry(def)
}

// MustLoadDialogueRegistry loads a registry, panicking on error.
func MustLoadDialogueRegistry() *DialogueRegistry {
	registry, err := LoadDialogueRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// NPCForStage returns the talking fish met at the given quest stage.
func (r *DialogueRegistry) NPCForStage(stage int) *NPCDef {
	for i := range r.npcs {
		if r.npcs[i].UntilStage == 0 || stage < r.npcs[i].UntilStage {
			return &r.npcs[i]
		}
	}
	return nil
}

// Line returns the text for a result key. Unknown keys return "".
func (r *DialogueRegistry) Line(key string) string {
	return r.lines[key]
}

// HasLine reports whether the key has text.
func (r *DialogueRegistry) HasLine(key string) bool {
	_, ok := r.lines[key]
	return ok
}

// Merchant returns the merchant's title.
func (r *DialogueRegistry) Merchant() string {
	return r.merchant
}

// Credits returns the end screen.
func (r *DialogueRegistry) Credits() CreditsDef {
	return r.credits
}
