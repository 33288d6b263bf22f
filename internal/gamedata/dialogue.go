package gamedata

// NPCDef is one talking fish, shown while the quest stage is below
// UntilStage. A zero UntilStage matches every stage.
type NPCDef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UntilStage int    `json:"untilStage"`
	Line       string `json:"line"`
}

// CreditsDef is the end screen.
type CreditsDef struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// DialogueDef is the root of dialogue.json.
type DialogueDef struct {
	NPCs     []NPCDef          `json:"npcs"`
	Merchant string            `json:"merchant"`
	Lines    map[string]string `json:"lines"`
	Credits  CreditsDef        `json:"credits"`
}

// LoadDialogue loads all dialogue from the embedded dialogue.json.
func LoadDialogue() (DialogueDef, error) {
	return Load[DialogueDef]("dialogue.json")
}
