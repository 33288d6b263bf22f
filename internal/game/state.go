// Package game runs a treasure hunt session and the terminal frame loop.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the avatar sails and acts on tiles.
	StateExplore State = iota
	// StateDialogue shows a fishing result or a talking fish.
	StateDialogue
	// StateMerchant is the bazar's y/n purchase prompt.
	StateMerchant
	// StateInventory lists what the player carries.
	StateInventory
	// StateAtlas shows the whole-world map.
	StateAtlas
	// StateWon is the credits screen after reaching the goal.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDialogue:
		return "dialogue"
	case StateMerchant:
		return "merchant"
	case StateInventory:
		return "inventory"
	case StateAtlas:
		return "atlas"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Overlay reports whether the state draws over the map and swallows movement.
func (s State) Overlay() bool {
	return s != StateExplore
}
