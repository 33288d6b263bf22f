package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// IntentKind is what the player asked for on one keypress.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentAction    // space: fish, talk, enter a hole
	IntentInventory // enter
	IntentAtlas     // a
	IntentConfirm   // y
	IntentCancel    // n
	IntentQuit      // esc, q, ctrl-c
)

var intentNames = [...]string{
	IntentNone:      "none",
	IntentMove:      "move",
	IntentAction:    "action",
	IntentInventory: "inventory",
	IntentAtlas:     "atlas",
	IntentConfirm:   "confirm",
	IntentCancel:    "cancel",
	IntentQuit:      "quit",
}

func (k IntentKind) String() string {
	if int(k) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[k]
}

// MarshalText writes the kind by name so journals stay readable.
func (k IntentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name.
func (k *IntentKind) UnmarshalText(b []byte) error {
	for i, name := range intentNames {
		if name == string(b) {
			*k = IntentKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown intent %q", b)
}

// Intent is one unit of player input.
type Intent struct {
	Kind IntentKind `json:"kind"`
	DX   int        `json:"dx,omitempty"`
	DY   int        `json:"dy,omitempty"`
}

// Move returns a movement intent.
func Move(dx, dy int) Intent {
	return Intent{Kind: IntentMove, DX: dx, DY: dy}
}

// closesOverlay reports whether the intent dismisses an open overlay.
func (in Intent) closesOverlay() bool {
	switch in.Kind {
	case IntentAction, IntentInventory, IntentAtlas:
		return true
	}
	return false
}

// IntentFromKey maps a key event to an intent. The second result is false
// for keys the game ignores.
func IntentFromKey(ev *tcell.EventKey) (Intent, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Kind: IntentQuit}, true
	case tcell.KeyUp:
		return Move(0, -1), true
	case tcell.KeyDown:
		return Move(0, 1), true
	case tcell.KeyLeft:
		return Move(-1, 0), true
	case tcell.KeyRight:
		return Move(1, 0), true
	case tcell.KeyEnter:
		return Intent{Kind: IntentInventory}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return Intent{Kind: IntentAction}, true
		case 'a', 'A':
			return Intent{Kind: IntentAtlas}, true
		case 'y', 'Y':
			return Intent{Kind: IntentConfirm}, true
		case 'n', 'N':
			return Intent{Kind: IntentCancel}, true
		case 'q', 'Q':
			return Intent{Kind: IntentQuit}, true
		}
	}
	return Intent{}, false
}
