// Package entity provides the player avatar.
package entity

import "github.com/samdwyer/treasurehunt/internal/world"

// Avatar is the player's boat. It keeps a position in each world and
// remembers which one it is currently in.
type Avatar struct {
	Positions [2]world.Position // indexed by world.Variant
	Active    world.Variant
	Symbol    rune
}

// NewAvatar creates an avatar at the start position of the overworld.
func NewAvatar() *Avatar {
	return &Avatar{
		Positions: [2]world.Position{world.StartPosition, world.StartPosition},
		Active:    world.Overworld,
		Symbol:    '@',
	}
}

// Position returns the position in the active world.
func (a *Avatar) Position() world.Position {
	return a.Positions[a.Active]
}

// MoveTo sets the position in the active world.
func (a *Avatar) MoveTo(p world.Position) {
	a.Positions[a.Active] = p
}

// Descend switches to the underworld at the same coordinates. It reports
// false if the avatar is already below.
func (a *Avatar) Descend() bool {
	if a.Active == world.Underworld {
		return false
	}
	a.Positions[world.Underworld] = a.Positions[world.Overworld]
	a.Active = world.Underworld
	return true
}
