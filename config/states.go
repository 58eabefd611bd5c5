package config

import "github.com/yohamta/donburi/ecs"

// Default is the single update/render layer; the playground has no layered
// drawing.
const Default ecs.LayerID = 0

// StateID identifies a vertical movement phase of the character.
type StateID int

const (
	StateGrounded StateID = iota
	StateRising
	StateDecelerating
	StateFalling
)

// String returns the HUD label for the state.
func (s StateID) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateRising:
		return "rising"
	case StateDecelerating:
		return "decelerating"
	case StateFalling:
		return "falling"
	}
	return "unknown"
}
