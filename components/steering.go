package components

import (
	"github.com/yohamta/donburi"
)

// SteeringData holds horizontal movement state. Steering never touches the
// vertical offset; that belongs to the jump and fall machines.
type SteeringData struct {
	SpeedX       float64 // px/s, positive right
	Acceleration float64
	Friction     float64
	MaxSpeed     float64
}

var Steering = donburi.NewComponentType[SteeringData]()
