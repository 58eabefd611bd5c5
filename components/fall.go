package components

import (
	cfg "github.com/automoto/jumplab/config"
	"github.com/yohamta/donburi"
)

// FallData is the descent state machine: gravity-driven fall with a speed
// cap, ending when the offset returns to the ground plane.
//
// The speed is integrated with forward Euler rather than a closed-form
// solution; with a capped fall speed the incremental form is easier to
// reason about and visually indistinguishable.
type FallData struct {
	Active  bool
	Offset  float64 // current height above ground, px
	Speed   float64 // downward speed, px/s
	Elapsed float64 // total jump+fall seconds, continued from the ascent
}

var Fall = donburi.NewComponentType[FallData]()

// Start begins the descent from the handoff state of an ascent.
func (f *FallData) Start(offset, elapsed float64) {
	*f = FallData{
		Active:  true,
		Offset:  offset,
		Elapsed: elapsed,
	}
}

// Update advances the fall by dt seconds. It returns true on the tick the
// character lands; the offset is clamped to exactly zero and the machine
// deactivates itself. Landing is the only way the fall terminates.
func (f *FallData) Update(dt float64) (landed bool) {
	if dt < 0 {
		panic("fall: negative dt")
	}
	c := &cfg.Jump

	f.Elapsed += dt
	f.Speed += c.Gravity * dt
	if f.Speed > c.FallSpeedLimit {
		f.Speed = c.FallSpeedLimit
	}
	f.Offset -= f.Speed * dt

	if f.Offset < 0 {
		f.Offset = 0
		f.Active = false
		landed = true
	}
	return landed
}
