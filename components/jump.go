package components

import (
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/shared/gamemath"
	"github.com/yohamta/donburi"
)

// minStopDistance bounds the solved stopping distance from below. A release
// that arrives after the offset has already passed the target apex would
// otherwise solve a zero or upward acceleration and never reach the apex
// crossing; clamping forces an immediate, near-instant stop instead.
const minStopDistance = 1e-6

// DecelPhase holds the state that only exists once deceleration has begun.
// JumpImpulseData.Decel is nil during the uniform ascent, so a jump cannot
// be decelerating without a solved acceleration.
type DecelPhase struct {
	Accel   float64 // solved per jump, negative
	Elapsed float64 // seconds since deceleration began
}

// JumpImpulseData is the ascent state machine. While the jump action is
// held the character rises at constant speed; on release (or when the
// offset crosses the tolerance band top) an acceleration is solved that
// brings the vertical speed to zero exactly at the target apex.
type JumpImpulseData struct {
	Active      bool
	Offset      float64 // current height above ground, px
	LaunchSpeed float64 // ascent speed fixed at Start, px/s
	Elapsed     float64 // seconds since the jump started
	Decel       *DecelPhase

	// Diagnostics for the debug overlay
	MaxOffset    float64 // highest offset reached this jump
	HoldDistance float64 // offset mirror while still in the uniform phase

	TriggerAction cfg.ActionID // action whose release ends the hold
}

var JumpImpulse = donburi.NewComponentType[JumpImpulseData]()

// Start resets the machine and begins a new ascent. Callers must only
// invoke it while both the jump and fall machines are idle.
func (j *JumpImpulseData) Start(trigger cfg.ActionID) {
	*j = JumpImpulseData{
		Active:        true,
		LaunchSpeed:   cfg.Jump.InitialSpeed,
		TriggerAction: trigger,
	}
}

// BeginDeceleration solves the stopping acceleration for the current
// offset and switches to the deceleration phase. Calling it again while
// already decelerating is a no-op, so the release edge and the automatic
// band-top trigger cannot re-solve the acceleration mid-flight.
//
// The target apex is the short-jump height when the release comes below
// the tolerance band, the long-jump height at or above the band top, and a
// linear blend between the two inside the band.
func (j *JumpImpulseData) BeginDeceleration() {
	if j.Decel != nil {
		return
	}
	c := &cfg.Jump

	target := c.ShortJumpHeight()
	if j.Offset >= c.ToleranceMinHeight {
		f := gamemath.BlendFactor(j.Offset, c.ToleranceMinHeight, c.ToleranceMaxHeight)
		target = gamemath.Lerp(c.ShortJumpHeight(), c.LongJumpHeight(), f)
	}

	distance := target - j.Offset
	if distance < minStopDistance {
		distance = minStopDistance
	}

	j.Decel = &DecelPhase{Accel: gamemath.StoppingAccel(j.LaunchSpeed, distance)}
}

// Update advances the ascent by dt seconds. It returns true on the tick
// the solved velocity crosses zero; the machine deactivates itself and the
// caller is expected to start the fall from Offset and Elapsed.
func (j *JumpImpulseData) Update(dt float64) (handoff bool) {
	if dt < 0 {
		panic("jump: negative dt")
	}

	j.Elapsed += dt
	rise := gamemath.UniformDistance(j.LaunchSpeed, j.Elapsed)

	if j.Decel == nil {
		j.Offset = rise
		j.HoldDistance = rise
		if j.Offset >= cfg.Jump.ToleranceMaxHeight {
			// Held past the band top: the long jump starts on its own.
			j.BeginDeceleration()
		}
	} else {
		j.Decel.Elapsed += dt
		j.Offset = rise + gamemath.AccelDisplacement(j.Decel.Accel, j.Decel.Elapsed)
		if j.LaunchSpeed+j.Decel.Accel*j.Decel.Elapsed < 0 {
			// Apex crossing: hand the current state to the fall.
			j.Active = false
			handoff = true
		}
	}

	if j.Offset > j.MaxOffset {
		j.MaxOffset = j.Offset
	}
	return handoff
}

// Release notifies the machine that an action was released. Only the
// trigger action of an active jump starts the deceleration; everything
// else, including a repeat release while already decelerating, is ignored.
func (j *JumpImpulseData) Release(action cfg.ActionID) {
	if j.Active && action == j.TriggerAction {
		j.BeginDeceleration()
	}
}
