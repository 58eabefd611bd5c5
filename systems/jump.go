package systems

import (
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJump is the per-tick driver for the vertical state machines. It
// owns the handoff between the ascent and the fall so the two machines
// never reference each other.
func UpdateJump(e *ecs.ECS) {
	dt := 1.0 / float64(ebiten.TPS())
	input := getOrCreateInput(e)
	action := GetAction(input, cfg.ActionJump)

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		jump := components.JumpImpulse.Get(entry)
		fall := components.Fall.Get(entry)

		started, landed := StepCharacter(jump, fall, action, dt)
		if started {
			TriggerSquashStretch(entry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
		}
		if landed {
			TriggerSquashStretch(entry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
		}
	})
}

// StepCharacter advances one character's vertical state by a single tick.
//
// Order matters: the press edge may only start a jump from the idle state,
// a release edge is forwarded to the ascent, the ascent advances first and
// may hand off, and a fall that became active during this same tick
// already advances once. At most one machine is active when this returns.
func StepCharacter(jump *components.JumpImpulseData, fall *components.FallData, action components.ActionState, dt float64) (started, landed bool) {
	if dt < 0 {
		panic("jump driver: negative dt")
	}

	if action.JustPressed && !jump.Active && !fall.Active {
		jump.Start(cfg.ActionJump)
		started = true
	}
	if action.JustReleased {
		jump.Release(cfg.ActionJump)
	}

	if jump.Active {
		if jump.Update(dt) {
			fall.Start(jump.Offset, jump.Elapsed)
		}
	}
	if fall.Active {
		landed = fall.Update(dt)
	}
	return started, landed
}

// JumpSnapshot is the read-only view of a character's vertical state
// consumed by the HUD and the debug overlay.
type JumpSnapshot struct {
	VerticalOffset float64
	Grounded       bool
	ElapsedTime    float64
	State          cfg.StateID

	// Diagnostics; HoldDistance is only meaningful while the ascent is
	// in its uniform phase.
	MaxReachedOffset float64
	HoldDistance     float64
}

// SnapshotCharacter derives the current snapshot from the two machines.
func SnapshotCharacter(jump *components.JumpImpulseData, fall *components.FallData) JumpSnapshot {
	s := JumpSnapshot{
		Grounded:         !jump.Active && !fall.Active,
		State:            cfg.StateGrounded,
		MaxReachedOffset: jump.MaxOffset,
		HoldDistance:     jump.HoldDistance,
		// While grounded this reports the previous jump's total flight
		// time, which is what the HUD wants to show.
		ElapsedTime: fall.Elapsed,
	}
	switch {
	case jump.Active:
		s.VerticalOffset = jump.Offset
		s.ElapsedTime = jump.Elapsed
		if jump.Decel != nil {
			s.State = cfg.StateDecelerating
		} else {
			s.State = cfg.StateRising
		}
	case fall.Active:
		s.VerticalOffset = fall.Offset
		s.ElapsedTime = fall.Elapsed
		s.State = cfg.StateFalling
	}
	return s
}
