package systems

import (
	"math"
	"testing"

	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
)

var (
	actionIdle    = components.ActionState{}
	actionPress   = components.ActionState{Pressed: true, JustPressed: true}
	actionHeld    = components.ActionState{Pressed: true}
	actionRelease = components.ActionState{JustReleased: true}
)

const driverDt = 1.0 / 60.0

func TestStepCharacterNeverRunsBothMachines(t *testing.T) {
	jump := &components.JumpImpulseData{}
	fall := &components.FallData{}

	// Full press-hold-release cycle; the invariant must hold every tick.
	step := func(i int, action components.ActionState) {
		t.Helper()
		StepCharacter(jump, fall, action, driverDt)
		if jump.Active && fall.Active {
			t.Fatalf("tick %d: ascent and fall active at the same time", i)
		}
	}

	step(0, actionPress)
	if !jump.Active {
		t.Fatal("press edge did not start the jump")
	}
	for i := 1; i <= 3; i++ {
		step(i, actionHeld)
	}
	step(4, actionRelease)

	for i := 5; i < 10_000; i++ {
		step(i, actionIdle)
		if !jump.Active && !fall.Active {
			return
		}
	}
	t.Fatal("cycle never returned to grounded")
}

func TestStepCharacterFullCycleLandsAtShortApex(t *testing.T) {
	jump := &components.JumpImpulseData{}
	fall := &components.FallData{}

	started, _ := StepCharacter(jump, fall, actionPress, driverDt)
	if !started {
		t.Fatal("press edge did not report a start")
	}
	StepCharacter(jump, fall, actionRelease, driverDt)

	landed := false
	for i := 0; i < 10_000 && !landed; i++ {
		_, landed = StepCharacter(jump, fall, actionIdle, driverDt)
	}
	if !landed {
		t.Fatal("cycle never landed")
	}
	if fall.Offset != 0 {
		t.Errorf("landing offset = %v, want 0", fall.Offset)
	}

	// Coarse tick, coarse bound: the apex may overshoot the solved target
	// by at most one tick of uniform rise.
	maxOvershoot := cfg.Jump.InitialSpeed * driverDt
	if jump.MaxOffset < cfg.Jump.ShortJumpHeight()-maxOvershoot ||
		jump.MaxOffset > cfg.Jump.ShortJumpHeight()+maxOvershoot {
		t.Errorf("apex = %v, want %v within %v",
			jump.MaxOffset, cfg.Jump.ShortJumpHeight(), maxOvershoot)
	}
}

func TestStepCharacterIgnoresPressMidair(t *testing.T) {
	jump := &components.JumpImpulseData{}
	fall := &components.FallData{}

	StepCharacter(jump, fall, actionPress, driverDt)
	StepCharacter(jump, fall, actionRelease, driverDt)
	elapsed := jump.Elapsed

	// Press again while still ascending: nothing restarts.
	started, _ := StepCharacter(jump, fall, actionPress, driverDt)
	if started {
		t.Error("mid-ascent press started a second jump")
	}
	if jump.Elapsed <= elapsed {
		t.Error("mid-ascent press reset the ascent clock")
	}

	// Run into the fall and press once more.
	for i := 0; i < 10_000 && !fall.Active; i++ {
		StepCharacter(jump, fall, actionIdle, driverDt)
	}
	if !fall.Active {
		t.Fatal("never reached the fall")
	}
	started, _ = StepCharacter(jump, fall, actionPress, driverDt)
	if started || jump.Active {
		t.Error("mid-fall press started a jump")
	}
}

func TestStepCharacterHandoffAdvancesFallSameTick(t *testing.T) {
	jump := &components.JumpImpulseData{}
	fall := &components.FallData{}

	StepCharacter(jump, fall, actionPress, driverDt)
	StepCharacter(jump, fall, actionRelease, driverDt)

	for i := 0; i < 10_000; i++ {
		wasActive := jump.Active
		StepCharacter(jump, fall, actionIdle, driverDt)
		if wasActive && !jump.Active {
			// Handoff tick: the fall must have both started from the
			// ascent's clock and already consumed this tick.
			want := jump.Elapsed + driverDt
			if math.Abs(fall.Elapsed-want) > 1e-9 {
				t.Errorf("fall clock = %v after handoff, want %v", fall.Elapsed, want)
			}
			if fall.Speed == 0 {
				t.Error("fall did not advance on the handoff tick")
			}
			return
		}
	}
	t.Fatal("ascent never handed off")
}

func TestStepCharacterPanicsOnNegativeDt(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("StepCharacter accepted a negative dt")
		}
	}()
	StepCharacter(&components.JumpImpulseData{}, &components.FallData{}, actionIdle, -driverDt)
}

func TestSnapshotCharacterStates(t *testing.T) {
	jump := &components.JumpImpulseData{}
	fall := &components.FallData{}

	s := SnapshotCharacter(jump, fall)
	if !s.Grounded || s.State != cfg.StateGrounded || s.VerticalOffset != 0 {
		t.Errorf("idle snapshot = %+v, want grounded at 0", s)
	}

	StepCharacter(jump, fall, actionPress, driverDt)
	s = SnapshotCharacter(jump, fall)
	if s.Grounded || s.State != cfg.StateRising {
		t.Errorf("ascent snapshot = %+v, want rising", s)
	}
	if s.VerticalOffset != jump.Offset || s.ElapsedTime != jump.Elapsed {
		t.Errorf("ascent snapshot = %+v, want offset %v elapsed %v", s, jump.Offset, jump.Elapsed)
	}

	StepCharacter(jump, fall, actionRelease, driverDt)
	s = SnapshotCharacter(jump, fall)
	if s.State != cfg.StateDecelerating {
		t.Errorf("post-release snapshot state = %v, want decelerating", s.State)
	}

	for i := 0; i < 10_000 && !fall.Active; i++ {
		StepCharacter(jump, fall, actionIdle, driverDt)
	}
	s = SnapshotCharacter(jump, fall)
	if s.State != cfg.StateFalling || s.VerticalOffset != fall.Offset {
		t.Errorf("fall snapshot = %+v, want falling at %v", s, fall.Offset)
	}

	for i := 0; i < 10_000 && fall.Active; i++ {
		StepCharacter(jump, fall, actionIdle, driverDt)
	}
	s = SnapshotCharacter(jump, fall)
	if !s.Grounded || s.State != cfg.StateGrounded {
		t.Errorf("landed snapshot = %+v, want grounded", s)
	}
	if s.ElapsedTime != fall.Elapsed || s.ElapsedTime <= 0 {
		t.Errorf("grounded snapshot flight time = %v, want previous flight %v", s.ElapsedTime, fall.Elapsed)
	}
	if s.MaxReachedOffset != jump.MaxOffset || s.MaxReachedOffset <= 0 {
		t.Errorf("grounded snapshot apex = %v, want %v", s.MaxReachedOffset, jump.MaxOffset)
	}
}
