package components

import (
	"math"
	"testing"

	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/shared/gamemath"
)

// fineDt keeps the per-tick discretization error of the apex well under
// the 1e-3 tolerance used by the apex assertions (error ~ ½·|a|·dt²).
const fineDt = 1.0 / 6000.0

const apexTolerance = 1e-3

// advanceToHandoff ticks the ascent until it hands off to the fall.
func advanceToHandoff(t *testing.T, j *JumpImpulseData, dt float64) {
	t.Helper()
	for i := 0; i < 1_000_000; i++ {
		if j.Update(dt) {
			return
		}
	}
	t.Fatal("ascent never handed off")
}

// advanceToOffset ticks the uniform ascent until the offset reaches at
// least want, returning the offset actually sampled.
func advanceToOffset(t *testing.T, j *JumpImpulseData, dt, want float64) float64 {
	t.Helper()
	for i := 0; i < 1_000_000; i++ {
		j.Update(dt)
		if j.Offset >= want {
			return j.Offset
		}
	}
	t.Fatalf("ascent never reached offset %v", want)
	return 0
}

func TestStartResetsState(t *testing.T) {
	j := &JumpImpulseData{
		Offset:    123,
		Elapsed:   4,
		MaxOffset: 500,
		Decel:     &DecelPhase{Accel: -1, Elapsed: 2},
	}
	j.Start(cfg.ActionJump)

	if !j.Active {
		t.Error("Start did not activate the jump")
	}
	if j.Offset != 0 || j.Elapsed != 0 || j.MaxOffset != 0 || j.HoldDistance != 0 {
		t.Errorf("Start left stale state: %+v", j)
	}
	if j.Decel != nil {
		t.Error("Start left a stale deceleration phase")
	}
	if j.LaunchSpeed != cfg.Jump.InitialSpeed {
		t.Errorf("LaunchSpeed = %v, want %v", j.LaunchSpeed, cfg.Jump.InitialSpeed)
	}
	if j.TriggerAction != cfg.ActionJump {
		t.Errorf("TriggerAction = %v, want %v", j.TriggerAction, cfg.ActionJump)
	}
}

func TestUniformRiseMatchesClosedForm(t *testing.T) {
	j := &JumpImpulseData{}
	j.Start(cfg.ActionJump)

	dt := 1.0 / 60.0
	prev := 0.0
	for i := 1; i <= 5; i++ {
		j.Update(dt)
		want := cfg.Jump.InitialSpeed * dt * float64(i)
		if math.Abs(j.Offset-want) > 1e-9 {
			t.Fatalf("tick %d: offset = %v, want %v", i, j.Offset, want)
		}
		if j.Offset <= prev {
			t.Fatalf("tick %d: offset %v did not increase past %v", i, j.Offset, prev)
		}
		if j.HoldDistance != j.Offset {
			t.Fatalf("tick %d: hold distance %v diverged from offset %v", i, j.HoldDistance, j.Offset)
		}
		prev = j.Offset
	}
	if j.Decel != nil {
		t.Error("deceleration began during the uniform phase")
	}
}

func TestImmediateReleaseReachesShortApex(t *testing.T) {
	j := &JumpImpulseData{}
	j.Start(cfg.ActionJump)
	j.Release(cfg.ActionJump)

	if j.Decel == nil {
		t.Fatal("release did not begin deceleration")
	}
	wantAccel := gamemath.StoppingAccel(cfg.Jump.InitialSpeed, cfg.Jump.ShortJumpHeight())
	if math.Abs(j.Decel.Accel-wantAccel) > 1e-9 {
		t.Fatalf("solved accel = %v, want %v", j.Decel.Accel, wantAccel)
	}

	advanceToHandoff(t, j, fineDt)

	if j.Active {
		t.Error("jump still active after handoff")
	}
	if math.Abs(j.MaxOffset-cfg.Jump.ShortJumpHeight()) > apexTolerance {
		t.Errorf("apex = %v, want %v", j.MaxOffset, cfg.Jump.ShortJumpHeight())
	}
}

func TestReleaseBelowBandReachesShortApex(t *testing.T) {
	j := &JumpImpulseData{}
	j.Start(cfg.ActionJump)

	advanceToOffset(t, j, fineDt, 60)
	j.Release(cfg.ActionJump)
	advanceToHandoff(t, j, fineDt)

	if math.Abs(j.MaxOffset-cfg.Jump.ShortJumpHeight()) > apexTolerance {
		t.Errorf("apex = %v, want %v", j.MaxOffset, cfg.Jump.ShortJumpHeight())
	}
}

func TestReleaseInsideBandBlendsApex(t *testing.T) {
	j := &JumpImpulseData{}
	j.Start(cfg.ActionJump)

	c := &cfg.Jump
	s0 := advanceToOffset(t, j, fineDt, 150)
	j.Release(cfg.ActionJump)

	f := (s0 - c.ToleranceMinHeight) / (c.ToleranceMaxHeight - c.ToleranceMinHeight)
	want := gamemath.Lerp(c.ShortJumpHeight(), c.LongJumpHeight(), f)

	advanceToHandoff(t, j, fineDt)

	if math.Abs(j.MaxOffset-want) > apexTolerance {
		t.Errorf("apex = %v, want blended %v (release at %v)", j.MaxOffset, want, s0)
	}
	if j.MaxOffset <= c.ShortJumpHeight() || j.MaxOffset >= c.LongJumpHeight() {
		t.Errorf("blended apex %v not strictly between %v and %v",
			j.MaxOffset, c.ShortJumpHeight(), c.LongJumpHeight())
	}
}

func TestHeldJumpAutoDeceleratesToLongApex(t *testing.T) {
	j := &JumpImpulseData{}
	j.Start(cfg.ActionJump)

	// Never released: the band top must start the deceleration on its own.
	for i := 0; i < 1_000_000 && j.Decel == nil; i++ {
		j.Update(fineDt)
	}
	if j.Decel == nil {
		t.Fatal("held jump never began decelerating")
	}
	if j.Offset < cfg.Jump.ToleranceMaxHeight {
		t.Errorf("deceleration began at offset %v, below band top %v",
			j.Offset, cfg.Jump.ToleranceMaxHeight)
	}

	advanceToHandoff(t, j, fineDt)

	if math.Abs(j.MaxOffset-cfg.Jump.LongJumpHeight()) > apexTolerance {
		t.Errorf("apex = %v, want %v", j.MaxOffset, cfg.Jump.LongJumpHeight())
	}
}

func TestBeginDecelerationIsIdempotent(t *testing.T) {
	j := &JumpImpulseData{}
	j.Start(cfg.ActionJump)
	advanceToOffset(t, j, fineDt, 150)

	j.BeginDeceleration()
	solved := j.Decel.Accel

	j.Update(fineDt)
	elapsed := j.Decel.Elapsed

	// Neither a direct re-trigger nor a repeat release may re-solve.
	j.BeginDeceleration()
	j.Release(cfg.ActionJump)

	if j.Decel.Accel != solved {
		t.Errorf("accel re-solved: %v, want %v", j.Decel.Accel, solved)
	}
	if j.Decel.Elapsed != elapsed {
		t.Errorf("decel clock reset: %v, want %v", j.Decel.Elapsed, elapsed)
	}
}

func TestReleaseOfOtherActionIgnored(t *testing.T) {
	j := &JumpImpulseData{}
	j.Start(cfg.ActionJump)
	j.Update(fineDt)

	j.Release(cfg.ActionReset)
	if j.Decel != nil {
		t.Error("release of an unrelated action began deceleration")
	}
}

func TestReleaseWhileInactiveIgnored(t *testing.T) {
	j := &JumpImpulseData{}
	j.Release(cfg.ActionJump)
	if j.Decel != nil || j.Active {
		t.Errorf("release on idle machine changed state: %+v", j)
	}
}

func TestOvershootPastBandTopStopsImmediately(t *testing.T) {
	// A single huge tick carries the offset past the long-jump apex before
	// the band top can trigger. The solved stopping distance is clamped,
	// so the next tick must already cross the apex and hand off.
	j := &JumpImpulseData{}
	j.Start(cfg.ActionJump)

	j.Update(0.25)
	if j.Decel == nil {
		t.Fatal("band-top crossing did not begin deceleration")
	}
	if j.Offset <= cfg.Jump.LongJumpHeight() {
		t.Fatalf("test premise broken: offset %v not past long apex %v",
			j.Offset, cfg.Jump.LongJumpHeight())
	}
	if j.Decel.Accel >= 0 {
		t.Errorf("clamped stop solved a non-negative accel %v", j.Decel.Accel)
	}

	if !j.Update(fineDt) {
		t.Error("clamped stop did not hand off on the next tick")
	}
	if j.Active {
		t.Error("jump still active after clamped stop")
	}
}

func TestUpdatePanicsOnNegativeDt(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Update accepted a negative dt")
		}
	}()
	j := &JumpImpulseData{}
	j.Start(cfg.ActionJump)
	j.Update(-1.0 / 60.0)
}
