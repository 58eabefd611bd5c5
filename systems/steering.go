package systems

import (
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSteering applies horizontal acceleration, friction and clamping.
// Vertical motion is owned entirely by the jump driver.
func UpdateSteering(e *ecs.ECS) {
	dt := 1.0 / float64(ebiten.TPS())
	input := getOrCreateInput(e)
	left := GetAction(input, cfg.ActionMoveLeft)
	right := GetAction(input, cfg.ActionMoveRight)
	reset := GetAction(input, cfg.ActionReset)

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		steer := components.Steering.Get(entry)

		if reset.JustPressed {
			respawn(entry, player, steer)
			return
		}

		switch {
		case left.Pressed && !right.Pressed:
			steer.SpeedX -= steer.Acceleration * dt
			player.Facing = cfg.DirectionLeft
		case right.Pressed && !left.Pressed:
			steer.SpeedX += steer.Acceleration * dt
			player.Facing = cfg.DirectionRight
		default:
			steer.SpeedX = gamemath.ApplyFriction(steer.SpeedX, steer.Friction*dt)
		}
		steer.SpeedX = gamemath.ClampSpeed(steer.SpeedX, steer.MaxSpeed)

		player.X += steer.SpeedX * dt

		// Keep the rect inside the level
		maxX := float64(cfg.C.Width) - cfg.Jump.PlayerWidth
		if player.X < 0 {
			player.X = 0
			steer.SpeedX = 0
		} else if player.X > maxX {
			player.X = maxX
			steer.SpeedX = 0
		}
	})
}

// respawn puts the character back at the spawn point, grounded and idle.
func respawn(entry *donburi.Entry, player *components.PlayerData, steer *components.SteeringData) {
	player.X = player.SpawnX
	steer.SpeedX = 0
	jump := components.JumpImpulse.Get(entry)
	fall := components.Fall.Get(entry)
	*jump = components.JumpImpulseData{}
	*fall = components.FallData{}
}
