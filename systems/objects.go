package systems

import (
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs resolv objects from simulation state. The player's
// rect follows the steering X and the vertical offset; feet rest on FloorY
// when grounded. Runs after UpdateJump and UpdateSteering.
func UpdateObjects(e *ecs.ECS) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		jump := components.JumpImpulse.Get(entry)
		fall := components.Fall.Get(entry)
		obj := components.Object.Get(entry)

		snap := SnapshotCharacter(jump, fall)
		obj.X = player.X
		obj.Y = cfg.Jump.FloorY - cfg.Jump.PlayerHeight - snap.VerticalOffset
		obj.Update()
	})

	components.Marker.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		obj.Update()
	})
}
