package factory

import (
	"github.com/automoto/jumplab/archetypes"
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the character at x, grounded and idle.
func CreatePlayer(ecs *ecs.ECS, x float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(
		x, cfg.Jump.FloorY-cfg.Jump.PlayerHeight,
		cfg.Jump.PlayerWidth, cfg.Jump.PlayerHeight,
	)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		X:      x,
		SpawnX: x,
		Facing: cfg.DirectionRight,
	})
	components.Steering.SetValue(player, components.SteeringData{
		Acceleration: cfg.Steering.Acceleration,
		Friction:     cfg.Steering.Friction,
		MaxSpeed:     cfg.Steering.MaxSpeed,
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX:  1,
		ScaleY:  1,
		TargetX: 1,
		TargetY: 1,
	})
	// JumpImpulse and Fall start zero-valued: both idle, grounded.

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
