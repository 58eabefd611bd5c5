package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	X      float64 // left edge of the player rect, px
	SpawnX float64 // respawn position for the reset action
	Facing float64 // config.DirectionLeft or DirectionRight
}

var Player = donburi.NewComponentType[PlayerData]()
