package components

import (
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi"
)

// TileRect is one drawable tile from the playground map.
type TileRect struct {
	X, Y, W, H float64
	TileID     uint32 // tile ID within its tileset, used to pick a color
}

type LevelData struct {
	Map    *tiled.Map
	Tiles  []TileRect
	SpawnX float64 // player spawn from the TMX object layer
}

var Level = donburi.NewComponentType[LevelData]()
