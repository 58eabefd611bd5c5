package factory

import (
	"fmt"

	"github.com/automoto/jumplab/archetypes"
	"github.com/automoto/jumplab/assets"
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/tags"
	"github.com/lafriks/go-tiled"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel parses the playground TMX and spawns the level entity plus a
// resolv object per ground tile. The tiles are drawn as flat rects; the
// map carries no collision semantics, only the ground row visual and the
// spawn point.
func CreateLevel(ecs *ecs.ECS, tmxPath string) (*donburi.Entry, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(assets.FS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := components.LevelData{
		Map:    levelMap,
		SpawnX: float64(cfg.C.Width-int(cfg.Jump.PlayerWidth)) / 2,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "ground" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Tiles = append(data.Tiles, components.TileRect{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					W:      tileW,
					H:      tileH,
					TileID: tile.ID,
				})
			}
		}
		break
	}

	// Spawn point from the object layer, if present
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			data.SpawnX = o.X
			break
		}
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &data)

	createGroundObjects(ecs, data.Tiles)

	return level, nil
}

// createGroundObjects registers a resolv object per ground tile so the
// debug overlay can outline the ground plane like any other object.
func createGroundObjects(ecs *ecs.ECS, tiles []components.TileRect) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, t := range tiles {
		ground := archetypes.Ground.Spawn(ecs)
		obj := resolv.NewObject(t.X, t.Y, t.W, t.H)
		obj.AddTags(tags.ResolvSolid)
		obj.Data = ground
		components.Object.SetValue(ground, components.ObjectData{Object: obj})
		space.Add(obj)
	}
}
