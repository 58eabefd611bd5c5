package systems

import (
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel paints the sky and the ground tiles from the TMX layer.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for _, t := range level.Tiles {
		c := cfg.GroundBrown
		if t.TileID == 0 {
			// First tile in the set is the grass-topped ground block
			c = cfg.GroundGrass
		}
		vector.FillRect(screen,
			float32(t.X), float32(t.Y), float32(t.W), float32(t.H),
			c, false)
		// Top lip to separate adjacent tiles
		vector.FillRect(screen,
			float32(t.X), float32(t.Y), float32(t.W), 4,
			cfg.LightGreen, false)
	}
}

// DrawMarkers renders the bobbing apex gauges with their labels.
func DrawMarkers(e *ecs.ECS, screen *ebiten.Image) {
	labelFont := fonts.Small.Get()

	components.Marker.Each(e.World, func(entry *donburi.Entry) {
		marker := components.Marker.Get(entry)
		obj := components.Object.Get(entry)

		vector.FillRect(screen,
			float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H),
			marker.Color, false)
		text.Draw(screen, marker.Label, labelFont,
			int(obj.X+obj.W)+6, int(obj.Y)+6, marker.Color)
	})
}

// DrawPlayer renders the character rect, scaled by the squash/stretch
// effect around its feet.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		obj := components.Object.Get(entry)
		ss := components.SquashStretch.Get(entry)

		w := obj.W * ss.ScaleX
		h := obj.H * ss.ScaleY
		x := obj.X + (obj.W-w)/2 // keep centered while squashing
		y := obj.Y + obj.H - h   // feet stay planted

		vector.FillRect(screen,
			float32(x), float32(y), float32(w), float32(h),
			cfg.PlayerRed, false)

		// Visor marks the facing side
		visorW := w * 0.25
		visorX := x + w - visorW - 4
		if player.Facing == cfg.DirectionLeft {
			visorX = x + 4
		}
		vector.FillRect(screen,
			float32(visorX), float32(y+10), float32(visorW), 8,
			cfg.White, false)
	})
}
