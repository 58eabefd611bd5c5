package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/fonts"
	"github.com/automoto/jumplab/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug renders the F1 overlay: reference height lines, resolv object
// outlines and the ascent diagnostics.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.DebugOverlay {
		return
	}

	drawHeightLines(screen)
	drawObjectOutlines(e, screen)
	drawDiagnostics(e, screen)
}

// drawHeightLines marks the tolerance band and the two apex targets as
// horizontal lines across the level.
func drawHeightLines(screen *ebiten.Image) {
	c := &cfg.Jump
	w := float32(cfg.C.Width)
	labelFont := fonts.Small.Get()

	line := func(offset float64, clr color.RGBA, label string) {
		y := float32(c.FloorY - offset)
		vector.FillRect(screen, 0, y, w, 1, clr, false)
		text.Draw(screen, label, labelFont, 4, int(y)-3, clr)
	}

	line(c.ToleranceMinHeight, cfg.UI.BandColor, "band min")
	line(c.ToleranceMaxHeight, cfg.UI.BandColor, "band max")
	line(c.ShortJumpHeight(), cfg.UI.ShortApexColor, "short apex")
	line(c.LongJumpHeight(), cfg.UI.LongApexColor, "long apex")
}

// drawObjectOutlines traces every object in the resolv space.
func drawObjectOutlines(e *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := cfg.UI.OutlineColor
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.UI.GroundOutline
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}

// drawDiagnostics prints the raw machine state next to the player.
func drawDiagnostics(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	jump := components.JumpImpulse.Get(playerEntry)
	fall := components.Fall.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	monoFont := fonts.Mono.Get()
	x := int(obj.X + obj.W + 8)
	y := int(obj.Y) + 12

	var lines []string
	switch {
	case jump.Active && jump.Decel == nil:
		lines = []string{
			fmt.Sprintf("hold %.1f", jump.HoldDistance),
			fmt.Sprintf("u    %.0f", jump.LaunchSpeed),
		}
	case jump.Active:
		lines = []string{
			fmt.Sprintf("a    %.0f", jump.Decel.Accel),
			fmt.Sprintf("aT   %.3f", jump.Decel.Elapsed),
			fmt.Sprintf("maxS %.1f", jump.MaxOffset),
		}
	case fall.Active:
		lines = []string{
			fmt.Sprintf("v    %.0f", fall.Speed),
			fmt.Sprintf("cap  %.0f", cfg.Jump.FallSpeedLimit),
		}
	default:
		lines = []string{
			fmt.Sprintf("maxS %.1f", jump.MaxOffset),
		}
	}
	for i, line := range lines {
		text.Draw(screen, line, monoFont, x, y+i*12, cfg.Yellow)
	}
}
