package systems

import (
	"fmt"

	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the jump state readout in the top-left corner and the
// control hints along the bottom.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	jump := components.JumpImpulse.Get(playerEntry)
	fall := components.Fall.Get(playerEntry)
	snap := SnapshotCharacter(jump, fall)

	hudFont := fonts.Hud.Get()
	x := int(cfg.UI.HUDMargin)
	y := int(cfg.UI.HUDMargin) + 12
	gap := int(cfg.UI.HUDLineGap)

	lines := []string{
		fmt.Sprintf("state   %s", snap.State),
		fmt.Sprintf("offset  %6.1f px", snap.VerticalOffset),
		fmt.Sprintf("apex    %6.1f px", snap.MaxReachedOffset),
		fmt.Sprintf("flight  %6.2f s", snap.ElapsedTime),
	}
	for i, line := range lines {
		text.Draw(screen, line, hudFont, x, y+i*gap, cfg.UI.HUDTextColor)
	}

	hint := "hold SPACE to jump higher · arrows move · R reset · F1 debug · ESC menu"
	text.Draw(screen, hint, fonts.Small.Get(),
		x, cfg.C.Height-int(cfg.UI.HUDMargin), cfg.LightBlue)
}
