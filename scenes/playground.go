package scenes

import (
	"log"
	"sync"

	"github.com/automoto/jumplab/assets"
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/systems"
	"github.com/automoto/jumplab/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaygroundScene runs the jump playground: one character on a flat
// ground plane, apex gauges, HUD and debug overlay.
type PlaygroundScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlaygroundScene creates the playground scene
func NewPlaygroundScene(sc SceneChanger) *PlaygroundScene {
	return &PlaygroundScene{sceneChanger: sc}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// ESC returns to the menu
	input, ok := components.Input.First(ps.ecs.World)
	if ok && systems.GetAction(components.Input.Get(input), cfg.ActionBack).JustPressed {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
	}
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlaygroundScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateJump)
	e.AddSystem(systems.UpdateSteering)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateObjects)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawMarkers)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = e

	factory.CreateSpace(ps.ecs, cfg.C.Width, cfg.C.Height,
		int(cfg.Jump.TileHeight), int(cfg.Jump.TileHeight))

	spawnX := float64(cfg.C.Width-int(cfg.Jump.PlayerWidth)) / 2
	if level, err := factory.CreateLevel(ps.ecs, assets.PlaygroundTMX); err == nil {
		spawnX = components.Level.Get(level).SpawnX
	} else {
		log.Printf("Warning: Could not load level: %v", err)
	}

	factory.CreatePlayer(ps.ecs, spawnX)

	// Apex gauges on the left edge
	c := &cfg.Jump
	factory.CreateMarker(ps.ecs, 24, c.ShortJumpHeight(), "short", cfg.UI.ShortApexColor)
	factory.CreateMarker(ps.ecs, 24, c.LongJumpHeight(), "long", cfg.UI.LongApexColor)

	// Carry over the saved/menu-selected toggles
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(ps.ecs, saved)
	} else {
		systems.GetOrCreateSettings(ps.ecs)
	}
}
