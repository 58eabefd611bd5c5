package scenes

import (
	"os"

	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/systems"
	"github.com/automoto/jumplab/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	menuUI       *ui.MenuUI
	sceneChanger SceneChanger
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	ms := &MenuScene{sceneChanger: sc}

	ms.menuUI = ui.NewMenuUI(
		cfg.Debug.Overlay,
		func() {
			sc.ChangeScene(NewPlaygroundScene(sc))
		},
		func() bool {
			cfg.Debug.Overlay = !cfg.Debug.Overlay
			systems.SaveCurrentSettingsFromDefaults()
			return cfg.Debug.Overlay
		},
		func() {
			os.Exit(0)
		},
	)

	return ms
}

func (ms *MenuScene) Update() {
	ms.menuUI.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
	ms.menuUI.UI.Draw(screen)
}
