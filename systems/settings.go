package systems

import (
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating
// it with the configured defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			DebugOverlay: cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug overlay and fullscreen toggles and
// persists them on change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if GetAction(input, cfg.ActionDebugOverlay).JustPressed {
		settings.DebugOverlay = !settings.DebugOverlay
		changed = true
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// ApplySavedSettings applies loaded settings to a fresh world.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.DebugOverlay = saved.DebugOverlay
	settings.Fullscreen = saved.Fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)
}

// ApplySavedSettingsGlobal applies the window-level settings before any
// world exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Overlay = saved.DebugOverlay
	ebiten.SetFullscreen(saved.Fullscreen)
}
