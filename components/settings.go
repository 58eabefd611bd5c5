package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds the runtime-toggleable shell settings. Jump tuning is
// fixed at process start and deliberately absent here.
type SettingsData struct {
	DebugOverlay bool
	Fullscreen   bool
}

var Settings = donburi.NewComponentType[SettingsData]()
