package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ground = donburi.NewTag().SetName("Ground")
	Marker = donburi.NewTag().SetName("Marker")
)

// Resolv tags for the debug overlay
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvMarker = "marker"
)
