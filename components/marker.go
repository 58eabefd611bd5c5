package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// MarkerData is a purely visual gauge hovering at a reference jump height.
type MarkerData struct {
	BaseY float64 // screen Y the bob oscillates around
	Label string
	Color color.RGBA
}

var Marker = donburi.NewComponentType[MarkerData]()
