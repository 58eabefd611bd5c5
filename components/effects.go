package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData lerps the player rect's draw scale back to normal
// after a jump or landing kick.
type SquashStretchData struct {
	ScaleX    float64
	ScaleY    float64
	TargetX   float64
	TargetY   float64
	LerpSpeed float64
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// Tween drives entities animated by a gween sequence, such as the bobbing
// apex gauge markers.
var Tween = donburi.NewComponentType[gween.Sequence]()
