package systems

import (
	"math"

	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the squash/stretch lerp and the gween-driven
// marker bobbing.
func UpdateEffects(e *ecs.ECS) {
	updateSquashStretch(e)
	updateMarkerTweens(e)
}

// TriggerSquashStretch kicks the player's draw scale away from normal; the
// effect system lerps it back.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(entry)
	ss.ScaleX = scaleX
	ss.ScaleY = scaleY
	ss.TargetX = 1.0
	ss.TargetY = 1.0
	ss.LerpSpeed = cfg.SquashStretch.LerpSpeed
}

// updateSquashStretch lerps scale values toward target
func updateSquashStretch(e *ecs.ECS) {
	components.SquashStretch.Each(e.World, func(entry *donburi.Entry) {
		ss := components.SquashStretch.Get(entry)
		if ss.LerpSpeed == 0 {
			return
		}

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			ss.ScaleX = ss.TargetX
			ss.ScaleY = ss.TargetY
			ss.LerpSpeed = 0
		}
	})
}

// updateMarkerTweens bobs the apex gauges around their base height.
func updateMarkerTweens(e *ecs.ECS) {
	dt := float32(1.0 / float64(ebiten.TPS()))

	components.Marker.Each(e.World, func(entry *donburi.Entry) {
		marker := components.Marker.Get(entry)
		tw := components.Tween.Get(entry)
		obj := components.Object.Get(entry)

		offset, _, seqDone := tw.Update(dt)
		if seqDone {
			tw.Reset()
		}
		obj.Y = marker.BaseY + float64(offset)
	})
}
