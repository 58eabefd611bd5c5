package factory

import (
	"image/color"

	"github.com/automoto/jumplab/archetypes"
	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMarker spawns a bobbing gauge at the given offset above the
// ground, a visual reference for a jump apex. Markers never collide with
// anything.
func CreateMarker(ecs *ecs.ECS, x, offsetAboveGround float64, label string, c color.RGBA) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)

	baseY := cfg.Jump.FloorY - offsetAboveGround - cfg.Marker.Height
	obj := resolv.NewObject(x, baseY, cfg.Marker.Width, cfg.Marker.Height)
	obj.AddTags(tags.ResolvMarker)
	obj.Data = marker
	components.Object.SetValue(marker, components.ObjectData{Object: obj})

	components.Marker.SetValue(marker, components.MarkerData{
		BaseY: baseY,
		Label: label,
		Color: c,
	})

	// The gauge bobs around its base using a gween sequence, restarted by
	// the effects system when it completes.
	amp := float32(cfg.Marker.BobAmplitude)
	dur := cfg.Marker.BobDuration
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, -amp, dur, ease.InOutQuad),
		gween.New(-amp, amp, dur*2, ease.InOutQuad),
		gween.New(amp, 0, dur, ease.InOutQuad),
	)
	components.Tween.Set(marker, tw)

	return marker
}
