package config

import "image/color"

// JumpConfig contains the vertical jump/fall tuning values. All speeds are
// in pixels per second and accelerations in pixels per second squared.
type JumpConfig struct {
	// Geometry
	TileHeight   float64
	PlayerHeight float64 // 2 tiles
	PlayerWidth  float64
	FloorY       float64 // screen Y the player's feet rest on

	// Target apex heights, in tiles
	ShortJumpTiles float64
	LongJumpTiles  float64

	// Offset band within which a release blends between the short and
	// long apex. Below the band a release gives the short jump; at the
	// top of the band deceleration starts on its own.
	ToleranceMinHeight float64
	ToleranceMaxHeight float64

	InitialSpeed   float64 // constant ascent speed while the button is held
	Gravity        float64 // drives the fall phase
	FallSpeedLimit float64
}

// ShortJumpHeight returns the short-jump apex in pixels.
func (c *JumpConfig) ShortJumpHeight() float64 {
	return c.ShortJumpTiles * c.TileHeight
}

// LongJumpHeight returns the long-jump apex in pixels.
func (c *JumpConfig) LongJumpHeight() float64 {
	return c.LongJumpTiles * c.TileHeight
}

// SteeringConfig contains horizontal movement tuning values.
type SteeringConfig struct {
	Acceleration float64
	Friction     float64
	MaxSpeed     float64
}

// UIConfig contains HUD and overlay configuration values.
type UIConfig struct {
	HUDMargin    float64
	HUDLineGap   float64
	HUDTextColor color.RGBA

	// Debug overlay colors
	BandColor      color.RGBA
	ShortApexColor color.RGBA
	LongApexColor  color.RGBA
	OutlineColor   color.RGBA
	GroundOutline  color.RGBA
}

// MarkerConfig contains the apex gauge marker tuning (visual only).
type MarkerConfig struct {
	Width        float64
	Height       float64
	BobAmplitude float64
	BobDuration  float32 // seconds per half bob
}

// SquashStretchConfig contains the jump/land scale effect tuning.
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	LerpSpeed  float64 // how fast to return to normal scale
}

// MenuConfig contains main menu configuration values.
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the playground
	Overlay  bool // Start with the debug overlay enabled
}

// Global configuration instances
var C *Config
var Jump JumpConfig
var Steering SteeringConfig
var UI UIConfig
var Marker MarkerConfig
var SquashStretch SquashStretchConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	SkyBlue     = color.RGBA{R: 28, G: 36, B: 58, A: 255}
	GroundBrown = color.RGBA{R: 110, G: 82, B: 52, A: 255}
	GroundGrass = color.RGBA{R: 70, G: 140, B: 70, A: 255}
	PlayerRed   = color.RGBA{R: 220, G: 70, B: 60, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 512,
	}

	// Jump Config. A full long jump (5 tiles plus the 2-tile player)
	// exactly fills the 512px window above the ground row.
	Jump = JumpConfig{
		TileHeight:   64,
		PlayerHeight: 128,
		PlayerWidth:  48,
		FloorY:       448,

		ShortJumpTiles: 3,
		LongJumpTiles:  5,

		ToleranceMinHeight: 115.2,
		ToleranceMaxHeight: 192,

		InitialSpeed:   1536,
		Gravity:        14080,
		FallSpeedLimit: 2304,
	}

	// Steering Config
	Steering = SteeringConfig{
		Acceleration: 2400,
		Friction:     1800,
		MaxSpeed:     360,
	}

	// UI Config
	UI = UIConfig{
		HUDMargin:    10,
		HUDLineGap:   14,
		HUDTextColor: White,

		BandColor:      color.RGBA{R: 255, G: 255, B: 0, A: 160},
		ShortApexColor: color.RGBA{R: 100, G: 255, B: 100, A: 200},
		LongApexColor:  color.RGBA{R: 100, G: 180, B: 255, A: 200},
		OutlineColor:   color.RGBA{R: 0, G: 255, B: 255, A: 255},
		GroundOutline:  color.RGBA{R: 100, G: 100, B: 100, A: 255},
	}

	// Marker Config
	Marker = MarkerConfig{
		Width:        96,
		Height:       6,
		BobAmplitude: 8,
		BobDuration:  1.2,
	}

	// Squash/Stretch Config
	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.5,
		LandScaleX: 1.5,
		LandScaleY: 0.6,
		LerpSpeed:  0.10,
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Overlay:  false,
	}
}
