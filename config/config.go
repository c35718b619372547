package config

import "image/color"

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	VerticalSpeedClamp float64 // Maximum vertical speed magnitude
	Friction           float64 // Horizontal friction multiplier applied every tick
	StopThreshold      float64 // Horizontal speed below which the player stops
	BroadphaseMargin   float64 // Padding added to resolv proxies so sub-pixel contacts are not missed
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Acceleration float64
	Health       int
	SizeInset    float64 // Player box is tile size minus this
}

// PortalConfig contains dimension portal configuration
type PortalConfig struct {
	ShiftCooldown int // frames
}

// HazardConfig contains hazard configuration
type HazardConfig struct {
	Damage          int
	InvulnFrames    int
	KnockbackX      float64
	KnockbackUpward float64 // Upward velocity applied on knockback
}

// MagnetConfig contains magnetic dimension attraction values
type MagnetConfig struct {
	Strength    float64
	MinDistance float64 // Objects closer than this exert no pull
}

// PowerupConfig contains powerup effect values
type PowerupConfig struct {
	HealAmount       int
	SpeedMultiplier  float64
	JumpMultiplier   float64
	InvincibleFrames int
}

// CollectibleConfig contains collectible values
type CollectibleConfig struct {
	Value int
}

// PlatformConfig contains platform geometry and motion
type PlatformConfig struct {
	Thickness   float64
	MovingTiles int     // Moving platform width in tiles
	MotionRange float64 // Oscillation amplitude in pixels
	MotionSpeed float64 // Degrees of phase advanced per tick
}

// LevelConfig contains level layout values
type LevelConfig struct {
	TileSize    int
	OutOfBounds float64 // Distance outside the level that counts as lost
	Columns     int
	Rows        int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Portal PortalConfig
var Hazard HazardConfig
var Magnet MagnetConfig
var Powerup PowerupConfig
var Collectible CollectibleConfig
var Platform PlatformConfig
var Level LevelConfig
var HUD HUDConfig
var Debug DebugConfig

// HUDConfig contains heads-up display values
type HUDConfig struct {
	FontSize   float64
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
	ShadeColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Continue  bool   // Resume from the saved level
	WatchPack bool   // Reload the level pack when it changes on disk
	PackPath  string // External level pack, empty for the embedded one
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightGray    = color.RGBA{R: 200, G: 200, B: 200, A: 160}
	Metal        = color.RGBA{R: 150, G: 150, B: 170, A: 255}
	Brown        = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Background   = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		VerticalSpeedClamp: 10.0,
		Friction:           0.85,
		StopThreshold:      0.1,
		BroadphaseMargin:   1.0,
	}

	Player = PlayerConfig{
		Acceleration: 0.5,
		Health:       100,
		SizeInset:    4,
	}

	Portal = PortalConfig{
		ShiftCooldown: 30,
	}

	Hazard = HazardConfig{
		Damage:          10,
		InvulnFrames:    60,
		KnockbackX:      5.0,
		KnockbackUpward: -5.0,
	}

	Magnet = MagnetConfig{
		Strength:    100,
		MinDistance: 20,
	}

	Powerup = PowerupConfig{
		HealAmount:       25,
		SpeedMultiplier:  1.5,
		JumpMultiplier:   1.5,
		InvincibleFrames: 300,
	}

	Collectible = CollectibleConfig{
		Value: 10,
	}

	Platform = PlatformConfig{
		Thickness:   10,
		MovingTiles: 3,
		MotionRange: 100,
		MotionSpeed: 1,
	}

	Level = LevelConfig{
		TileSize:    40,
		OutOfBounds: 100,
		Columns:     20,
		Rows:        15,
	}

	HUD = HUDConfig{
		FontSize:   16,
		Margin:     10,
		LineHeight: 20,
		TextColor:  White,
		ShadeColor: BlackOverlay,
	}
}
