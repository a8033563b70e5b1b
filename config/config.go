package config

import (
	"image/color"

	"github.com/automoto/godofsky/shared/ability"
	"github.com/automoto/godofsky/shared/kinematics"
)

// PhysicsConfig holds world-wide simulation constants.
type PhysicsConfig struct {
	Gravity   float64
	MaxFall   float64
	Epsilon   float64 // Overlap depth below which a contact counts as a corner clip
	TargetFPS int
	SubSteps  int
	PushOut   bool // Correct position on contact instead of only zeroing velocity
}

// PlayerConfig contains player movement and jump values.
type PlayerConfig struct {
	Width  float64
	Height float64

	MaxSpeed  float64
	Accel     float64
	Decel     float64
	AirFactor float64

	JumpForce     float64
	JumpBuffer    float64
	JumpHoldForce float64
	GroundGrace   float64
	Mercy         float64
	WallJumpX     float64
	WallJumpY     float64
}

// HookConfig contains wall hook values.
type HookConfig struct {
	Speed           float64
	ReleaseUpSpeed  float64
	Lockout         float64
	RegrabWhileHeld bool
}

// DashConfig contains dash values.
type DashConfig struct {
	Speed           float64
	Duration        float64
	EndSpeedY       float64
	DiagonalDivisor float64
}

// CameraConfig contains follow camera values.
type CameraConfig struct {
	Smoothing float64 // Camera covers 1/Smoothing of the gap per tick
	DeadZone  float64
}

// LevelConfig contains level loading values.
type LevelConfig struct {
	TileSize    float64
	First       string
	SpikeHeight float64 // Fraction of a tile covered by a spike hitbox
	SpawnSize   float64
	CannonSeed  int64
}

// CoinConfig contains collectible values.
type CoinConfig struct {
	Size             float64
	CollectOnLanding bool
	FollowK          float64
	MinDist          float64
}

// CannonConfig contains emitter and projectile values.
type CannonConfig struct {
	Size        float64
	BulletSize  float64
	BulletSpeed float64
	Jitter      int // Extra ticks added to a cannon's period at load time
}

// FadeConfig contains screen fade values.
type FadeConfig struct {
	Duration float32
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Tuning bundles everything a session reads so tests can vary it without
// touching the globals.
type Tuning struct {
	Physics PhysicsConfig
	Player  PlayerConfig
	Hook    HookConfig
	Dash    DashConfig
	Camera  CameraConfig
	Level   LevelConfig
	Coins   CoinConfig
	Cannons CannonConfig
	Fade    FadeConfig
	Screen  Config
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Hook HookConfig
var Dash DashConfig
var Camera CameraConfig
var Level LevelConfig
var Coins CoinConfig
var Cannons CannonConfig
var Fade FadeConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sky          = color.RGBA{R: 120, G: 170, B: 220, A: 255}
	Stone        = color.RGBA{R: 60, G: 60, B: 80, A: 255}
	Shade        = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	Gold         = color.RGBA{R: 255, G: 210, B: 40, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 200, B: 90, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  1400,
		Height: 700,
		Title:  "God of Sky",
	}

	Physics = PhysicsConfig{
		Gravity:   1000,
		MaxFall:   600,
		Epsilon:   5,
		TargetFPS: 60,
		SubSteps:  3,
	}

	Player = PlayerConfig{
		Width:  30,
		Height: 30.0 / 7 * 9,

		MaxSpeed:  200,
		Accel:     2000,
		Decel:     1400,
		AirFactor: 0.65,

		JumpForce:     300,
		JumpBuffer:    0.3,
		JumpHoldForce: 1000.0 / 2,
		GroundGrace:   0.05,
		Mercy:         0.3,
		WallJumpX:     400,
		WallJumpY:     400,
	}

	Hook = HookConfig{
		Speed:          100,
		ReleaseUpSpeed: 260,
		Lockout:        0.15,
	}

	Dash = DashConfig{
		Speed:           700,
		Duration:        0.12,
		EndSpeedY:       300,
		DiagonalDivisor: 1.4,
	}

	Camera = CameraConfig{
		Smoothing: 30,
		DeadZone:  50,
	}

	Level = LevelConfig{
		TileSize:    32,
		First:       "level0",
		SpikeHeight: 13.0 / 16,
		SpawnSize:   32,
		CannonSeed:  1,
	}

	Coins = CoinConfig{
		Size:    25,
		FollowK: 2,
		MinDist: 30,
	}

	Cannons = CannonConfig{
		Size:        32,
		BulletSize:  10,
		BulletSpeed: 300,
		Jitter:      30,
	}

	Fade = FadeConfig{
		Duration: 0.25,
	}
}

// DefaultTuning snapshots the global configuration.
func DefaultTuning() Tuning {
	return Tuning{
		Physics: Physics,
		Player:  Player,
		Hook:    Hook,
		Dash:    Dash,
		Camera:  Camera,
		Level:   Level,
		Coins:   Coins,
		Cannons: Cannons,
		Fade:    Fade,
		Screen:  *C,
	}
}

// Ability flattens the movement sections for the player state machine.
func (t Tuning) Ability() ability.Tuning {
	return ability.Tuning{
		Gravity:             t.Physics.Gravity,
		MaxFall:             t.Physics.MaxFall,
		MaxSpeed:            t.Player.MaxSpeed,
		Accel:               t.Player.Accel,
		Decel:               t.Player.Decel,
		AirFactor:           t.Player.AirFactor,
		JumpForce:           t.Player.JumpForce,
		JumpBuffer:          t.Player.JumpBuffer,
		JumpHoldForce:       t.Player.JumpHoldForce,
		GroundGrace:         t.Player.GroundGrace,
		Mercy:               t.Player.Mercy,
		WallJumpX:           t.Player.WallJumpX,
		WallJumpY:           t.Player.WallJumpY,
		HookSpeed:           t.Hook.Speed,
		HookReleaseUp:       t.Hook.ReleaseUpSpeed,
		HookLockout:         t.Hook.Lockout,
		RegrabWhileHeld:     t.Hook.RegrabWhileHeld,
		DashSpeed:           t.Dash.Speed,
		DashDuration:        t.Dash.Duration,
		DashEndY:            t.Dash.EndSpeedY,
		DashDiagonalDivisor: t.Dash.DiagonalDivisor,
	}
}

// Timestep returns the fixed simulation rate.
func (t Tuning) Timestep() kinematics.Timestep {
	return kinematics.Timestep{TargetFPS: t.Physics.TargetFPS, SubSteps: t.Physics.SubSteps}
}
