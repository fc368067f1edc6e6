package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64
	Acceleration float64
	AttackAccel  float64
	MaxSpeed     float64

	// Combat
	Health       int
	InvulnFrames int

	// Physics
	Gravity        float64
	Friction       float64
	AttackFriction float64

	// Jump assists (frames)
	CoyoteFrames      int
	JumpBufferFrames  int
	JumpCutMultiplier float64 // Applied to upward speed when jump is released early

	// Drop-through
	DropThroughFrames int
	DropThroughNudge  float64

	HitstunFrames int
	DeathFrames   int

	// Dimensions
	CollisionWidth  int
	CollisionHeight int
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name    string  `yaml:"name"`
	Reality int     `yaml:"reality"` // RealitySpirit or RealityLiving
	Health  int     `yaml:"health"`
	Speed   float64 `yaml:"speed"`

	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown int     `yaml:"attack_cooldown"`
	Damage         int     `yaml:"damage"`
	KnockbackForce float64 `yaml:"knockback"`

	// Physics
	Flying   bool    `yaml:"flying"`
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"`
	MaxSpeed float64 `yaml:"max_speed"`

	// Dimensions
	CollisionWidth  int `yaml:"width"`
	CollisionHeight int `yaml:"height"`

	TintColor color.RGBA `yaml:"-"`

	// Behaviour specific
	ChaseRange          float64 `yaml:"chase_range"`           // Wisp
	ActiveSpeedMult     float64 `yaml:"active_speed_mult"`     // Wisp, while its reality is active
	ThrowRange          float64 `yaml:"throw_range"`           // Booky
	ThrowCooldown       int     `yaml:"throw_cooldown"`        // Booky
	HopWindup           int     `yaml:"hop_windup"`            // Sharpy
	HopCooldown         int     `yaml:"hop_cooldown"`          // Sharpy
	HopSpeedX           float64 `yaml:"hop_speed_x"`           // Sharpy
	HopSpeedY           float64 `yaml:"hop_speed_y"`           // Sharpy
	FleeRange           float64 `yaml:"flee_range"`            // Sulker
	WanderRadius        float64 `yaml:"wander_radius"`         // Sulker
	WanderInterval      int     `yaml:"wander_interval"`       // Sulker
	TrailSpacing        float64 `yaml:"trail_spacing"`         // Sulker
	SpawnOnDeath        string  `yaml:"spawn_on_death"`
	CanJumpToPlatforms  bool    `yaml:"can_jump_to_platforms"` // Booky
	PlatformJumpSpeed   float64 `yaml:"platform_jump_speed"`
	PlatformCheckHeight float64 `yaml:"platform_check_height"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	SpawnImmunityFrames int
	StunFlashFrames     int
	DeathFrames         int
}

// MeleeConfig contains the Living reality attack values
type MeleeConfig struct {
	Cooldown       int
	Damage         int
	Range          float64 // Reach in front of the player
	HitboxHeight   float64
	Duration       int // Frames the hitbox stays active
	KnockbackForce float64
	StunFrames     int
}

// RangedConfig contains the Spirit reality talisman values
type RangedConfig struct {
	Cooldown            int
	Speed               float64
	Damage              int
	Lifetime            int
	MaxHits             int
	KnockbackForce      float64
	StunFrames          int // Independent of the melee stun upgrade
	Amount              int
	SpreadDegrees       float64
	PoolSize            int
	Size                float64
	ExplosionRadius     float64
	ExplosionPercentage float64
	AttackFrames        int
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	MinCooldown int // Cooldowns never drop below this

	PlayerInvulnFrames int
	EnemyInvulnFrames  int

	KnockbackUpwardForce float64

	HealthBarDuration int // frames

	HitFlashFrames    int
	DamageFlashFrames int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	MaxRiseSpeed float64

	WallSlideSpeed float64
	WallJumpPush   float64

	PlatformDropThreshold float64 // Pixels above platform to allow landing
	VerticalSpeedClamp    float64
}

// ProjectileConfig contains enemy projectile configuration
type ProjectileConfig struct {
	Speed          float64
	Damage         int
	Size           float64
	KnockbackForce float64
	Lifetime       int
}

// DamageAreaConfig contains trail and hazard configuration
type DamageAreaConfig struct {
	Damage         int
	Interval       int // Frames the area stays inert after hurting the player
	Lifetime       int
	Size           float64
	KnockbackForce float64
}

// OrbConfig contains experience orb configuration
type OrbConfig struct {
	Value         int
	AttractRange  float64
	CollectRange  float64
	AttractSpeed  float64
	MergeInterval int
	MergeRange    float64
	PoolSize      int
	Size          float64
	Gravity       float64
	MaxFallSpeed  float64
	ScatterSpeed  float64
}

// WaveConfig contains wave spawner configuration
type WaveConfig struct {
	EnemiesPerWave int
	SpawnDelay     int
	WaveInterval   int
	TotalWaves     int
	EnemyTypes     []string
}

// PlatformConfig contains moving platform configuration
type PlatformConfig struct {
	WaitFrames int
	Speed      float64 // Pixels per frame along a leg
}

// LevelingConfig contains experience curve configuration
type LevelingConfig struct {
	StartToNext      int
	GrowthMultiplier float64
	ChoiceCount      int
}

// RealityConfig contains reality switching configuration
type RealityConfig struct {
	Names           []string
	Colors          []color.RGBA
	Start           int
	InactiveOpacity float64
	TransitionSpeed float64 // Alpha units per second
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	WinColor          color.RGBA
	LoseColor         color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	StatsY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	MeleeIntensity        float64
	MeleeDuration         int
	PlayerDamageIntensity float64
	PlayerDamageDuration  int
	ExplosionIntensity    float64
	ExplosionDuration     int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64
	JumpScaleY float64
	LandScaleX float64
	LandScaleY float64
	LerpSpeed  float64
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin          float64
	BarWidth        float64
	BarHeight       float64
	XPBarHeight     float64
	BarBgColor      color.RGBA
	HealthColor     color.RGBA
	PipSize         float64
	MinimapWidth    float64
	MinimapHeight   float64
	MinimapBgColor  color.RGBA
	MinimapFgColor  color.RGBA
	PlayerColor     color.RGBA
	SolidColor      color.RGBA
	PlatformColor   color.RGBA
	HazardColor     color.RGBA
	ProjectileColor color.RGBA
	OrbColors       []color.RGBA
}

// MessageConfig contains the on-screen announcement box
type MessageConfig struct {
	DisplayDuration int // frames
	BoxPadding      float64
	TopMargin       float64
	BoxColor        color.RGBA
	TextColor       color.RGBA

	// Placeholder labels per input method, e.g. {switch} -> "C"
	KeyboardLabels    map[string]string
	XboxLabels        map[string]string
	PlayStationLabels map[string]string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  float64
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to game
	WatchTuning bool // Reload YAML tuning files when they change on disk
	DrawBoxes   bool
}

// Reality indexes
const (
	RealityShared = -1
	RealitySpirit = 0
	RealityLiving = 1
)

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Melee MeleeConfig
var Ranged RangedConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Projectile ProjectileConfig
var DamageArea DamageAreaConfig
var Orb OrbConfig
var Wave WaveConfig
var Platform PlatformConfig
var Leveling LevelingConfig
var Reality RealityConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var ScreenShake ScreenShakeConfig
var SquashStretch SquashStretchConfig
var Camera CameraConfig
var HUD HUDConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Gray         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SpiritCyan   = color.RGBA{R: 90, G: 220, B: 255, A: 255}
	LivingAmber  = color.RGBA{R: 235, G: 170, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  2,
		Title:  "Exorcist",
	}

	Physics = PhysicsConfig{
		Gravity:      0.45,
		MaxFallSpeed: 9.0,
		MaxRiseSpeed: -10.0,

		WallSlideSpeed: 1.5,
		WallJumpPush:   4.0,

		PlatformDropThreshold: 4.0,
		VerticalSpeedClamp:    10.0,
	}

	Player = PlayerConfig{
		JumpSpeed:    9.5,
		Acceleration: 0.6,
		AttackAccel:  0.15,
		MaxSpeed:     3.0,

		Health:       100,
		InvulnFrames: 45,

		Gravity:        0.45,
		Friction:       0.5,
		AttackFriction: 0.2,

		CoyoteFrames:      12,
		JumpBufferFrames:  6,
		JumpCutMultiplier: 0.5,

		DropThroughFrames: 18,
		DropThroughNudge:  2.0,

		HitstunFrames: 12,
		DeathFrames:   60,

		CollisionWidth:  12,
		CollisionHeight: 24,
	}

	Melee = MeleeConfig{
		Cooldown:       48,
		Damage:         50,
		Range:          24,
		HitboxHeight:   20,
		Duration:       12,
		KnockbackForce: 5,
		StunFrames:     6,
	}

	Ranged = RangedConfig{
		Cooldown:            72,
		Speed:               5,
		Damage:              30,
		Lifetime:            300,
		MaxHits:             1,
		KnockbackForce:      3,
		StunFrames:          0,
		Amount:              1,
		SpreadDegrees:       10,
		PoolSize:            10,
		Size:                6,
		ExplosionRadius:     0,
		ExplosionPercentage: 0.5,
		AttackFrames:        10,
	}

	Combat = CombatConfig{
		MinCooldown:          6,
		PlayerInvulnFrames:   45,
		EnemyInvulnFrames:    10,
		KnockbackUpwardForce: -3.0,
		HealthBarDuration:    180,
		HitFlashFrames:       3,
		DamageFlashFrames:    5,
	}

	Enemy = EnemyConfig{
		Types:               DefaultEnemyTypes(),
		SpawnImmunityFrames: 30,
		StunFlashFrames:     4,
		DeathFrames:         20,
	}

	Projectile = ProjectileConfig{
		Speed:          2.5,
		Damage:         10,
		Size:           6,
		KnockbackForce: 3,
		Lifetime:       240,
	}

	DamageArea = DamageAreaConfig{
		Damage:         8,
		Interval:       30,
		Lifetime:       300,
		Size:           12,
		KnockbackForce: 2,
	}

	Orb = OrbConfig{
		Value:         10,
		AttractRange:  96,
		CollectRange:  10,
		AttractSpeed:  4,
		MergeInterval: 30,
		MergeRange:    24,
		PoolSize:      32,
		Size:          4,
		Gravity:       0.3,
		MaxFallSpeed:  4,
		ScatterSpeed:  1.5,
	}

	Wave = WaveConfig{
		EnemiesPerWave: 5,
		SpawnDelay:     60,
		WaveInterval:   1800,
		TotalWaves:     5,
		EnemyTypes:     []string{"Wisp", "Booky", "Sharpy", "Sulker"},
	}

	Platform = PlatformConfig{
		WaitFrames: 60,
		Speed:      1.0,
	}

	Leveling = LevelingConfig{
		StartToNext:      100,
		GrowthMultiplier: 1.2,
		ChoiceCount:      3,
	}

	Reality = RealityConfig{
		Names:           []string{"Spirit", "Living"},
		Colors:          []color.RGBA{SpiritCyan, LivingAmber},
		Start:           RealityLiving,
		InactiveOpacity: 0.2,
		TransitionSpeed: 2.0,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Settings", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 12, G: 10, B: 24, A: 255},
		TitleColor:        SpiritCyan,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            60,
		MenuStartY:        130,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Start", "Settings", "Exit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 10, B: 20, A: 255},
		WinColor:          BrightGreen,
		LoseColor:         LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            70,
		StatsY:            120,
		MenuStartY:        230,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	ScreenShake = ScreenShakeConfig{
		MeleeIntensity:        2.0,
		MeleeDuration:         5,
		PlayerDamageIntensity: 4.0,
		PlayerDamageDuration:  8,
		ExplosionIntensity:    3.0,
		ExplosionDuration:     6,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.4,
		LandScaleX: 1.4,
		LandScaleY: 0.7,
		LerpSpeed:  0.12,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.1,
	}

	HUD = HUDConfig{
		Margin:          8,
		BarWidth:        120,
		BarHeight:       8,
		XPBarHeight:     4,
		BarBgColor:      color.RGBA{R: 30, G: 30, B: 30, A: 200},
		HealthColor:     color.RGBA{R: 210, G: 40, B: 50, A: 255},
		PipSize:         6,
		MinimapWidth:    128,
		MinimapHeight:   48,
		MinimapBgColor:  color.RGBA{R: 0, G: 0, B: 0, A: 150},
		MinimapFgColor:  color.RGBA{R: 160, G: 160, B: 170, A: 255},
		PlayerColor:     White,
		SolidColor:      Gray,
		PlatformColor:   color.RGBA{R: 150, G: 130, B: 100, A: 255},
		HazardColor:     color.RGBA{R: 200, G: 40, B: 120, A: 255},
		ProjectileColor: color.RGBA{R: 250, G: 240, B: 190, A: 255},
		OrbColors:       []color.RGBA{SpiritCyan, LivingAmber},
	}

	Message = MessageConfig{
		DisplayDuration: 150,
		BoxPadding:      6,
		TopMargin:       40,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 170},
		TextColor:       White,
		KeyboardLabels: map[string]string{
			"switch": "C",
			"attack": "Z",
			"jump":   "X",
		},
		XboxLabels: map[string]string{
			"switch": "B",
			"attack": "X",
			"jump":   "A",
		},
		PlayStationLabels: map[string]string{
			"switch": "Circle",
			"attack": "Square",
			"jump":   "Cross",
		},
	}

	Debug = DebugConfig{}
}

// DefaultEnemyTypes returns the compiled enemy tuning table.
func DefaultEnemyTypes() map[string]EnemyTypeConfig {
	return map[string]EnemyTypeConfig{
		"Wisp": {
			Name:            "Wisp",
			Reality:         RealitySpirit,
			Health:          40,
			Speed:           0.8,
			AttackRange:     14,
			AttackCooldown:  60,
			Damage:          10,
			KnockbackForce:  3,
			Flying:          true,
			Friction:        0.1,
			MaxSpeed:        3,
			CollisionWidth:  12,
			CollisionHeight: 12,
			TintColor:       SpiritCyan,
			ChaseRange:      120,
			ActiveSpeedMult: 2,
		},
		"Booky": {
			Name:                "Booky",
			Reality:             RealityLiving,
			Health:              80,
			Speed:               0.8,
			AttackRange:         16,
			AttackCooldown:      60,
			Damage:              12,
			KnockbackForce:      3,
			Gravity:             0.45,
			Friction:            0.2,
			MaxSpeed:            3,
			CollisionWidth:      14,
			CollisionHeight:     16,
			TintColor:           color.RGBA{R: 170, G: 110, B: 60, A: 255},
			ThrowRange:          200,
			ThrowCooldown:       120,
			SpawnOnDeath:        "Wisp",
			CanJumpToPlatforms:  true,
			PlatformJumpSpeed:   7,
			PlatformCheckHeight: 64,
		},
		"Sharpy": {
			Name:            "Sharpy",
			Reality:         RealityLiving,
			Health:          60,
			Speed:           0,
			AttackRange:     14,
			AttackCooldown:  60,
			Damage:          15,
			KnockbackForce:  4,
			Gravity:         0.45,
			Friction:        0.3,
			MaxSpeed:        4,
			CollisionWidth:  14,
			CollisionHeight: 14,
			TintColor:       color.RGBA{R: 200, G: 200, B: 215, A: 255},
			HopWindup:       12,
			HopCooldown:     60,
			HopSpeedX:       3,
			HopSpeedY:       6,
			ChaseRange:      220,
			SpawnOnDeath:    "Sulker",
		},
		"Sulker": {
			Name:            "Sulker",
			Reality:         RealitySpirit,
			Health:          50,
			Speed:           1.2,
			AttackRange:     12,
			AttackCooldown:  60,
			Damage:          8,
			KnockbackForce:  2,
			Gravity:         0.45,
			Friction:        0.2,
			MaxSpeed:        3,
			CollisionWidth:  14,
			CollisionHeight: 12,
			TintColor:       Purple,
			FleeRange:       80,
			WanderRadius:    160,
			WanderInterval:  60,
			TrailSpacing:    24,
		},
	}
}
