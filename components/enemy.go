package components

import (
	"image/color"

	"github.com/automoto/exorcist/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Wisp", "Booky", "Sharpy", "Sulker"
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Direction  Vector
	TintColor  color.RGBA

	// Combat
	AttackCooldown int // Frames until contact damage can land again
	InvulnFrames   int // Invincibility frames after being hit
	SpawnImmunity  int // Frames left of spawn protection
	StunTimer      int

	// Behaviour timers
	ThrowCooldown int
	HopCooldown   int
	WanderTimer   int
	WanderTarget  Vector
	TrailDistance float64
	LastX, LastY  float64
}

var Enemy = donburi.NewComponentType[EnemyData]()

// Vulnerable reports whether the enemy can take damage this frame.
func (e *EnemyData) Vulnerable() bool {
	return e.SpawnImmunity <= 0 && e.InvulnFrames <= 0
}
