package components

import (
	"github.com/automoto/exorcist/leveling"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    Vector
	InvulnFrames int // Invulnerability frames timer

	// Jump assists
	CoyoteTimer      int
	JumpBufferTimer  int
	DropThroughTimer int
	WasOnGround      bool
	JumpHeld         bool // Jump still held since take-off, for the jump cut

	MeleeCooldown  int
	RangedCooldown int

	// Stats start from config and are raised by upgrades.
	Stats leveling.Stats
}

var Player = donburi.NewComponentType[PlayerData]()
