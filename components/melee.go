package components

import "github.com/yohamta/donburi"

type MeleeAttackData struct {
	IsAttacking      bool
	ActiveHitbox     *donburi.Entry // Direct reference to the active hitbox
	HasSpawnedHitbox bool           // Prevents multiple hitboxes per swing
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
