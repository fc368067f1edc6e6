package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Wall           = donburi.NewTag().SetName("Wall")
	DeadZone       = donburi.NewTag().SetName("DeadZone")
	Enemy          = donburi.NewTag().SetName("Enemy")
	Hitbox         = donburi.NewTag().SetName("Hitbox")
	Talisman       = donburi.NewTag().SetName("Talisman")
	Projectile     = donburi.NewTag().SetName("Projectile")
	DamageArea     = donburi.NewTag().SetName("DamageArea")
	Orb            = donburi.NewTag().SetName("Orb")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlatform   = "platform"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvTalisman   = "Talisman"
	ResolvProjectile = "Projectile"
	ResolvDeadZone   = "deadzone"
	ResolvHazard     = "hazard"
	ResolvOrb        = "orb"
)

// RealityTags are the tags removed from an object while its reality is
// inactive.
var RealityTags = []string{ResolvSolid, ResolvPlatform, ResolvEnemy, ResolvHazard, ResolvProjectile}

var (
	solidFor    = [...]string{"solid_spirit", "solid_living"}
	platformFor = [...]string{"platform_spirit", "platform_living"}
)

// RealitySolid is the permanent tag carried by walls of reality index.
// Members of that reality keep colliding with it while the player cannot.
func RealitySolid(index int) string {
	if index < 0 || index >= len(solidFor) {
		return ResolvSolid
	}
	return solidFor[index]
}

// RealityPlatform is the permanent one-way platform tag of reality index.
func RealityPlatform(index int) string {
	if index < 0 || index >= len(platformFor) {
		return ResolvPlatform
	}
	return platformFor[index]
}
