package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/leveling"
	"github.com/automoto/exorcist/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var offerRNG = rand.New(rand.NewSource(time.Now().UnixNano()))

func progress(ecs *ecs.ECS) *components.ProgressData {
	entry, ok := components.Progress.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Progress.Get(entry)
}

// trackCategory maps a reality index to the upgrades its level-ups offer.
func trackCategory(index int) leveling.Category {
	if index == cfg.RealitySpirit {
		return leveling.Spirit
	}
	return leveling.Living
}

// GrantXP adds experience to the track of reality index and queues a
// level-up choice for every level gained.
func GrantXP(ecs *ecs.ECS, index, amount int) {
	p := progress(ecs)
	if p == nil || index < 0 || index >= len(p.Tracks) {
		return
	}
	if stats := runStats(ecs); stats != nil {
		stats.XP[index] += amount
	}

	gained := p.Tracks[index].AddXP(amount, cfg.Leveling.GrowthMultiplier)
	for i := 0; i < gained; i++ {
		p.Pending = append(p.Pending, index)
	}
	if gained > 0 {
		PlaySFX(ecs, cfg.SoundLevelUp)
		log.Printf("%s level %d", cfg.Reality.Names[index], p.Tracks[index].Level)
	}
}

// OpenNextOffer draws the cards for the oldest pending level-up. It
// returns false when nothing is pending or a choice is already open.
func OpenNextOffer(p *components.ProgressData, rng *rand.Rand) bool {
	for !p.Choosing() && len(p.Pending) > 0 {
		index := p.Pending[0]
		p.Pending = p.Pending[1:]

		offer := leveling.Offer(p.Catalog, trackCategory(index), cfg.Leveling.ChoiceCount, rng)
		if len(offer) == 0 {
			continue
		}
		p.Offer = offer
		p.OfferTrack = index
		p.Selected = 0
		return true
	}
	return false
}

// PickUpgrade applies the offered card at choice to the player and closes
// the offer.
func PickUpgrade(ecs *ecs.ECS, choice int) bool {
	p := progress(ecs)
	if p == nil || choice < 0 || choice >= len(p.Offer) {
		return false
	}
	upgrade := p.Offer[choice]
	p.Offer = nil
	p.Selected = 0

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	applyUpgrade(playerEntry, p.Owned, upgrade)
	PlaySFX(ecs, cfg.SoundMenuSelect)
	return true
}

// applyUpgrade raises the upgrade level and copies the health stats back
// into the Health component, which stays authoritative during play.
func applyUpgrade(playerEntry *donburi.Entry, owned leveling.Owned, upgrade leveling.Upgrade) int {
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	player.Stats.Health = health.Current
	player.Stats.MaxHealth = health.Max
	level := owned.Pick(upgrade, &player.Stats, cfg.Combat.MinCooldown)
	health.Max = player.Stats.MaxHealth
	health.Current = player.Stats.Health

	// Already running cooldowns must not exceed the new ones
	player.MeleeCooldown = min(player.MeleeCooldown, player.Stats.MeleeCooldown)
	player.RangedCooldown = min(player.RangedCooldown, player.Stats.RangedCooldown)
	return level
}

// UpdateLeveling opens pending level-up offers and handles card
// navigation with the menu actions. Gameplay systems hold while an offer
// is open.
func UpdateLeveling(ecs *ecs.ECS) {
	p := progress(ecs)
	if p == nil {
		return
	}
	if !p.Choosing() {
		// Input is read from the next frame so a held button does not pick
		OpenNextOffer(p, offerRNG)
		return
	}

	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if GetAction(input, cfg.ActionMenuLeft).JustPressed || GetAction(input, cfg.ActionMenuUp).JustPressed {
		p.Selected = (p.Selected - 1 + len(p.Offer)) % len(p.Offer)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed || GetAction(input, cfg.ActionMenuDown).JustPressed {
		p.Selected = (p.Selected + 1) % len(p.Offer)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PickUpgrade(ecs, p.Selected)
	}
}
