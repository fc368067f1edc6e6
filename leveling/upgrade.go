package leveling

import (
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"
)

// Category decides which level-ups offer an upgrade.
type Category string

const (
	Universal Category = "universal"
	Living    Category = "living"
	Spirit    Category = "spirit"
)

// Effect names the stat an upgrade changes.
type Effect string

const (
	EffectSpeed             Effect = "speed"
	EffectAttackSpeed       Effect = "attack_speed"
	EffectDamage            Effect = "damage"
	EffectHealth            Effect = "health"
	EffectStun              Effect = "stun"
	EffectRange             Effect = "range"
	EffectKnockback         Effect = "knockback"
	EffectMultiShot         Effect = "multi_shot"
	EffectQuickTalisman     Effect = "quick_talisman"
	EffectExplodingTalisman Effect = "exploding_talisman"
)

// Upgrade is one entry of the catalog.
type Upgrade struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Category    Category `yaml:"category"`
	Effect      Effect   `yaml:"effect"`
	Value       float64  `yaml:"value"`
}

type catalogFile struct {
	Upgrades []Upgrade `yaml:"upgrades"`
}

// ParseCatalog decodes an upgrades YAML document.
func ParseCatalog(data []byte) ([]Upgrade, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse upgrades: %w", err)
	}
	seen := make(map[string]bool, len(f.Upgrades))
	for i, u := range f.Upgrades {
		if u.ID == "" {
			return nil, fmt.Errorf("upgrade %d: missing id", i)
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("upgrade %q: duplicate id", u.ID)
		}
		seen[u.ID] = true
		switch u.Category {
		case Universal, Living, Spirit:
		default:
			return nil, fmt.Errorf("upgrade %q: unknown category %q", u.ID, u.Category)
		}
		if !u.Effect.valid() {
			return nil, fmt.Errorf("upgrade %q: unknown effect %q", u.ID, u.Effect)
		}
	}
	return f.Upgrades, nil
}

func (e Effect) valid() bool {
	switch e {
	case EffectSpeed, EffectAttackSpeed, EffectDamage, EffectHealth,
		EffectStun, EffectRange, EffectKnockback,
		EffectMultiShot, EffectQuickTalisman, EffectExplodingTalisman:
		return true
	}
	return false
}

// DefaultCatalog is used when no upgrades file can be loaded.
func DefaultCatalog() []Upgrade {
	return []Upgrade{
		{ID: "speed", Name: "Increased Speed", Description: "Move faster", Category: Universal, Effect: EffectSpeed, Value: 0.3},
		{ID: "attack_speed", Name: "Increased Attack Speed", Description: "Shorter attack cooldowns", Category: Universal, Effect: EffectAttackSpeed, Value: 6},
		{ID: "damage", Name: "Increased Damage", Description: "Attacks hit harder", Category: Universal, Effect: EffectDamage, Value: 10},
		{ID: "health", Name: "Increased Health", Description: "Raise and restore max health", Category: Universal, Effect: EffectHealth, Value: 20},
		{ID: "stun", Name: "Enemy Stun", Description: "Strikes stun for longer", Category: Living, Effect: EffectStun, Value: 6},
		{ID: "range", Name: "Extend Attack Range", Description: "Strikes reach further", Category: Living, Effect: EffectRange, Value: 6},
		{ID: "knockback", Name: "Knockback", Description: "Strikes push enemies further", Category: Living, Effect: EffectKnockback, Value: 1.5},
		{ID: "multi_shot", Name: "Multi-Shot", Description: "Throw an extra talisman", Category: Spirit, Effect: EffectMultiShot, Value: 1},
		{ID: "quick_talisman", Name: "Quick Talisman", Description: "Faster talismans, shorter cooldown", Category: Spirit, Effect: EffectQuickTalisman, Value: 1},
		{ID: "exploding_talisman", Name: "Exploding Talisman", Description: "Talismans burst on impact", Category: Spirit, Effect: EffectExplodingTalisman, Value: 2},
	}
}

// Offer draws up to n distinct upgrades for a level-up of the given
// category. Universal upgrades are always eligible.
func Offer(catalog []Upgrade, category Category, n int, rng *rand.Rand) []Upgrade {
	pool := make([]Upgrade, 0, len(catalog))
	for _, u := range catalog {
		if u.Category == Universal || u.Category == category {
			pool = append(pool, u)
		}
	}
	n = min(n, len(pool))
	if n <= 0 {
		return nil
	}

	offer := make([]Upgrade, 0, n)
	for _, i := range rng.Perm(len(pool))[:n] {
		offer = append(offer, pool[i])
	}
	return offer
}
