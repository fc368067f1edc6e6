package ui

import (
	"testing"

	"github.com/automoto/exorcist/components"
	"github.com/automoto/exorcist/leveling"
	"github.com/stretchr/testify/assert"
)

func TestOfferKeyTracksSelection(t *testing.T) {
	p := &components.ProgressData{
		Offer:      []leveling.Upgrade{{ID: "speed"}, {ID: "stun"}},
		OfferTrack: 1,
	}
	first := offerKey(p)
	assert.Equal(t, "1|0|speed,stun", first)

	p.Selected = 1
	assert.NotEqual(t, first, offerKey(p), "moving the selection rebuilds the cards")
}

func TestCardText(t *testing.T) {
	u := leveling.Upgrade{Name: "Knockback", Description: "Strikes push enemies further"}

	assert.Equal(t, "Knockback\nNew\n\nStrikes push enemies further", cardText(u, 0))
	assert.Equal(t, "Knockback\nLv 2 -> 3\n\nStrikes push enemies further", cardText(u, 2))
}
