package components

import (
	"github.com/automoto/exorcist/leveling"
	"github.com/yohamta/donburi"
)

// ProgressData is the singleton holding both experience tracks, the
// upgrades owned so far and any level-up waiting for a choice.
type ProgressData struct {
	Tracks  [2]leveling.Track // Indexed by reality
	Owned   leveling.Owned
	Catalog []leveling.Upgrade

	// Pending holds the reality index of each unclaimed level-up.
	Pending []int

	// Offer is the card set currently on screen, empty when closed.
	Offer      []leveling.Upgrade
	OfferTrack int
	Selected   int
}

var Progress = donburi.NewComponentType[ProgressData]()

// Choosing reports whether the level-up screen is open.
func (p *ProgressData) Choosing() bool {
	return len(p.Offer) > 0
}
