// Package leveling holds the experience tracks and upgrade catalog.
package leveling

import "math"

// Track is the experience state of one reality.
type Track struct {
	Level  int
	XP     int
	ToNext int
}

// NewTrack returns a level 1 track.
func NewTrack(toNext int) Track {
	return Track{Level: 1, ToNext: toNext}
}

// AddXP adds experience and returns how many levels were gained. The
// remainder carries over and each level multiplies ToNext by growth.
func (t *Track) AddXP(amount int, growth float64) int {
	if amount <= 0 || t.ToNext <= 0 {
		return 0
	}
	t.XP += amount

	gained := 0
	for t.XP >= t.ToNext {
		t.XP -= t.ToNext
		t.Level++
		t.ToNext = max(1, int(math.Round(float64(t.ToNext)*growth)))
		gained++
	}
	return gained
}

// Progress is the fraction of the way to the next level.
func (t Track) Progress() float64 {
	if t.ToNext <= 0 {
		return 0
	}
	return float64(t.XP) / float64(t.ToNext)
}
