package gamemath

import "math"

// AimAngle returns the throw angle in radians for a player facing facingX
// (-1 or 1). Holding up or down tilts the throw diagonally; holding both
// cancels out.
func AimAngle(facingX float64, upPressed, downPressed bool) float64 {
	if facingX == 0 {
		facingX = 1
	}
	aimY := 0.0
	switch {
	case upPressed && !downPressed:
		aimY = -1
	case downPressed && !upPressed:
		aimY = 1
	}
	return math.Atan2(aimY, facingX)
}

// FanAngles spreads amount throws evenly across +/- spreadDegrees around
// aim.
func FanAngles(aim float64, amount int, spreadDegrees float64) []float64 {
	if amount <= 1 {
		return []float64{aim}
	}
	spread := spreadDegrees * math.Pi / 180
	step := 2 * spread / float64(amount-1)
	angles := make([]float64, amount)
	for i := range angles {
		angles[i] = aim - spread + step*float64(i)
	}
	return angles
}
