// Package gamemath holds the small movement formulas shared by the
// player, enemies, talismans and orbs.
package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Homing returns a velocity of the given speed pointing from (x, y) to
// (targetX, targetY). It is zero when both points coincide.
func Homing(x, y, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - x
	dirY := targetY - y
	dist := math.Hypot(dirX, dirY)
	if dist > 0 {
		velX = dirX / dist * speed
		velY = dirY / dist * speed
	}
	return velX, velY
}
