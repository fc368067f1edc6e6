package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		friction float64
		want     float64
	}{
		{"positive slows", 3, 0.5, 2.5},
		{"negative slows", -3, 0.5, -2.5},
		{"stops inside friction", 0.3, 0.5, 0},
		{"stops at exact friction", -0.5, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ApplyFriction(tt.speed, tt.friction), 1e-9)
		})
	}
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 4.0, ClampSpeed(9, 4))
	assert.Equal(t, -4.0, ClampSpeed(-9, 4))
	assert.Equal(t, 1.5, ClampSpeed(1.5, 4))
}

func TestHoming(t *testing.T) {
	vx, vy := Homing(0, 0, 3, 4, 10)
	assert.InDelta(t, 6, vx, 1e-9)
	assert.InDelta(t, 8, vy, 1e-9)

	vx, vy = Homing(5, 5, 5, 5, 10)
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, Distance(1, 1, 4, 5), 1e-9)
}

func TestAimAngle(t *testing.T) {
	tests := []struct {
		name   string
		facing float64
		up     bool
		down   bool
		want   float64
	}{
		{"right", 1, false, false, 0},
		{"left", -1, false, false, math.Pi},
		{"up right", 1, true, false, -math.Pi / 4},
		{"down left", -1, false, true, 3 * math.Pi / 4},
		{"both cancel", 1, true, true, 0},
		{"no facing defaults right", 0, false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AimAngle(tt.facing, tt.up, tt.down), 1e-9)
		})
	}
}

func TestFanAngles(t *testing.T) {
	assert.Equal(t, []float64{1}, FanAngles(1, 1, 10))
	assert.Equal(t, []float64{1}, FanAngles(1, 0, 10))

	angles := FanAngles(0, 3, 10)
	require.Len(t, angles, 3)
	spread := 10 * math.Pi / 180
	assert.InDelta(t, -spread, angles[0], 1e-9)
	assert.InDelta(t, 0, angles[1], 1e-9)
	assert.InDelta(t, spread, angles[2], 1e-9)
}
