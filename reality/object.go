// Package reality groups scene objects into alternate worlds that can be
// switched between. Members of the inactive reality fade out and lose
// their collision.
package reality

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultTransitionSpeed is the fade speed in alpha units per second.
const DefaultTransitionSpeed = 2.0

// Collider is anything whose collision can be switched on and off.
type Collider interface {
	SetCollidersEnabled(enabled bool)
}

// Object is the per-entity reality state: opacity, collision and whether
// the owner's behaviour should run.
type Object struct {
	// DisableWhenInactive freezes the owner's behaviour while inactive.
	DisableWhenInactive bool
	// DisableCollidersWhenInactive turns collision off while inactive.
	DisableCollidersWhenInactive bool
	Colliders                    Collider

	active           bool
	collidersEnabled bool
	alpha            float64
	target           float64
	tween            *gween.Tween
}

// NewObject returns an active, fully opaque object.
func NewObject(colliders Collider) *Object {
	return &Object{
		DisableCollidersWhenInactive: true,
		Colliders:                    colliders,
		active:                       true,
		collidersEnabled:             true,
		alpha:                        1,
		target:                       1,
	}
}

// SetState moves the object into the active or inactive state. Colliders
// switch immediately; the opacity fades toward 1 or inactiveOpacity at
// speed alpha units per second.
func (o *Object) SetState(active bool, inactiveOpacity, speed float64) {
	if o.active == active {
		return
	}
	o.active = active

	if active || o.DisableCollidersWhenInactive {
		o.setColliders(active)
	}

	target := inactiveOpacity
	if active {
		target = 1
	}
	o.fadeTo(target, speed)
}

func (o *Object) setColliders(enabled bool) {
	o.collidersEnabled = enabled
	if o.Colliders != nil {
		o.Colliders.SetCollidersEnabled(enabled)
	}
}

func (o *Object) fadeTo(target, speed float64) {
	o.target = target
	o.tween = nil

	delta := math.Abs(target - o.alpha)
	if delta == 0 || speed <= 0 || math.IsInf(speed, 1) {
		o.alpha = target
		return
	}
	o.tween = gween.New(float32(o.alpha), float32(target), float32(delta/speed), ease.Linear)
}

// Update advances the fade by dt seconds.
func (o *Object) Update(dt float64) {
	if o.tween == nil {
		return
	}
	current, finished := o.tween.Update(float32(dt))
	if finished {
		o.alpha = o.target
		o.tween = nil
		return
	}
	o.alpha = float64(current)
}

// Alpha is the current opacity in [0,1].
func (o *Object) Alpha() float64 { return o.alpha }

func (o *Object) Active() bool { return o.active }

func (o *Object) CollidersEnabled() bool { return o.collidersEnabled }

// Transitioning reports whether a fade is in flight.
func (o *Object) Transitioning() bool { return o.tween != nil }

// Frozen reports whether the owner should skip its behaviour this frame.
func (o *Object) Frozen() bool {
	return !o.active && o.DisableWhenInactive
}
