package components

import (
	"slices"

	"github.com/automoto/exorcist/reality"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// RealityMemberData ties an entity to one reality.
type RealityMemberData struct {
	Object *reality.Object
	Index  int
}

var RealityMember = donburi.NewComponentType[RealityMemberData]()

// Alpha returns the member's current opacity.
func (r *RealityMemberData) Alpha() float64 {
	if r == nil || r.Object == nil {
		return 1
	}
	return r.Object.Alpha()
}

// Tangible reports whether the member currently collides and deals damage.
func (r *RealityMemberData) Tangible() bool {
	return r == nil || r.Object == nil || r.Object.CollidersEnabled()
}

// RealityStateData is the singleton holding the reality manager.
type RealityStateData struct {
	Manager *reality.Manager
}

var RealityState = donburi.NewComponentType[RealityStateData]()

// TagCollider switches a resolv object's collision tags off and on. The
// object stays in the space so it keeps resolving against shared geometry.
type TagCollider struct {
	Object *resolv.Object
	Tags   []string
}

// NewTagCollider captures the tags of obj that should vanish while the
// object's reality is inactive.
func NewTagCollider(obj *resolv.Object, tags ...string) *TagCollider {
	owned := make([]string, 0, len(tags))
	for _, t := range tags {
		if obj.HasTags(t) {
			owned = append(owned, t)
		}
	}
	return &TagCollider{Object: obj, Tags: owned}
}

func (c *TagCollider) SetCollidersEnabled(enabled bool) {
	if c.Object == nil {
		return
	}
	if enabled {
		for _, t := range c.Tags {
			if !slices.Contains(c.Object.Tags(), t) {
				c.Object.AddTags(t)
			}
		}
		return
	}
	c.Object.RemoveTags(c.Tags...)
}
