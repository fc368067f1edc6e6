package factory

import (
	"github.com/automoto/exorcist/components"
	"github.com/automoto/exorcist/reality"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type memberKind int

const (
	memberStatic memberKind = iota
	memberActive
	memberEnemy
)

// attachReality makes e a member of reality index. Shared entities
// (index < 0) are left untouched.
func attachReality(ecs *ecs.ECS, e *donburi.Entry, obj *resolv.Object, index int, kind memberKind) *reality.Object {
	if index < 0 {
		return nil
	}
	if !e.HasComponent(components.RealityMember) {
		e.AddComponent(components.RealityMember)
	}

	member := reality.NewObject(components.NewTagCollider(obj, tags.RealityTags...))
	components.RealityMember.SetValue(e, components.RealityMemberData{Object: member, Index: index})

	mgr := Manager(ecs.World)
	if mgr == nil {
		return member
	}
	switch kind {
	case memberEnemy:
		mgr.AddEnemy(index, member)
	case memberActive:
		mgr.AddActive(index, member)
	default:
		mgr.AddObject(index, member)
	}
	return member
}

// DetachReality unregisters e from its reality before it is removed.
func DetachReality(world donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.RealityMember) {
		return
	}
	member := components.RealityMember.Get(e)
	if mgr := Manager(world); mgr != nil {
		mgr.RemoveObject(member.Index, member.Object)
	}
}

// Manager returns the reality manager of the running game, or nil.
func Manager(world donburi.World) *reality.Manager {
	entry, ok := components.RealityState.First(world)
	if !ok {
		return nil
	}
	return components.RealityState.Get(entry).Manager
}

// Destroy removes an entity together with its collision object and
// reality membership.
func Destroy(world donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	DetachReality(world, e)
	RemoveFromSpace(world, e)
	world.Remove(e.Entity())
}
