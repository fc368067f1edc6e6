package reality

import (
	"image/color"
	"slices"
)

// Reality is a named group of objects toggled as a unit.
type Reality struct {
	Name  string
	Color color.RGBA

	Static  []*Object
	Active  []*Object
	Enemies []*Object

	all []*Object
}

// New returns an empty reality.
func New(name string, c color.RGBA) *Reality {
	return &Reality{Name: name, Color: c}
}

// Initialize rebuilds the member list from the three categories.
func (r *Reality) Initialize() {
	r.all = r.all[:0]
	for _, group := range [][]*Object{r.Static, r.Active, r.Enemies} {
		for _, obj := range group {
			if obj != nil && !slices.Contains(r.all, obj) {
				r.all = append(r.all, obj)
			}
		}
	}
}

// SetActive applies the state to every member.
func (r *Reality) SetActive(active bool, inactiveOpacity, speed float64) {
	for _, obj := range r.all {
		obj.SetState(active, inactiveOpacity, speed)
	}
}

// AddObject registers a static member. Nil and duplicate objects are ignored.
func (r *Reality) AddObject(obj *Object) bool {
	return r.add(&r.Static, obj)
}

// AddEnemy registers an enemy member.
func (r *Reality) AddEnemy(obj *Object) bool {
	return r.add(&r.Enemies, obj)
}

// AddActive registers an interactive member.
func (r *Reality) AddActive(obj *Object) bool {
	return r.add(&r.Active, obj)
}

func (r *Reality) add(group *[]*Object, obj *Object) bool {
	if obj == nil || r.Contains(obj) {
		return false
	}
	*group = append(*group, obj)
	r.all = append(r.all, obj)
	return true
}

// RemoveObject drops obj from every category.
func (r *Reality) RemoveObject(obj *Object) {
	if obj == nil {
		return
	}
	r.Static = remove(r.Static, obj)
	r.Active = remove(r.Active, obj)
	r.Enemies = remove(r.Enemies, obj)
	r.all = remove(r.all, obj)
}

func remove(list []*Object, obj *Object) []*Object {
	return slices.DeleteFunc(list, func(o *Object) bool { return o == obj })
}

// SetObjectState applies a state to a single member at the default speed.
func (r *Reality) SetObjectState(obj *Object, active bool, inactiveOpacity float64) {
	if obj == nil {
		return
	}
	obj.SetState(active, inactiveOpacity, DefaultTransitionSpeed)
}

// Contains reports whether obj is a member in any category.
func (r *Reality) Contains(obj *Object) bool {
	return slices.Contains(r.all, obj) ||
		slices.Contains(r.Static, obj) ||
		slices.Contains(r.Active, obj) ||
		slices.Contains(r.Enemies, obj)
}

// Objects returns every member.
func (r *Reality) Objects() []*Object {
	return r.all
}
