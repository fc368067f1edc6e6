package reality

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60.0

type fakeCollider struct {
	enabled bool
	calls   []bool
}

func (f *fakeCollider) SetCollidersEnabled(enabled bool) {
	f.enabled = enabled
	f.calls = append(f.calls, enabled)
}

func step(obj *Object, frames int) {
	for i := 0; i < frames; i++ {
		obj.Update(frame)
	}
}

func TestObjectDefaults(t *testing.T) {
	obj := NewObject(nil)

	assert.True(t, obj.Active())
	assert.True(t, obj.CollidersEnabled())
	assert.True(t, obj.DisableCollidersWhenInactive)
	assert.False(t, obj.DisableWhenInactive)
	assert.Equal(t, 1.0, obj.Alpha())
	assert.False(t, obj.Transitioning())
}

func TestObjectFadeOut(t *testing.T) {
	col := &fakeCollider{enabled: true}
	obj := NewObject(col)

	obj.SetState(false, 0.2, 2)

	assert.False(t, obj.Active())
	assert.False(t, col.enabled, "colliders switch immediately")
	assert.True(t, obj.Transitioning())
	assert.Equal(t, 1.0, obj.Alpha(), "alpha only moves on update")

	// 0.8 alpha at 2/s takes 0.4s, so 0.2s is halfway.
	step(obj, 12)
	assert.InDelta(t, 0.6, obj.Alpha(), 0.02)

	step(obj, 30)
	assert.False(t, obj.Transitioning())
	assert.Equal(t, 0.2, obj.Alpha())
}

func TestObjectFadeInEnablesColliders(t *testing.T) {
	col := &fakeCollider{}
	obj := NewObject(col)
	obj.SetState(false, 0.2, 0)
	require.Equal(t, 0.2, obj.Alpha())

	obj.SetState(true, 0.2, 2)
	assert.True(t, col.enabled)
	step(obj, 60)
	assert.Equal(t, 1.0, obj.Alpha())
}

func TestObjectSameStateIsNoop(t *testing.T) {
	col := &fakeCollider{}
	obj := NewObject(col)

	obj.SetState(true, 0.2, 2)

	assert.Empty(t, col.calls)
	assert.False(t, obj.Transitioning())
}

func TestObjectKeepsCollidersWhenConfigured(t *testing.T) {
	col := &fakeCollider{enabled: true}
	obj := NewObject(col)
	obj.DisableCollidersWhenInactive = false

	obj.SetState(false, 0.2, 2)
	assert.Empty(t, col.calls)
	assert.True(t, obj.CollidersEnabled())

	obj.SetState(true, 0.2, 2)
	assert.Equal(t, []bool{true}, col.calls)
}

func TestObjectInterruptedFade(t *testing.T) {
	obj := NewObject(nil)

	obj.SetState(false, 0.2, 2)
	step(obj, 12)
	mid := obj.Alpha()
	require.Less(t, mid, 1.0)

	// Reversing mid-fade starts from the current alpha.
	obj.SetState(true, 0.2, 2)
	obj.Update(0)
	assert.InDelta(t, mid, obj.Alpha(), 1e-6)
	step(obj, 60)
	assert.Equal(t, 1.0, obj.Alpha())
}

func TestObjectSnapsWithZeroSpeed(t *testing.T) {
	obj := NewObject(nil)
	obj.SetState(false, 0.3, 0)

	assert.Equal(t, 0.3, obj.Alpha())
	assert.False(t, obj.Transitioning())
}

func TestObjectFrozen(t *testing.T) {
	obj := NewObject(nil)
	obj.SetState(false, 0.2, 2)
	assert.False(t, obj.Frozen())

	obj.DisableWhenInactive = true
	assert.True(t, obj.Frozen())

	obj.SetState(true, 0.2, 2)
	assert.False(t, obj.Frozen())
}

func TestRealityMembership(t *testing.T) {
	r := New("Spirit", color.RGBA{A: 255})
	a, b, c := NewObject(nil), NewObject(nil), NewObject(nil)

	assert.True(t, r.AddObject(a))
	assert.False(t, r.AddObject(a), "duplicate")
	assert.False(t, r.AddEnemy(a), "already a member in another category")
	assert.False(t, r.AddObject(nil))
	assert.True(t, r.AddEnemy(b))
	assert.True(t, r.AddActive(c))

	assert.Len(t, r.Static, 1)
	assert.Len(t, r.Enemies, 1)
	assert.Len(t, r.Active, 1)
	assert.ElementsMatch(t, []*Object{a, b, c}, r.Objects())

	r.RemoveObject(b)
	assert.Empty(t, r.Enemies)
	assert.ElementsMatch(t, []*Object{a, c}, r.Objects())
}

func TestRealityInitializeFromCategories(t *testing.T) {
	a, b := NewObject(nil), NewObject(nil)
	r := &Reality{Name: "Living", Static: []*Object{a}, Enemies: []*Object{b, nil}}

	r.Initialize()

	assert.ElementsMatch(t, []*Object{a, b}, r.Objects())
}

func TestRealitySetActive(t *testing.T) {
	r := New("Living", color.RGBA{})
	a, b := NewObject(nil), NewObject(nil)
	r.AddObject(a)
	r.AddEnemy(b)

	r.SetActive(false, 0.2, 0)
	assert.False(t, a.Active())
	assert.False(t, b.Active())

	r.SetObjectState(a, true, 0.2)
	assert.True(t, a.Active())
	assert.True(t, a.Transitioning())
}

func newTestManager() (*Manager, *Object, *Object) {
	spirit := New("Spirit", color.RGBA{})
	living := New("Living", color.RGBA{})
	s, l := NewObject(&fakeCollider{}), NewObject(&fakeCollider{})
	spirit.AddObject(s)
	living.AddObject(l)
	return NewManager(1, 0.2, 2, spirit, living), s, l
}

func TestManagerInit(t *testing.T) {
	m, s, l := newTestManager()
	assert.Nil(t, m.CurrentReality())

	m.Init()

	assert.Equal(t, 1, m.Current)
	assert.Equal(t, "Living", m.CurrentReality().Name)
	assert.True(t, l.Active())
	assert.False(t, s.Active())
}

func TestManagerSwitching(t *testing.T) {
	tests := []struct {
		name    string
		action  func(m *Manager)
		current int
		fired   []int
	}{
		{"next wraps around", func(m *Manager) { m.SwitchToNext() }, 0, []int{0}},
		{"next twice returns", func(m *Manager) { m.SwitchToNext(); m.SwitchToNext() }, 1, []int{0, 1}},
		{"same index is a no-op", func(m *Manager) { m.SwitchTo(1) }, 1, nil},
		{"out of range is ignored", func(m *Manager) { m.SwitchTo(2) }, 1, nil},
		{"negative is ignored", func(m *Manager) { m.SwitchTo(-1) }, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestManager()
			m.Init()
			var fired []int
			m.OnSwitch = func(i int) { fired = append(fired, i) }

			tt.action(m)

			assert.Equal(t, tt.current, m.Current)
			assert.Equal(t, tt.fired, fired)

			active := 0
			for _, r := range m.Realities {
				for _, obj := range r.Objects() {
					if obj.Active() {
						active++
					}
				}
			}
			assert.Equal(t, 1, active, "exactly one reality is active")
		})
	}
}

func TestManagerAddObjectAppliesState(t *testing.T) {
	m, _, _ := newTestManager()
	m.Init()

	late := NewObject(&fakeCollider{})
	m.AddObject(0, late)

	assert.False(t, late.Active())
	assert.Equal(t, 0.2, late.Alpha(), "late members snap")
	assert.Contains(t, m.Realities[0].Objects(), late)

	m.AddEnemy(5, NewObject(nil))
	m.RemoveObject(0, late)
	assert.NotContains(t, m.Realities[0].Objects(), late)
}

func TestManagerUpdateAdvancesFades(t *testing.T) {
	m, s, l := newTestManager()
	m.Init()
	m.Update(1)

	m.SwitchTo(0)
	for i := 0; i < 60; i++ {
		m.Update(frame)
	}

	assert.Equal(t, 1.0, s.Alpha())
	assert.Equal(t, 0.2, l.Alpha())
}

func TestManagerIsActive(t *testing.T) {
	m, _, _ := newTestManager()
	m.Init()

	assert.True(t, m.IsActive(1))
	assert.False(t, m.IsActive(0))
	assert.True(t, m.IsActive(-1), "shared objects are always active")
}
