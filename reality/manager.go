package reality

import "log"

// Manager owns the realities and the index of the active one.
type Manager struct {
	Realities       []*Reality
	Current         int
	InactiveOpacity float64
	TransitionSpeed float64
	// OnSwitch fires after a completed switch.
	OnSwitch func(index int)

	start int
}

// NewManager builds a manager that starts in reality start once Init runs.
func NewManager(start int, inactiveOpacity, transitionSpeed float64, realities ...*Reality) *Manager {
	return &Manager{
		Realities:       realities,
		Current:         -1,
		InactiveOpacity: inactiveOpacity,
		TransitionSpeed: transitionSpeed,
		start:           start,
	}
}

// Init initializes every reality and switches to the start reality.
func (m *Manager) Init() {
	for _, r := range m.Realities {
		r.Initialize()
	}
	m.Current = -1
	m.SwitchTo(m.start)
}

// SwitchToNext cycles to the following reality.
func (m *Manager) SwitchToNext() {
	if len(m.Realities) == 0 {
		return
	}
	next := 0
	if m.Current >= 0 {
		next = (m.Current + 1) % len(m.Realities)
	}
	m.SwitchTo(next)
}

// SwitchTo activates reality index and deactivates the rest.
func (m *Manager) SwitchTo(index int) {
	if index < 0 || index >= len(m.Realities) {
		log.Printf("Warning: reality index %d out of range (%d realities)", index, len(m.Realities))
		return
	}
	if index == m.Current {
		return
	}

	m.Current = index
	for i, r := range m.Realities {
		r.SetActive(i == m.Current, m.InactiveOpacity, m.TransitionSpeed)
	}
	log.Printf("Switched to reality %d (%s)", index, m.Realities[index].Name)

	if m.OnSwitch != nil {
		m.OnSwitch(index)
	}
}

// AddObject registers obj with reality index as a static member and brings
// it to the current state.
func (m *Manager) AddObject(index int, obj *Object) {
	m.add(index, obj, (*Reality).AddObject)
}

// AddEnemy registers obj with reality index as an enemy member.
func (m *Manager) AddEnemy(index int, obj *Object) {
	m.add(index, obj, (*Reality).AddEnemy)
}

// AddActive registers obj with reality index as an interactive member.
func (m *Manager) AddActive(index int, obj *Object) {
	m.add(index, obj, (*Reality).AddActive)
}

func (m *Manager) add(index int, obj *Object, addFn func(*Reality, *Object) bool) {
	if obj == nil || index < 0 || index >= len(m.Realities) {
		return
	}
	addFn(m.Realities[index], obj)
	if m.Current >= 0 {
		// New members snap instead of fading in.
		obj.SetState(index == m.Current, m.InactiveOpacity, 0)
	}
}

// RemoveObject unregisters obj from reality index.
func (m *Manager) RemoveObject(index int, obj *Object) {
	if index < 0 || index >= len(m.Realities) {
		return
	}
	m.Realities[index].RemoveObject(obj)
}

// Update advances every member's fade by dt seconds.
func (m *Manager) Update(dt float64) {
	for _, r := range m.Realities {
		for _, obj := range r.Objects() {
			obj.Update(dt)
		}
	}
}

// IsActive reports whether members of reality index are currently tangible.
// Negative indexes are shared by every reality.
func (m *Manager) IsActive(index int) bool {
	return index < 0 || index == m.Current
}

// CurrentReality returns the active reality or nil before Init.
func (m *Manager) CurrentReality() *Reality {
	if m.Current < 0 || m.Current >= len(m.Realities) {
		return nil
	}
	return m.Realities[m.Current]
}
