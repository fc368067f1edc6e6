package config

// StateID identifies a character or entity state.
type StateID int

const (
	StateNone StateID = iota

	// Player
	Idle
	Running
	Jump
	Fall
	WallSlide
	DropThrough
	AttackMelee
	AttackRanged
	Hit
	Die

	// Enemies
	StatePatrol
	StateChase
	StateFlee
	StateWander
	StateHopWindup
	StateHop
	Stunned
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	Idle:           "idle",
	Running:        "running",
	Jump:           "jump",
	Fall:           "fall",
	WallSlide:      "wall_slide",
	DropThrough:    "drop_through",
	AttackMelee:    "attack_melee",
	AttackRanged:   "attack_ranged",
	Hit:            "hit",
	Die:            "die",
	StatePatrol:    "patrol",
	StateChase:     "chase",
	StateFlee:      "flee",
	StateWander:    "wander",
	StateHopWindup: "hop_windup",
	StateHop:       "hop",
	Stunned:        "stunned",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsAttack reports whether the state is one of the player's attack states.
func (s StateID) IsAttack() bool {
	return s == AttackMelee || s == AttackRanged
}
