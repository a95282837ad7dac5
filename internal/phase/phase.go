// Package phase implements the game phase state machine.
//
// The main progression is Starting -> GetReady -> Playing -> GameOver ->
// GetReady. Boss is a side channel: the boss key hides the game from any
// phase except GetReady and a second press restores the phase it replaced.
package phase

// State is the active game phase.
type State int

const (
	Starting State = iota // Title screen with a drifting asteroid field
	GetReady              // Countdown before a wave
	Playing               // Active gameplay
	GameOver              // Ship lost, waiting for restart
	Boss                  // Game hidden behind the disguise screen
)

func (s State) String() string {
	switch s {
	case Starting:
		return "Starting"
	case GetReady:
		return "GetReady"
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	case Boss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// Trigger is something that may move the machine.
type Trigger int

const (
	SpacePressed Trigger = iota
	CountdownFinished
	ShipLost
	WaveCleared
	BossKey
)

func (t Trigger) String() string {
	switch t {
	case SpacePressed:
		return "SpacePressed"
	case CountdownFinished:
		return "CountdownFinished"
	case ShipLost:
		return "ShipLost"
	case WaveCleared:
		return "WaveCleared"
	case BossKey:
		return "BossKey"
	default:
		return "Unknown"
	}
}

// Next returns the main-progression target for (s, t). ok is false when the
// pair does not move the machine. BossKey is never a main-progression
// trigger; use Machine.Fire for it.
func Next(s State, t Trigger) (to State, ok bool) {
	switch {
	case s == Starting && t == SpacePressed:
		return GetReady, true
	case s == GetReady && t == CountdownFinished:
		return Playing, true
	case s == Playing && t == ShipLost:
		return GameOver, true
	case s == Playing && t == WaveCleared:
		return GetReady, true
	case s == GameOver && t == SpacePressed:
		return GetReady, true
	}
	return s, false
}

// Transition describes one move of the machine.
type Transition struct {
	From State
	To   State
	// Side is true for Boss toggles. Enter/exit hooks of the main
	// progression do not run for side transitions.
	Side bool
}

// Machine tracks the current phase and the phase hidden behind Boss.
type Machine struct {
	current    State
	beforeBoss State
}

// NewMachine returns a machine in the given phase.
func NewMachine(initial State) *Machine {
	return &Machine{current: initial, beforeBoss: initial}
}

// Current returns the active phase.
func (m *Machine) Current() State { return m.current }

// BeforeBoss returns the phase Boss will restore. Only meaningful in Boss.
func (m *Machine) BeforeBoss() State { return m.beforeBoss }

// Fire applies t and reports the transition, if any.
func (m *Machine) Fire(t Trigger) (Transition, bool) {
	if t == BossKey {
		return m.toggleBoss()
	}
	to, ok := Next(m.current, t)
	if !ok {
		return Transition{}, false
	}
	tr := Transition{From: m.current, To: to}
	m.current = to
	return tr, true
}

func (m *Machine) toggleBoss() (Transition, bool) {
	switch m.current {
	case GetReady:
		return Transition{}, false
	case Boss:
		tr := Transition{From: Boss, To: m.beforeBoss, Side: true}
		m.current = m.beforeBoss
		return tr, true
	default:
		tr := Transition{From: m.current, To: Boss, Side: true}
		m.beforeBoss = m.current
		m.current = Boss
		return tr, true
	}
}
