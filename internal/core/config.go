package core

import "time"

// RuntimeConfig contains configuration passed to the simulation by a backend.
type RuntimeConfig struct {
	ScreenW  int   // Logical screen width in pixels
	ScreenH  int   // Logical screen height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the backend picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1000,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0,
	}
}

// TickDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Phase is the top-level state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase only leaves via an explicit restart.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// GameState is a snapshot of the session status reported to backends.
type GameState struct {
	Score   int
	Phase   Phase
	Ticks   int
	Elapsed time.Duration
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventSpawn
	EventScore
	EventGameOver
	EventWon
	EventRestart
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventSpawn:
		return "spawn"
	case EventScore:
		return "score"
	case EventGameOver:
		return "game_over"
	case EventWon:
		return "won"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation for backends to log or react to.
type Event struct {
	Kind   EventKind
	Detail string // e.g. enemy species for EventSpawn
	Score  int
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // An exit command was issued this tick
}
