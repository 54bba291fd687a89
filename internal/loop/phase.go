package loop

// Phase is the session state machine's current state.
type Phase int

const (
	PhaseIdle     Phase = iota // No session
	PhaseSpawning              // Creating a wave
	PhaseRunning               // Normal tick processing
	PhaseGameOver              // Player health reached 0
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpawning:
		return "spawning"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
