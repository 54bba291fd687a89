package client

import (
	"github.com/bomma/arcade/internal/input"
	"github.com/bomma/arcade/internal/loop"
)

// ClientState holds per-connection state that outlives individual games.
type ClientState struct {
	Input      input.Input
	Selected   int  // Catalog index highlighted on the title screen
	BestScore  int  // Best score across games on this connection
	Running    bool // Client loop running
	isInactive bool
	prevPhase  loop.Phase
}

// NewClientState creates a new initialized client state.
func NewClientState(selected int) *ClientState {
	return &ClientState{
		Selected:  selected,
		Running:   true,
		prevPhase: loop.PhaseIdle,
	}
}
