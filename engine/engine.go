package engine

import (
	"context"
	"fmt"
)

// Phase is a step of the game life cycle:
// Setup -> Playing -> (Won | QuitRequested) -> Terminated.
type Phase int

const (
	SetupPhase Phase = iota
	PlayingPhase
	WonPhase
	QuitRequestedPhase
	TerminatedPhase
)

func (p Phase) String() string {
	switch p {
	case SetupPhase:
		return "setup"
	case PlayingPhase:
		return "playing"
	case WonPhase:
		return "won"
	case QuitRequestedPhase:
		return "quit requested"
	case TerminatedPhase:
		return "terminated"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Result is how a game ended.
type Result int

const (
	Quit Result = iota
	Won
	Aborted // Input closed or context cancelled
)

func (r Result) String() string {
	switch r {
	case Quit:
		return "quit"
	case Won:
		return "won"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

type Engine interface {
	// Run plays the game until the player wins or quits
	Run(ctx context.Context) (Result, error)
}
