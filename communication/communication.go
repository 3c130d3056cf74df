package communication

import (
	"context"
	"errors"

	"war/game"
)

// Menu options understood by the game loop.
const (
	QuitOption         = 0
	AttackOption       = 1
	CheckMissionOption = 2
)

// ErrInvalidInput is returned when a prompt answer is not a number.
var ErrInvalidInput = errors.New("invalid input")

// Communicator is an interface that abstracts how the game talks to the player.
type Communicator interface {
	ShowMap(territories []game.Territory)
	ShowMission(mission game.Mission)
	ShowMenu()
	// ShowOutcome reports a round; attacker and defender are the territories after the round.
	ShowOutcome(outcome game.Outcome, attacker, defender game.Territory)
	Message(format string, args ...any)
	// PromptInt and Pause block until the player answers or ctx is done.
	PromptInt(ctx context.Context, prompt string) (int, error)
	Pause(ctx context.Context) error
}
