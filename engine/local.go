package engine

import (
	"context"
	"errors"
	"fmt"

	"war/communication"
	"war/experiments/metrics"
	"war/game"
	"war/player"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotOwner   = errors.New("territory is not held by the player")
	ErrAlreadyRun = errors.New("game already played")
)

type Option func(e *LocalEngine)

// WithDice overrides the dice used for battles.
func WithDice(dice game.Dice) Option {
	return func(e *LocalEngine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

// WithMissionDraw overrides the source used to draw the player's mission.
func WithMissionDraw(r game.Intner) Option {
	return func(e *LocalEngine) {
		if r != nil {
			e.draw = r
		}
	}
}

// WithSeed seeds both the dice and the mission draw.
func WithSeed(seed uint64) Option {
	return func(e *LocalEngine) {
		rng := game.NewRand(seed)
		e.dice = game.NewDice(rng)
		e.draw = rng
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *LocalEngine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *LocalEngine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	store     *game.Store
	player    *player.Player
	comm      communication.Communicator
	rules     game.Rules
	dice      game.Dice
	draw      game.Intner
	collector metrics.Collector
	phase     Phase
	metric    metrics.GameMetric
	rounds    []metrics.RoundRecord
}

// NewLocalEngine sets up a game from scenario: it builds the store and deals the player's mission.
func NewLocalEngine(scenario game.Scenario, comm communication.Communicator, options ...Option) (*LocalEngine, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	store, err := game.NewStore(scenario.Territories)
	if err != nil {
		return nil, err
	}

	rng := game.NewRand(0)
	e := &LocalEngine{ // Default values
		store:     store,
		comm:      comm,
		rules:     game.NewStandardRules(),
		dice:      game.NewDice(rng),
		draw:      rng,
		collector: metrics.NewDummyCollector(),
		phase:     SetupPhase,
	}
	for _, option := range options {
		option(e)
	}

	e.player = player.NewPlayer(scenario.Player, scenario.Missions, e.draw)
	return e, nil
}

func (e *LocalEngine) Store() *game.Store {
	return e.store
}

func (e *LocalEngine) Player() *player.Player {
	return e.player
}

func (e *LocalEngine) Phase() Phase {
	return e.phase
}

// Metrics returns what the collector gathered once the game has terminated.
func (e *LocalEngine) Metrics() (metrics.GameMetric, []metrics.RoundRecord) {
	return e.metric, e.rounds
}

// Run executes the menu loop until the player wins or quits.
func (e *LocalEngine) Run(ctx context.Context) (Result, error) {
	if e.phase != SetupPhase {
		return Aborted, ErrAlreadyRun
	}

	e.collector.Start(e.player.Faction, e.player.Mission)
	e.setPhase(PlayingPhase)
	log.Info().Msgf("player %s is starting with mission %d", e.player.Faction, e.player.Mission.ID)

	for e.phase == PlayingPhase {
		if err := ctx.Err(); err != nil {
			return e.terminate(Aborted), err
		}
		if err := e.turn(ctx); err != nil {
			return e.terminate(Aborted), err
		}
	}

	if e.phase == WonPhase {
		return e.terminate(Won), nil
	}
	return e.terminate(Quit), nil
}

func (e *LocalEngine) turn(ctx context.Context) error {
	e.comm.ShowMap(e.store.Territories())
	e.comm.ShowMission(e.player.Mission)
	e.comm.ShowMenu()

	choice, err := e.comm.PromptInt(ctx, "Choose an action: ")
	if err != nil {
		if !errors.Is(err, communication.ErrInvalidInput) {
			return err
		}
		choice = -1
	}

	switch choice {
	case communication.AttackOption:
		if err := e.attackPhase(ctx); err != nil {
			return err
		}
	case communication.CheckMissionOption:
		e.checkMission()
	case communication.QuitOption:
		e.comm.Message("Leaving the game...")
		e.setPhase(QuitRequestedPhase)
	default:
		e.comm.Message("Invalid option! Try again.")
	}

	if e.phase == PlayingPhase {
		return e.comm.Pause(ctx)
	}
	return nil
}

func (e *LocalEngine) attackPhase(ctx context.Context) error {
	e.comm.Message("--- ATTACK PHASE ---")
	from, err := e.promptTerritory(ctx, "Choose the attacking territory (1-%d): ")
	if err != nil {
		return err
	}
	to, err := e.promptTerritory(ctx, "Choose the territory to attack (1-%d): ")
	if err != nil {
		return err
	}

	attacker, err := e.store.Territory(from)
	if err != nil {
		e.reject(err)
		return nil
	}
	if !e.player.Owns(e.store, from) {
		e.reject(fmt.Errorf("cannot attack from %s: %w", attacker.Name, ErrNotOwner))
		return nil
	}
	defender, _ := e.store.Territory(to)

	outcome, err := e.store.ResolveBattle(from, to, e.rules, e.dice)
	if err != nil {
		e.reject(err)
		return nil
	}
	e.collector.AddRound(outcome, attacker, defender)

	attackerAfter, _ := e.store.Territory(from)
	defenderAfter, _ := e.store.Territory(to)
	log.Debug().
		Str("attacker", attacker.Name).
		Str("defender", defender.Name).
		Ints("attacker_rolls", outcome.AttackerRolls).
		Ints("defender_rolls", outcome.DefenderRolls).
		Bool("conquered", outcome.Conquered).
		Msg("battle resolved")
	if outcome.Conquered {
		log.Info().Msgf("%s conquered %s, armies left: %v", attacker.Owner, defender.Name, e.store.Factions())
	}
	e.comm.ShowOutcome(outcome, attackerAfter, defenderAfter)
	return nil
}

// promptTerritory converts the 1-based answer into a store index. Non numeric answers become -1.
func (e *LocalEngine) promptTerritory(ctx context.Context, prompt string) (int, error) {
	n, err := e.comm.PromptInt(ctx, fmt.Sprintf(prompt, e.store.Len()))
	if err != nil {
		if errors.Is(err, communication.ErrInvalidInput) {
			return -1, nil
		}
		return 0, err
	}
	return n - 1, nil
}

func (e *LocalEngine) reject(err error) {
	log.Debug().Err(err).Msg("attack rejected")
	switch {
	case errors.Is(err, game.ErrInvalidTerritory):
		e.comm.Message("Invalid territory. Choose a number between 1 and %d.", e.store.Len())
	case errors.Is(err, ErrNotOwner):
		e.comm.Message("You can only attack from territories held by the %s army.", e.player.Faction)
	case errors.Is(err, game.ErrSelfAttack):
		e.comm.Message("You cannot attack a territory of your own army.")
	case errors.Is(err, game.ErrInsufficientTroops):
		e.comm.Message("You need at least 2 troops in a territory to attack from it.")
	default:
		e.comm.Message("Attack aborted: %v", err)
	}
}

func (e *LocalEngine) checkMission() {
	if e.player.MissionComplete(e.store) {
		e.comm.Message("MISSION COMPLETE! %s. You won the war!", e.player.Mission.Description())
		e.setPhase(WonPhase)
		return
	}
	e.comm.Message("Mission not complete yet. Keep fighting!")
}

func (e *LocalEngine) setPhase(phase Phase) {
	log.Debug().Msgf("phase %s -> %s", e.phase, phase)
	e.phase = phase
}

func (e *LocalEngine) terminate(result Result) Result {
	e.setPhase(TerminatedPhase)
	e.metric, e.rounds = e.collector.Complete(result.String())
	log.Info().Msgf("game over: %s after %d rounds", result, e.metric.Rounds)
	return result
}
