package game

import (
	"errors"
	"fmt"
	"war/meta"
)

var (
	ErrInvalidTerritory   = errors.New("invalid territory")
	ErrSelfAttack         = errors.New("cannot attack a territory of the same army")
	ErrInsufficientTroops = errors.New("not enough troops to attack")
)

// Outcome describes one battle round.
type Outcome struct {
	Attacker       int   // Store index of the attacking territory
	Defender       int   // Store index of the defending territory
	AttackerRolls  []int // Highest first
	DefenderRolls  []int // Highest first
	AttackerLosses int
	DefenderLosses int
	Conquered      bool // Defender changed hands this round
}

// ResolveBattle plays a single battle round from attacker against defender.
// Invalid selections are rejected before the store is touched.
func (s *Store) ResolveBattle(attacker, defender int, rules Rules, dice Dice) (Outcome, error) {
	if !s.valid(attacker) || !s.valid(defender) {
		return Outcome{}, fmt.Errorf("cannot attack from %d to %d: %w", attacker, defender, ErrInvalidTerritory)
	}
	from := &s.territories[attacker]
	to := &s.territories[defender]

	if attacker == defender || from.Owner == to.Owner {
		return Outcome{}, fmt.Errorf("cannot attack %s from %s: %w", to.Name, from.Name, ErrSelfAttack)
	}
	if from.Troops < meta.MIN_ATTACK_TROOPS {
		return Outcome{}, fmt.Errorf("cannot attack from %s with %d troops: %w", from.Name, from.Troops, ErrInsufficientTroops)
	}

	// Must leave at least one troop behind
	attackerDice := min(from.Troops-1, rules.MaxAttackDice())
	defenderDice := min(to.Troops, rules.MaxDefendDice())

	outcome := Outcome{
		Attacker:      attacker,
		Defender:      defender,
		AttackerRolls: rollDice(dice, attackerDice),
		DefenderRolls: rollDice(dice, defenderDice),
	}
	outcome.AttackerLosses, outcome.DefenderLosses = rules.DetermineAttackOutcome(outcome.AttackerRolls, outcome.DefenderRolls)

	from.Troops -= outcome.AttackerLosses
	to.Troops -= outcome.DefenderLosses

	if to.Troops <= 0 {
		// The occupying force is a single troop from the attacker
		to.Owner = from.Owner
		from.Troops--
		to.Troops = 1
		outcome.Conquered = true
	}

	return outcome, nil
}
