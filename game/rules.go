package game

// Rules decides how many dice each side rolls and how a round of rolls is scored.
type Rules interface {
	MaxAttackDice() int
	MaxDefendDice() int
	// Rolls arrive sorted highest first.
	DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int)
}
