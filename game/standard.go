package game

// StandardRules compares the highest dice pairwise. Ties go to the defender.
type StandardRules struct {
	AttackDice int
	DefendDice int
}

// NewStandardRules returns the single die per side rule set.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		AttackDice: 1,
		DefendDice: 1,
	}
}

func (sr *StandardRules) MaxAttackDice() int {
	return sr.AttackDice
}

func (sr *StandardRules) MaxDefendDice() int {
	return sr.DefendDice
}

func (sr *StandardRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int) {
	battles := min(len(attackerRolls), len(defenderRolls))
	for i := 0; i < battles; i++ {
		if attackerRolls[i] > defenderRolls[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return
}
