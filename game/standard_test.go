package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardRulesDetermineAttackOutcome(t *testing.T) {
	rules := NewStandardRules()

	t.Run("single die each", func(t *testing.T) {
		require.Equal(t, 1, rules.MaxAttackDice())
		require.Equal(t, 1, rules.MaxDefendDice())
	})

	t.Run("higher attacker die wins", func(t *testing.T) {
		attackerLosses, defenderLosses := rules.DetermineAttackOutcome([]int{6}, []int{2})
		require.Equal(t, 0, attackerLosses)
		require.Equal(t, 1, defenderLosses)
	})

	t.Run("ties favor the defender", func(t *testing.T) {
		for face := 1; face <= DIE_FACES; face++ {
			attackerLosses, defenderLosses := rules.DetermineAttackOutcome([]int{face}, []int{face})
			require.Equal(t, 1, attackerLosses)
			require.Equal(t, 0, defenderLosses)
		}
	})

	t.Run("compares only as many pairs as the smaller side", func(t *testing.T) {
		classic := &StandardRules{AttackDice: 3, DefendDice: 2}
		attackerLosses, defenderLosses := classic.DetermineAttackOutcome([]int{6, 3, 1}, []int{5, 3})
		require.Equal(t, 1, attackerLosses)
		require.Equal(t, 1, defenderLosses)
	})
}

func TestDice(t *testing.T) {
	t.Run("fair dice stay within faces", func(t *testing.T) {
		dice := NewDice(NewRand(7))
		seen := map[int]bool{}
		for i := 0; i < 1000; i++ {
			v := dice.Roll()
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, DIE_FACES)
			seen[v] = true
		}
		require.Len(t, seen, DIE_FACES, "Every face should come up")
	})

	t.Run("same seed replays the same rolls", func(t *testing.T) {
		a, b := NewDice(NewRand(99)), NewDice(NewRand(99))
		for i := 0; i < 50; i++ {
			require.Equal(t, a.Roll(), b.Roll())
		}
	})

	t.Run("sequence dice wrap around", func(t *testing.T) {
		dice := NewSequenceDice(1, 2)
		require.Equal(t, []int{1, 2, 1}, []int{dice.Roll(), dice.Roll(), dice.Roll()})
	})

	t.Run("rolls are sorted highest first", func(t *testing.T) {
		require.Equal(t, []int{5, 3, 2}, rollDice(NewSequenceDice(2, 5, 3), 3))
	})
}
