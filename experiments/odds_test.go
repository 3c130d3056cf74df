package experiments

import (
	"testing"

	"war/experiments/metrics"
	"war/game"

	"github.com/stretchr/testify/require"
)

func TestRunOdds(t *testing.T) {
	t.Run("attacker always winning", func(t *testing.T) {
		record, err := RunOdds(OddsConfig{
			Attackers: 3,
			Defenders: 2,
			Trials:    10,
			Dice:      game.NewSequenceDice(6, 1),
		})

		require.NoError(t, err)
		require.Equal(t, 10, record.Conquests)
		require.Equal(t, 1.0, record.ConquestRate)
		require.Equal(t, 2.0, record.MeanRounds)
		require.Equal(t, 0.0, record.MeanAttackerLosses)
	})

	t.Run("ties always failing", func(t *testing.T) {
		record, err := RunOdds(OddsConfig{
			Attackers: 4,
			Defenders: 1,
			Trials:    5,
			Dice:      game.NewSequenceDice(3),
		})

		require.NoError(t, err)
		require.Zero(t, record.Conquests)
		require.Equal(t, 3.0, record.MeanRounds, "Attacker should fight down to its last troop")
		require.Equal(t, 3.0, record.MeanAttackerLosses)
	})

	t.Run("recording rounds", func(t *testing.T) {
		collector := metrics.NewCollector()
		collector.Start(game.Blue, game.Mission{})

		_, err := RunOdds(OddsConfig{
			Attackers: 2,
			Defenders: 1,
			Trials:    3,
			Dice:      game.NewSequenceDice(6, 1),
			Collector: collector,
		})
		require.NoError(t, err)

		metric, rounds := collector.Complete("odds")
		require.Equal(t, 3, metric.Rounds)
		require.Equal(t, 3, metric.Conquests)
		require.Len(t, rounds, 3)
	})

	t.Run("seeded runs are reproducible and plausible", func(t *testing.T) {
		first, err := RunOdds(OddsConfig{Attackers: 5, Defenders: 1, Trials: 2000, Seed: 5})
		require.NoError(t, err)
		second, err := RunOdds(OddsConfig{Attackers: 5, Defenders: 1, Trials: 2000, Seed: 5})
		require.NoError(t, err)

		require.Equal(t, first, second)
		// Four chances at 15/36 each: 1-(21/36)^4 is about 0.884
		require.InDelta(t, 0.884, first.ConquestRate, 0.05)
	})

	t.Run("rejecting impossible attacks", func(t *testing.T) {
		_, err := RunOdds(OddsConfig{Attackers: 1, Defenders: 1})
		require.ErrorIs(t, err, ErrInvalidOddsConfig)

		_, err = RunOdds(OddsConfig{Attackers: 3, Defenders: 0})
		require.ErrorIs(t, err, ErrInvalidOddsConfig)
	})
}
