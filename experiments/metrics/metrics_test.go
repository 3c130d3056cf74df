package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"war/game"
	"war/meta"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(game.Blue, game.Mission{Kind: game.ConquerTerritories, Threshold: 3})

	europe := game.Territory{Name: "Europe", Owner: game.Blue, Troops: 5}
	asia := game.Territory{Name: "Asia", Owner: game.Red, Troops: 1}
	c.AddRound(game.Outcome{AttackerRolls: []int{2}, DefenderRolls: []int{2}, AttackerLosses: 1}, europe, asia)
	c.AddRound(game.Outcome{AttackerRolls: []int{6}, DefenderRolls: []int{1}, DefenderLosses: 1, Conquered: true}, europe, asia)

	metric, rounds := c.Complete("won")

	require.Equal(t, game.Blue, metric.Player)
	require.Equal(t, "Conquer 3 territories", metric.Mission)
	require.Equal(t, "won", metric.Result)
	require.Equal(t, 2, metric.Rounds)
	require.Equal(t, 1, metric.Conquests)
	require.False(t, metric.EndTime.Before(metric.StartTime))
	require.Len(t, rounds, 2)
	require.Equal(t, 1, rounds[0].Round)
	require.Equal(t, 2, rounds[1].Round)
	require.Equal(t, game.Red, rounds[1].DefenderFaction, "Records should keep the pre-battle owner")
	require.True(t, rounds[1].Conquered)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(game.Blue, game.Mission{})
	c.AddRound(game.Outcome{}, game.Territory{}, game.Territory{})

	metric, rounds := c.Complete("quit")

	require.Equal(t, "quit", metric.Result)
	require.Empty(t, rounds)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	t.Run("round records", func(t *testing.T) {
		err := w.WriteRoundRecords([]RoundRecord{{
			Round:           1,
			Attacker:        "Europe",
			Defender:        "Asia",
			AttackerFaction: game.Blue,
			DefenderFaction: game.Red,
			AttackerRolls:   []int{6},
			DefenderRolls:   []int{2},
			DefenderLosses:  1,
			Conquered:       true,
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), meta.BATTLE_LOG_FILE))
		require.Len(t, rows, 2)
		require.Equal(t, "round", rows[0][0])
		require.Equal(t, []string{"Europe", "Asia", "Blue", "Red", "6", "2", "0", "1", "true"}, rows[1][2:])
	})

	t.Run("game record", func(t *testing.T) {
		require.NoError(t, w.WriteGameRecord(GameMetric{Player: game.Blue, Result: "quit", Rounds: 3}))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_record.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "Blue", rows[1][0])
		require.Equal(t, "quit", rows[1][2])
		require.Equal(t, "3", rows[1][6])
	})

	t.Run("odds record", func(t *testing.T) {
		require.NoError(t, w.WriteOddsRecord(OddsRecord{Attackers: 5, Defenders: 1, Trials: 4, Conquests: 3, ConquestRate: 0.75}))

		rows := readCSV(t, filepath.Join(w.Dir(), "odds_summary.csv"))
		require.Equal(t, []string{"5", "1", "4", "3", "0.7500", "0.0000", "0.0000"}, rows[1])
	})
}

func TestFormatRolls(t *testing.T) {
	require.Equal(t, "6-3-1", formatRolls([]int{6, 3, 1}))
	require.Equal(t, "", formatRolls(nil))
}
