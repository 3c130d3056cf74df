package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"war/meta"
)

// OddsRecord summarises an odds experiment.
type OddsRecord struct {
	Attackers          int
	Defenders          int
	Trials             int
	Conquests          int
	ConquestRate       float64
	MeanRounds         float64
	MeanAttackerLosses float64
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecord(record GameMetric) error {
	header := []string{"player", "mission", "result", "start_time", "end_time", "duration", "rounds", "conquests"}
	row := []string{
		string(record.Player),
		record.Mission,
		record.Result,
		record.StartTime.Format(time.RFC3339),
		record.EndTime.Format(time.RFC3339),
		record.Duration.String(),
		strconv.Itoa(record.Rounds),
		strconv.Itoa(record.Conquests),
	}
	return w.write("game_record.csv", header, [][]string{row})
}

func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	header := []string{"round", "time", "attacker", "defender", "attacker_faction", "defender_faction",
		"attacker_rolls", "defender_rolls", "attacker_losses", "defender_losses", "conquered"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Round),
			record.Time.Format(time.RFC3339Nano),
			record.Attacker,
			record.Defender,
			string(record.AttackerFaction),
			string(record.DefenderFaction),
			formatRolls(record.AttackerRolls),
			formatRolls(record.DefenderRolls),
			strconv.Itoa(record.AttackerLosses),
			strconv.Itoa(record.DefenderLosses),
			strconv.FormatBool(record.Conquered),
		})
	}
	return w.write(meta.BATTLE_LOG_FILE, header, rows)
}

func (w *Writer) WriteOddsRecord(record OddsRecord) error {
	header := []string{"attackers", "defenders", "trials", "conquests", "conquest_rate", "mean_rounds", "mean_attacker_losses"}
	row := []string{
		strconv.Itoa(record.Attackers),
		strconv.Itoa(record.Defenders),
		strconv.Itoa(record.Trials),
		strconv.Itoa(record.Conquests),
		strconv.FormatFloat(record.ConquestRate, 'f', 4, 64),
		strconv.FormatFloat(record.MeanRounds, 'f', 4, 64),
		strconv.FormatFloat(record.MeanAttackerLosses, 'f', 4, 64),
	}
	return w.write("odds_summary.csv", header, [][]string{row})
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}

func formatRolls(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, r := range rolls {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, "-")
}
