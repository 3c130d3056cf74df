package metrics

import (
	"time"

	"war/game"
)

// RoundRecord is one resolved battle round.
type RoundRecord struct {
	Round           int
	Time            time.Time
	Attacker        string
	Defender        string
	AttackerFaction game.Faction
	DefenderFaction game.Faction
	AttackerRolls   []int
	DefenderRolls   []int
	AttackerLosses  int
	DefenderLosses  int
	Conquered       bool
}

type GameMetric struct {
	Player    game.Faction
	Mission   string
	Result    string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Rounds    int
	Conquests int
}

type Collector interface {
	Start(player game.Faction, mission game.Mission)
	// AddRound records outcome; attacker and defender are the territories as they were before the round.
	AddRound(outcome game.Outcome, attacker, defender game.Territory)
	Complete(result string) (GameMetric, []RoundRecord)
}

type collector struct {
	metric GameMetric
	rounds []RoundRecord
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(player game.Faction, mission game.Mission) {
	m.metric = GameMetric{
		Player:    player,
		Mission:   mission.Description(),
		StartTime: time.Now(),
	}
	m.rounds = nil
}

func (m *collector) AddRound(outcome game.Outcome, attacker, defender game.Territory) {
	m.metric.Rounds++
	if outcome.Conquered {
		m.metric.Conquests++
	}
	m.rounds = append(m.rounds, RoundRecord{
		Round:           m.metric.Rounds,
		Time:            time.Now(),
		Attacker:        attacker.Name,
		Defender:        defender.Name,
		AttackerFaction: attacker.Owner,
		DefenderFaction: defender.Owner,
		AttackerRolls:   outcome.AttackerRolls,
		DefenderRolls:   outcome.DefenderRolls,
		AttackerLosses:  outcome.AttackerLosses,
		DefenderLosses:  outcome.DefenderLosses,
		Conquered:       outcome.Conquered,
	})
}

func (m *collector) Complete(result string) (GameMetric, []RoundRecord) {
	m.metric.Result = result
	m.metric.EndTime = time.Now()
	m.metric.Duration = m.metric.EndTime.Sub(m.metric.StartTime)
	return m.metric, m.rounds
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(player game.Faction, mission game.Mission)                {}
func (m *dummyCollector) AddRound(outcome game.Outcome, attacker, defender game.Territory) {}
func (m *dummyCollector) Complete(result string) (GameMetric, []RoundRecord) {
	return GameMetric{Result: result}, nil
}
