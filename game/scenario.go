package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is everything needed to set up a game.
type Scenario struct {
	Player      Faction
	Territories []Territory
	Missions    Catalog
}

type scenarioFile struct {
	Player      Faction        `yaml:"player"`
	Territories []Territory    `yaml:"territories"`
	Missions    []missionEntry `yaml:"missions"`
}

type missionEntry struct {
	Kind      string  `yaml:"kind"`
	Target    Faction `yaml:"target"`
	Threshold int     `yaml:"threshold"`
}

func DefaultScenario() Scenario {
	return Scenario{
		Player: Blue,
		Territories: []Territory{
			{Name: "America", Owner: Green, Troops: 5},
			{Name: "Europe", Owner: Blue, Troops: 5},
			{Name: "Asia", Owner: Red, Troops: 3},
			{Name: "Africa", Owner: Yellow, Troops: 4},
			{Name: "Oceania", Owner: White, Troops: 2},
		},
		Missions: DefaultCatalog(),
	}
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(b)
}

func ParseScenario(data []byte) (Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	missions := make([]Mission, 0, len(f.Missions))
	for _, entry := range f.Missions {
		kind, err := ParseMissionKind(entry.Kind)
		if err != nil {
			return Scenario{}, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}
		missions = append(missions, Mission{Kind: kind, Target: entry.Target, Threshold: entry.Threshold})
	}

	sc := Scenario{
		Player:      f.Player,
		Territories: f.Territories,
		Missions:    NewCatalog(missions...),
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Validate checks the territories, the player faction and every mission.
func (sc Scenario) Validate() error {
	if sc.Player == "" {
		return fmt.Errorf("%w: no player faction", ErrInvalidScenario)
	}
	store, err := NewStore(sc.Territories)
	if err != nil {
		return err
	}
	if store.CountOwnedBy(sc.Player) == 0 {
		return fmt.Errorf("%w: %s holds no territory", ErrInvalidScenario, sc.Player)
	}
	if len(sc.Missions) == 0 {
		return fmt.Errorf("%w: no missions", ErrInvalidScenario)
	}
	for _, m := range sc.Missions {
		if err := m.validate(sc.Player); err != nil {
			return err
		}
	}
	return nil
}
