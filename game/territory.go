package game

import (
	"errors"
	"fmt"
	"war/meta"
	"war/utils"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Territory is a map region held by exactly one faction.
type Territory struct {
	Name   string  `yaml:"name"`
	Owner  Faction `yaml:"owner"`
	Troops int     `yaml:"troops"`
}

// Store holds the territories of one game. Its size is fixed at construction;
// conquest changes owners, never the number of territories.
type Store struct {
	territories []Territory
}

// NewStore validates the initial territories and copies them into a new Store.
func NewStore(territories []Territory) (*Store, error) {
	if len(territories) == 0 {
		return nil, fmt.Errorf("%w: no territories", ErrInvalidScenario)
	}
	if len(territories) > meta.MAX_TERRITORIES {
		return nil, fmt.Errorf("%w: %d territories exceed the limit of %d", ErrInvalidScenario, len(territories), meta.MAX_TERRITORIES)
	}

	names := make([]string, 0, len(territories))
	for i, t := range territories {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: territory %d has no name", ErrInvalidScenario, i+1)
		}
		if utils.FindIndex(names, t.Name) != -1 {
			return nil, fmt.Errorf("%w: duplicate territory %q", ErrInvalidScenario, t.Name)
		}
		if t.Owner == "" {
			return nil, fmt.Errorf("%w: territory %q has no owner", ErrInvalidScenario, t.Name)
		}
		if t.Troops < 1 {
			return nil, fmt.Errorf("%w: territory %q needs at least one troop", ErrInvalidScenario, t.Name)
		}
		names = append(names, t.Name)
	}

	s := &Store{territories: make([]Territory, len(territories))}
	copy(s.territories, territories)
	return s, nil
}

func (s *Store) Len() int {
	return len(s.territories)
}

// Territory returns a copy of the territory at index.
func (s *Store) Territory(index int) (Territory, error) {
	if !s.valid(index) {
		return Territory{}, fmt.Errorf("%w: index %d", ErrInvalidTerritory, index)
	}
	return s.territories[index], nil
}

// Territories returns a snapshot of all territories in store order.
func (s *Store) Territories() []Territory {
	snapshot := make([]Territory, len(s.territories))
	copy(snapshot, s.territories)
	return snapshot
}

// CountOwnedBy returns how many territories faction holds.
func (s *Store) CountOwnedBy(faction Faction) int {
	return utils.CountFunc(s.territories, func(t Territory) bool {
		return t.Owner == faction
	})
}

// Factions lists the factions holding at least one territory, in store order.
func (s *Store) Factions() []Faction {
	var factions []Faction
	for _, t := range s.territories {
		if utils.FindIndex(factions, t.Owner) == -1 {
			factions = append(factions, t.Owner)
		}
	}
	return factions
}

func (s *Store) Copy() *Store {
	territoriesCopy := make([]Territory, len(s.territories))
	copy(territoriesCopy, s.territories)
	return &Store{territories: territoriesCopy}
}

func (s *Store) valid(index int) bool {
	return index >= 0 && index < len(s.territories)
}
