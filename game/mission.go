package game

import (
	"errors"
	"fmt"
)

var ErrUnknownMission = errors.New("unknown mission")

type MissionID int

type MissionKind int

const (
	ConquerTerritories MissionKind = iota
	EliminateFaction
)

func (k MissionKind) String() string {
	switch k {
	case ConquerTerritories:
		return "conquer"
	case EliminateFaction:
		return "eliminate"
	default:
		return fmt.Sprintf("MissionKind(%d)", int(k))
	}
}

// ParseMissionKind maps the scenario file spelling back to a kind.
func ParseMissionKind(s string) (MissionKind, error) {
	switch s {
	case "conquer":
		return ConquerTerritories, nil
	case "eliminate":
		return EliminateFaction, nil
	}
	return 0, fmt.Errorf("%w: kind %q", ErrUnknownMission, s)
}

// Mission is a victory condition. Target is used by EliminateFaction,
// Threshold by ConquerTerritories.
type Mission struct {
	ID        MissionID
	Kind      MissionKind
	Target    Faction
	Threshold int
}

func (m Mission) Description() string {
	switch m.Kind {
	case ConquerTerritories:
		return fmt.Sprintf("Conquer %d territories", m.Threshold)
	case EliminateFaction:
		return fmt.Sprintf("Eliminate the %s army", m.Target)
	default:
		return "Unknown mission"
	}
}

// Check reports whether player has completed the mission on store. It never mutates the store.
func (m Mission) Check(store *Store, player Faction) bool {
	switch m.Kind {
	case ConquerTerritories:
		return store.CountOwnedBy(player) >= m.Threshold
	case EliminateFaction:
		return store.CountOwnedBy(m.Target) == 0
	default:
		return false
	}
}

func (m Mission) validate(player Faction) error {
	switch m.Kind {
	case ConquerTerritories:
		if m.Threshold < 1 {
			return fmt.Errorf("%w: conquer mission needs a positive threshold", ErrInvalidScenario)
		}
	case EliminateFaction:
		if m.Target == "" {
			return fmt.Errorf("%w: eliminate mission needs a target", ErrInvalidScenario)
		}
		if m.Target == player {
			return fmt.Errorf("%w: %s cannot be ordered to eliminate itself", ErrInvalidScenario, player)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMission, m.Kind)
	}
	return nil
}

// Catalog is the fixed set of missions a player can be assigned.
type Catalog []Mission

// NewCatalog numbers missions from 1 in the given order.
func NewCatalog(missions ...Mission) Catalog {
	c := make(Catalog, len(missions))
	for i, m := range missions {
		m.ID = MissionID(i + 1)
		c[i] = m
	}
	return c
}

func DefaultCatalog() Catalog {
	return NewCatalog(
		Mission{Kind: EliminateFaction, Target: Red},
		Mission{Kind: ConquerTerritories, Threshold: 3},
	)
}

func (c Catalog) Lookup(id MissionID) (Mission, error) {
	for _, m := range c {
		if m.ID == id {
			return m, nil
		}
	}
	return Mission{}, fmt.Errorf("%w: id %d", ErrUnknownMission, id)
}

// Draw picks a mission uniformly at random.
func (c Catalog) Draw(r Intner) Mission {
	if len(c) == 0 {
		panic("cannot draw from an empty mission catalog")
	}
	return c[r.Intn(len(c))]
}

// CheckMission evaluates the catalog mission id for player.
func CheckMission(c Catalog, id MissionID, store *Store, player Faction) (bool, error) {
	m, err := c.Lookup(id)
	if err != nil {
		return false, err
	}
	return m.Check(store, player), nil
}
