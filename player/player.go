package player

import (
	"war/game"

	"github.com/rs/zerolog/log"
)

// Player is the human side of the game: one faction and the secret mission it was dealt.
type Player struct {
	Faction game.Faction
	Mission game.Mission
}

// NewPlayer draws the player's mission from catalog. The mission is fixed for the whole game.
func NewPlayer(faction game.Faction, catalog game.Catalog, r game.Intner) *Player {
	mission := catalog.Draw(r)
	log.Debug().Msgf("player %s was assigned mission %d", faction, mission.ID)
	return &Player{
		Faction: faction,
		Mission: mission,
	}
}

// MissionComplete evaluates the assigned mission against the current store.
func (p *Player) MissionComplete(store *game.Store) bool {
	return p.Mission.Check(store, p.Faction)
}

// Owns reports whether the territory at index belongs to the player.
func (p *Player) Owns(store *game.Store, index int) bool {
	t, err := store.Territory(index)
	if err != nil {
		return false
	}
	return t.Owner == p.Faction
}
