package experiments

import (
	"errors"
	"fmt"

	"war/experiments/metrics"
	"war/game"
	"war/meta"

	"github.com/rs/zerolog/log"
)

var ErrInvalidOddsConfig = errors.New("invalid odds configuration")

type OddsConfig struct {
	Attackers int
	Defenders int
	Trials    int
	Seed      uint64
	Rules     game.Rules
	Dice      game.Dice // Overrides Seed when set
	Collector metrics.Collector
}

// RunOdds estimates how often an attacker with cfg.Attackers troops takes a territory
// defended by cfg.Defenders troops, attacking until it conquers or is down to one troop.
func RunOdds(cfg OddsConfig) (metrics.OddsRecord, error) {
	if cfg.Attackers < meta.MIN_ATTACK_TROOPS {
		return metrics.OddsRecord{}, fmt.Errorf("%w: attackers must be at least %d", ErrInvalidOddsConfig, meta.MIN_ATTACK_TROOPS)
	}
	if cfg.Defenders < 1 {
		return metrics.OddsRecord{}, fmt.Errorf("%w: defenders must be at least 1", ErrInvalidOddsConfig)
	}
	if cfg.Trials <= 0 {
		cfg.Trials = meta.DEFAULT_TRIALS
	}
	if cfg.Rules == nil {
		cfg.Rules = game.NewStandardRules()
	}
	if cfg.Dice == nil {
		cfg.Dice = game.NewDice(game.NewRand(cfg.Seed))
	}
	if cfg.Collector == nil {
		cfg.Collector = metrics.NewDummyCollector()
	}

	initial, err := game.NewStore([]game.Territory{
		{Name: "Attacker", Owner: game.Blue, Troops: cfg.Attackers},
		{Name: "Defender", Owner: game.Red, Troops: cfg.Defenders},
	})
	if err != nil {
		return metrics.OddsRecord{}, err
	}

	log.Info().Msgf("starting odds experiment with %d attackers against %d defenders over %d trials...", cfg.Attackers, cfg.Defenders, cfg.Trials)

	record := metrics.OddsRecord{
		Attackers: cfg.Attackers,
		Defenders: cfg.Defenders,
		Trials:    cfg.Trials,
	}
	totalRounds, totalLosses := 0, 0
	for i := 0; i < cfg.Trials; i++ {
		store := initial.Copy()
		rounds, conquered, err := runTrial(store, cfg)
		if err != nil {
			return metrics.OddsRecord{}, err
		}

		attacker, _ := store.Territory(0)
		totalRounds += rounds
		// The occupying troop moved out rather than died
		losses := cfg.Attackers - attacker.Troops
		if conquered {
			record.Conquests++
			losses--
		}
		totalLosses += losses

		if (i+1)%1000 == 0 {
			log.Debug().Msgf("completed trial %d of %d", i+1, cfg.Trials)
		}
	}

	record.ConquestRate = float64(record.Conquests) / float64(cfg.Trials)
	record.MeanRounds = float64(totalRounds) / float64(cfg.Trials)
	record.MeanAttackerLosses = float64(totalLosses) / float64(cfg.Trials)

	log.Info().Msgf("completed odds experiment: conquest rate %.4f", record.ConquestRate)
	return record, nil
}

func runTrial(store *game.Store, cfg OddsConfig) (rounds int, conquered bool, err error) {
	for {
		attacker, _ := store.Territory(0)
		if attacker.Troops < meta.MIN_ATTACK_TROOPS {
			return rounds, false, nil
		}
		defender, _ := store.Territory(1)

		outcome, err := store.ResolveBattle(0, 1, cfg.Rules, cfg.Dice)
		if err != nil {
			return rounds, false, err
		}
		rounds++
		cfg.Collector.AddRound(outcome, attacker, defender)
		if outcome.Conquered {
			return rounds, true, nil
		}
	}
}
