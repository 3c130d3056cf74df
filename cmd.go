package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"war/communication/terminal"
	"war/engine"
	"war/experiments"
	"war/experiments/metrics"
	"war/game"
	"war/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type playConfig struct {
	seed      uint64
	scenario  string
	battleLog string
	verbose   bool
}

type oddsConfig struct {
	attackers int
	defenders int
	trials    int
	out       string
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var cfg playConfig

	rootCmd := &cobra.Command{
		Use:   "war",
		Short: "Turn based territory conquest with a secret mission",
		Long: `War is a single player conquest game played from a numeric menu.

You command one army and receive a secret mission. Attack neighbouring
armies one dice roll at a time and check your mission when you think
it is done.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), cfg.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), in, out, cfg)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().Uint64Var(&cfg.seed, "seed", 0, "random seed, 0 seeds from the clock")
	rootCmd.Flags().StringVar(&cfg.scenario, "scenario", "", "YAML scenario file, the built-in world is used when empty")
	rootCmd.Flags().StringVar(&cfg.battleLog, "battle-log", "", "directory receiving CSV battle records")

	rootCmd.AddCommand(newOddsCmd(out, &cfg))
	return rootCmd
}

func newOddsCmd(out io.Writer, play *playConfig) *cobra.Command {
	var cfg oddsConfig

	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Estimate the chance of conquering a territory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := experiments.RunOdds(experiments.OddsConfig{
				Attackers: cfg.attackers,
				Defenders: cfg.defenders,
				Trials:    cfg.trials,
				Seed:      play.seed,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%d attackers vs %d defenders over %d trials\n", record.Attackers, record.Defenders, record.Trials)
			fmt.Fprintf(out, "conquest rate:        %.2f%%\n", record.ConquestRate*100)
			fmt.Fprintf(out, "mean rounds:          %.2f\n", record.MeanRounds)
			fmt.Fprintf(out, "mean attacker losses: %.2f\n", record.MeanAttackerLosses)

			if cfg.out == "" {
				return nil
			}
			writer, err := metrics.NewWriter(cfg.out)
			if err != nil {
				return err
			}
			if err := writer.WriteOddsRecord(record); err != nil {
				return err
			}
			log.Info().Msgf("stored odds summary in %s", writer.Dir())
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.attackers, "attackers", 3, "troops in the attacking territory")
	cmd.Flags().IntVar(&cfg.defenders, "defenders", 1, "troops in the defending territory")
	cmd.Flags().IntVar(&cfg.trials, "trials", meta.DEFAULT_TRIALS, "number of simulated attacks")
	cmd.Flags().StringVar(&cfg.out, "out", "", "directory receiving a CSV summary")
	return cmd
}

func runPlay(ctx context.Context, in io.Reader, out io.Writer, cfg playConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	scenario := game.DefaultScenario()
	if cfg.scenario != "" {
		var err error
		scenario, err = game.LoadScenario(cfg.scenario)
		if err != nil {
			return fmt.Errorf("failed to set up the game: %w", err)
		}
	}

	options := []engine.Option{engine.WithSeed(cfg.seed)}
	if cfg.battleLog != "" {
		options = append(options, engine.WithCollector(metrics.NewCollector()))
	}

	term := terminal.New(in, out)
	defer term.Close()

	e, err := engine.NewLocalEngine(scenario, term, options...)
	if err != nil {
		return fmt.Errorf("failed to set up the game: %w", err)
	}

	result, err := e.Run(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	log.Debug().Msgf("game ended: %s", result)

	if cfg.battleLog != "" {
		if err := storeBattleLog(cfg.battleLog, e); err != nil {
			return err
		}
	}
	return nil
}

func storeBattleLog(dir string, e *engine.LocalEngine) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	metric, rounds := e.Metrics()
	if err := writer.WriteGameRecord(metric); err != nil {
		return err
	}
	if err := writer.WriteRoundRecords(rounds); err != nil {
		return err
	}
	log.Info().Msgf("stored battle log in %s", writer.Dir())
	return nil
}

func setupLogger(w io.Writer, verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
