package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tictactoe/config"
	"tictactoe/engine"
	"tictactoe/game"
	"tictactoe/metrics"
	"tictactoe/player"
	"tictactoe/searcher"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	// Failures are logged; the exit status stays 0
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("tictactoe stopped")
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	flags := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to a yaml config file (environment only if empty)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	initLogLevel(conf)

	e := engine.LocalEngine(newAgent(conf, game.X, in, out), newAgent(conf, game.O, in, out), out)
	if _, err := e.Run(); err != nil {
		return fmt.Errorf("game %s aborted: %w", e.ID, err)
	}
	return nil
}

func initLogLevel(conf *config.Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", conf.LogLevel)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func newAgent(conf *config.Config, mark game.Mark, in io.Reader, out io.Writer) player.Agent {
	if mark == conf.HumanMark() {
		return player.NewHuman(in, out)
	}

	options := []searcher.Option{
		searcher.WithGoroutines(conf.Goroutines),
		searcher.WithWeights(conf.Weights.SearchWeights()),
	}
	if conf.Seed != 0 {
		// Offset so the two computer players do not mirror each other
		options = append(options, searcher.WithSeed(conf.Seed+uint64(mark)<<32))
	}
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		options = append(options, searcher.WithMetrics(metrics.NewCollector()))
	}

	return player.NewComputer(searcher.NewMonteCarlo(options...), conf.Rounds, out)
}
