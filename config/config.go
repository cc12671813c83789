package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"tictactoe/game"
	"tictactoe/searcher"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Rounds     int     `yaml:"rounds" env:"TTT_ROUNDS" env-default:"30000"`
	Goroutines int     `yaml:"goroutines" env:"TTT_GOROUTINES" env-default:"1"`
	Seed       uint64  `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	Human      string  `yaml:"human" env:"TTT_HUMAN" env-default:"x"`
	Weights    Weights `yaml:"weights"`
}

type Weights struct {
	Win  int `yaml:"win" env:"TTT_WIN_POINTS" env-default:"1"`
	Loss int `yaml:"loss" env:"TTT_LOSS_POINTS" env-default:"-10"`
	Draw int `yaml:"draw" env:"TTT_DRAW_POINTS" env-default:"0"`
}

// Load reads the yaml file at path, or only the environment when path is
// empty, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (that *Config) Validate() error {
	if that.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, that.Rounds)
	}
	if that.Goroutines < 1 {
		return fmt.Errorf("%w: goroutines must be positive, got %d", ErrInvalidConfig, that.Goroutines)
	}
	if _, err := game.ParseMark(that.Human); err != nil {
		return fmt.Errorf("%w: human: %w", ErrInvalidConfig, err)
	}
	if that.Weights.Loss >= that.Weights.Win {
		return fmt.Errorf("%w: loss points (%d) must be below win points (%d)", ErrInvalidConfig, that.Weights.Loss, that.Weights.Win)
	}
	return nil
}

// HumanMark returns the side played from the console, Empty for none.
func (that *Config) HumanMark() game.Mark {
	mark, _ := game.ParseMark(that.Human)
	return mark
}

func (that *Weights) SearchWeights() searcher.Weights {
	return searcher.Weights{
		Win:  that.Win,
		Loss: that.Loss,
		Draw: that.Draw,
	}
}
