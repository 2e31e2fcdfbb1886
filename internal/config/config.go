package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config - window and runtime settings. Windowed opts out of fullscreen;
// a zero Seed seeds tile spawns from the clock.
type Config struct {
	LogLevel    string  `yaml:"log-level" env:"TILES2048_LOG_LEVEL" env-default:"info"`
	WindowTitle string  `yaml:"window-title" env:"TILES2048_WINDOW_TITLE" env-default:"2048 Game"`
	WindowScale float64 `yaml:"window-scale" env:"TILES2048_WINDOW_SCALE" env-default:"2"`
	Windowed    bool    `yaml:"windowed" env:"TILES2048_WINDOWED"`
	Seed        int64   `yaml:"seed" env:"TILES2048_SEED" env-default:"0"`
	ThemePath   string  `yaml:"theme-path" env:"TILES2048_THEME_PATH" env-default:""`
}

var ErrBadScale = errors.New("window scale must be positive")

// Load reads path when it exists and then applies the environment.
// A missing file is not an error; defaults and env still apply.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config %q: %w", path, err)
	}

	if config.WindowScale <= 0 {
		return nil, fmt.Errorf("window-scale %v: %w", config.WindowScale, ErrBadScale)
	}

	return config, nil
}

// MustLoad - same as Load but panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
