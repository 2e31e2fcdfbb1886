package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"tiles2048/internal/assets"
	"tiles2048/internal/board"
	"tiles2048/internal/config"
	"tiles2048/internal/gamemode"
)

// Screen Constants (logical resolution, portrait)
const (
	ScreenWidth  = 360
	ScreenHeight = 480
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := run(logger, conf); err != nil {
		logger.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, conf *config.Config) error {
	palette, err := assets.LoadTheme(conf.ThemePath)
	if err != nil {
		return fmt.Errorf("could not load theme: %w", err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting game", "seed", seed, "fullscreen", !conf.Windowed)

	// 1. Window Setup
	ebiten.SetWindowSize(int(ScreenWidth*conf.WindowScale), int(ScreenHeight*conf.WindowScale))
	ebiten.SetWindowTitle(conf.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(!conf.Windowed)

	// 2. Initialize Game
	b := board.New(rand.New(rand.NewSource(seed)))
	game := NewGame(logger, gamemode.NewSession(logger, b), palette)

	// 3. Run Loop; returns nil once Update reports ebiten.Termination.
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run loop failed: %w", err)
	}

	return nil
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
