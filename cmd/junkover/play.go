package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/junkover/internal/audio"
	"github.com/vovakirdan/junkover/internal/config"
	"github.com/vovakirdan/junkover/internal/core"
	"github.com/vovakirdan/junkover/internal/games/junkover"
	"github.com/vovakirdan/junkover/internal/logging"
	"github.com/vovakirdan/junkover/internal/platform/tui"
	"github.com/vovakirdan/junkover/internal/registry"
	"github.com/vovakirdan/junkover/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAudio      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing straight away, skipping the title screen.

Controls:
  Arrows/WASD - Tilt the ship
  B/Esc       - Back
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, constant spawn rate and speed

Examples:
  junkover play
  junkover play --difficulty easy
  junkover play --config ./my-junkover.yaml
  junkover play --audio --log-file junkover.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().BoolVar(&flagAudio, "audio", false, "Play music and sound effects")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := openLogger(nil)
	defer closeLog()

	closeAudio, err := configureScene(logger, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeAudio()

	game, err := registry.Create(junkover.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// configureScene hands the command line settings to the scene package.
// Audio is opened only when withAudio is set and the flag or config asks
// for it. The returned func releases the audio device.
func configureScene(logger *log.Logger, withAudio bool) (func(), error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	ac := audio.DefaultConfig()
	ac.Enabled = withAudio && (flagAudio || cfg.Audio.Enabled)
	ac.Volume = cfg.Audio.Volume
	player, closeAudio := audio.Open(ac, logger)

	junkover.SetOptions(junkover.Options{
		ConfigPath: flagConfig,
		Difficulty: preset,
		Audio:      player,
		Logger:     logger,
	})
	return closeAudio, nil
}

// openLogger builds the process logger. Without --log-file, output goes to
// fallback, and nil discards it so the full-screen UI stays clean.
func openLogger(fallback io.Writer) (*log.Logger, func()) {
	logger, closeFn, err := logging.New(logging.Options{
		Prefix: "junkover",
		Level:  flagLogLevel,
		File:   flagLogFile,
		Output: fallback,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, func() {
		//nolint:errcheck // Best-effort close on exit
		closeFn()
	}
}

// openStore opens the scores database. A failure only disables scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
