package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/duel-engine/internal/config"
	"github.com/jwebster45206/duel-engine/internal/logger"
	"github.com/jwebster45206/duel-engine/internal/random"
	"github.com/jwebster45206/duel-engine/pkg/actor"
	"github.com/jwebster45206/duel-engine/pkg/battle"
	"github.com/jwebster45206/duel-engine/pkg/scenario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run owns every resource that needs closing so deferred cleanup happens
// before main exits.
func run(cfg *config.Config) error {
	// The alt screen owns the terminal; debug logs go to a file instead.
	var logOut io.Writer = io.Discard
	if cfg.Level() == slog.LevelDebug {
		f, err := tea.LogToFile("battle-debug.log", "console")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer func() {
			_ = f.Close() // Ignore error in defer
		}()
		logOut = f
	}
	logger.Setup(cfg, logOut)

	engine, choice, err := newEngine(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up battle: %w", err)
	}

	p := tea.NewProgram(NewConsoleUI(engine, choice),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func newEngine(cfg *config.Config) (*battle.Engine, *battle.Fixed, error) {
	s := scenario.Default()
	if cfg.Scenario != "" {
		loaded, err := scenario.Load(cfg.Scenario)
		if err != nil {
			return nil, nil, err
		}
		s = loaded
	}

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	rng := battle.NewRand(seed)
	choice := &battle.Fixed{}

	engine := battle.NewEngine(actor.NewCharacter(s.Player), actor.NewCharacter(s.Enemy), battle.Config{
		PlayerPolicy: choice,
		EnemyPolicy:  battle.NewRandom(rng),
		Rand:         rng,
	})
	return engine, choice, nil
}
