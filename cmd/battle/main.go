package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

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
	log := logger.Setup(cfg, os.Stderr)

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		reportFailure(log, os.Stderr, err)
		os.Exit(1)
	}
}

// reportFailure prints err for the user. The structured record is debug-only.
func reportFailure(log *slog.Logger, w io.Writer, err error) {
	logger.WithError(log, err).Debug("Battle aborted")
	fmt.Fprintf(w, "Battle aborted: %v\n", err)
}

// run plays one scenario to completion, reading the player's choices from in
// and writing the transcript to out.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	s := scenario.Default()
	if cfg.Scenario != "" {
		loaded, err := scenario.Load(cfg.Scenario)
		if err != nil {
			return err
		}
		s = loaded
	}

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return err
	}
	rng := battle.NewRand(seed)

	engine := battle.NewEngine(actor.NewCharacter(s.Player), actor.NewCharacter(s.Enemy), battle.Config{
		PlayerPolicy: battle.NewHuman(in, out),
		EnemyPolicy:  battle.NewRandom(rng),
		Rand:         rng,
	})

	outcome, err := engine.Run(ctx, func(r battle.TurnReport) {
		fmt.Fprintf(out, "\n--- Turn %d ---\n", r.Turn)
		for _, event := range r.Events {
			fmt.Fprintln(out, event)
		}
		for _, status := range r.Status {
			fmt.Fprintln(out, status)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nBattle finished!")
	if outcome.PlayerWon {
		fmt.Fprintln(out, "Player wins!")
	} else {
		fmt.Fprintln(out, "Enemy wins!")
	}
	return nil
}
