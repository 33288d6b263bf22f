// Package main is the entry point for Treasure Hunt.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/treasurehunt/internal/game"
	"github.com/samdwyer/treasurehunt/internal/logger"
	"github.com/samdwyer/treasurehunt/internal/telemetry"
	"github.com/samdwyer/treasurehunt/internal/tuning"
)

func main() {
	seed := flag.Int64("seed", 0, "world seed (0 picks one from the clock)")
	tuningPath := flag.String("tuning", "", "YAML file overriding generation thresholds")
	journalPath := flag.String("journal", "", "record intents to this .jsonl.zst file")
	replayPath := flag.String("replay", "", "replay a recorded journal headlessly and print the final state")
	dumpTuning := flag.Bool("dump-tuning", false, "print the effective thresholds as YAML and exit")
	flag.Parse()

	// .env makes HONEYCOMB_TREASUREHUNT_API_KEY and friends available.
	envErr := godotenv.Load()

	interactive := *replayPath == "" && !*dumpTuning
	closer, err := logger.Init(interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	if envErr != nil {
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	cfg := game.Config{
		Seed:        *seed,
		TuningPath:  *tuningPath,
		JournalPath: *journalPath,
	}.WithEnv()

	if *dumpTuning {
		if err := printTuning(cfg.TuningPath); err != nil {
			logger.Log.WithError(err).Fatal("dump tuning")
		}
		return
	}

	ctx := context.Background()

	telemetry.ConfigureEnv()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.WithError(err).Warn("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.WithError(err).Error("telemetry shutdown")
				}
			}()
		}
	}

	if *replayPath != "" {
		if err := replay(ctx, *replayPath); err != nil {
			logger.Log.WithError(err).Error("replay failed")
			os.Exit(1)
		}
		return
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		logger.Log.WithError(err).Error("failed to initialize game")
		os.Exit(1)
	}
	logger.Log.WithField("seed", g.Session().Seed()).Info("starting")

	if err := g.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("game error")
		os.Exit(1)
	}
}

func printTuning(path string) error {
	th, err := tuning.Load(path)
	if err != nil {
		return err
	}
	out, err := th.YAML()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func replay(ctx context.Context, path string) error {
	s, err := game.Replay(ctx, path)
	if err != nil {
		return err
	}
	snap := s.Snapshot()
	logger.Log.WithFields(logrus.Fields{
		"seed":   s.Seed(),
		"frames": snap.Frame,
		"state":  snap.State.String(),
		"world":  snap.Active.String(),
		"pos":    snap.Positions[snap.Active].String(),
		"gold":   snap.Quest.Gold,
		"stage":  snap.Quest.Stage,
	}).Info("final state")
	return nil
}
