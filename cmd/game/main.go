package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/asteroids-ufo/internal/audio"
	"github.com/tomz197/asteroids-ufo/internal/audio/speaker"
	"github.com/tomz197/asteroids-ufo/internal/config"
	"github.com/tomz197/asteroids-ufo/internal/logging"
	"github.com/tomz197/asteroids-ufo/internal/loop"
	"github.com/tomz197/asteroids-ufo/internal/score"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "asteroids: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.PathFromEnv("asteroids.toml"))
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	scorePath := cfg.Storage.Path
	if scorePath == "" {
		scorePath, err = score.DefaultPath(cfg.Storage.Vendor, cfg.Storage.App)
		if err != nil {
			return err
		}
	}

	// The terminal is in raw mode while playing, so logs go to a file.
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(filepath.Dir(scorePath), "asteroids.log")
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var sink audio.Sink = audio.Nop{}
	if cfg.Audio.Enabled {
		spk, err := speaker.New()
		if err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			defer spk.Close()
			sink = spk
		}
	}

	game := loop.NewGame(loop.Options{
		Config: cfg.Game,
		Store:  score.NewFileStore(scorePath),
		Audio:  sink,
		Logger: log,
	})

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	if err := loop.Run(bufio.NewReader(os.Stdin), os.Stdout, game, loop.RunOptions{}); err != nil {
		log.Error("game ended with error", zap.Error(err))
		return fmt.Errorf("game: %w", err)
	}
	log.Info("game closed", zap.Uint32("high_score", game.HighScore()))
	return nil
}
