// Command mazepath reads a directional maze and prints the minimum route cost
// followed by the number of cells on any minimum-cost route.
//
// Usage:
//
//	mazepath [flags] [maze-file]
//
// With no file (or "-") the maze is read from stdin. Settings may also come
// from MAZEPATH_* environment variables or a .env file in the working
// directory; flags win over both.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitBadConfig = 2
	exitBadMaze   = 3
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	dotenvErr := godotenv.Load()

	cfg, err := LoadConfig(args, os.LookupEnv)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitBadConfig
	}
	log := newLogger(cfg)
	log.SetOutput(stderr)
	if dotenvErr != nil {
		log.WithError(dotenvErr).Debug(".env file not loaded")
	}

	runID := uuid.NewString()
	entry := log.WithField("run_id", runID)
	entry.WithFields(cfg.Fields()).Debug("configuration loaded")

	if err := run(cfg, runID, log, stdin, stdout); err != nil {
		entry.WithError(err).Error("mazepath failed")
		if errors.Is(err, maze.ErrMalformedGrid) {
			return exitBadMaze
		}
		return exitFailure
	}

	return exitOK
}

// run parses the maze named by cfg.Input, searches it and writes the answers.
// An unreachable sink prints "unreachable" and a tile count of 0; it is not an error.
func run(cfg Config, runID string, log logrus.FieldLogger, stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("opening maze: %w", err)
		}
		defer f.Close()
		in = f
	}

	g, err := maze.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", cfg.Input, err)
	}

	opts := []pathfind.Option{pathfind.WithLogger(log), pathfind.WithRunID(runID)}
	if cfg.MaxCost > 0 {
		opts = append(opts, pathfind.WithMaxCost(cfg.MaxCost))
	}
	res, err := pathfind.Search(g, opts...)
	if err != nil {
		return err
	}

	if res.Reachable {
		fmt.Fprintln(stdout, res.MinCost)
	} else {
		fmt.Fprintln(stdout, "unreachable")
	}
	fmt.Fprintln(stdout, res.TileCount())

	switch cfg.Render {
	case RenderTiles:
		fmt.Fprintln(stdout, res.RenderTiles())
	case RenderPath:
		fmt.Fprintln(stdout, res.RenderPath())
	}

	return nil
}
