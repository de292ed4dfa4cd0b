package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Render modes.
const (
	RenderNone  = "none"
	RenderTiles = "tiles"
	RenderPath  = "path"
)

// Environment keys. Flags override them.
const (
	envInput     = "MAZEPATH_INPUT"
	envLogLevel  = "MAZEPATH_LOG_LEVEL"
	envLogFormat = "MAZEPATH_LOG_FORMAT"
	envRender    = "MAZEPATH_RENDER"
	envMaxCost   = "MAZEPATH_MAX_COST"
)

// Config holds the driver settings.
type Config struct {
	Input     string // maze file, "-" for stdin
	LogLevel  string // any logrus level name
	LogFormat string // "text" or "json"
	Render    string // RenderNone, RenderTiles or RenderPath
	MaxCost   int64  // 0 means no cap
}

// Fields returns the config as log fields.
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"input":      c.Input,
		"log_level":  c.LogLevel,
		"log_format": c.LogFormat,
		"render":     c.Render,
		"max_cost":   c.MaxCost,
	}
}

func defaultConfig() Config {
	return Config{
		Input:     "-",
		LogLevel:  "warning",
		LogFormat: "text",
		Render:    RenderNone,
	}
}

// LoadConfig builds a Config from defaults, then environment (through lookup),
// then command-line flags in args. A single positional argument names the input.
func LoadConfig(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := defaultConfig()

	if v, ok := lookup(envInput); ok && v != "" {
		cfg.Input = v
	}
	if v, ok := lookup(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup(envRender); ok && v != "" {
		cfg.Render = v
	}
	if v, ok := lookup(envMaxCost); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s must be an integer: %w", envMaxCost, err)
		}
		cfg.MaxCost = n
	}

	fs := pflag.NewFlagSet("mazepath", pflag.ContinueOnError)
	fs.StringVarP(&cfg.LogLevel, "log-level", "l", cfg.LogLevel, "log level (trace, debug, info, warning, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.StringVarP(&cfg.Render, "render", "r", cfg.Render, "draw the maze after the answers: none, tiles or path")
	fs.Int64Var(&cfg.MaxCost, "max-cost", cfg.MaxCost, "stop exploring beyond this cost (0 = no cap)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("config: expected at most one input file, got %d", fs.NArg())
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	switch c.Render {
	case RenderNone, RenderTiles, RenderPath:
	default:
		return fmt.Errorf("config: unknown render mode %q", c.Render)
	}
	if c.MaxCost < 0 {
		return fmt.Errorf("config: max cost must be non-negative, got %d", c.MaxCost)
	}

	return nil
}

// newLogger builds a logrus logger from the config. validate must have passed.
func newLogger(c Config) *logrus.Logger {
	l := logrus.New()
	lvl, _ := logrus.ParseLevel(c.LogLevel)
	l.SetLevel(lvl)
	if strings.EqualFold(c.LogFormat, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l
}
