package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/regression-io/claude-config-plugins/internal/config"
	"github.com/regression-io/claude-config-plugins/internal/consts"
	"github.com/regression-io/claude-config-plugins/internal/pkg/logs"
)

var (
	cSuccess = color.New(color.FgGreen)
	cWarn    = color.New(color.FgYellow)
	cError   = color.New(color.FgRed)
	cDim     = color.New(color.FgHiBlack)
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   fmt.Sprintf("path to the conversion config (default: ./%s if present, else built-in table)", consts.DefaultConfigFile),
		},
		&cli.StringFlag{
			Name:  "templates",
			Usage: "root directory of the source templates",
		},
		&cli.StringFlag{
			Name:  "plugins",
			Usage: "root directory the plugins are written to",
		},
		&cli.BoolFlag{
			Name:  "keep-going",
			Usage: "continue with the remaining templates when one fails",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn, error",
		},
	}
}

// loadConfig resolves the config file, applies flag overrides and
// initialises logging. The returned context carries a fresh log id.
func loadConfig(ctx context.Context, cmd *cli.Command) (context.Context, *config.Config, error) {
	path := config.Resolve(cmd.String("config"))
	cfg, err := config.Load(path)
	if err != nil {
		return ctx, nil, fmt.Errorf("loading config error: %w", err)
	}

	if v := strings.TrimSpace(cmd.String("templates")); v != "" {
		cfg.TemplatesDir = v
	}
	if v := strings.TrimSpace(cmd.String("plugins")); v != "" {
		cfg.PluginsDir = v
	}
	if cmd.Bool("keep-going") {
		cfg.KeepGoing = true
	}
	if v := strings.TrimSpace(cmd.String("log-level")); v != "" {
		cfg.Logging.Level = v
	}

	if err := initLogger(cfg.Logging); err != nil {
		return ctx, nil, fmt.Errorf("init logger error: %w", err)
	}

	ctx = logs.SetLogID(ctx, logs.NewLogID())
	if path == "" {
		logs.CtxDebug(ctx, "using built-in conversion table")
	} else {
		logs.CtxDebug(ctx, "using config file: %s", path)
	}
	return ctx, cfg, nil
}

func initLogger(cfg config.LoggingConfig) error {
	return logs.Init(logs.Options{
		Level:      cfg.Level,
		Format:     cfg.Format,
		Output:     cfg.Output,
		File:       cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	})
}
