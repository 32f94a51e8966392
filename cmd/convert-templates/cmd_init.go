package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/regression-io/claude-config-plugins/internal/config"
	"github.com/regression-io/claude-config-plugins/internal/consts"
)

var initHwd = &InitRunner{}

type InitRunner struct{}

func (r *InitRunner) cmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write the effective conversion table to a config file for editing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   consts.DefaultConfigFile,
				Usage:   "file to write",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "overwrite an existing file (a timestamped backup is kept)",
			},
		},
		Action: r.run,
	}
}

func (r *InitRunner) run(ctx context.Context, cmd *cli.Command) error {
	_, cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	out := cmd.String("output")
	if err := config.Save(out, cfg, cmd.Bool("force")); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	cSuccess.Printf("✓ Wrote %d mappings to %s\n", len(cfg.Mappings), out)
	return nil
}
