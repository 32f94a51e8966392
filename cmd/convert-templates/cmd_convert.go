package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/regression-io/claude-config-plugins/internal/convert"
)

var convertHwd = &ConvertRunner{}

type ConvertRunner struct{}

func (r *ConvertRunner) cmd() *cli.Command {
	return &cli.Command{
		Name:   "convert",
		Usage:  "Convert every mapped template into its plugin (default action)",
		Action: r.run,
	}
}

func (r *ConvertRunner) run(ctx context.Context, cmd *cli.Command) error {
	ctx, cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	_, err = convert.NewRunner(cfg, os.Stdout).Run(ctx)
	return err
}
