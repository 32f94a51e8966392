package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/regression-io/claude-config-plugins/internal/pkg/utils"
)

var listHwd = &ListRunner{}

type ListRunner struct{}

func (r *ListRunner) cmd() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "Show the template to plugin mapping table",
		Action: r.run,
	}
}

func (r *ListRunner) run(ctx context.Context, cmd *cli.Command) error {
	_, cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	cDim.Printf("templates: %s\nplugins:   %s\n\n", cfg.TemplatesDir, cfg.PluginsDir)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEMPLATE\tPLUGIN\tSOURCE\tDESCRIPTION")
	for _, m := range cfg.Mappings {
		status := "missing"
		if info, err := os.Stat(filepath.Join(cfg.TemplatesDir, filepath.FromSlash(m.Template))); err == nil && info.IsDir() {
			status = "present"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Template, m.Plugin, status, utils.Truncate(m.Description, 60))
	}
	return tw.Flush()
}
