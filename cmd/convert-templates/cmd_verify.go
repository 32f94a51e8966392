package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/regression-io/claude-config-plugins/internal/verify"
)

var verifyHwd = &VerifyRunner{}

type VerifyRunner struct{}

func (r *VerifyRunner) cmd() *cli.Command {
	return &cli.Command{
		Name:   "verify",
		Usage:  "Check generated plugins: manifests, skills and commands",
		Action: r.run,
	}
}

func (r *VerifyRunner) run(ctx context.Context, cmd *cli.Command) error {
	ctx, cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(cfg.Mappings))
	for _, name := range cfg.PluginNames() {
		if _, err := os.Stat(filepath.Join(cfg.PluginsDir, name)); os.IsNotExist(err) {
			cDim.Printf("- %s: not generated, skipped\n", name)
			continue
		}
		names = append(names, name)
	}

	v, err := verify.NewVerifier(cfg.Plugin.KeywordTag)
	if err != nil {
		return err
	}
	report, err := v.Verify(ctx, cfg.PluginsDir, names)
	if err != nil {
		return fmt.Errorf("verify plugins: %w", err)
	}

	for _, pr := range report.Plugins {
		if len(pr.Issues) == 0 {
			cSuccess.Printf("✓ %s (%d skills, %d commands)\n", pr.Name, pr.Skills, pr.Commands)
			continue
		}
		fmt.Printf("• %s (%d skills, %d commands)\n", pr.Name, pr.Skills, pr.Commands)
		for _, issue := range pr.Issues {
			rel, relErr := filepath.Rel(cfg.PluginsDir, issue.Path)
			if relErr != nil {
				rel = issue.Path
			}
			style := cWarn
			if issue.Severity == verify.SeverityError {
				style = cError
			}
			style.Printf("    %s %s: %s\n", issue.Severity, rel, issue.Message)
		}
	}

	fmt.Printf("\n%d plugins checked, %d errors, %d warnings\n", len(report.Plugins), report.Errors(), report.Warnings())
	if n := report.Errors(); n > 0 {
		return fmt.Errorf("verification failed with %d errors", n)
	}
	return nil
}
